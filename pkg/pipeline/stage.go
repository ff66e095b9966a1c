package pipeline

// Stage is one step of the pipeline: total and pure over Data, owning no
// state beyond its own configuration.
type Stage interface {
	Process(in Data) Data
	Name() string
}

// Pipeline is an ordered composition of stages, applied in insertion
// order.
type Pipeline struct {
	stages []Stage
}

// New creates an empty Pipeline.
func New() *Pipeline {
	return &Pipeline{}
}

// Add appends a stage and returns the Pipeline for chaining.
func (p *Pipeline) Add(s Stage) *Pipeline {
	p.stages = append(p.stages, s)
	return p
}

// Execute runs every stage over data in order.
func (p *Pipeline) Execute(data Data) Data {
	for _, s := range p.stages {
		data = s.Process(data)
	}
	return data
}

// StageNames returns the stable short names of every stage in order, for
// logging.
func (p *Pipeline) StageNames() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}
