package pipeline

// Build assembles a Pipeline from config, in the fixed stage order:
// filter(hidden) -> filter(include_ext) -> filter(exclude_ext) ->
// filter(size) -> filter(name_pattern) -> sort -> group. A missing config
// section adds no stage. Build returns an InvalidInput error when a sort
// field, sort order or group field is not one of the known wire values.
func Build(config PipelineConfig) (*Pipeline, error) {
	p := New()

	if f := config.Filter; f != nil {
		p.Add(FilterHidden{ShowHidden: f.ShowHidden})

		if len(f.IncludeExtensions) > 0 {
			p.Add(FilterByExtension{Extensions: f.IncludeExtensions, Excluding: false})
		}
		if len(f.ExcludeExtensions) > 0 {
			p.Add(FilterByExtension{Extensions: f.ExcludeExtensions, Excluding: true})
		}
		if f.MinSize != nil || f.MaxSize != nil {
			p.Add(FilterBySize{Min: f.MinSize, Max: f.MaxSize})
		}
		if f.NamePattern != "" {
			p.Add(FilterByNamePattern{Pattern: f.NamePattern})
		}
	}

	if s := config.Sort; s != nil {
		field, err := s.Field.toField()
		if err != nil {
			return nil, err
		}
		order, err := s.Order.toOrder()
		if err != nil {
			return nil, err
		}
		p.Add(SortBy{Field: field, Order: order, DirectoriesFirst: s.DirectoriesFirst})
	}

	if g := config.Group; g != nil {
		field, err := g.By.toGroupField()
		if err != nil {
			return nil, err
		}
		if field != GroupNone {
			p.Add(GroupBy{Field: field})
		}
	}

	return p, nil
}
