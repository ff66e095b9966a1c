package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineConfigJSONRoundTrip(t *testing.T) {
	min := uint64(1024)
	config := PipelineConfig{
		Sort: &SortConfig{Field: SortFieldName, Order: OrderWireAscending, DirectoriesFirst: true},
		Filter: &FilterConfig{
			ShowHidden:        false,
			IncludeExtensions: []string{".go"},
			MinSize:           &min,
		},
		Group: &GroupConfig{By: GroupByExtension},
	}

	raw, err := json.Marshal(config)
	require.NoError(t, err)

	var decoded PipelineConfig
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, config, decoded)
}

func TestPipelineConfigOmitsAbsentSections(t *testing.T) {
	raw, err := json.Marshal(PipelineConfig{})
	require.NoError(t, err)

	assert.JSONEq(t, `{}`, string(raw))
}

func TestSortFieldWireRejectsUnknown(t *testing.T) {
	_, err := SortFieldWire("bogus").toField()
	assert.Error(t, err)
}

func TestGroupByWireDefaultsEmptyToNone(t *testing.T) {
	field, err := GroupByWire("").toGroupField()
	require.NoError(t, err)
	assert.Equal(t, GroupNone, field)
}
