package pipeline

import (
	"fmt"

	"github.com/marmos91/filecore/pkg/corerr"
)

// PipelineConfig is the compact, wire-serializable description of a
// pipeline, exchanged with clients as part of the SetPipeline command and
// kept in memory alongside session state. Every section is optional; an absent
// section contributes no stage when the pipeline is built.
type PipelineConfig struct {
	Sort   *SortConfig   `json:"sort,omitempty" validate:"omitempty"`
	Filter *FilterConfig `json:"filter,omitempty" validate:"omitempty"`
	Group  *GroupConfig  `json:"group,omitempty" validate:"omitempty"`
}

// SortConfig is the wire form of SortBy.
type SortConfig struct {
	Field            SortFieldWire `json:"field" validate:"required,oneof=name size modified created extension type"`
	Order            OrderWire     `json:"order" validate:"required,oneof=ascending descending"`
	DirectoriesFirst bool          `json:"directories_first"`
}

// FilterConfig is the wire form of the filter stages. IncludeExtensions and
// ExcludeExtensions are mutually exclusive per node (a node is rejected by
// an include list or an exclude list, never reconciled); applying both is a
// caller decision, not a pipeline invariant.
type FilterConfig struct {
	ShowHidden        bool     `json:"show_hidden"`
	IncludeExtensions []string `json:"include_extensions,omitempty"`
	ExcludeExtensions []string `json:"exclude_extensions,omitempty"`
	MinSize           *uint64  `json:"min_size,omitempty"`
	MaxSize           *uint64  `json:"max_size,omitempty" validate:"omitempty,gtefield=MinSize"`
	NamePattern       string   `json:"name_pattern,omitempty"`
}

// GroupConfig is the wire form of GroupBy.
type GroupConfig struct {
	By GroupByWire `json:"by" validate:"required,oneof=none extension date size first_letter type"`
}

// SortFieldWire is the snake_case discriminant used on the wire for Field.
type SortFieldWire string

const (
	SortFieldName      SortFieldWire = "name"
	SortFieldSize      SortFieldWire = "size"
	SortFieldModified  SortFieldWire = "modified"
	SortFieldCreated   SortFieldWire = "created"
	SortFieldExtension SortFieldWire = "extension"
	SortFieldType      SortFieldWire = "type"
)

// OrderWire is the snake_case discriminant used on the wire for Order.
type OrderWire string

const (
	OrderWireAscending  OrderWire = "ascending"
	OrderWireDescending OrderWire = "descending"
)

// GroupByWire is the snake_case discriminant used on the wire for
// GroupField.
type GroupByWire string

const (
	GroupByNone        GroupByWire = "none"
	GroupByExtension   GroupByWire = "extension"
	GroupByDate        GroupByWire = "date"
	GroupBySize        GroupByWire = "size"
	GroupByFirstLetter GroupByWire = "first_letter"
	GroupByType        GroupByWire = "type"
)

func (f SortFieldWire) toField() (Field, error) {
	switch f {
	case SortFieldName:
		return FieldName, nil
	case SortFieldSize:
		return FieldSize, nil
	case SortFieldModified:
		return FieldModified, nil
	case SortFieldCreated:
		return FieldCreated, nil
	case SortFieldExtension:
		return FieldExtension, nil
	case SortFieldType:
		return FieldType, nil
	default:
		return 0, corerr.NewInvalidInputError(fmt.Sprintf("unknown sort field %q", string(f)))
	}
}

func (o OrderWire) toOrder() (Order, error) {
	switch o {
	case OrderWireAscending:
		return OrderAscending, nil
	case OrderWireDescending:
		return OrderDescending, nil
	default:
		return 0, corerr.NewInvalidInputError(fmt.Sprintf("unknown sort order %q", string(o)))
	}
}

func (g GroupByWire) toGroupField() (GroupField, error) {
	switch g {
	case GroupByNone, "":
		return GroupNone, nil
	case GroupByExtension:
		return GroupExtension, nil
	case GroupByDate:
		return GroupDate, nil
	case GroupBySize:
		return GroupSize, nil
	case GroupByFirstLetter:
		return GroupFirstLetter, nil
	case GroupByType:
		return GroupType, nil
	default:
		return 0, corerr.NewInvalidInputError(fmt.Sprintf("unknown group field %q", string(g)))
	}
}
