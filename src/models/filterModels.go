package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// TagLogic selects how the facet matches are combined.
type TagLogic string

const (
	TagLogicAny TagLogic = "OR"
	TagLogicAll TagLogic = "AND"
)

type SortKey string

const (
	SortRelevance   SortKey = "relevance"
	SortTitleAsc    SortKey = "title-asc"
	SortTitleDesc   SortKey = "title-desc"
	SortPeriodAsc   SortKey = "period-asc"
	SortPeriodDesc  SortKey = "period-desc"
	SortCultureAsc  SortKey = "culture-asc"
	SortCultureDesc SortKey = "culture-desc"
)

// FilterSet holds the structured facet selection for a catalogue search.
// An empty facet slice or period bound leaves that dimension unconstrained.
// It doubles as the JSON column type for persisted searches.
type FilterSet struct {
	Cultures    []string `json:"cultures"`
	Materials   []string `json:"materials"`
	Conditions  []string `json:"conditions"`
	PeriodStart string   `json:"periodStart"`
	PeriodEnd   string   `json:"periodEnd"`
	TagLogic    TagLogic `json:"tagLogic"`
}

// IsEmpty reports whether no facet or period bound is active.
func (f FilterSet) IsEmpty() bool {
	return len(f.Cultures) == 0 && len(f.Materials) == 0 && len(f.Conditions) == 0 &&
		f.PeriodStart == "" && f.PeriodEnd == ""
}

func (f FilterSet) Value() (driver.Value, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (f *FilterSet) Scan(value interface{}) error {
	if value == nil {
		*f = FilterSet{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return errors.New("unsupported type for FilterSet")
	}
}
