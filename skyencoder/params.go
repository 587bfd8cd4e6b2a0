package skyencoder

import (
	"maps"
	"reflect"
)

const defaultSortField = "events.created"

// ListJobsParams filters and sorts the job list. A nil Sort lists the most
// recent jobs first.
type ListJobsParams struct {
	Filters map[string]any
	Sort    map[string]int
	Extra   map[string]any
}

func (p ListJobsParams) Params() map[string]any {
	params := cloneExtra(p.Extra)

	filters := p.Filters
	if filters == nil {
		filters = map[string]any{}
	}

	sort := p.Sort
	if sort == nil {
		sort = map[string]int{defaultSortField: -1}
	}

	params["filters"] = filters
	params["sort"] = sort

	return params
}

// Output describes one output task of a job, e.g. {"format": "mp4"}.
type Output map[string]any

type CreateJobParams struct {
	File    string         `json:"file"    validate:"required"`
	Outputs []Output       `json:"outputs" validate:"required,min=1"`
	Extra   map[string]any `json:"-"       validate:"-"`
}

func (p CreateJobParams) Params() map[string]any {
	params := cloneExtra(p.Extra)
	params["file"] = p.File
	params["outputs"] = p.Outputs

	return params
}

// Valid reports whether every key is present in set with a non-empty value.
// Nil, empty strings and empty slices or maps count as missing.
func Valid(keys []string, set map[string]any) bool {
	if len(set) == 0 || len(keys) == 0 {
		return false
	}

	for _, key := range keys {
		value, ok := set[key]
		if !ok || isEmptyValue(value) {
			return false
		}
	}

	return true
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

func cloneExtra(extra map[string]any) map[string]any {
	if extra == nil {
		return make(map[string]any)
	}

	return maps.Clone(extra)
}
