// Package query builds typed filter predicates from request parameters.
// Every entity declares an explicit list of filterable fields, so no
// request key is ever used as a column name unchecked.
package query

// SearchParam is the reserved query parameter for free-text search.
const SearchParam = "searchTerm"

// Kind says how a declared field is compared.
type Kind int

const (
	// KindEquals matches the stored value exactly.
	KindEquals Kind = iota
	// KindEqualsBool matches exactly after coercing "true"/"false".
	KindEqualsBool
)

// Field is one declared filterable column.
type Field struct {
	Name string
	Kind Kind
}

// Spec enumerates what an entity can be filtered and searched on.
type Spec struct {
	Fields     []Field
	Searchable []string
}

// Condition is a single exact-match clause.
type Condition struct {
	Field string
	Value any
}

// Search ORs a case-insensitive substring match across Fields.
type Search struct {
	Term   string
	Fields []string
}

// Predicate is an AND of all conditions plus an optional search clause.
// The zero value matches everything.
type Predicate struct {
	And    []Condition
	Search *Search
}

func (p Predicate) IsZero() bool {
	return len(p.And) == 0 && p.Search == nil
}

// Build partitions params into the search clause and exact-match
// conditions per spec. Absent and empty-string values are excluded, not
// matched literally. Undeclared keys are ignored. params is not mutated.
func Build(params map[string]string, spec Spec) Predicate {
	var p Predicate

	if term := params[SearchParam]; term != "" && len(spec.Searchable) > 0 {
		p.Search = &Search{Term: term, Fields: spec.Searchable}
	}

	for _, f := range spec.Fields {
		raw, ok := params[f.Name]
		if !ok || raw == "" {
			continue
		}

		switch f.Kind {
		case KindEqualsBool:
			if raw == "true" {
				p.And = append(p.And, Condition{Field: f.Name, Value: true})
			} else if raw == "false" {
				p.And = append(p.And, Condition{Field: f.Name, Value: false})
			}
		default:
			p.And = append(p.And, Condition{Field: f.Name, Value: raw})
		}
	}

	return p
}
