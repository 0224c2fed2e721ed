// Package query turns optional request parameters into a storage-agnostic
// filter description. Repositories translate a FilterSpec into their own
// query language.
package query

import (
	"strings"
)

type ConditionKind int

const (
	// Exact matches one column against one value.
	Exact ConditionKind = iota
	// Substring matches when any listed column contains the term,
	// case-insensitively.
	Substring
	// RelatedSubstring is Substring over the record's own columns plus
	// columns of a joined record.
	RelatedSubstring
)

type Relation struct {
	Table      string
	LocalKey   string
	ForeignKey string
	Fields     []string
}

type Condition struct {
	Kind    ConditionKind
	Field   string
	Value   any
	Fields  []string
	Related *Relation
	Term    string
}

type FilterSpec struct {
	Conditions []Condition
}

func (f FilterSpec) Empty() bool {
	return len(f.Conditions) == 0
}

// Params is the read side of url.Values / gin query maps.
type Params interface {
	Get(key string) string
}

type ValueKind int

const (
	String ValueKind = iota
	// Lower normalizes the value to lower case before matching.
	Lower
	// Bool coerces "true"/"false"; any other value is ignored.
	Bool
)

// Rule binds one request parameter to one condition.
type Rule struct {
	Param   string
	Kind    ConditionKind
	Field   string
	Value   ValueKind
	Fields  []string
	Related *Relation
}

func ExactRule(param, field string, vk ValueKind) Rule {
	return Rule{Param: param, Kind: Exact, Field: field, Value: vk}
}

func SubstringRule(param string, fields ...string) Rule {
	return Rule{Param: param, Kind: Substring, Fields: fields}
}

func RelatedRule(param string, fields []string, rel Relation) Rule {
	return Rule{Param: param, Kind: RelatedSubstring, Fields: fields, Related: &rel}
}

// Build is pure: the same params and rules always produce the same spec.
// Absent or blank parameters contribute nothing.
func Build(params Params, rules []Rule) FilterSpec {
	var spec FilterSpec
	for _, r := range rules {
		raw := strings.TrimSpace(params.Get(r.Param))
		if raw == "" {
			continue
		}

		switch r.Kind {
		case Exact:
			v, ok := coerce(raw, r.Value)
			if !ok {
				continue
			}
			spec.Conditions = append(spec.Conditions, Condition{
				Kind:  Exact,
				Field: r.Field,
				Value: v,
			})
		case Substring, RelatedSubstring:
			spec.Conditions = append(spec.Conditions, Condition{
				Kind:    r.Kind,
				Fields:  r.Fields,
				Related: r.Related,
				Term:    strings.ToLower(raw),
			})
		}
	}
	return spec
}

func coerce(raw string, vk ValueKind) (any, bool) {
	switch vk {
	case Bool:
		switch strings.ToLower(raw) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	case Lower:
		return strings.ToLower(raw), true
	default:
		return raw, true
	}
}

// Map adapts a plain map to Params.
type Map map[string]string

func (m Map) Get(key string) string { return m[key] }
