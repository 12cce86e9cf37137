package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorLess      = "less"
	FilterOperatorGreater   = "greater"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// likeEscape is declared on every LIKE so both drivers agree on the escape character.
const likeEscape = "!"

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLess:      "<",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreater:   ">",
	FilterOperatorGreaterEq: ">=",
}

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// Filter renders one named-parameter predicate. ArgName defaults to Field and must be
// unique within the enclosing group.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq less greater is_null"`
	Table    string
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) arg() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause returns the predicate and its bind values. Unknown operators render nothing.
func (f Filter) GetWhereClause() (string, map[string]any) {
	column, name := f.column(), f.arg()

	if symbol, ok := comparisons[f.Operator]; ok {
		return fmt.Sprintf("%s %s :%s", column, symbol, name), map[string]any{name: f.Value}
	}

	switch f.Operator {
	case FilterOperatorLike:
		pattern := "%" + likeReplacer.Replace(fmt.Sprint(f.Value)) + "%"

		// uuid and numeric columns need an explicit cast on postgres
		return fmt.Sprintf("LOWER(CAST(%s AS TEXT)) LIKE LOWER(:%s) ESCAPE '%s'", column, name, likeEscape),
			map[string]any{name: pattern}
	case FilterOperatorIn:
		return inClause(column, name, f.Value)
	case FilterIsNull:
		return column + " IS NULL", map[string]any{}
	default:
		return "", map[string]any{}
	}
}

// inClause expands a slice into one bind value per element. A scalar binds as a single element.
func inClause(column, name string, value any) (string, map[string]any) {
	args := map[string]any{}

	val := reflect.ValueOf(value)
	if !val.IsValid() || (val.Kind() != reflect.Slice && val.Kind() != reflect.Array) {
		args[name+"_0"] = value

		return fmt.Sprintf("%s IN (:%s_0)", column, name), args
	}

	if val.Len() == 0 {
		// an empty set matches nothing
		return "1 = 0", args
	}

	placeholders := make([]string, 0, val.Len())

	for idx := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, idx)
		args[key] = val.Index(idx).Interface()
		placeholders = append(placeholders, ":"+key)
	}

	return fmt.Sprintf("%s IN (%s)", column, strings.Join(placeholders, ", ")), args
}

// FilterGroup joins Filter and nested FilterGroup values with Operator (AND when empty).
type FilterGroup struct {
	Filters  []any
	Operator string
}

// Add appends filters to the group.
func (f *FilterGroup) Add(filters ...any) {
	f.Filters = append(f.Filters, filters...)
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(f.Filters))

	collect := func(where string, arg map[string]any) {
		if where == "" {
			return
		}

		parts = append(parts, where)
		maps.Copy(args, arg)
	}

	for _, item := range f.Filters {
		switch typed := item.(type) {
		case Filter:
			collect(typed.GetWhereClause())
		case FilterGroup:
			collect(typed.GetWhereClause())
		}
	}

	if len(parts) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(parts, " "+operator+" ") + ")", args
}

// Overlaps matches rows whose [startField, endField) interval intersects [from, to).
// Touching intervals do not overlap.
func Overlaps(table, startField, endField string, from, to any) FilterGroup {
	return FilterGroup{
		Operator: FilterGroupOperatorAnd,
		Filters: []any{
			Filter{ArgName: "range_to", Field: startField, Value: to, Operator: FilterOperatorLess, Table: table},
			Filter{ArgName: "range_from", Field: endField, Value: from, Operator: FilterOperatorGreater, Table: table},
		},
	}
}
