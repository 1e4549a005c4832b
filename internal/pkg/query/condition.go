package query

import "fmt"

// Placeholder renders the bind marker for the parameter at index.
type Placeholder func(index int) string

// Named renders Spanner named parameters (@p0, @p1, ...).
func Named(index int) string { return fmt.Sprintf("@p%d", index) }

// Positional renders Postgres positional parameters ($1, $2, ...).
func Positional(index int) string { return fmt.Sprintf("$%d", index+1) }

// Condition represents a WHERE clause condition.
type Condition interface {
	// SQL returns the fragment and its bound values. paramIndex is the
	// index of the first value the condition binds.
	SQL(paramIndex int, ph Placeholder) (string, []interface{})
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("vehicle_key", "1") generates "vehicle_key = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

func (c *eqCondition) SQL(paramIndex int, ph Placeholder) (string, []interface{}) {
	return fmt.Sprintf("%s = %s", c.field, ph(paramIndex)), []interface{}{c.value}
}
