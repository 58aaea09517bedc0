package galaxy

import "fmt"

// Op is a condition operator.
type Op string

// Supported condition operators.
const (
	OpEqual Op = "="
	OpIn    Op = "IN"
)

// Condition is a single WHERE predicate.
type Condition struct {
	field string
	op    Op
	value any
}

// Field returns the column the condition applies to.
func (c Condition) Field() string { return c.field }

// Operator returns the condition operator.
func (c Condition) Operator() Op { return c.op }

// Value returns the comparison value. For OpIn it is a slice.
func (c Condition) Value() any { return c.value }

func (c Condition) String() string {
	if c.op == OpIn {
		return fmt.Sprintf("%s IN %v", c.field, c.value)
	}
	return fmt.Sprintf("%s %s %v", c.field, c.op, c.value)
}

// Order is a sort specification.
type Order struct {
	field     string
	ascending bool
}

// Field returns the column to sort on.
func (o Order) Field() string { return o.field }

// Ascending reports the sort direction.
func (o Order) Ascending() bool { return o.ascending }

// Query collects conditions, ordering, and pagination for store lookups.
// Stores accept it as a set of Option values and translate it to their
// backend; the domain layer never sees SQL.
type Query struct {
	conditions []Condition
	orders     []Order
	limit      int
	offset     int
}

// Option applies one modification to a Query.
type Option func(Query) Query

// Build folds options into a Query.
func Build(options ...Option) Query {
	var q Query
	for _, opt := range options {
		q = opt(q)
	}
	return q
}

// Conditions returns a copy of the WHERE predicates.
func (q Query) Conditions() []Condition {
	return append([]Condition(nil), q.conditions...)
}

// Orders returns a copy of the sort specifications.
func (q Query) Orders() []Order {
	return append([]Order(nil), q.orders...)
}

// LimitValue returns the limit; zero means unlimited.
func (q Query) LimitValue() int { return q.limit }

// OffsetValue returns the offset.
func (q Query) OffsetValue() int { return q.offset }

// WithCondition adds an equality predicate on field.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpEqual, value: value})
		return q
	}
}

// WithConditionIn adds an IN predicate on field; values must be a slice.
func WithConditionIn(field string, values any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, op: OpIn, value: values})
		return q
	}
}

// WithID filters on the upstream numeric id.
func WithID(id int64) Option {
	return WithCondition("id", id)
}

// WithLimit caps the number of results.
func WithLimit(n int) Option {
	return func(q Query) Query {
		q.limit = n
		return q
	}
}

// WithOffset skips the first n results.
func WithOffset(n int) Option {
	return func(q Query) Query {
		q.offset = n
		return q
	}
}

// WithOrderAsc sorts ascending on field.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc sorts descending on field.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: false})
		return q
	}
}
