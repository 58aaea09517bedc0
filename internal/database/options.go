package database

import (
	"fmt"

	"github.com/holocron-dev/holocron/domain/galaxy"
	"gorm.io/gorm"
)

// ApplyOptions translates a full galaxy.Query onto a GORM session:
// conditions, ordering, limit, and offset.
func ApplyOptions(db *gorm.DB, options ...galaxy.Option) *gorm.DB {
	q := galaxy.Build(options...)
	db = applyWhere(db, q)

	for _, ord := range q.Orders() {
		direction := "ASC"
		if !ord.Ascending() {
			direction = "DESC"
		}
		db = db.Order(fmt.Sprintf("%s %s", ord.Field(), direction))
	}

	if n := q.LimitValue(); n > 0 {
		db = db.Limit(n)
	}
	if n := q.OffsetValue(); n > 0 {
		db = db.Offset(n)
	}
	return db
}

// ApplyConditions translates only the WHERE conditions. COUNT queries use
// this so limit and offset never distort the result.
func ApplyConditions(db *gorm.DB, options ...galaxy.Option) *gorm.DB {
	return applyWhere(db, galaxy.Build(options...))
}

func applyWhere(db *gorm.DB, q galaxy.Query) *gorm.DB {
	for _, cond := range q.Conditions() {
		db = db.Where(fmt.Sprintf("%s %s ?", cond.Field(), cond.Operator()), cond.Value())
	}
	return db
}
