// Package store is the single seam through which all reads and writes to
// the relational store pass. Services consume these types through narrow
// interfaces they declare themselves.
package store

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

// DateRange is an optional inclusive [Start, End] bound pair. Nil ends are
// open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// applyPredicate translates a typed predicate into WHERE clauses. Field
// names come from the per-entity enumerated specs, never from the request.
// Columns are quoted: trips filter on "from", a reserved word.
func applyPredicate(db *gorm.DB, p query.Predicate) *gorm.DB {
	if s := p.Search; s != nil {
		clauses := make([]string, 0, len(s.Fields))
		args := make([]any, 0, len(s.Fields))
		for _, f := range s.Fields {
			clauses = append(clauses, fmt.Sprintf("%q ILIKE ?", f))
			args = append(args, "%"+s.Term+"%")
		}
		db = db.Where(strings.Join(clauses, " OR "), args...)
	}

	for _, c := range p.And {
		db = db.Where(fmt.Sprintf("%q = ?", c.Field), c.Value)
	}

	return db
}

var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// orderClause guards the interpolated ORDER BY: sortBy arrives from the
// request, so anything that is not a plain lower-case identifier falls
// back to the default sort.
func orderClause(pages pagination.Pages) string {
	sortBy := pages.SortBy
	if !identPattern.MatchString(sortBy) {
		sortBy = pagination.DefaultSortBy
	}
	dir := "DESC"
	if pages.SortOrder == "asc" {
		dir = "ASC"
	}
	return fmt.Sprintf("%q %s", sortBy, dir)
}

// applyRange adds inclusive bounds on col for whichever ends are set.
func applyRange(db *gorm.DB, col string, rng DateRange) *gorm.DB {
	if rng.Start != nil {
		db = db.Where(fmt.Sprintf("%s >= ?", col), *rng.Start)
	}
	if rng.End != nil {
		db = db.Where(fmt.Sprintf("%s <= ?", col), *rng.End)
	}
	return db
}
