package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// applySearch ORs a LIKE clause over the given columns when term is set.
// The term is escaped so user input cannot smuggle wildcards.
func applySearch(query *gorm.DB, term string, columns ...string) *gorm.DB {
	if term == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + escapeLikePattern(term) + "%"
	clauses := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		clauses[i] = col + " LIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}

// applyPaging adds limit/offset and ordering. defaultOrder is used when the
// filter does not request one.
func applyPaging(query *gorm.DB, filter shared.Filter, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	switch {
	case filter.OrderBy != "":
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	case defaultOrder != "":
		query = query.Order(defaultOrder)
	}
	return query
}

func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
