package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tasmimahana/cse470/internal/query"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ApplyFilter translates a FilterSpec into WHERE/JOIN clauses on table.
// Substring matching is case-insensitive and treats the term literally.
func ApplyFilter(db *gorm.DB, table string, spec query.FilterSpec) *gorm.DB {
	for _, c := range spec.Conditions {
		switch c.Kind {
		case query.Exact:
			db = db.Where(fmt.Sprintf("%s.%s = ?", table, c.Field), c.Value)

		case query.Substring:
			db = whereAnyLike(db, qualify(table, c.Fields), c.Term)

		case query.RelatedSubstring:
			rel := c.Related
			cols := qualify(table, c.Fields)
			if rel != nil {
				db = db.Joins(fmt.Sprintf(
					"LEFT JOIN %s ON %s.%s = %s.%s",
					rel.Table, rel.Table, rel.ForeignKey, table, rel.LocalKey,
				))
				cols = append(cols, qualify(rel.Table, rel.Fields)...)
			}
			db = whereAnyLike(db, cols, c.Term)
		}
	}
	return db
}

func whereAnyLike(db *gorm.DB, cols []string, term string) *gorm.DB {
	if len(cols) == 0 {
		return db
	}

	like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, col := range cols {
		parts[i] = fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col)
		args[i] = like
	}
	return db.Where("("+strings.Join(parts, " OR ")+")", args...)
}

func qualify(table string, fields []string) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = table + "." + f
	}
	return out
}
