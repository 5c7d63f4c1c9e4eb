package v1

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// likeFilter filters a text column for a substring. When the parameter is set
// to an empty string, only rows with an empty column match.
func likeFilter(query *gorm.DB, setFields []string, field, column, value string) *gorm.DB {
	if value != "" {
		return query.Where(fmt.Sprintf("%s LIKE ?", column), fmt.Sprintf("%%%s%%", value))
	}

	if slices.Contains(setFields, field) {
		return query.Where(fmt.Sprintf("%s = ''", column))
	}

	return query
}

// searchFilter matches rows where any of the columns contains the search text.
func searchFilter(db, query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}

	pattern := fmt.Sprintf("%%%s%%", search)
	condition := db.Where(fmt.Sprintf("%s LIKE ?", columns[0]), pattern)
	for _, column := range columns[1:] {
		condition = condition.Or(fmt.Sprintf("%s LIKE ?", column), pattern)
	}

	return query.Where(condition)
}

// globFilter matches a column against a glob pattern where * matches any
// sequence of characters and ? a single character.
func globFilter(query *gorm.DB, column, pattern string) *gorm.DB {
	if pattern == "" {
		return query
	}

	like := strings.NewReplacer("%", `\%`, "_", `\_`, "*", "%", "?", "_").Replace(pattern)
	return query.Where(fmt.Sprintf(`%s LIKE ? ESCAPE '\'`, column), like)
}
