package repository

import (
	"fmt"
	"strings"

	"taskly-be/internal/models"
)

// sortableFields maps the field names accepted in the sort query parameter
// to the columns they order by. Anything not in this allow-list is ignored,
// so a sort expression can never reach the database unchecked.
var sortableFields = map[string]string{
	"title":      "title",
	"priority":   "priority",
	"status":     "status",
	"createdAt":  "created_at",
	"created_at": "created_at",
}

// defaultOrder is applied when the request carries no usable sort fields:
// newest tasks first.
const defaultOrder = "created_at DESC"

// orderByClause translates a comma-separated sort expression into an
// ORDER BY clause. Each field may be prefixed with '-' for descending
// order; unprefixed fields sort ascending. Unknown fields are dropped.
func orderByClause(sort string) string {
	var terms []string
	for _, field := range strings.Split(sort, ",") {
		field = strings.TrimSpace(field)
		direction := "ASC"
		if strings.HasPrefix(field, "-") {
			direction = "DESC"
			field = field[1:]
		}
		column, ok := sortableFields[field]
		if !ok {
			continue
		}
		terms = append(terms, column+" "+direction)
	}

	if len(terms) == 0 {
		return defaultOrder
	}
	return strings.Join(terms, ", ")
}

// buildTaskListQuery turns an owner id and list parameters into a count
// query and a page query over the tasks table. The owner filter is always
// present; status and priority filters are AND-combined with it. Both
// queries share the same argument prefix, with limit and offset appended
// for the page query only.
func buildTaskListQuery(ownerID string, q *models.ListTasksQuery) (countQuery, pageQuery string, countArgs, pageArgs []interface{}) {
	conditions := []string{"user_id = $1"}
	args := []interface{}{ownerID}

	if q.Status != "" {
		args = append(args, q.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if q.Priority != "" {
		args = append(args, q.Priority)
		conditions = append(conditions, fmt.Sprintf("priority = $%d", len(args)))
	}

	where := strings.Join(conditions, " AND ")

	countQuery = "SELECT COUNT(*) FROM tasks WHERE " + where
	countArgs = args

	pageQuery = fmt.Sprintf(`
		SELECT id, title, description, priority, status, user_id, created_at
		FROM tasks
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, where, orderByClause(q.Sort), len(args)+1, len(args)+2)
	pageArgs = append(append([]interface{}{}, args...), q.Limit, q.Offset())

	return countQuery, pageQuery, countArgs, pageArgs
}
