package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskly-be/internal/models"
)

func TestOrderByClause(t *testing.T) {
	tests := []struct {
		name string
		sort string
		want string
	}{
		{"empty defaults to newest first", "", "created_at DESC"},
		{"single ascending field", "priority", "priority ASC"},
		{"single descending field", "-createdAt", "created_at DESC"},
		{"multiple fields", "status,-priority", "status ASC, priority DESC"},
		{"snake case accepted", "-created_at", "created_at DESC"},
		{"whitespace tolerated", " title , -status ", "title ASC, status DESC"},
		{"unknown field ignored", "hackme", "created_at DESC"},
		{"unknown field dropped from list", "title,hackme", "title ASC"},
		{"injection attempt ignored", "title; DROP TABLE tasks", "created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderByClause(tt.sort))
		})
	}
}

func TestBuildTaskListQuery(t *testing.T) {
	ownerID := "7e49a5cb-6fdc-4b0a-9706-9b9f8c8f9d10"

	t.Run("owner filter is always present", func(t *testing.T) {
		q := &models.ListTasksQuery{Page: 1, Limit: 10}
		countQuery, pageQuery, countArgs, pageArgs := buildTaskListQuery(ownerID, q)

		assert.Contains(t, countQuery, "user_id = $1")
		assert.Contains(t, pageQuery, "user_id = $1")
		assert.Equal(t, []interface{}{ownerID}, countArgs)
		assert.Equal(t, []interface{}{ownerID, 10, 0}, pageArgs)
	})

	t.Run("status and priority are AND-combined with owner", func(t *testing.T) {
		q := &models.ListTasksQuery{Status: "Pending", Priority: "High", Page: 1, Limit: 10}
		countQuery, pageQuery, countArgs, pageArgs := buildTaskListQuery(ownerID, q)

		assert.Contains(t, countQuery, "user_id = $1 AND status = $2 AND priority = $3")
		assert.Contains(t, pageQuery, "user_id = $1 AND status = $2 AND priority = $3")
		assert.Equal(t, []interface{}{ownerID, "Pending", "High"}, countArgs)
		assert.Equal(t, []interface{}{ownerID, "Pending", "High", 10, 0}, pageArgs)
	})

	t.Run("pagination lands in limit and offset placeholders", func(t *testing.T) {
		q := &models.ListTasksQuery{Status: "Done", Page: 3, Limit: 25}
		_, pageQuery, _, pageArgs := buildTaskListQuery(ownerID, q)

		assert.Contains(t, pageQuery, "LIMIT $3 OFFSET $4")
		require.Len(t, pageArgs, 4)
		assert.Equal(t, 25, pageArgs[2])
		assert.Equal(t, 50, pageArgs[3]) // (page-1)*limit
	})

	t.Run("sort expression lands in ORDER BY", func(t *testing.T) {
		q := &models.ListTasksQuery{Sort: "-priority,title", Page: 1, Limit: 10}
		_, pageQuery, _, _ := buildTaskListQuery(ownerID, q)

		assert.Contains(t, pageQuery, "ORDER BY priority DESC, title ASC")
	})
}
