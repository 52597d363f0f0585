package pgsql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListBudgetsQuery_NewestFirst(t *testing.T) {
	orderBy := listBudgetsQuery[strings.LastIndex(listBudgetsQuery, "ORDER BY"):]

	assert.Equal(t, "ORDER BY b.created_at DESC, b.id DESC", orderBy)
	assert.Contains(t, listBudgetsQuery, "WHERE b.user_id = $1")
}
