package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("appointments").
		Where(squirrel.Eq{"company_id": 1}).
		Where(squirrel.NotEq{"status": "cancelled"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, status FROM appointments WHERE company_id = $1 AND status <> $2", query)
	assert.Equal(t, []interface{}{1, "cancelled"}, args)
}

func TestUpdateUsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("appointments").
		Set("status", "confirmed").
		Where(squirrel.Eq{"id": "a1"}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE appointments SET status = $1 WHERE id = $2", query)
	assert.Len(t, args, 2)
}

func TestDelete(t *testing.T) {
	query, _, err := Delete("working_hours").Where(squirrel.Eq{"company_id": 3}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM working_hours WHERE company_id = $1", query)
}
