package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaStatements_OrderFollowsForeignKeys(t *testing.T) {
	stmts := SchemaStatements()
	require.Len(t, stmts, 4)
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS events")
	assert.Contains(t, stmts[1], "CREATE TABLE IF NOT EXISTS sections")
	assert.Contains(t, stmts[2], "CREATE TABLE IF NOT EXISTS seats")
	assert.Contains(t, stmts[3], "CREATE TABLE IF NOT EXISTS attendees")
	assert.Contains(t, stmts[3], "UNIQUE KEY uq_attendees_ticket (ticket_number)")
}

func TestApplySchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"events", "sections", "seats", "attendees"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, ApplySchema(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplySchema_StopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS events").WillReturnError(errors.New("denied"))

	err = ApplySchema(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "apply schema")
	assert.NoError(t, mock.ExpectationsWereMet())
}
