package main

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatementsDropsCommentLines(t *testing.T) {
	sql := "-- header; with a semicolon\nCREATE TABLE t (x INTEGER);\n-- trailing note\n"
	stmts := splitStatements(sql)
	require.Len(t, stmts, 1)
	assert.Equal(t, "CREATE TABLE t (x INTEGER)", stmts[0])
}

func TestSplitStatementsOnInitMigration(t *testing.T) {
	content, err := os.ReadFile("../../migrations/001_init.sql")
	require.NoError(t, err)

	stmts := splitStatements(string(content))
	// 7 tables + 12 indexes
	require.Len(t, stmts, 19)
	assert.True(t, strings.HasPrefix(stmts[0], "CREATE TABLE IF NOT EXISTS users"), stmts[0])

	for _, stmt := range stmts {
		valid := strings.HasPrefix(stmt, "CREATE TABLE IF NOT EXISTS") ||
			strings.HasPrefix(stmt, "CREATE INDEX IF NOT EXISTS")
		assert.Truef(t, valid, "unexpected statement: %.60s", stmt)
	}
}
