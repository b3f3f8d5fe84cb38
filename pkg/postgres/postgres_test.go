package postgres

import (
	"strings"
	"testing"

	"leafscan/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(&config.DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "leafscan", SSLMode: "disable",
	})

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=leafscan sslmode=disable", dsn)
}

func TestSchemaIsIdempotent(t *testing.T) {
	for _, table := range []string{"users", "chat_messages", "knowledge_entries", "posts", "comments"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
	assert.NotContains(t, strings.ToUpper(schema), "DROP ")
}
