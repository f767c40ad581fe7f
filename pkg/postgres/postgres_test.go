package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	t.Parallel()
	cfg := DB{Host: "db", Port: 5432, Username: "postgres", Password: "postgres", NameDB: "shelf", SSLMode: "disable"}
	require.Equal(t, "postgres://postgres:postgres@db:5432/shelf?sslmode=disable", cfg.DSN())
}
