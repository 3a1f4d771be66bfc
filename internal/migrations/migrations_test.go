package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_PairedUpAndDown(t *testing.T) {
	entries, err := fs.ReadDir(MigrationFiles, ".")
	require.NoError(t, err)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}

	require.NotEmpty(t, ups)
	require.Equal(t, ups, downs)
}

func TestMigrationFiles_CreatePurchases(t *testing.T) {
	data, err := fs.ReadFile(MigrationFiles, "000001_create_purchases.up.sql")
	require.NoError(t, err)
	sql := string(data)

	require.Contains(t, sql, "CREATE TABLE IF NOT EXISTS purchases")
	require.Contains(t, sql, "PRIMARY KEY (user_id, id)")
}
