package migrate

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repoRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", ".."))
}

func TestSplitStatements(t *testing.T) {
	got := SplitStatements(`
-- leading comment
CREATE TABLE a (
  id INT64 NOT NULL,
) PRIMARY KEY (id);

-- between
CREATE INDEX a_by_id ON a(id);
`)

	assert.Equal(t, []string{
		"CREATE TABLE a (\nid INT64 NOT NULL,\n) PRIMARY KEY (id)",
		"CREATE INDEX a_by_id ON a(id)",
	}, got)
}

func TestSplitStatements_Empty(t *testing.T) {
	assert.Empty(t, SplitStatements("-- only a comment\n\n"))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_b.up.sql", "001_a.up.sql", "001_a.down.sql", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--"), 0o600))
	}

	up, err := Files(dir, "*.up.sql")
	require.NoError(t, err)
	require.Len(t, up, 2)
	assert.Equal(t, "001_a.up.sql", filepath.Base(up[0]))
	assert.Equal(t, "002_b.up.sql", filepath.Base(up[1]))

	all, err := Files(dir, "*.sql")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSpannerMigrationsParse(t *testing.T) {
	files, err := Files(filepath.Join(repoRoot(), "migrations", "spanner"), "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	stmts := SplitStatements(string(content))
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "CREATE TABLE vehicles")
	assert.Contains(t, stmts[2], "CREATE TABLE vehicle_details")
}

func TestSpannerTarget_DatabasePath(t *testing.T) {
	target := SpannerTarget{Project: "p", Instance: "i", Database: "d"}
	assert.Equal(t, "projects/p/instances/i/databases/d", target.DatabasePath())
}
