package migrations

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSplitHonoursQuotesAndDollarBodies(t *testing.T) {
	src := `
-- comment; with a semicolon
INSERT INTO t VALUES ('a;b');
CREATE FUNCTION f() RETURNS void AS $$
BEGIN
    UPDATE x SET y = 1;
END;
$$ LANGUAGE plpgsql;
SELECT 1`

	got := Split(src)
	require.Len(t, got, 3)
	assert.Equal(t, "INSERT INTO t VALUES ('a;b')", got[0])
	assert.True(t, strings.HasPrefix(got[1], "CREATE FUNCTION"))
	assert.Contains(t, got[1], "UPDATE x SET y = 1;")
	assert.True(t, strings.HasSuffix(got[1], "LANGUAGE plpgsql"))
	assert.Equal(t, "SELECT 1", got[2])
}

func TestDollarTag(t *testing.T) {
	assert.Equal(t, "$$", dollarTag("$$ body"))
	assert.Equal(t, "$fn$", dollarTag("$fn$ body"))
	assert.Equal(t, "", dollarTag("$1, $2"))
}

func TestNamesSorted(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, VendorApplicationsFile, names[0])
	assert.IsNonDecreasing(t, names)
}

type fakeConn struct {
	stmts []string
	fail  func(string) error
}

func (f *fakeConn) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	f.stmts = append(f.stmts, sql)
	if f.fail != nil {
		if err := f.fail(sql); err != nil {
			return pgconn.CommandTag{}, err
		}
	}
	return pgconn.CommandTag{}, nil
}

func TestRunSkipsExistingObjects(t *testing.T) {
	conn := &fakeConn{fail: func(sql string) error {
		if strings.HasPrefix(sql, "ALTER TABLE vendor_applications ADD COLUMN role") {
			return &pgconn.PgError{Code: "42701", Message: `column "role" of relation "vendor_applications" already exists`}
		}
		return nil
	}}

	rep, err := New(conn, zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)
	assert.Equal(t, len(conn.stmts)-1, rep.Applied)
}

func TestRunStopsOnRealError(t *testing.T) {
	conn := &fakeConn{fail: func(sql string) error {
		if strings.HasPrefix(sql, "INSERT INTO countries") {
			return errors.New("permission denied for table countries")
		}
		return nil
	}}

	_, err := New(conn, zap.NewNop()).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "002_seed_locations.sql")
}
