// Package migrations applies the embedded SQL files that AutoMigrate cannot
// express: seeds, functions and additive columns.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/nailnav/nailnav/internal/dberr"
)

//go:embed sql/*.sql
var files embed.FS

const VendorApplicationsFile = "001_vendor_applications.sql"

type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Report struct {
	Files   int
	Applied int
	Skipped int
}

type Migrator struct {
	conn Execer
	log  *zap.Logger
}

func New(conn Execer, log *zap.Logger) *Migrator {
	return &Migrator{conn: conn, log: log}
}

// Connect opens a single pgx connection for running migrations.
func Connect(ctx context.Context, url string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	return conn, nil
}

// Names lists the embedded files in execution order.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out, nil
}

func Source(name string) (string, error) {
	b, err := files.ReadFile("sql/" + name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Run applies every file in order.
func (m *Migrator) Run(ctx context.Context) (*Report, error) {
	names, err := Names()
	if err != nil {
		return nil, err
	}
	rep := &Report{}
	for _, n := range names {
		if err := m.apply(ctx, n, rep); err != nil {
			return rep, err
		}
	}
	return rep, nil
}

func (m *Migrator) RunFile(ctx context.Context, name string) (*Report, error) {
	rep := &Report{}
	return rep, m.apply(ctx, name, rep)
}

// apply runs a file statement by statement. Statements failing because the
// object already exists are skipped; any other failure stops the run.
func (m *Migrator) apply(ctx context.Context, name string, rep *Report) error {
	src, err := Source(name)
	if err != nil {
		return err
	}
	rep.Files++

	for i, stmt := range Split(src) {
		if _, err := m.conn.Exec(ctx, stmt); err != nil {
			if dberr.IsBenign(err) {
				rep.Skipped++
				m.log.Warn("statement skipped",
					zap.String("file", name),
					zap.Int("statement", i+1),
					zap.Error(err),
				)
				continue
			}
			return fmt.Errorf("%s statement %d: %w", name, i+1, err)
		}
		rep.Applied++
	}

	m.log.Info("migration applied", zap.String("file", name))
	return nil
}

// Split breaks a SQL script into statements on top-level semicolons,
// honouring quotes, dollar-quoted bodies and -- comments.
func Split(src string) []string {
	var (
		out     []string
		cur     strings.Builder
		inQuote bool
		dollar  string
	)

	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	for i := 0; i < len(src); i++ {
		ch := src[i]

		switch {
		case dollar != "":
			if strings.HasPrefix(src[i:], dollar) {
				cur.WriteString(dollar)
				i += len(dollar) - 1
				dollar = ""
				continue
			}
		case inQuote:
			if ch == '\'' {
				inQuote = false
			}
		case ch == '\'':
			inQuote = true
		case ch == '-' && strings.HasPrefix(src[i:], "--"):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				i = len(src)
			} else {
				i += end
				cur.WriteByte('\n')
			}
			continue
		case ch == '$':
			if tag := dollarTag(src[i:]); tag != "" {
				dollar = tag
				cur.WriteString(tag)
				i += len(tag) - 1
				continue
			}
		case ch == ';':
			flush()
			continue
		}
		cur.WriteByte(ch)
	}
	flush()
	return out
}

// dollarTag returns "$$" or "$name$" at the start of s.
func dollarTag(s string) string {
	for j := 1; j < len(s); j++ {
		c := s[j]
		if c == '$' {
			return s[:j+1]
		}
		if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' && j > 1) {
			return ""
		}
	}
	return ""
}
