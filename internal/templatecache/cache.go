// Package templatecache memoizes parser.Parse behind a SQLite-backed
// cache keyed by the template's content hash. It is gateway-side
// infrastructure around the parser, not part of the grammar itself: a
// cache miss falls straight through to parser.Parse and a hit never
// re-parses, but the parsed outcome (success or failure) is identical
// either way.
package templatecache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"github.com/workerbridge/exprlang/internal/parser"
	"github.com/workerbridge/exprlang/internal/prettyprinter"
)

// Result is the outcome of one Lookup: either a tree dump of the parsed
// expression, or the message of the parse error it cached. CorrelationID
// lets a gateway operator tie one lookup to its surrounding request logs;
// it has no bearing on the lookup's outcome.
type Result struct {
	CorrelationID uuid.UUID
	TreeDump      string
	ParseErr      string
	Hit           bool
}

// Cache wraps a SQLite handle holding one row per distinct template seen.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite-backed cache at path. Use
// ":memory:" for a process-local, non-persistent cache.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("templatecache: open %s: %w", path, err)
	}
	const schema = `
CREATE TABLE IF NOT EXISTS template_cache (
	hash      TEXT PRIMARY KEY,
	source    TEXT NOT NULL,
	tree_dump TEXT NOT NULL,
	parse_err TEXT NOT NULL
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("templatecache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying SQLite handle.
func (c *Cache) Close() error { return c.db.Close() }

// Lookup returns the cached parse outcome for source, parsing and storing
// it on a miss. The returned error is non-nil only for cache I/O failures;
// a parse failure is reported through Result.ParseErr, never through the
// error return, since a cache must be able to remember a failing template
// just as reliably as a succeeding one.
func (c *Cache) Lookup(ctx context.Context, source string) (Result, error) {
	hash := hashOf(source)
	id := uuid.New()

	row := c.db.QueryRowContext(ctx,
		`SELECT tree_dump, parse_err FROM template_cache WHERE hash = ?`, hash)
	var dump, parseErr string
	switch err := row.Scan(&dump, &parseErr); err {
	case nil:
		return Result{CorrelationID: id, TreeDump: dump, ParseErr: parseErr, Hit: true}, nil
	case sql.ErrNoRows:
		// fall through to parse-and-store below
	default:
		return Result{}, fmt.Errorf("templatecache: lookup %s: %w", hash, err)
	}

	expr, parseErrVal := parser.Parse(source)
	if parseErrVal != nil {
		parseErr = parseErrVal.Error()
	} else {
		dump = prettyprinter.Print(expr)
	}

	_, err := c.db.ExecContext(ctx,
		`INSERT INTO template_cache (hash, source, tree_dump, parse_err) VALUES (?, ?, ?, ?)`,
		hash, source, dump, parseErr)
	if err != nil {
		return Result{}, fmt.Errorf("templatecache: store %s: %w", hash, err)
	}

	return Result{CorrelationID: id, TreeDump: dump, ParseErr: parseErr, Hit: false}, nil
}

func hashOf(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
