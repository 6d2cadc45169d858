package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownBackend indicates an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// Backend names a supported catalog store.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendSpanner  Backend = "spanner"
)

// ParseBackend accepts a backend name in any case.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case BackendSQLite, BackendPostgres, BackendSpanner:
		return b, nil
	case "postgresql", "pg":
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
	}
}

// Dialect selects placeholder syntax and SQL functions.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
	DialectSpanner
)

func (d Dialect) String() string {
	switch d {
	case DialectPostgres:
		return "postgres"
	case DialectSpanner:
		return "spanner"
	default:
		return "sqlite"
	}
}

// Dialect returns the SQL dialect spoken by the backend.
func (b Backend) Dialect() Dialect {
	switch b {
	case BackendPostgres:
		return DialectPostgres
	case BackendSpanner:
		return DialectSpanner
	default:
		return DialectSQLite
	}
}

// LowerFunc is the Unicode-aware lower-casing function name of the dialect.
// SQLite's builtin lower() only folds ASCII, so the SQLite opener registers
// casefold.
func (d Dialect) LowerFunc() string {
	switch d {
	case DialectPostgres:
		return "lower"
	case DialectSpanner:
		return "LOWER"
	default:
		return CaseFoldFunc
	}
}

// ContainsExpr returns a predicate that is true when needle occurs in haystack.
func (d Dialect) ContainsExpr(haystack, needle string) string {
	switch d {
	case DialectPostgres:
		return fmt.Sprintf("strpos(%s, %s) > 0", haystack, needle)
	case DialectSpanner:
		return fmt.Sprintf("STRPOS(%s, %s) > 0", haystack, needle)
	default:
		return fmt.Sprintf("instr(%s, %s) > 0", haystack, needle)
	}
}

// Binder collects query arguments and hands out placeholders in the dialect's
// syntax. Positional dialects fill Args, Spanner fills Params.
type Binder struct {
	dialect Dialect
	args    []any
	params  map[string]any
}

func NewBinder(d Dialect) *Binder {
	b := &Binder{dialect: d}
	if d == DialectSpanner {
		b.params = map[string]any{}
	}
	return b
}

// Bind records v and returns its placeholder. name is only used by Spanner.
func (b *Binder) Bind(name string, v any) string {
	switch b.dialect {
	case DialectSpanner:
		b.params[name] = v
		return "@" + name
	case DialectPostgres:
		b.args = append(b.args, v)
		return "$" + strconv.Itoa(len(b.args))
	default:
		b.args = append(b.args, v)
		return "?"
	}
}

func (b *Binder) Args() []any {
	return b.args
}

func (b *Binder) Params() map[string]any {
	return b.params
}
