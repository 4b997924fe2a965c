package postgres_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgproto3/v2"
	"github.com/jackc/pgx/v4"
)

// fakeDB serves the statements the store issues from in-memory tables.
// Tables exist only once a CREATE TABLE ran, so a missing migration or a
// wrong table name fails like it would on a server.
type fakeDB struct {
	mu         sync.Mutex
	tables     map[string]map[string][]byte
	statements []string
	args       [][]any
}

func newFakeDB() *fakeDB {
	return &fakeDB{tables: make(map[string]map[string][]byte)}
}

func (db *fakeDB) record(sql string, args []any) []string {
	db.statements = append(db.statements, sql)
	db.args = append(db.args, args)
	return strings.Fields(sql)
}

func (db *fakeDB) table(name string) (map[string][]byte, error) {
	rows, ok := db.tables[name]
	if !ok {
		return nil, fmt.Errorf("relation %q does not exist", name)
	}
	return rows, nil
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	words := db.record(sql, args)
	switch {
	case len(words) > 5 && words[0] == "CREATE":
		// CREATE TABLE IF NOT EXISTS <name> (...)
		name := words[5]
		if _, ok := db.tables[name]; !ok {
			db.tables[name] = make(map[string][]byte)
		}
		return pgconn.CommandTag("CREATE TABLE"), nil
	case len(words) > 2 && words[0] == "ALTER":
		if _, err := db.table(words[2]); err != nil {
			return nil, err
		}
		return pgconn.CommandTag("ALTER TABLE"), nil
	case len(words) > 2 && words[0] == "INSERT":
		rows, err := db.table(words[2])
		if err != nil {
			return nil, err
		}
		if !strings.Contains(sql, "ON CONFLICT (id) DO UPDATE") {
			if _, exists := rows[args[0].(string)]; exists {
				return nil, errors.New("duplicate key value violates unique constraint")
			}
		}
		rows[args[0].(string)] = append([]byte(nil), args[1].([]byte)...)
		return pgconn.CommandTag("INSERT 0 1"), nil
	case len(words) > 2 && words[0] == "DELETE":
		rows, err := db.table(words[2])
		if err != nil {
			return nil, err
		}
		delete(rows, args[0].(string))
		return pgconn.CommandTag("DELETE 1"), nil
	}
	return nil, fmt.Errorf("unexpected statement: %s", sql)
}

func (db *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	db.mu.Lock()
	defer db.mu.Unlock()

	words := db.record(sql, args)
	if len(words) < 4 || words[0] != "SELECT" || words[1] != "document" {
		return fakeRow{err: fmt.Errorf("unexpected query: %s", sql)}
	}
	rows, err := db.table(words[3])
	if err != nil {
		return fakeRow{err: err}
	}
	data, ok := rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: append([]byte(nil), data...)}
}

func (db *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	words := db.record(sql, args)
	if len(words) < 4 || words[0] != "SELECT" || words[1] != "id" {
		return nil, fmt.Errorf("unexpected query: %s", sql)
	}
	rows, err := db.table(words[3])
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return &fakeRows{ids: ids, pos: -1}, nil
}

func (db *fakeDB) executed(prefix string) []string {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []string
	for _, s := range db.statements {
		if strings.HasPrefix(strings.TrimSpace(s), prefix) {
			out = append(out, s)
		}
	}
	return out
}

type fakeRow struct {
	value []byte
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	out, ok := dest[0].(*[]byte)
	if !ok {
		return fmt.Errorf("cannot scan document into %T", dest[0])
	}
	*out = r.value
	return nil
}

type fakeRows struct {
	ids []string
	pos int
}

func (r *fakeRows) Close()                                         {}
func (r *fakeRows) Err() error                                     { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                  { return pgconn.CommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgproto3.FieldDescription { return nil }
func (r *fakeRows) RawValues() [][]byte                            { return [][]byte{[]byte(r.ids[r.pos])} }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.ids)
}

func (r *fakeRows) Scan(dest ...any) error {
	out, ok := dest[0].(*string)
	if !ok {
		return fmt.Errorf("cannot scan id into %T", dest[0])
	}
	*out = r.ids[r.pos]
	return nil
}

func (r *fakeRows) Values() ([]any, error) {
	return []any{r.ids[r.pos]}, nil
}
