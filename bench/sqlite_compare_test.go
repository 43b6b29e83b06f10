package bench_test

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	diskcache "github.com/luhtfiimanal/go-diskcache"
	_ "modernc.org/sqlite"
)

type testRow struct {
	ID int64
	A  string
	B  int64
	C  string
}

const asciiLen = 16

func randomASCII(r *rand.Rand, n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return string(b)
}

func randomRow(r *rand.Rand, id int64) testRow {
	return testRow{ID: id, A: randomASCII(r, asciiLen), B: r.Int63(), C: randomASCII(r, asciiLen)}
}

func newObjectStore(tb testing.TB) *diskcache.NamespaceStore {
	tb.Helper()
	opts := diskcache.DefaultOptions()
	opts.BaseDir = tb.TempDir()
	opts.SyncWrites = false
	s := diskcache.NewNamespaceStore(diskcache.Object, opts)
	tb.Cleanup(func() { _ = s.Close() })
	return s
}

func openSQLite(tb testing.TB) *sql.DB {
	tb.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(`CREATE TABLE tbl (k TEXT PRIMARY KEY, id INTEGER, a TEXT, b INTEGER, c TEXT);`); err != nil {
		tb.Fatalf("create table: %v", err)
	}
	return db
}

// TestCompareWithSQLite stores rows in both the object namespace and SQLite
// and validates that reading back yields the same rows.
func TestCompareWithSQLite(t *testing.T) {
	const total = 300
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store := newObjectStore(t)
	db := openSQLite(t)

	stmt, err := db.PrepareContext(ctx, `INSERT INTO tbl (k, id, a, b, c) VALUES (?, ?, ?, ?, ?);`)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	defer stmt.Close()

	for i := int64(1); i <= total; i++ {
		row := randomRow(r, i)
		key := fmt.Sprintf("row:%d", i)
		store.Store(key, diskcache.ObjectOf(row), nil)
		if _, err := stmt.ExecContext(ctx, key, row.ID, row.A, row.B, row.C); err != nil {
			t.Fatalf("sqlite insert %d: %v", i, err)
		}
	}
	if err := store.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if st := store.Stats(); st.Completed != total {
		t.Fatalf("expected %d completed writes, got %+v", total, st)
	}

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("row:%d", r.Intn(total)+1)

		data, err := os.ReadFile(store.Path(key))
		if err != nil {
			t.Fatalf("read %s: %v", key, err)
		}
		var fromCache testRow
		if err := store.DecodeObject(data, key, &fromCache); err != nil {
			t.Fatalf("decode %s: %v", key, err)
		}

		var fromSQL testRow
		row := db.QueryRowContext(ctx, `SELECT id, a, b, c FROM tbl WHERE k=?;`, key)
		if err := row.Scan(&fromSQL.ID, &fromSQL.A, &fromSQL.B, &fromSQL.C); err != nil {
			t.Fatalf("sqlite read %s: %v", key, err)
		}
		if fromCache != fromSQL {
			t.Fatalf("mismatch for %s: cache=%+v sqlite=%+v", key, fromCache, fromSQL)
		}
	}
}

// BenchmarkWrite compares object write throughput between the cache and sqlite.
func BenchmarkWrite(b *testing.B) {
	r := rand.New(rand.NewSource(42))

	b.Run("diskcache", func(bb *testing.B) {
		store := newObjectStore(bb)
		rows := make([]testRow, bb.N)
		for i := range rows {
			rows[i] = randomRow(r, int64(i+1))
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			store.Store(fmt.Sprintf("row:%d", i), diskcache.ObjectOf(rows[i]), nil)
		}
		if err := store.Flush(context.Background()); err != nil {
			bb.Fatalf("flush: %v", err)
		}
	})

	b.Run("sqlite", func(bb *testing.B) {
		db := openSQLite(bb)
		stmt, err := db.Prepare(`INSERT INTO tbl (k, id, a, b, c) VALUES (?, ?, ?, ?, ?);`)
		if err != nil {
			bb.Fatalf("prepare: %v", err)
		}
		defer stmt.Close()
		rows := make([]testRow, bb.N)
		for i := range rows {
			rows[i] = randomRow(r, int64(i+1))
		}
		bb.ResetTimer()
		for i := 0; i < bb.N; i++ {
			row := rows[i]
			if _, err := stmt.Exec(fmt.Sprintf("row:%d", i), row.ID, row.A, row.B, row.C); err != nil {
				bb.Fatalf("insert: %v", err)
			}
		}
	})
}

// BenchmarkVoiceWrite measures raw blob writes with and without fsync.
func BenchmarkVoiceWrite(b *testing.B) {
	clip := make([]byte, 32<<10)
	rand.New(rand.NewSource(1)).Read(clip)

	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%v", sync), func(bb *testing.B) {
			opts := diskcache.DefaultOptions()
			opts.BaseDir = bb.TempDir()
			opts.SyncWrites = sync
			store := diskcache.NewNamespaceStore(diskcache.Voice, opts)
			defer store.Close()

			bb.SetBytes(int64(len(clip)))
			bb.ResetTimer()
			for i := 0; i < bb.N; i++ {
				store.Store(fmt.Sprintf("clip:%d", i%64), diskcache.VoiceOf(clip), nil)
			}
			if err := store.Flush(context.Background()); err != nil {
				bb.Fatalf("flush: %v", err)
			}
		})
	}
}
