package store

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestSQLStore(t *testing.T) *SQLSessionStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := NewSQLSessionStore(db)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return s
}

func TestSQLStore_GetMissing(t *testing.T) {
	s := newTestSQLStore(t)
	val, err := s.Get("nope")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != "" {
		t.Fatalf("expected empty snapshot for missing session, got %q", val)
	}
}

func TestSQLStore_PutGet(t *testing.T) {
	s := newTestSQLStore(t)
	if err := s.Put("sess-1", `{"status":"active"}`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	val, err := s.Get("sess-1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if val != `{"status":"active"}` {
		t.Fatalf("unexpected snapshot: %q", val)
	}
}

func TestSQLStore_Upsert(t *testing.T) {
	s := newTestSQLStore(t)
	s.Put("sess-1", "v1")
	if err := s.Put("sess-1", "v2"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	val, _ := s.Get("sess-1")
	if val != "v2" {
		t.Fatalf("expected v2, got %q", val)
	}
}

func TestSQLStore_Delete(t *testing.T) {
	s := newTestSQLStore(t)
	s.Put("sess-1", "v1")
	if err := s.Delete("sess-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	val, _ := s.Get("sess-1")
	if val != "" {
		t.Fatalf("expected empty after delete, got %q", val)
	}
}

func TestSQLStore_List(t *testing.T) {
	s := newTestSQLStore(t)
	s.Put("b", "2")
	s.Put("a", "1")
	ids, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("expected [a b], got %v", ids)
	}
}

func TestSQLStore_CustomTable(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	s, err := NewSQLSessionStore(db, SQLStoreConfig{Table: "my_sessions"})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if err := s.Put("sess-1", "v1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM my_sessions").Scan(&n); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row, got %d", n)
	}
}
