package localstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetGet(t *testing.T) {
	s := Open("")
	s.Set("user-role", "doctor")
	v, ok := s.Get("user-role")
	if !ok || v != "doctor" {
		t.Errorf("expected doctor, got %q (present=%v)", v, ok)
	}
}

func TestGet_Missing(t *testing.T) {
	s := Open("")
	if _, ok := s.Get("session"); ok {
		t.Error("expected missing key")
	}
}

func TestRemove_Idempotent(t *testing.T) {
	s := Open("")
	s.Set("session", "x")
	s.Remove("session")
	s.Remove("session")
	if _, ok := s.Get("session"); ok {
		t.Error("expected key removed")
	}
}

func TestPersistAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := Open(path)
	s.Set("user-email", "doctor@demo.ru")

	reopened := Open(path)
	v, ok := reopened.Get("user-email")
	if !ok || v != "doctor@demo.ru" {
		t.Errorf("expected persisted value, got %q (present=%v)", v, ok)
	}
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := Open(path)
	if _, ok := s.Get("session"); ok {
		t.Error("expected corrupt file to read as empty")
	}
	// The store must still be writable afterwards.
	s.Set("session", "fresh")
	if v, _ := s.Get("session"); v != "fresh" {
		t.Error("expected store usable after corrupt load")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "absent", "session.json"))
	if len(s.Keys()) != 0 {
		t.Error("expected empty store for missing file")
	}
}

func TestLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	a := Open(path)
	b := Open(path)
	a.Set("user-role", "doctor")
	b.Set("user-role", "admin")

	reopened := Open(path)
	if v, _ := reopened.Get("user-role"); v != "admin" {
		t.Errorf("expected last write to win, got %q", v)
	}
}
