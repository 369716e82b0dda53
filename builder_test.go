package fstkv

import (
	"os"
	"path/filepath"
	"testing"
)

func buildMemMap(t *testing.T, items []Item) *Map {
	t.Helper()
	b, err := NewBuilder(MemoryPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.InsertAll(items); err != nil {
		t.Fatal(err)
	}
	data, err := b.Finish()
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewMap(data)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func buildMemSet(t *testing.T, keys [][]byte) *Set {
	t.Helper()
	b, err := NewSetBuilder(MemoryPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.InsertAll(keys); err != nil {
		t.Fatal(err)
	}
	data, err := b.Finish()
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSet(data)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBuilderScenario1(t *testing.T) {
	m := buildMemMap(t, []Item{
		{Key: []byte("a"), Value: 1},
		{Key: []byte("b"), Value: 2},
		{Key: []byte("c"), Value: 3},
	})
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	v, ok, err := m.Get([]byte("b"))
	if err != nil || !ok || v != 2 {
		t.Fatalf("Get(b) = %d, %v, %v", v, ok, err)
	}

	it, err := m.Items()
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()
	want := []Item{{[]byte("a"), 1}, {[]byte("b"), 2}, {[]byte("c"), 3}}
	for i := 0; it.Next(); i++ {
		if string(it.Key()) != string(want[i].Key) || it.Value() != want[i].Value {
			t.Errorf("item %d = (%q,%d), want (%q,%d)", i, it.Key(), it.Value(), want[i].Key, want[i].Value)
		}
	}

	r, err := m.Range(RangeBounds{Ge: []byte("b")})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	wantRange := []Item{{[]byte("b"), 2}, {[]byte("c"), 3}}
	for i := 0; r.Next(); i++ {
		if i >= len(wantRange) {
			t.Fatalf("range yielded extra item %q", r.Key())
		}
		if string(r.Key()) != string(wantRange[i].Key) || r.Value() != wantRange[i].Value {
			t.Errorf("range item %d = (%q,%d), want (%q,%d)", i, r.Key(), r.Value(), wantRange[i].Key, wantRange[i].Value)
		}
	}
}

func TestBuilderRejectsOutOfOrder(t *testing.T) {
	b, err := NewBuilder(MemoryPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Insert([]byte("b"), 1); err != nil {
		t.Fatal(err)
	}
	err = b.Insert([]byte("a"), 2)
	if err == nil {
		t.Fatal("expected error for out-of-order key")
	}
}

func TestBuilderRejectsDuplicate(t *testing.T) {
	b, err := NewBuilder(MemoryPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Insert([]byte("a"), 1); err != nil {
		t.Fatal(err)
	}
	if err := b.Insert([]byte("a"), 2); err == nil {
		t.Fatal("expected error for duplicate key")
	}
}

func TestBuilderFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.fst")
	b, err := NewBuilder(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.InsertAll([]Item{{[]byte("x"), 1}, {[]byte("y"), 2}}); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Finish(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}

	m, err := OpenMap(path)
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestSetBuilderScenario(t *testing.T) {
	s := buildMemSet(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")})
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	ok, err := s.Contains([]byte("b"))
	if err != nil || !ok {
		t.Fatalf("Contains(b) = %v, %v", ok, err)
	}
}
