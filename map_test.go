package fstkv

import (
	"testing"

	"github.com/coregx/fstkv/automaton"
)

func scenario2Map(t *testing.T) *Map {
	return buildMemMap(t, []Item{
		{[]byte("abc"), 10},
		{[]byte("abd"), 20},
		{[]byte("abz"), 30},
		{[]byte("bbb"), 40},
	})
}

func collectItems(t *testing.T, it *ItemIterator) []Item {
	t.Helper()
	var out []Item
	for it.Next() {
		out = append(out, Item{Key: append([]byte(nil), it.Key()...), Value: it.Value()})
	}
	if err := it.Err(); err != nil {
		t.Fatal(err)
	}
	return out
}

func assertItems(t *testing.T, got []Item, want []Item) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d: %v vs %v", len(got), len(want), got, want)
	}
	for i := range got {
		if string(got[i].Key) != string(want[i].Key) || got[i].Value != want[i].Value {
			t.Errorf("item %d = (%q,%d), want (%q,%d)", i, got[i].Key, got[i].Value, want[i].Key, want[i].Value)
		}
	}
}

func TestMapStartsWith(t *testing.T) {
	m := scenario2Map(t)
	it, err := m.StartsWith([]byte("ab"), RangeBounds{})
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()
	got := collectItems(t, it)
	assertItems(t, got, []Item{{[]byte("abc"), 10}, {[]byte("abd"), 20}, {[]byte("abz"), 30}})
}

func TestMapSubsequence(t *testing.T) {
	m := scenario2Map(t)
	it, err := m.Subsequence([]byte("bz"), RangeBounds{})
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()
	got := collectItems(t, it)
	assertItems(t, got, []Item{{[]byte("abz"), 30}})
}

func TestMapSearchComplement(t *testing.T) {
	m := buildMemMap(t, []Item{
		{[]byte("bar"), 1},
		{[]byte("foo"), 2},
		{[]byte("zzz"), 3},
	})
	aut := automaton.Complement(automaton.Str([]byte("foo")))
	it, err := m.Search(aut, RangeBounds{})
	if err != nil {
		t.Fatal(err)
	}
	defer it.Close()
	got := collectItems(t, it)
	assertItems(t, got, []Item{{[]byte("bar"), 1}, {[]byte("zzz"), 3}})
}

func TestMapRangeBoundsCombinations(t *testing.T) {
	m := buildMemMap(t, []Item{
		{[]byte("a"), 1}, {[]byte("b"), 2}, {[]byte("c"), 3}, {[]byte("d"), 4},
	})

	cases := []struct {
		name   string
		bounds RangeBounds
		want   []string
	}{
		{"ge", RangeBounds{Ge: []byte("b")}, []string{"b", "c", "d"}},
		{"gt", RangeBounds{Gt: []byte("b")}, []string{"c", "d"}},
		{"le", RangeBounds{Le: []byte("c")}, []string{"a", "b", "c"}},
		{"lt", RangeBounds{Lt: []byte("c")}, []string{"a", "b"}},
		{"ge_lt", RangeBounds{Ge: []byte("b"), Lt: []byte("d")}, []string{"b", "c"}},
		{"gt_le", RangeBounds{Gt: []byte("a"), Le: []byte("c")}, []string{"b", "c"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			it, err := m.Range(c.bounds)
			if err != nil {
				t.Fatal(err)
			}
			defer it.Close()
			var keys []string
			for it.Next() {
				keys = append(keys, string(it.Key()))
			}
			if len(keys) != len(c.want) {
				t.Fatalf("got %v, want %v", keys, c.want)
			}
			for i := range keys {
				if keys[i] != c.want[i] {
					t.Errorf("got %v, want %v", keys, c.want)
					break
				}
			}
		})
	}
}

func TestMapGetContains(t *testing.T) {
	m := scenario2Map(t)
	v, ok, err := m.Get([]byte("abd"))
	if err != nil || !ok || v != 20 {
		t.Fatalf("Get(abd) = %d, %v, %v", v, ok, err)
	}
	ok, err = m.Contains([]byte("nope"))
	if err != nil || ok {
		t.Fatalf("Contains(nope) = %v, %v", ok, err)
	}
	if _, err := m.MustGet([]byte("nope")); err == nil {
		t.Fatal("expected ErrKeyNotFound")
	}
}

func TestMapEqual(t *testing.T) {
	items := []Item{{[]byte("a"), 1}, {[]byte("b"), 2}}
	m1 := buildMemMap(t, items)
	m2 := buildMemMap(t, items)
	m3 := buildMemMap(t, []Item{{[]byte("a"), 1}, {[]byte("b"), 3}})

	eq, err := m1.Equal(m2)
	if err != nil || !eq {
		t.Fatalf("Equal(m1,m2) = %v, %v", eq, err)
	}
	eq, err = m1.Equal(m3)
	if err != nil || eq {
		t.Fatalf("Equal(m1,m3) = %v, %v", eq, err)
	}
}
