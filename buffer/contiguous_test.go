package buffer

import "testing"

func assertSpansPacked(t *testing.T, b *ContiguousBuffer) {
	t.Helper()
	spans := b.Spans()
	if len(spans) == 0 {
		t.Fatalf("line index is empty")
	}
	next := 0
	for i, s := range spans {
		if s.Start != next {
			t.Fatalf("span %d start=%d, want %d (spans=%v)", i, s.Start, next, spans)
		}
		next += s.Len
	}
	if next != b.Stats().Units {
		t.Fatalf("spans cover %d units, backing holds %d", next, b.Stats().Units)
	}
}

func TestContiguous_LineIndexStaysPacked(t *testing.T) {
	b := NewContiguous()

	steps := []func() error{
		func() error { _, err := b.Insert(0, 0, "alpha\nbeta\ngamma"); return err },
		func() error { _, err := b.Insert(1, 2, "XX\nYY"); return err },
		func() error { _, err := b.Insert(3, 0, "\n"); return err },
		func() error { _, err := b.Erase(0, 3, 2, 1); return err },
		func() error { _, err := b.Insert(0, 0, "😀"); return err },
		func() error { _, err := b.Erase(2, 1, 1, 0); return err },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		assertSpansPacked(t, b)
	}

	b.Clear()
	assertSpansPacked(t, b)
	if got := b.Spans(); len(got) != 1 || got[0] != (Span{}) {
		t.Fatalf("spans after clear=%v, want [{0 0}]", got)
	}
}

func TestContiguous_InsertShiftsLaterLines(t *testing.T) {
	b := NewContiguous()
	mustInsert(t, b, 0, 0, "ab\ncd\nef")
	mustInsert(t, b, 0, 1, "1\n2\n3")

	assertLines(t, b, "a1", "2", "3b", "cd", "ef")
	want := []Span{{0, 2}, {2, 1}, {3, 2}, {5, 2}, {7, 2}}
	got := b.Spans()
	if len(got) != len(want) {
		t.Fatalf("spans=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("spans=%v, want %v", got, want)
		}
	}
}

func TestContiguous_SpansReturnsCopy(t *testing.T) {
	b := NewContiguous()
	mustInsert(t, b, 0, 0, "abc")
	spans := b.Spans()
	spans[0].Len = 99
	if b.LineLen(0) != 3 {
		t.Fatalf("mutating Spans() result changed the buffer")
	}
}
