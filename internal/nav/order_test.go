package nav

import "testing"

func testOrder() Order { return NewOrder("today", "tasks", "stats") }

func TestIndexOf(t *testing.T) {
	o := testOrder()
	if got := o.IndexOf("tasks"); got != 1 {
		t.Fatalf("tasks should be at index 1, got %d", got)
	}
	if got := o.IndexOf("task-detail"); got != -1 {
		t.Fatalf("unknown routes must report -1, got %d", got)
	}
}

func TestStepEdges(t *testing.T) {
	o := testOrder()
	if _, ok := o.Prev("today"); ok {
		t.Fatalf("no route before the first")
	}
	if _, ok := o.Next("stats"); ok {
		t.Fatalf("no route after the last")
	}
	if r, ok := o.Prev("stats"); !ok || r != "tasks" {
		t.Fatalf("prev of stats should be tasks, got %q ok=%v", r, ok)
	}
	if r, ok := o.Next("today"); !ok || r != "tasks" {
		t.Fatalf("next of today should be tasks, got %q ok=%v", r, ok)
	}
	if _, ok := o.Next("missing"); ok {
		t.Fatalf("routes outside the order cannot step")
	}
}

func TestResolveApprox(t *testing.T) {
	o := testOrder()
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"stats", "stats", true},
		{" Tasks ", "tasks", true},
		{"to", "today", true},   // unique prefix
		{"stts", "stats", true}, // one edit away
		{"zzzzzz", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := o.ResolveApprox(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ResolveApprox(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestRoutesIsACopy(t *testing.T) {
	o := testOrder()
	rs := o.Routes()
	rs[0] = "mutated"
	if o.Routes()[0] != "today" {
		t.Fatalf("Routes must return a copy")
	}
}
