package pegstack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPushPop(t *testing.T) {
	s := Empty.Push(1)
	v, rest := s.Pop()
	if v != 1 {
		t.Fatalf("Pop() = %v, want 1", v)
	}
	if !rest.IsEmpty() {
		t.Fatalf("rest should be empty, got %v", rest.Values())
	}
}

func TestPushAllOrder(t *testing.T) {
	s := Empty.PushAll("a", "b", "c")
	if diff := cmp.Diff([]interface{}{"c", "b", "a"}, s.Values()); diff != "" {
		t.Fatalf("PushAll order mismatch (-want +got):\n%s", diff)
	}
}

func TestSwap(t *testing.T) {
	s := Empty.PushAll(1, 2)
	got := s.Swap().Values()
	if diff := cmp.Diff([]interface{}{1, 2}, got); diff != "" {
		t.Fatalf("Swap mismatch (-want +got):\n%s", diff)
	}
}

func TestSwap3(t *testing.T) {
	// top-first [20,19,18] reached by PushAll(18,19,20); swap3 reverses it
	// to top-first [18,19,20], per spec.md's literal example.
	s := Empty.PushAll(18, 19, 20)
	got := s.Swap3().Values()
	if diff := cmp.Diff([]interface{}{18, 19, 20}, got); diff != "" {
		t.Fatalf("Swap3 mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotRestoreIsEqualSizeAndElements(t *testing.T) {
	s := Empty.PushAll("x", "y")
	snap := s.TakeSnapshot()
	mutated := snap.Push("z").Push("w")
	restored := snap // restore is plain assignment back to the snapshot
	if restored.Size() != snap.Size() || mutated.Size() == snap.Size() {
		t.Fatalf("size mismatch: restored=%d snap=%d mutated=%d", restored.Size(), snap.Size(), mutated.Size())
	}
	if diff := cmp.Diff(snap.Values(), restored.Values()); diff != "" {
		t.Fatalf("snapshot/restore round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPeekAtAndPoke(t *testing.T) {
	s := Empty.PushAll("a", "b", "c")
	if got := s.PeekAt(1); got != "b" {
		t.Fatalf("PeekAt(1) = %v, want b", got)
	}
	poked := s.Poke(1, "B")
	if diff := cmp.Diff([]interface{}{"c", "B", "a"}, poked.Values()); diff != "" {
		t.Fatalf("Poke mismatch (-want +got):\n%s", diff)
	}
	// original stack is untouched.
	if diff := cmp.Diff([]interface{}{"c", "b", "a"}, s.Values()); diff != "" {
		t.Fatalf("Poke mutated original stack (-want +got):\n%s", diff)
	}
}

func TestPopAt(t *testing.T) {
	s := Empty.PushAll("a", "b", "c")
	v, rest := s.PopAt(1)
	if v != "b" {
		t.Fatalf("PopAt(1) = %v, want b", v)
	}
	if diff := cmp.Diff([]interface{}{"c", "a"}, rest.Values()); diff != "" {
		t.Fatalf("PopAt remainder mismatch (-want +got):\n%s", diff)
	}
}

func TestDup(t *testing.T) {
	s := Empty.Push(42).Dup()
	if diff := cmp.Diff([]interface{}{42, 42}, s.Values()); diff != "" {
		t.Fatalf("Dup mismatch (-want +got):\n%s", diff)
	}
}
