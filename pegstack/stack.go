// Package pegstack implements the value stack spec.md's design notes
// prescribe directly: "a persistent singly linked list of values; a
// snapshot is the head pointer, restore is assignment." Every mutating
// operation returns a new head rather than mutating in place, so a caller
// holding an older head still sees the stack exactly as it was — that's
// the entire snapshot/restore mechanism, and it is O(1) by construction.
package pegstack

import "fmt"

// Stack is an immutable LIFO of user values. The zero value (nil *Stack)
// is the empty stack.
type Stack struct {
	value interface{}
	next  *Stack
	size  int
}

// Empty is the canonical empty stack.
var Empty *Stack

// Size returns the number of values on the stack.
func (s *Stack) Size() int {
	if s == nil {
		return 0
	}
	return s.size
}

// IsEmpty reports whether the stack has no values.
func (s *Stack) IsEmpty() bool {
	return s.Size() == 0
}

// Push returns a new stack with v on top.
func (s *Stack) Push(v interface{}) *Stack {
	return &Stack{value: v, next: s, size: s.Size() + 1}
}

// PushAll pushes values left to right, so the last argument ends on top,
// matching spec.md §8's value-stack law push_all(a,b,c) ⇒ peek(0)=c.
func (s *Stack) PushAll(vs ...interface{}) *Stack {
	for _, v := range vs {
		s = s.Push(v)
	}
	return s
}

// Pop returns the top value and the stack beneath it. Panics on an empty
// stack, mirroring the teacher's convention of panicking on corner cases
// the caller is expected to have already guarded against.
func (s *Stack) Pop() (interface{}, *Stack) {
	if s == nil {
		panic(fmt.Errorf("pegstack: pop from empty stack"))
	}
	return s.value, s.next
}

// PopAt removes the i-th value from the top (0-based) and returns it along
// with the resulting stack.
func (s *Stack) PopAt(i int) (interface{}, *Stack) {
	if i < 0 || i >= s.Size() {
		panic(fmt.Errorf("pegstack: index %d out of range (size %d)", i, s.Size()))
	}
	if i == 0 {
		return s.Pop()
	}
	v, rest := s.next.PopAt(i - 1)
	return v, rest.Push(s.value)
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() interface{} {
	return s.PeekAt(0)
}

// PeekAt returns the i-th value from the top (0-based) without removing it.
func (s *Stack) PeekAt(i int) interface{} {
	if i < 0 || i >= s.Size() {
		panic(fmt.Errorf("pegstack: index %d out of range (size %d)", i, s.Size()))
	}
	cur := s
	for ; i > 0; i-- {
		cur = cur.next
	}
	return cur.value
}

// Poke returns a new stack with the i-th value from the top replaced by v.
func (s *Stack) Poke(i int, v interface{}) *Stack {
	if i < 0 || i >= s.Size() {
		panic(fmt.Errorf("pegstack: index %d out of range (size %d)", i, s.Size()))
	}
	if i == 0 {
		return s.next.Push(v)
	}
	return s.next.Poke(i-1, v).Push(s.value)
}

// Dup pushes a copy of the top value.
func (s *Stack) Dup() *Stack {
	return s.Push(s.Peek())
}

// swapN reverses the order of the top n values, a generalization of
// swap/swap3../swap6: popping n values in top-first order and pushing them
// back in that same order reverses them, since Push prepends — verified
// against spec.md §8's literal example, [18,19,20] top-first becomes
// [20,19,18] top-first.
func swapN(s *Stack, n int) *Stack {
	if s.Size() < n {
		panic(fmt.Errorf("pegstack: swap%d needs %d values, stack has %d", n, n, s.Size()))
	}
	vals := make([]interface{}, n)
	rest := s
	for i := 0; i < n; i++ {
		vals[i], rest = rest.Pop()
	}
	for i := 0; i < n; i++ {
		rest = rest.Push(vals[i])
	}
	return rest
}

// Swap exchanges the top two values.
func (s *Stack) Swap() *Stack { return swapN(s, 2) }

// Swap3 reverses the top three values.
func (s *Stack) Swap3() *Stack { return swapN(s, 3) }

// Swap4 reverses the top four values.
func (s *Stack) Swap4() *Stack { return swapN(s, 4) }

// Swap5 reverses the top five values.
func (s *Stack) Swap5() *Stack { return swapN(s, 5) }

// Swap6 reverses the top six values.
func (s *Stack) Swap6() *Stack { return swapN(s, 6) }

// Values returns the stack's values, top-first.
func (s *Stack) Values() []interface{} {
	out := make([]interface{}, 0, s.Size())
	for cur := s; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}
	return out
}

// TakeSnapshot returns a handle to the current stack state. Because Stack
// is already immutable and every mutation returns a new head, the
// snapshot is just the head pointer itself.
func (s *Stack) TakeSnapshot() *Stack {
	return s
}
