// Package errstack keeps the most recent sensor error codes in LIFO order.
//
// A Stack holds at most Capacity codes. Pushing onto a full stack drops the
// oldest code (the bottom) before the new code becomes the top. The backing
// storage is a fixed ring buffer, so no operation allocates per entry and
// eviction is O(1).
//
// A Stack is not safe for concurrent use. Wrap it with store.NewLocked when it
// is shared between goroutines.
package errstack

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/l3montree-dev/sensor-errstack/packages/assert"
	"github.com/l3montree-dev/sensor-errstack/packages/types"
)

// Capacity is the maximum number of codes a Stack retains.
const Capacity = 32

type Stack struct {
	entries [Capacity]types.ErrorCode

	// index of the oldest entry in entries
	bottom    int
	count     int
	evicted   int
	destroyed bool
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// slot maps a position counted from the bottom onto the ring buffer.
func (s *Stack) slot(pos int) int {
	return (s.bottom + pos) % Capacity
}

func (s *Stack) mustBeAlive() {
	assert.OK(!s.destroyed, "use of destroyed error stack")
}

// Push places code on top of the stack. If the stack is full, the oldest code
// is evicted first.
func (s *Stack) Push(code types.ErrorCode) {
	s.mustBeAlive()
	if s.count == Capacity {
		s.removeOldest()
	}
	s.entries[s.slot(s.count)] = code
	s.count++
}

func (s *Stack) removeOldest() {
	if s.count == 0 {
		return
	}
	s.entries[s.bottom] = 0
	s.bottom = (s.bottom + 1) % Capacity
	s.count--
	s.evicted++
}

// Pop removes and returns the top code.
// The boolean is false if the stack is empty.
func (s *Stack) Pop() (types.ErrorCode, bool) {
	s.mustBeAlive()
	if s.count == 0 {
		return 0, false
	}
	top := s.slot(s.count - 1)
	code := s.entries[top]
	s.entries[top] = 0
	s.count--
	if s.count == 0 {
		s.bottom = 0
	}
	return code, true
}

// Peek returns the top code without removing it.
func (s *Stack) Peek() (types.ErrorCode, bool) {
	s.mustBeAlive()
	if s.count == 0 {
		return 0, false
	}
	return s.entries[s.slot(s.count-1)], true
}

// All yields the codes from top to bottom. It does not modify the stack and
// can be ranged over any number of times.
func (s *Stack) All() iter.Seq[types.ErrorCode] {
	s.mustBeAlive()
	return func(yield func(types.ErrorCode) bool) {
		for pos := s.count - 1; pos >= 0; pos-- {
			if !yield(s.entries[s.slot(pos)]) {
				return
			}
		}
	}
}

// Get returns a copy of the codes from top to bottom.
func (s *Stack) Get() []types.ErrorCode {
	codes := make([]types.ErrorCode, 0, s.Len())
	for code := range s.All() {
		codes = append(codes, code)
	}
	return codes
}

// Store pushes code and never fails. It lets a Stack be used as a
// store.Store[types.ErrorCode].
func (s *Stack) Store(code types.ErrorCode) error {
	s.Push(code)
	return nil
}

func (s *Stack) Len() int {
	s.mustBeAlive()
	return s.count
}

// Count is an alias of Len.
func (s *Stack) Count() int {
	return s.Len()
}

func (s *Stack) Cap() int {
	return Capacity
}

func (s *Stack) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Stack) IsFull() bool {
	return s.Len() == Capacity
}

// Evicted returns how many codes were dropped by pushes onto a full stack.
func (s *Stack) Evicted() int {
	s.mustBeAlive()
	return s.evicted
}

func (s *Stack) Stats() types.StackStats {
	s.mustBeAlive()
	return types.StackStats{
		Count:    s.count,
		Capacity: Capacity,
		Evicted:  s.evicted,
	}
}

// Clear drops every code. The stack stays usable.
func (s *Stack) Clear() {
	s.mustBeAlive()
	s.entries = [Capacity]types.ErrorCode{}
	s.bottom = 0
	s.count = 0
}

// Destroy releases every code. Any later call on s panics.
func (s *Stack) Destroy() {
	s.mustBeAlive()
	s.Clear()
	s.destroyed = true
}

// String formats the stack top to bottom, e.g.
// "Stack [Count: 2]: 101 -> 100 -> NULL (Bottom)".
func (s *Stack) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stack [Count: %d]: ", s.Len())
	if s.count == 0 {
		sb.WriteString("Empty")
		return sb.String()
	}
	for code := range s.All() {
		sb.WriteString(code.String())
		sb.WriteString(" -> ")
	}
	sb.WriteString("NULL (Bottom)")
	return sb.String()
}

// Print writes String followed by a newline to w.
func (s *Stack) Print(w io.Writer) error {
	_, err := fmt.Fprintln(w, s.String())
	return err
}
