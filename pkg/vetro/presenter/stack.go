package presenter

import "github.com/BrandonKowalski/vetro/pkg/vetro/catalog"

// StackEntry is a single inline navigation record: the descriptor that was
// pushed and any resume state (scroll position, focused index) the list
// wants restored when the user navigates back to it.
type StackEntry struct {
	Descriptor catalog.Descriptor
	Resume     any
}

// Stack tracks inline navigation history; Pop unwinds it newest-first.
type Stack struct {
	entries []StackEntry
}

// NewStack creates an empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push records a forward inline navigation.
func (s *Stack) Push(d catalog.Descriptor, resume any) {
	s.entries = append(s.entries, StackEntry{
		Descriptor: d,
		Resume:     resume,
	})
}

// Pop removes and returns the most recent entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
