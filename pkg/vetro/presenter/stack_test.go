package presenter

import (
	"testing"

	"github.com/BrandonKowalski/vetro/pkg/vetro/catalog"
)

func TestStackPushPopOrder(t *testing.T) {
	s := NewStack()

	s.Push(catalog.Descriptor{ID: "a"}, 1)
	s.Push(catalog.Descriptor{ID: "b"}, 2)

	if s.Len() != 2 {
		t.Fatalf("Len = %d", s.Len())
	}
	if top := s.Peek(); top == nil || top.Descriptor.ID != "b" {
		t.Errorf("Peek = %+v", top)
	}

	if e := s.Pop(); e == nil || e.Descriptor.ID != "b" || e.Resume != 2 {
		t.Errorf("first Pop = %+v", e)
	}
	if e := s.Pop(); e == nil || e.Descriptor.ID != "a" || e.Resume != 1 {
		t.Errorf("second Pop = %+v", e)
	}
	if !s.IsEmpty() {
		t.Error("stack not empty after popping everything")
	}
	if s.Pop() != nil || s.Peek() != nil {
		t.Error("Pop/Peek on empty stack should return nil")
	}
}

func TestStackClear(t *testing.T) {
	s := NewStack()
	s.Push(catalog.Descriptor{ID: "a"}, nil)
	s.Clear()

	if !s.IsEmpty() {
		t.Error("Clear left entries behind")
	}
}
