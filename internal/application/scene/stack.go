package scene

import (
	"errors"
	"fmt"
	"slices"

	"github.com/younwookim/framekit/internal/application/render"
)

var (
	// ErrNilScene is returned when adding a nil scene.
	ErrNilScene = errors.New("scene: nil scene")
	// ErrAlreadyAdded is returned when the scene is already in the stack.
	ErrAlreadyAdded = errors.New("scene: already in stack")
	// ErrOwnedElsewhere is returned when the scene is in another loop's stack.
	ErrOwnedElsewhere = errors.New("scene: owned by another loop")
	// ErrNotFound is returned when removing a scene that is not in the stack.
	ErrNotFound = errors.New("scene: not in stack")
)

type entry struct {
	scene Scene
	popup bool
}

// Stack is the ordered collection of active scenes.
type Stack struct {
	owner   Owner
	entries []entry
}

// NewStack creates an empty stack whose scenes will be owned by owner.
func NewStack(owner Owner) *Stack {
	return &Stack{owner: owner}
}

// Add inserts s after running its LoadContent. A main scene replaces the
// current main scene at index 0; a popup is appended. If LoadContent fails
// the stack is left unchanged and the error is returned.
func (st *Stack) Add(s Scene) error {
	if s == nil {
		return ErrNilScene
	}
	if st.index(s) >= 0 {
		return ErrAlreadyAdded
	}
	prev := s.Owner()
	if prev != nil && prev != st.owner {
		return ErrOwnedElsewhere
	}

	s.SetOwner(st.owner)
	if err := s.LoadContent(); err != nil {
		s.SetOwner(prev)
		return fmt.Errorf("load scene content: %w", err)
	}

	e := entry{scene: s, popup: s.Popup()}
	if e.popup {
		st.entries = append(st.entries, e)
		return nil
	}

	if main := st.Main(); main != nil {
		st.entries = st.entries[1:]
		detach(main)
	}
	st.entries = slices.Insert(st.entries, 0, e)
	return nil
}

// Remove takes s out of the stack and releases its owner, so it may be added
// to any loop afterwards. Removing a scene that is not present returns
// ErrNotFound.
func (st *Stack) Remove(s Scene) error {
	i := st.index(s)
	if i < 0 {
		return ErrNotFound
	}
	st.entries = slices.Delete(st.entries, i, i+1)
	detach(s)
	return nil
}

// Main returns the main scene, or nil if only popups are present.
func (st *Stack) Main() Scene {
	if len(st.entries) == 0 || st.entries[0].popup {
		return nil
	}
	return st.entries[0].scene
}

// Scenes returns the scenes in stack order.
func (st *Stack) Scenes() []Scene {
	out := make([]Scene, len(st.entries))
	for i, e := range st.entries {
		out[i] = e.scene
	}
	return out
}

// Len returns the number of scenes.
func (st *Stack) Len() int {
	return len(st.entries)
}

// Contains reports whether s is in the stack.
func (st *Stack) Contains(s Scene) bool {
	return st.index(s) >= 0
}

// UpdateAll updates every scene in stack order. The order is fixed when the
// pass starts: a scene removed during the pass is not updated afterwards,
// and a scene added during the pass waits for the next one.
func (st *Stack) UpdateAll(dt float64) {
	for _, s := range st.Scenes() {
		if st.Contains(s) {
			s.Update(dt)
		}
	}
}

// DrawAll draws every scene in stack order, with the same snapshot rules as
// UpdateAll.
func (st *Stack) DrawAll(b *render.Batch) {
	for _, s := range st.Scenes() {
		if st.Contains(s) {
			s.Draw(b)
		}
	}
}

func (st *Stack) index(s Scene) int {
	for i, e := range st.entries {
		if e.scene == s {
			return i
		}
	}
	return -1
}

// detach runs OnExit while the owner is still set, then clears it.
func detach(s Scene) {
	if ex, ok := s.(Exiter); ok {
		ex.OnExit()
	}
	s.SetOwner(nil)
}
