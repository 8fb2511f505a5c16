package ui

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeScreen struct {
	name    string
	enters  int
	exits   int
	next    *ScreenTransition
	failure error
}

func (f *fakeScreen) Update() (*ScreenTransition, error) {
	tr := f.next
	f.next = nil
	return tr, f.failure
}
func (f *fakeScreen) Draw(*ebiten.Image) {}
func (f *fakeScreen) OnEnter()           { f.enters++ }
func (f *fakeScreen) OnExit()            { f.exits++ }
func (f *fakeScreen) Name() string       { return f.name }

func TestScreenManager_Transitions(t *testing.T) {
	home := &fakeScreen{name: "home"}
	detail := &fakeScreen{name: "detail"}
	other := &fakeScreen{name: "other"}

	sm := NewScreenManager()
	sm.Push(home)

	home.next = &ScreenTransition{Type: TransitionPush, Screen: detail}
	if err := sm.Update(); err != nil {
		t.Fatal(err)
	}
	if sm.Current() != detail || sm.StackSize() != 2 {
		t.Fatalf("after push current %v size %d", sm.Current().Name(), sm.StackSize())
	}

	detail.next = &ScreenTransition{Type: TransitionReplace, Screen: other}
	sm.Update()
	if sm.Current() != other || detail.exits != 1 {
		t.Fatalf("replace: current %s, detail exits %d", sm.Current().Name(), detail.exits)
	}

	other.next = &ScreenTransition{Type: TransitionPop}
	sm.Update()
	if sm.Current() != home {
		t.Fatalf("pop: current %s", sm.Current().Name())
	}
	if home.enters != 1 {
		t.Errorf("home entered %d times, want 1", home.enters)
	}

	// The root screen is never popped.
	home.next = &ScreenTransition{Type: TransitionPop}
	sm.Update()
	if sm.Current() != home || home.exits != 0 {
		t.Errorf("root popped: size %d, exits %d", sm.StackSize(), home.exits)
	}

	sm.ClearStack()
	if sm.Current() != nil || home.exits != 1 {
		t.Errorf("ClearStack left %d screens", sm.StackSize())
	}
}

type coverScreen struct {
	fakeScreen
	covered bool
}

func (c *coverScreen) OnCover()   { c.covered = true }
func (c *coverScreen) OnUncover() { c.covered = false }

func TestScreenManager_Cover(t *testing.T) {
	root := &coverScreen{fakeScreen: fakeScreen{name: "root"}}
	sm := NewScreenManager()
	sm.Push(root)
	if root.covered {
		t.Fatal("root covered with nothing above it")
	}
	sm.Push(&fakeScreen{name: "top"})
	if !root.covered {
		t.Error("push did not cover the root")
	}
	sm.Replace(&fakeScreen{name: "other"})
	if !root.covered {
		t.Error("replace uncovered the root")
	}
	sm.Pop()
	if root.covered {
		t.Error("pop did not uncover the root")
	}
}

func TestScreenManager_UpdateError(t *testing.T) {
	want := errors.New("boom")
	sm := NewScreenManager()
	if err := sm.Update(); err != nil {
		t.Fatalf("empty manager: %v", err)
	}
	sm.Push(&fakeScreen{name: "broken", failure: want})
	if err := sm.Update(); !errors.Is(err, want) {
		t.Errorf("Update() = %v, want %v", err, want)
	}
}
