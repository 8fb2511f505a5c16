package ui

import "github.com/hajimehoshi/ebiten/v2"

// Screen is one page of the app (the carousel home, a card's detail).
type Screen interface {
	// Update handles input and logic. Return a non-nil ScreenTransition to change screens.
	Update() (*ScreenTransition, error)
	Draw(dst *ebiten.Image)
	// OnEnter is called once when the screen is put on the stack.
	OnEnter()
	// OnExit is called once when the screen leaves the stack.
	OnExit()
	Name() string
}

// Coverable screens are told when another screen is pushed on top of them
// and when they are on top again.
type Coverable interface {
	OnCover()
	OnUncover()
}

type TransitionType int

const (
	TransitionPush TransitionType = iota
	TransitionPop
	TransitionReplace
)

type ScreenTransition struct {
	Type   TransitionType
	Screen Screen // nil for Pop
}

// ScreenManager is a stack of screens; only the top one updates and draws.
// The root screen is never popped.
type ScreenManager struct {
	stack []Screen
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

func (sm *ScreenManager) Push(s Screen) {
	if c, ok := sm.Current().(Coverable); ok {
		c.OnCover()
	}
	sm.stack = append(sm.stack, s)
	s.OnEnter()
}

func (sm *ScreenManager) Pop() {
	if len(sm.stack) <= 1 {
		return
	}
	sm.stack[len(sm.stack)-1].OnExit()
	sm.stack = sm.stack[:len(sm.stack)-1]
	if c, ok := sm.Current().(Coverable); ok {
		c.OnUncover()
	}
}

// Replace swaps the top screen without uncovering the one beneath.
func (sm *ScreenManager) Replace(s Screen) {
	if n := len(sm.stack); n > 0 {
		sm.stack[n-1].OnExit()
		sm.stack[n-1] = s
	} else {
		sm.stack = append(sm.stack, s)
	}
	s.OnEnter()
}

// ClearStack exits and removes all screens, top first.
func (sm *ScreenManager) ClearStack() {
	for n := len(sm.stack); n > 0; n = len(sm.stack) {
		sm.stack[n-1].OnExit()
		sm.stack = sm.stack[:n-1]
	}
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

func (sm *ScreenManager) StackSize() int {
	return len(sm.stack)
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}
	tr, err := s.Update()
	if err != nil {
		return err
	}
	if tr == nil {
		return nil
	}
	switch tr.Type {
	case TransitionPush:
		sm.Push(tr.Screen)
	case TransitionPop:
		sm.Pop()
	case TransitionReplace:
		sm.Replace(tr.Screen)
	}
	return nil
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}
