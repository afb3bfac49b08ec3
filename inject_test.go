package orbitshot

import "testing"

func TestInjectClickQueuesTwoEvents(t *testing.T) {
	s := NewScene()
	s.InjectClick(10, 20)
	if s.PendingInjections() != 2 {
		t.Fatalf("PendingInjections = %d, want 2", s.PendingInjections())
	}
	first, second := s.injectQueue[0], s.injectQueue[1]
	if !first.pressed || second.pressed {
		t.Error("click should queue press then release")
	}
	if first.x != 10 || second.y != 20 {
		t.Errorf("coordinates = (%v, %v), want (10, 20)", first.x, second.y)
	}
}

func TestInjectedEventsOnePerFrame(t *testing.T) {
	s := NewScene()
	n := interactiveSprite("btn", 20, 20)
	s.Root().AddChild(n)

	var downs, ups int
	n.OnPointerDown = func(PointerContext) { downs++ }
	n.OnPointerUp = func(PointerContext) { ups++ }

	s.InjectPress(5, 5)
	s.InjectRelease(5, 5)

	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if downs != 1 || ups != 0 {
		t.Errorf("after frame 1: downs=%d ups=%d, want 1/0", downs, ups)
	}
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}
	if downs != 1 || ups != 1 {
		t.Errorf("after frame 2: downs=%d ups=%d, want 1/1", downs, ups)
	}
	if s.PendingInjections() != 0 {
		t.Errorf("PendingInjections = %d, want 0", s.PendingInjections())
	}
}

func TestProcessInjectedInputEmpty(t *testing.T) {
	s := NewScene()
	if s.processInjectedInput() {
		t.Error("empty queue reported an event")
	}
}
