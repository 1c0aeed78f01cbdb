package scene

import (
	"testing"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// probe records lifecycle calls.
type probe struct {
	base
	kind  Kind
	log   *[]string
	name  string
	onKey Transition
}

func (p *probe) Kind() Kind { return p.kind }

func (p *probe) Enter(*RunContext) { *p.log = append(*p.log, p.name+".enter") }
func (p *probe) Exit(*RunContext)  { *p.log = append(*p.log, p.name+".exit") }

func (p *probe) Update(*RunContext, float64) Transition {
	*p.log = append(*p.log, p.name+".update")
	return None()
}

func (p *probe) HandleKey(*RunContext, core.KeyEvent) Transition {
	*p.log = append(*p.log, p.name+".key")
	return p.onKey
}

func (p *probe) Render(_ *RunContext, dst *core.Screen) {
	dst.DrawText(0, 0, p.name)
}

func TestSwitchRunsExitThenEnter(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	var log []string

	a := &probe{kind: KindInterlude, log: &log, name: "a"}
	b := &probe{kind: KindInterlude, log: &log, name: "b"}
	m.Switch(a)
	m.Switch(b)

	want := []string{"a.enter", "a.exit", "b.enter"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if m.Current() != b {
		t.Fatalf("Current() is not the last switched scene")
	}
}

func TestTransitionAppliedBeforeReturn(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	var log []string

	b := &probe{kind: KindInterlude, log: &log, name: "b"}
	a := &probe{kind: KindInterlude, log: &log, name: "a", onKey: To(b)}
	m.Switch(a)
	m.HandleKey(core.Press(core.KeyEnter))

	if m.Current() != b {
		t.Fatalf("transition not applied synchronously")
	}
	want := []string{"a.enter", "a.key", "a.exit", "b.enter"}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestNoActiveSceneIsNoop(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)

	m.Update(0.1)
	m.HandleKey(core.Press(core.KeyEnter))
	m.Render(core.NewScreen(20, 5))

	if m.Current() != nil || m.Quitting() {
		t.Fatalf("machine changed state without a scene")
	}
}

func TestSwitchNilPanics(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)

	defer func() {
		if recover() == nil {
			t.Fatal("Switch(nil) did not panic")
		}
	}()
	m.Switch(nil)
}

func TestSwitchUnknownKindPanics(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	var log []string

	defer func() {
		if recover() == nil {
			t.Fatal("Switch to unknown kind did not panic")
		}
	}()
	m.Switch(&probe{kind: Kind(42), log: &log, name: "x"})
}

func TestQuitStopsDispatch(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	var log []string

	m.Switch(&probe{kind: KindInterlude, log: &log, name: "a", onKey: Quit()})
	m.HandleKey(core.Press(core.KeyEscape))
	if !m.Quitting() {
		t.Fatal("Quitting() = false after Quit transition")
	}

	n := len(log)
	m.HandleKey(core.Press(core.KeyEnter))
	m.Update(0.1)
	if len(log) != n {
		t.Fatalf("scene received calls after quit: %v", log[n:])
	}
}

func TestUpdateAgesNotices(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	m.Switch(NewMainMenu())

	ctx.Notify("hello")
	m.Update(1.0)
	if ctx.Notices.Len() != 1 {
		t.Fatalf("notice expired early")
	}
	m.Update(0.6)
	if ctx.Notices.Len() != 0 {
		t.Fatalf("notice outlived its TTL")
	}
}

func TestNoticesShowNewest(t *testing.T) {
	n := NewNotices(1.5, 3)
	for _, s := range []string{"a", "b", "c", "d"} {
		n.Add(s)
	}
	got := n.Visible()
	if len(got) != 3 || got[0] != "b" || got[2] != "d" {
		t.Fatalf("Visible() = %v, want [b c d]", got)
	}
	n.Clear()
	if n.Len() != 0 {
		t.Fatalf("Len() = %d after Clear", n.Len())
	}
}

func TestKindString(t *testing.T) {
	if KindFridayEscape.String() != "FridayEscape" || Kind(99).String() != "Unknown" {
		t.Fatalf("unexpected Kind strings")
	}
}
