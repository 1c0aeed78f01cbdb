package scene

import (
	"testing"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/games/calendar"
	"github.com/vovakirdan/consulting-chaos/internal/games/escape"
	"github.com/vovakirdan/consulting-chaos/internal/games/excel"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
)

func TestEmailBlastTypingScenario(t *testing.T) {
	ctx, clk, rec := newTestContext(t)
	m := NewMachine(ctx)
	stage := NewEmailBlast()
	stage.target = "ab"
	m.Switch(stage)

	typeText(m, "a")
	if stage.Snapshot(ctx).Typed != "" {
		t.Fatalf("typing accepted before the stage started")
	}

	press(m, core.KeyEnter, 1)
	clk.advance(4.5)
	typeText(m, "ax")
	if !hasNotice(ctx, "Mismatch +0.3s") {
		t.Errorf("no mismatch notice: %v", ctx.Notices.Visible())
	}
	press(m, core.KeyEnter, 1)
	if !hasNotice(ctx, "Not matching yet") {
		t.Errorf("no 'Not matching yet' notice")
	}
	press(m, core.KeyBackspace, 1)
	typeText(m, "b")

	snap := stage.Snapshot(ctx)
	if snap.Typed != "ab" || snap.Misses != 1 {
		t.Fatalf("typed=%q misses=%d, want \"ab\" 1", snap.Typed, snap.Misses)
	}
	if m.Current().Kind() != KindInterlude {
		t.Fatalf("current = %v, want Interlude", m.Current().Kind())
	}

	res, ok := ctx.Run.Last()
	if !ok {
		t.Fatal("no result recorded")
	}
	if res.Name() != EmailBlastName || !approx(res.Penalty(), 0.3) || !approx(res.Elapsed(), 4.5) {
		t.Fatalf("result = %s elapsed=%v penalty=%v", res.Name(), res.Elapsed(), res.Penalty())
	}
	if misses, _ := res.Fact("misses"); misses != 1 {
		t.Errorf("misses fact = %v", misses)
	}
	if rec.Count(sfx.CueMiss) != 1 || rec.Count(sfx.CueFinish) != 1 {
		t.Errorf("cues = %v", rec.Cues)
	}

	il := m.Current().(*Interlude)
	if il.Next().Kind() != KindExcelFireDrill {
		t.Fatalf("interlude leads to %v", il.Next().Kind())
	}

	typeText(m, "zz")
	if ctx.Run.Len() != 1 {
		t.Fatalf("Run.Len() = %d after keys on the interlude", ctx.Run.Len())
	}
}

func TestEmailBlastSpaceIsTyped(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	stage := NewEmailBlast()
	stage.target = "a b c"
	m.Switch(stage)

	press(m, core.KeySpace, 1) // opens the gate
	typeText(m, "a b")
	if got := stage.Snapshot(ctx).Typed; got != "a b" {
		t.Fatalf("Typed = %q, want %q", got, "a b")
	}
}

func TestExcelFireDrillScenario(t *testing.T) {
	ctx, _, rec := newTestContext(t)
	m := NewMachine(ctx)
	stage := NewExcelFireDrill()
	stage.problems = problems(excel.Sum(15, 27), excel.Product(2, 2))
	m.Switch(stage)

	press(m, core.KeyEnter, 1)
	typeText(m, "42")
	press(m, core.KeyEnter, 1)

	snap := stage.Snapshot(ctx)
	if snap.Correct != 1 || snap.Wrong != 0 || snap.Input != "" {
		t.Fatalf("snapshot = %+v", snap)
	}
	if !hasNotice(ctx, "Correct!") || rec.Count(sfx.CueCorrect) != 1 {
		t.Errorf("missing correct feedback")
	}

	typeText(m, "abc")
	press(m, core.KeyEnter, 1)
	if !hasNotice(ctx, "Not a number") {
		t.Errorf("missing 'Not a number' notice")
	}
	if stage.Snapshot(ctx).Wrong != 0 {
		t.Errorf("non-number counted as wrong")
	}
}

func TestExcelFireDrillWrongThenFinish(t *testing.T) {
	ctx, clk, _ := newTestContext(t)
	ctx.Config.Excel.Count = 2
	m := NewMachine(ctx)
	stage := NewExcelFireDrill()
	stage.problems = problems(excel.Quotient(4, 7), excel.Product(3, 3))
	m.Switch(stage)

	press(m, core.KeyEnter, 1)
	typeText(m, "6")
	press(m, core.KeyEnter, 1)
	if !hasNotice(ctx, "#REF! +1.0s") {
		t.Errorf("missing wrong-answer notice")
	}
	typeText(m, "7")
	press(m, core.KeyEnter, 1)

	clk.advance(10)
	typeText(m, "9")
	press(m, core.KeyEnter, 1)

	if m.Current().Kind() != KindInterlude {
		t.Fatalf("current = %v, want Interlude", m.Current().Kind())
	}
	res, _ := ctx.Run.Last()
	if res.Name() != ExcelFireDrillName || !approx(res.Penalty(), 1.0) || !approx(res.Elapsed(), 10) {
		t.Fatalf("result %s elapsed=%v penalty=%v", res.Name(), res.Elapsed(), res.Penalty())
	}
}

func TestPuzzleGamePlacementScenario(t *testing.T) {
	ctx, clk, _ := newTestContext(t)
	m := NewMachine(ctx)
	square, _ := calendar.ShapeByName("Team Standup")
	stage := NewPuzzleGame()
	stage.queue = []calendar.Shape{square, square}
	m.Switch(stage)
	press(m, core.KeyEnter, 1)

	press(m, core.KeyRight, 6)
	press(m, core.KeyDown, 6)
	if snap := stage.Snapshot(ctx); snap.Anchor != core.C(6, 6) || !snap.Fits {
		t.Fatalf("at (6,6): anchor=%v fits=%v", snap.Anchor, snap.Fits)
	}

	press(m, core.KeyRight, 1)
	press(m, core.KeyDown, 1)
	if snap := stage.Snapshot(ctx); snap.Anchor != core.C(7, 7) || snap.Fits {
		t.Fatalf("at (7,7): anchor=%v fits=%v", snap.Anchor, snap.Fits)
	}
	press(m, core.KeySpace, 1)
	if !hasNotice(ctx, "Doesn't fit here") {
		t.Errorf("missing 'Doesn't fit here' notice")
	}
	if stage.engine.FilledCount() != 0 {
		t.Fatalf("rejected place changed the grid")
	}

	press(m, core.KeyLeft, 1)
	press(m, core.KeyUp, 1)
	press(m, core.KeySpace, 1)
	if stage.engine.FilledCount() != 4 {
		t.Fatalf("FilledCount() = %d, want 4", stage.engine.FilledCount())
	}

	clk.advance(30)
	press(m, core.KeyEnter, 1) // finish early with one piece unused

	res, _ := ctx.Run.Last()
	if res.Name() != PuzzleGameName || !approx(res.Penalty(), 10) {
		t.Fatalf("result %s penalty=%v, want 10", res.Name(), res.Penalty())
	}
	if unused, _ := res.Fact("unused_pieces"); unused != 1 {
		t.Errorf("unused_pieces = %v", unused)
	}
	if m.Current().(*Interlude).Next().Kind() != KindFridayEscape {
		t.Fatalf("puzzle does not lead to Friday Escape")
	}
}

func TestPuzzleGameRotationKeys(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	line, _ := calendar.ShapeByName("All Hands")
	stage := NewPuzzleGame()
	stage.queue = []calendar.Shape{line}
	m.Switch(stage)
	press(m, core.KeyEnter, 1)

	typeText(m, "x")
	want := calendar.RotateCW(line.Cells)
	got := stage.Snapshot(ctx).Active
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("after x: %v, want %v", got, want)
		}
	}
	typeText(m, "z")
	got = stage.Snapshot(ctx).Active
	for i := range line.Cells {
		if got[i] != line.Cells[i] {
			t.Fatalf("after x z: %v, want %v", got, line.Cells)
		}
	}
}

func TestPuzzleGameFinishesWhenQueueEmpty(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	m := NewMachine(ctx)
	sync, _ := calendar.ShapeByName("Sync")
	stage := NewPuzzleGame()
	stage.queue = []calendar.Shape{sync}
	m.Switch(stage)
	press(m, core.KeyEnter, 1)
	press(m, core.KeySpace, 1)

	if m.Current().Kind() != KindInterlude {
		t.Fatalf("current = %v, want Interlude", m.Current().Kind())
	}
	res, _ := ctx.Run.Last()
	if !approx(res.Penalty(), 0) {
		t.Fatalf("penalty = %v, want 0", res.Penalty())
	}
}

func TestFridayEscapePursuitScenario(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	ctx.Config.Escape.Jitter = 0

	l := openLayout(15, 11)
	l.Start = core.C(7, 7)
	l.Exit = core.C(0, 0)
	l.Agents = []core.Coord{core.C(7, 3)}

	m := NewMachine(ctx)
	stage := escapeOn(mustMaze(t, l))
	m.Switch(stage)

	m.Update(1.0)
	if stage.Snapshot(ctx).Agents[0] != core.C(7, 3) {
		t.Fatalf("agents moved before the stage started")
	}

	press(m, core.KeyEnter, 1)
	m.Update(ctx.Config.Escape.DecisionInterval)
	if got := stage.Snapshot(ctx).Agents[0]; got.Y != 4 {
		t.Fatalf("agent moved to %v, want row 4", got)
	}
}

func TestFridayEscapeTagAndEscape(t *testing.T) {
	ctx, clk, rec := newTestContext(t)
	ctx.Config.Escape.Jitter = 0

	l := escape.Layout{
		Name:   "corridor",
		Rows:   []string{"#######", "#.....#", "#.###.#", "#.....#", "#######"},
		Start:  core.C(1, 1),
		Exit:   core.C(5, 3),
		Agents: []core.Coord{core.C(3, 1)},
	}
	m := NewMachine(ctx)
	stage := escapeOn(mustMaze(t, l))
	m.Switch(stage)
	press(m, core.KeyEnter, 1)

	press(m, core.KeyRight, 1) // (2,1), next to the agent
	m.Update(0.5)
	snap := stage.Snapshot(ctx)
	if snap.Tags != 1 || snap.Player != core.C(1, 1) {
		t.Fatalf("after tag: tags=%d player=%v", snap.Tags, snap.Player)
	}
	if rec.Count(sfx.CueTag) != 1 || ctx.Notices.Len() == 0 {
		t.Errorf("tag feedback missing")
	}

	// Run down and along the bottom corridor to the exit.
	press(m, core.KeyDown, 2)
	press(m, core.KeyRight, 4)
	clk.advance(12)
	m.Update(0.01)

	if m.Current().Kind() != KindResults {
		t.Fatalf("current = %v, want Results", m.Current().Kind())
	}
	res, _ := ctx.Run.Last()
	if res.Name() != FridayEscapeName || !approx(res.Penalty(), 2.0) {
		t.Fatalf("result %s penalty=%v", res.Name(), res.Penalty())
	}
}

func TestStartFromStage(t *testing.T) {
	ctx, _, _ := newTestContext(t)

	first, err := Start(ctx, "")
	if err != nil || first.Kind() != KindMainMenu {
		t.Fatalf("Start(\"\") = %v, %v", first, err)
	}

	sc, err := Start(ctx, "calendar")
	if err != nil {
		t.Fatalf("Start(calendar) error: %v", err)
	}
	if sc.(*Interlude).Next().Kind() != KindPuzzleGame || !ctx.Practice {
		t.Fatalf("Start(calendar) = %v practice=%v", sc.(*Interlude).Next().Kind(), ctx.Practice)
	}

	if _, err := Start(ctx, "email"); err != nil || ctx.Practice {
		t.Fatalf("Start(email): err=%v practice=%v", err, ctx.Practice)
	}

	if _, err := Start(ctx, "coffee"); err == nil {
		t.Fatal("Start(coffee) returned no error")
	}
}
