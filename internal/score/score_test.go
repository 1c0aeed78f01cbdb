package score

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResultTotalIsDerived(t *testing.T) {
	r := NewResult("Email Blast", 42.5, 0.9, map[string]any{"misses": 3})

	if !approx(r.Total(), 43.4) {
		t.Errorf("Total() = %f, expected 43.4", r.Total())
	}
	if r.Name() != "Email Blast" {
		t.Errorf("Name() = %q", r.Name())
	}
	if v, ok := r.Fact("misses"); !ok || v != 3 {
		t.Errorf("Fact(misses) = %v, %v", v, ok)
	}
}

func TestResultClampsNegative(t *testing.T) {
	r := NewResult("x", -1, -2, nil)
	if r.Elapsed() != 0 || r.Penalty() != 0 {
		t.Errorf("negative durations should clamp to zero, got %f/%f", r.Elapsed(), r.Penalty())
	}
}

func TestResultDetailTypes(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantPanic bool
	}{
		{"int", 3, false},
		{"float", 2.5, false},
		{"string", "Q4 update", false},
		{"bool", true, true},
		{"slice", []int{1}, true},
		{"map", map[string]any{}, true},
		{"nil", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if got := recover() != nil; got != tt.wantPanic {
					t.Errorf("NewResult with %T: panic = %v, want %v", tt.value, got, tt.wantPanic)
				}
			}()
			NewResult("x", 1, 0, map[string]any{"fact": tt.value})
		})
	}
}

func TestResultIsImmutable(t *testing.T) {
	detail := map[string]any{"wrong": 1}
	r := NewResult("Excel Fire Drill", 10, 1, detail)

	detail["wrong"] = 99
	if v, _ := r.Fact("wrong"); v != 1 {
		t.Error("mutating the input map must not change the result")
	}

	got := r.Detail()
	got["wrong"] = 42
	if v, _ := r.Fact("wrong"); v != 1 {
		t.Error("mutating Detail() must not change the result")
	}
}

func TestRunTotals(t *testing.T) {
	var run Run
	if _, ok := run.Last(); ok {
		t.Error("empty run should have no last result")
	}

	run.Append(NewResult("Email Blast", 30, 0.6, nil))
	run.Append(NewResult("Excel Fire Drill", 20, 2, nil))

	if run.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", run.Len())
	}
	if !approx(run.Total(), 52.6) {
		t.Errorf("Total() = %f, expected 52.6", run.Total())
	}

	ind := run.Individual()
	if !approx(ind["Email Blast"], 30.6) || !approx(ind["Excel Fire Drill"], 22) {
		t.Errorf("Individual() = %v", ind)
	}

	last, ok := run.Last()
	if !ok || last.Name() != "Excel Fire Drill" {
		t.Errorf("Last() = %v, %v", last.Name(), ok)
	}

	run.Reset()
	if run.Len() != 0 || run.Total() != 0 {
		t.Error("Reset should empty the run")
	}
}

func TestRankFor(t *testing.T) {
	tests := []struct {
		total float64
		title string
	}{
		{45, "Fantastic Skills"},
		{89.99, "Fantastic Skills"},
		{90, "Good"},
		{149, "Average"},
		{179.5, "Room for Improvement"},
		{180, "Back to Training"},
		{600, "Back to Training"},
	}

	for _, tc := range tests {
		if got := RankFor(tc.total); got.Title != tc.title {
			t.Errorf("RankFor(%f) = %q, expected %q", tc.total, got.Title, tc.title)
		}
	}
}
