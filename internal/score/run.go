package score

// Run is the ordered sequence of stage results of one play-through.
type Run struct {
	results []Result
}

// Append records a finished stage.
func (r *Run) Append(res Result) {
	r.results = append(r.results, res)
}

// Reset clears the run for a new play-through.
func (r *Run) Reset() {
	r.results = nil
}

// Len returns the number of finished stages.
func (r *Run) Len() int {
	return len(r.results)
}

// Results returns a copy of the results in completion order.
func (r *Run) Results() []Result {
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Last returns the most recent result.
func (r *Run) Last() (Result, bool) {
	if len(r.results) == 0 {
		return Result{}, false
	}
	return r.results[len(r.results)-1], true
}

// Total returns the sum of all stage totals.
func (r *Run) Total() float64 {
	var sum float64
	for _, res := range r.results {
		sum += res.Total()
	}
	return sum
}

// Individual maps stage name to stage total. A stage played twice keeps its
// latest total.
func (r *Run) Individual() map[string]float64 {
	out := make(map[string]float64, len(r.results))
	for _, res := range r.results {
		out[res.Name()] = res.Total()
	}
	return out
}
