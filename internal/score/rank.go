package score

// Rank is the performance band a run total falls into.
type Rank struct {
	Title   string
	Tagline string
	Level   int // 0 is best
}

var ranks = []struct {
	below float64
	rank  Rank
}{
	{90, Rank{"Fantastic Skills", "You're basically a consulting superhero!", 0}},
	{120, Rank{"Good", "Solid performance - you'd survive a real client crisis!", 1}},
	{150, Rank{"Average", "Not bad, but maybe skip the coffee breaks next time.", 2}},
	{180, Rank{"Room for Improvement", "Time to hit the consulting gym!", 3}},
}

// RankFor returns the performance band for a run total in seconds.
func RankFor(total float64) Rank {
	for _, r := range ranks {
		if total < r.below {
			return r.rank
		}
	}
	return Rank{"Back to Training", "Even interns are faster than this...", 4}
}
