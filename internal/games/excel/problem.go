// Package excel implements the Excel Fire Drill: a fixed number of mental
// arithmetic problems, each wrong answer costing a time penalty.
package excel

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/consulting-chaos/internal/config"
)

// Kind is the arithmetic operation of a problem.
type Kind int

const (
	KindSum Kind = iota
	KindDiff
	KindProduct
	KindQuotient
)

var kindNames = [...]string{"sum", "diff", "prod", "div"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Problem is a single arithmetic question with an integer answer.
type Problem struct {
	Kind   Kind
	A, B   int // Operands as shown in the prompt
	Answer int
}

// Sum builds "a + b".
func Sum(a, b int) Problem { return Problem{Kind: KindSum, A: a, B: b, Answer: a + b} }

// Diff builds "a - b". The answer may be negative.
func Diff(a, b int) Problem { return Problem{Kind: KindDiff, A: a, B: b, Answer: a - b} }

// Product builds "a × b".
func Product(a, b int) Problem { return Problem{Kind: KindProduct, A: a, B: b, Answer: a * b} }

// Quotient builds "(divisor*quotient) ÷ divisor" so the answer is always an integer.
func Quotient(divisor, quotient int) Problem {
	return Problem{Kind: KindQuotient, A: divisor * quotient, B: divisor, Answer: quotient}
}

// Prompt renders the question, e.g. "15 + 27 = ?".
func (p Problem) Prompt() string {
	op := "+"
	switch p.Kind {
	case KindDiff:
		op = "-"
	case KindProduct:
		op = "×"
	case KindQuotient:
		op = "÷"
	}
	return fmt.Sprintf("%d %s %d = ?", p.A, op, p.B)
}

// Generate draws a random problem using the configured operand ranges.
func Generate(rng *rand.Rand, cfg config.ExcelConfig) Problem {
	switch Kind(rng.Intn(4)) {
	case KindSum:
		return Sum(between(rng, cfg.AddMin, cfg.AddMax), between(rng, cfg.AddMin, cfg.AddMax))
	case KindDiff:
		return Diff(between(rng, cfg.AddMin, cfg.AddMax), between(rng, cfg.AddMin, cfg.AddMax))
	case KindProduct:
		return Product(between(rng, cfg.MulMin, cfg.MulMax), between(rng, cfg.MulMin, cfg.MulMax))
	default:
		return Quotient(between(rng, cfg.MulMin, cfg.MulMax), between(rng, cfg.MulMin, cfg.MulMax))
	}
}

// between returns a uniform int in [lo, hi].
func between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
