package environment

import "gonum.org/v1/gonum/floats"

// Outcome is one possible successor of a transition together with its
// probability
type Outcome struct {
	Successor   Coordinate
	Probability float64
}

// Distribution is a finite distribution over successor cells. The
// probabilities of a well-formed Distribution sum to 1.
type Distribution []Outcome

// Probabilities returns the outcome probabilities in outcome order,
// suitable as weights for a categorical distribution
func (d Distribution) Probabilities() []float64 {
	p := make([]float64, len(d))
	for i := range d {
		p[i] = d[i].Probability
	}
	return p
}

// Sum returns the total probability mass of d
func (d Distribution) Sum() float64 {
	return floats.Sum(d.Probabilities())
}

// Expect returns Σ P(s') f(s') over the outcomes of d
func (d Distribution) Expect(f func(Coordinate) float64) float64 {
	var e float64
	for _, o := range d {
		e += o.Probability * f(o.Successor)
	}
	return e
}
