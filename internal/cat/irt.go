package cat

import "math"

// Probability returns the 2PL probability of a correct response at
// ability theta for an item with discrimination a and difficulty b:
//
//	P(theta) = 1 / (1 + exp(-a*(theta-b)))
func Probability(theta, a, b float64) float64 {
	return 1.0 / (1.0 + math.Exp(-a*(theta-b)))
}

// FisherInformation returns the item information at theta:
//
//	I(theta) = a^2 * P * (1-P)
func FisherInformation(theta, a, b float64) float64 {
	p := Probability(theta, a, b)
	return a * a * p * (1.0 - p)
}

// response pairs an item's parameters with the observed score (0 or 1).
type response struct {
	a, b  float64
	score float64
}

// estimateAbility re-estimates theta from all responses seen so far using
// Newton-Raphson on the posterior with a standard-normal prior (MAP). The
// prior keeps the estimate finite for all-correct or all-incorrect
// response patterns, where plain maximum likelihood diverges.
func estimateAbility(responses []response, start, bound float64, maxIter int) float64 {
	theta := start

	for iter := 0; iter < maxIter; iter++ {
		// First derivative of the log posterior.
		grad := -theta // N(0,1) prior term
		// Second derivative (always negative).
		hess := -1.0

		for _, r := range responses {
			p := Probability(theta, r.a, r.b)
			grad += r.a * (r.score - p)
			hess -= r.a * r.a * p * (1.0 - p)
		}

		step := grad / hess
		theta -= step

		if theta > bound {
			theta = bound
		} else if theta < -bound {
			theta = -bound
		}

		if math.Abs(step) < 1e-6 {
			break
		}
	}

	return theta
}

// standardError derives the SE of the ability estimate from the inverse
// of the total Fisher information across answered items. With no
// information accumulated yet the SE is effectively unbounded.
func standardError(theta float64, responses []response) float64 {
	total := 0.0
	for _, r := range responses {
		total += FisherInformation(theta, r.a, r.b)
	}
	if total <= 0 {
		return math.Inf(1)
	}
	return 1.0 / math.Sqrt(total)
}
