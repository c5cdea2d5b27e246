package maxpars

import "math"

// noScore is the +Inf sentinel for an accumulator that has not yet
// recorded any signature.
const noScore = math.MaxInt

// NoBound seeds a search with no initial bound: every signature found
// is strictly better than NoBound, so ReduceScore(NoBound) is a no-op
// and the first complete tree scored becomes the incumbent.
const NoBound = noScore

// MaximumParsimonyResults is a bounded best-so-far accumulator: it
// keeps every signature tied for the best Fitch score seen so far, up
// to a fixed capacity, and silently drops ties beyond that (§4.7).
type MaximumParsimonyResults struct {
	Score      int
	Signatures [][]int
	Capacity   int
}

// NewMaximumParsimonyResults returns an empty accumulator with the
// given capacity and its score at the +Inf sentinel.
func NewMaximumParsimonyResults(capacity int) *MaximumParsimonyResults {
	return &MaximumParsimonyResults{Score: noScore, Capacity: capacity}
}

// Add records (signature, score): if score improves on the current
// best, every previously recorded signature is discarded and the best
// score is lowered; if score equals the (possibly just-lowered) best
// and the accumulator has room, a copy of signature is appended. Ties
// beyond Capacity are silently dropped; insertion order is preserved
// and there is no deduplication.
func (r *MaximumParsimonyResults) Add(signature []int, score int) {
	if score < r.Score {
		r.Signatures = r.Signatures[:0]
		r.Score = score
	}
	if score == r.Score && len(r.Signatures) < r.Capacity {
		cp := make([]int, len(signature))
		copy(cp, signature)
		r.Signatures = append(r.Signatures, cp)
	}
}

// AddAll replays other's entries into the receiver in order, as if
// each had been passed to Add individually.
func (r *MaximumParsimonyResults) AddAll(other *MaximumParsimonyResults) {
	for _, sig := range other.Signatures {
		r.Add(sig, other.Score)
	}
}

// ReduceScore installs s as an initial bound if it improves on the
// current best, discarding any recorded signatures (they no longer tie
// the new best). Used to seed the search with a bound derived from a
// heuristic tree (e.g. one built by Upgma) before branch-and-bound
// search begins.
func (r *MaximumParsimonyResults) ReduceScore(s int) {
	if s < r.Score {
		r.Signatures = r.Signatures[:0]
		r.Score = s
	}
}

// Clear drops every recorded signature and resets the score to the
// +Inf sentinel.
func (r *MaximumParsimonyResults) Clear() {
	r.Signatures = r.Signatures[:0]
	r.Score = noScore
}
