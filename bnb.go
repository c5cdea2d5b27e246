package maxpars

import "context"

// MaximumParsimonyBnb is the branch-and-bound search driver over
// DnaSequenceList.ToTree signatures, scored by the Fitch parsimony
// score and pruned with the absent-states lookahead bound (§4.8).
//
// Following the dedicated-engine idiom (rather than a closure-heavy
// recursive walk): every field the search touches is preallocated at
// construction and owned exclusively by this struct, so the inner loop
// performs no allocation (§5).
type MaximumParsimonyBnb struct {
	list   *DnaSequenceList
	n      int
	c      int // capacity = 2n-1
	absent []int

	treeStack []*DnaSequenceTree
	scratch   [][]*DnaSequence // scratch[level] holds level scratch sequences
	signature []int
	level     int

	results *MaximumParsimonyResults
	steps   int
}

// NewMaximumParsimonyBnb precomputes every search-time allocation: N
// preallocated trees of capacity C=2N-1, a jagged stack of scratch
// sequence arrays (row i has i scratch sequences, enough for the
// longest root-ward chain produced by attaching tip i), the
// absent-states lookahead array, and the signature buffer. list must
// already have had ExciseUninformativeSites applied.
//
// bound seeds results via ReduceScore — typically the score of a
// heuristic starting tree (e.g. from Upgma and ComputeScore) so the
// very first branches found already prune hard.
func NewMaximumParsimonyBnb(list *DnaSequenceList, bound int, results *MaximumParsimonyResults) *MaximumParsimonyBnb {
	n := list.Len()
	if n < 2 {
		panic("maxpars: NewMaximumParsimonyBnb: need at least two tips")
	}
	c := 2*n - 1

	treeStack := make([]*DnaSequenceTree, n)
	for i := range treeStack {
		treeStack[i] = NewDnaSequenceTree(c)
	}

	scratch := make([][]*DnaSequence, n)
	for i := 1; i < n; i++ {
		row := make([]*DnaSequence, i)
		for k := range row {
			row[k] = NewDnaSequence(list.L)
		}
		scratch[i] = row
	}

	signature := make([]int, n)
	for i := 1; i < n; i++ {
		signature[i] = -1
	}

	results.ReduceScore(bound)

	b := &MaximumParsimonyBnb{
		list:      list,
		n:         n,
		c:         c,
		absent:    list.CountAbsentStates(),
		treeStack: treeStack,
		scratch:   scratch,
		signature: signature,
		level:     1,
		results:   results,
	}
	b.treeStack[0].Add(0, list.Seqs[0])
	return b
}

// Results returns the accumulator passed to NewMaximumParsimonyBnb.
func (b *MaximumParsimonyBnb) Results() *MaximumParsimonyResults { return b.results }

// checkInterval bounds how often Run polls ctx.Err(), following the
// teacher corpus's sparse-deadline-check idiom (a context check on
// every search-graph node would dominate runtime on small alignments).
const checkInterval = 4096

// Run executes the search to completion, recording every optimal
// signature into Results(). It polls ctx for cancellation every
// checkInterval search-graph nodes rather than on each one, and returns
// ctx.Err() if cancellation was observed; a nil return means the search
// ran to completion (§5: cooperative cancellation without altering
// correctness).
func (b *MaximumParsimonyBnb) Run(ctx context.Context) error {
	n := b.n
	for b.level > 0 {
		b.steps++
		if b.steps == 1 || b.steps%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		level := b.level
		switch {
		case level == n:
			prevTree := b.treeStack[level-1]
			score := prevTree.Seq(prevTree.Root).Score
			b.results.Add(b.signature[:level], score)
			b.level--

		case b.signature[level] == 2*(level-1):
			b.signature[level] = -1
			b.level--

		default:
			b.signature[level]++
			b.treeStack[level].Copy(b.treeStack[level-1])
			tipIndex := b.treeStack[level].Add(b.signature[level], b.list.Seqs[level])
			partialScore := UpdateScore(b.treeStack[level], tipIndex, b.scratch[level])
			if partialScore+b.absent[level] <= b.results.Score {
				b.level++
			}
		}
	}
	return nil
}
