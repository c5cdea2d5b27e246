package maxpars

// ComputeScore performs a full post-order Fitch pass over tree: every
// interior node's ancestor sequence is (re)computed bottom-up from its
// two children, and the parsimony score at the root is returned (§4.4).
//
// Tip sequences are read, never written. An interior node's sequence
// slot is allocated on first use, sized from its left child's length;
// subsequent calls reuse and overwrite the same slot.
func ComputeScore(tree *DnaSequenceTree) int {
	if tree.Length == 0 {
		return 0
	}
	computeNode(tree, tree.Root)
	return tree.Seq(tree.Root).Score
}

func computeNode(tree *DnaSequenceTree, i int) {
	if tree.IsTip(i) {
		return
	}
	left, right := tree.Children(i)
	computeNode(tree, left)
	computeNode(tree, right)
	anc := tree.Seq(i)
	if anc == nil {
		anc = NewDnaSequence(tree.Seq(left).L)
		tree.SetSeq(i, anc)
	}
	anc.SetFitchAncestor(tree.Seq(left), tree.Seq(right))
}

// UpdateScore recomputes ancestor sequences along the root-ward chain
// running from tipIndex's parent up to the tree's root, leaving every
// node outside that chain untouched, and returns the updated score at
// the root (§4.4).
//
// This is the incremental counterpart to ComputeScore: branch-and-bound
// search only ever attaches one new tip at a time (DnaSequenceTree.Add),
// which changes ancestor sequences exclusively along the path from the
// new tip to the root. Re-deriving the whole tree after every attach
// would redo work already valid off that path, so search calls
// UpdateScore instead (§4.8).
//
// Unlike ComputeScore, UpdateScore never allocates: scratch supplies a
// preallocated sequence for every position the chain might reach
// (scratch[0] for tipIndex's parent, scratch[1] for its parent, and so
// on), satisfying the no-allocation-in-the-inner-loop resource policy
// (SPEC_FULL.md §5). Each call overwrites scratch's entries in place,
// so two calls sharing a scratch slice must not interleave.
func UpdateScore(tree *DnaSequenceTree, tipIndex int, scratch []*DnaSequence) int {
	i := tree.Parent(tipIndex)
	k := 0
	for i != -1 {
		left, right := tree.Children(i)
		anc := scratch[k]
		tree.SetSeq(i, anc)
		anc.SetFitchAncestor(tree.Seq(left), tree.Seq(right))
		i = tree.Parent(i)
		k++
	}
	return tree.Seq(tree.Root).Score
}
