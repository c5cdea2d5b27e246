package maxpars

// treeNode is one record of a DnaSequenceTree's flat node array. Parent,
// Left, and Right are -1 where absent (Parent at the root, Left/Right at
// a tip). The optional branch-length pair follows the same HasWeight/
// Weight shape the teacher's PhyloRootedNode uses for an optional arc
// weight in phylo.go.
type treeNode struct {
	Parent    int
	Left      int
	Right     int
	Seq       *DnaSequence
	HasLength bool
	Length    float64
}

func emptyNode() treeNode { return treeNode{Parent: -1, Left: -1, Right: -1} }

// DnaSequenceTree is a rooted bifurcating tree carried as a flat array of
// node records, indexed 0..Length-1 within a fixed capacity
// (len(Nodes)). The root index is not fixed at 0: Add relocates the root
// when the inserted internal node becomes the new root.
//
// Sequences are shared by reference from tips into the tree (see
// DnaSequence.Clone's aliasing note); the tree never mutates a tip
// sequence. Interior-node sequences are written in place by
// FitchParsimony and are only valid for the currently searched partial
// tree.
type DnaSequenceTree struct {
	Nodes  []treeNode
	Length int // number of node slots currently in use
	Root   int // index of the root, or -1 if the tree is empty
}

// NewDnaSequenceTree preallocates a tree with the given fixed capacity.
func NewDnaSequenceTree(capacity int) *DnaSequenceTree {
	if capacity < 1 {
		panic("maxpars: NewDnaSequenceTree: capacity must be positive")
	}
	nodes := make([]treeNode, capacity)
	for i := range nodes {
		nodes[i] = emptyNode()
	}
	return &DnaSequenceTree{Nodes: nodes, Root: -1}
}

// Capacity returns the fixed capacity C the tree was constructed with.
func (t *DnaSequenceTree) Capacity() int { return len(t.Nodes) }

// Len returns the number of node slots currently in use.
func (t *DnaSequenceTree) Len() int { return t.Length }

// Clear resets every node to empty and drops the tree back to zero tips.
func (t *DnaSequenceTree) Clear() {
	for i := range t.Nodes {
		t.Nodes[i] = emptyNode()
	}
	t.Length = 0
	t.Root = -1
}

// Parent returns the parent index of node i, or -1 at the root.
func (t *DnaSequenceTree) Parent(i int) int { return t.Nodes[i].Parent }

// Children returns the two child indices of node i, both -1 iff i is a tip.
func (t *DnaSequenceTree) Children(i int) (left, right int) {
	n := t.Nodes[i]
	return n.Left, n.Right
}

// IsTip reports whether node i has no children.
func (t *DnaSequenceTree) IsTip(i int) bool { return t.Nodes[i].Left == -1 }

// Seq returns the sequence attached to node i, or nil if none has been
// attached yet.
func (t *DnaSequenceTree) Seq(i int) *DnaSequence { return t.Nodes[i].Seq }

// SetSeq attaches seq to node i.
func (t *DnaSequenceTree) SetSeq(i int, seq *DnaSequence) { t.Nodes[i].Seq = seq }

// BranchLength returns the length of the edge above node i and whether
// one has been set. For an unset branch length it returns 0 and false.
func (t *DnaSequenceTree) BranchLength(i int) (length float64, ok bool) {
	n := t.Nodes[i]
	return n.Length, n.HasLength
}

// SetBranchLength sets the length of the edge above node i.
func (t *DnaSequenceTree) SetBranchLength(i int, length float64) {
	t.Nodes[i].HasLength = true
	t.Nodes[i].Length = length
}

// Add attaches seq onto an edge of the tree, or initializes a one-node
// tree if the receiver is empty (§4.3).
//
// If the tree is empty, node 0 becomes a lone root holding seq and Add
// returns 0, ignoring i. Otherwise a new internal node is spliced in at
// index Length (the length before this call) between node i and its
// former parent, a new tip is placed at index Length+1 holding seq, and
// Length increases by 2. The new internal node replaces node i in its
// former parent's child slot; if i was the root, the new internal node
// becomes the root. Add returns the index of the new tip.
//
// Edge numbering: before the call, edge i names "the edge above node i";
// after the call, that edge is split by the new internal node. A tree
// with M tips has 2M-1 edges (the root edge plus two per internal node),
// so signature[i] ranging over 0..2(i-1) enumerates every attachment
// edge of the tree holding i tips exactly once.
func (t *DnaSequenceTree) Add(i int, seq *DnaSequence) int {
	if t.Length == 0 {
		t.Nodes[0] = treeNode{Parent: -1, Left: -1, Right: -1, Seq: seq}
		t.Root = 0
		t.Length = 1
		return 0
	}
	if i < 0 || i >= t.Length {
		panic("maxpars: DnaSequenceTree.Add: node index out of range")
	}
	if t.Length+2 > len(t.Nodes) {
		panic("maxpars: DnaSequenceTree.Add: capacity exceeded")
	}

	newInternal := t.Length
	newTip := t.Length + 1
	parent := t.Nodes[i].Parent

	t.Nodes[newInternal] = treeNode{Parent: parent, Left: i, Right: newTip}
	t.Nodes[newTip] = treeNode{Parent: newInternal, Left: -1, Right: -1, Seq: seq}
	t.Nodes[i].Parent = newInternal

	if parent == -1 {
		t.Root = newInternal
	} else if t.Nodes[parent].Left == i {
		t.Nodes[parent].Left = newInternal
	} else {
		t.Nodes[parent].Right = newInternal
	}

	t.Length += 2
	return newTip
}

// Copy copies src's node records verbatim into the receiver, then clears
// the tail. Sequence pointers are shared by reference with src, not
// cloned. Panics if the receiver's capacity is smaller than src.Length.
func (t *DnaSequenceTree) Copy(src *DnaSequenceTree) {
	if len(t.Nodes) < src.Length {
		panic("maxpars: DnaSequenceTree.Copy: capacity too small")
	}
	copy(t.Nodes, src.Nodes[:src.Length])
	for i := src.Length; i < len(t.Nodes); i++ {
		t.Nodes[i] = emptyNode()
	}
	t.Length = src.Length
	t.Root = src.Root
}

// JoinDnaSequenceTrees builds a new tree whose root is a fresh interior
// node (index 0) with children at offsets t1.Root+1 and t2.Root+N1+1,
// where N1 = t1.Len(). Nodes of t1 are copied into indices 1..N1 with
// parent/child indices shifted by +1; nodes of t2 are copied into
// N1+1..N1+N2 with shift +N1+1. The former roots of t1 and t2 get parent
// 0 instead of -1. Used exclusively by Upgma (§4.3).
func JoinDnaSequenceTrees(t1, t2 *DnaSequenceTree) *DnaSequenceTree {
	n1, n2 := t1.Length, t2.Length
	joined := NewDnaSequenceTree(1 + n1 + n2)
	joined.Nodes[0] = treeNode{
		Parent: -1,
		Left:   t1.Root + 1,
		Right:  t2.Root + n1 + 1,
	}
	copyShifted(joined, t1, 1)
	copyShifted(joined, t2, n1+1)
	joined.Length = 1 + n1 + n2
	joined.Root = 0
	return joined
}

func copyShifted(dst *DnaSequenceTree, src *DnaSequenceTree, shift int) {
	for i := 0; i < src.Length; i++ {
		n := src.Nodes[i]
		out := treeNode{Seq: n.Seq, HasLength: n.HasLength, Length: n.Length}
		if n.Parent == -1 {
			out.Parent = 0
		} else {
			out.Parent = n.Parent + shift
		}
		if n.Left != -1 {
			out.Left = n.Left + shift
		} else {
			out.Left = -1
		}
		if n.Right != -1 {
			out.Right = n.Right + shift
		} else {
			out.Right = -1
		}
		dst.Nodes[i+shift] = out
	}
}
