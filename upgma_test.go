package maxpars_test

import (
	"testing"

	"github.com/gophylo/maxpars"
)

type fixedDistance [][]float64

func (d fixedDistance) Distance(a, b *maxpars.DnaSequence) float64 {
	ia, ib := int(a.Sites[0]), int(b.Sites[0])
	return d[ia][ib]
}

// Scenario F (spec §8): three tips with D(0,1)=2, D(0,2)=4, D(1,2)=4.
// UPGMA first merges {0,1} at height 1 (new distance to 2 becomes 4),
// then merges at height 2. Final branch lengths: tip0=1, tip1=1,
// interior=1, tip2=2.
func TestUpgma_scenarioF(t *testing.T) {
	seqs := []*maxpars.DnaSequence{
		mustSeq(t, "s0", "A"), // bit 1
		mustSeq(t, "s1", "C"), // bit 2
		mustSeq(t, "s2", "G"), // bit 4
	}
	list, err := maxpars.NewDnaSequenceList(seqs)
	if err != nil {
		t.Fatal(err)
	}

	// index the fixed matrix by raw state byte so fixedDistance.Distance
	// can look values up directly from the sequences it's handed.
	d := make(fixedDistance, 16)
	for i := range d {
		d[i] = make([]float64, 16)
	}
	set := func(a, b byte, v float64) { d[a][b] = v; d[b][a] = v }
	set(1, 2, 2) // A-C: tips 0,1
	set(1, 4, 4) // A-G: tips 0,2
	set(2, 4, 4) // C-G: tips 1,2

	tree := maxpars.Upgma(list, d)
	if tree.Len() != 5 {
		t.Fatalf("tree.Len() = %d, want 5 (3 tips + 2 interior)", tree.Len())
	}

	root := tree.Root
	left, right := tree.Children(root)
	// the root's two children are the {s0,s1} cluster and tip s2, in
	// some order; find which side is the cluster.
	var cluster, tipG int
	if tree.IsTip(left) {
		tipG, cluster = left, right
	} else {
		tipG, cluster = right, left
	}

	if length, ok := tree.BranchLength(tipG); !ok || length != 2 {
		t.Errorf("tip s2 branch length = %v (ok=%v), want 2", length, ok)
	}
	if length, ok := tree.BranchLength(cluster); !ok || length != 1 {
		t.Errorf("interior branch length = %v (ok=%v), want 1", length, ok)
	}

	cl, cr := tree.Children(cluster)
	for _, tip := range []int{cl, cr} {
		if !tree.IsTip(tip) {
			t.Fatalf("expected both children of cluster to be tips")
		}
		if length, ok := tree.BranchLength(tip); !ok || length != 1 {
			t.Errorf("tip under cluster branch length = %v (ok=%v), want 1", length, ok)
		}
	}
}

func TestUpgma_singleSequence(t *testing.T) {
	list, err := maxpars.NewDnaSequenceList([]*maxpars.DnaSequence{mustSeq(t, "s0", "A")})
	if err != nil {
		t.Fatal(err)
	}
	tree := maxpars.Upgma(list, maxpars.HammingDistance{})
	if tree.Len() != 1 {
		t.Errorf("tree.Len() = %d, want 1", tree.Len())
	}
}
