package maxpars

import "math"

// Upgma builds a rooted ultrametric tree over list's sequences by
// standard agglomerative clustering with arithmetic-mean distance
// update (§4.6), grounded on the teacher's DistanceMatrix.UPGMA
// (dist_matrix.go): the closest-pair search, the (n[i]*D[i][m] +
// n[j]*D[j][m]) / (n[i]+n[j]) update rule, and the row/column removal
// on merge all follow that method directly. It differs from the
// teacher in two ways: subtrees are joined into a DnaSequenceTree via
// JoinDnaSequenceTrees rather than accumulated into a flat parent list,
// and each merge's edge lengths are computed directly (newHeight minus
// each child's own height, both already known at merge time) rather
// than stashed as a raw height to be converted by a second pass — the
// two are mathematically identical, but the inline version needs no
// recursive conversion pass over the finished tree.
//
// dist is used to derive the initial pairwise distance matrix from
// list's sequences (typically a JukesCantor or HammingDistance).
func Upgma(list *DnaSequenceList, dist Distance) *DnaSequenceTree {
	n := list.Len()
	if n == 0 {
		panic("maxpars: Upgma: empty sequence list")
	}
	if n == 1 {
		tree := NewDnaSequenceTree(1)
		tree.Add(0, list.Seqs[0])
		return tree
	}

	roots := make([]*DnaSequenceTree, n)
	heights := make([]float64, n)
	sizes := make([]int, n)
	D := make([][]float64, n)
	for i := 0; i < n; i++ {
		tree := NewDnaSequenceTree(1)
		tree.Add(0, list.Seqs[i])
		roots[i] = tree
		sizes[i] = 1
		D[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				D[i][j] = dist.Distance(list.Seqs[i], list.Seqs[j])
			}
		}
	}

	for len(roots) > 1 {
		// closest pair, ties broken by lowest i then lowest j (§4.6)
		min := math.Inf(1)
		d1, d2 := -1, -1
		for i := 1; i < len(D); i++ {
			for j := 0; j < i; j++ {
				if D[i][j] < min {
					min = D[i][j]
					d1, d2 = j, i
				}
			}
		}

		newHeight := min / 2
		roots[d1].SetBranchLength(roots[d1].Root, newHeight-heights[d1])
		roots[d2].SetBranchLength(roots[d2].Root, newHeight-heights[d2])

		m1, m2 := sizes[d1], sizes[d2]
		m3 := m1 + m2
		joined := JoinDnaSequenceTrees(roots[d1], roots[d2])

		di1, di2 := D[d1], D[d2]
		for j, dij := range di1 {
			if j != d1 && j != d2 {
				d := (dij*float64(m1) + di2[j]*float64(m2)) / float64(m3)
				di1[j] = d
				D[j][d1] = d
			}
		}

		roots[d1] = joined
		heights[d1] = newHeight
		sizes[d1] = m3

		roots = append(roots[:d2], roots[d2+1:]...)
		heights = append(heights[:d2], heights[d2+1:]...)
		sizes = append(sizes[:d2], sizes[d2+1:]...)
		D = append(D[:d2], D[d2+1:]...)
		for i := range D {
			D[i] = append(D[i][:d2], D[i][d2+1:]...)
		}
	}

	return roots[0]
}
