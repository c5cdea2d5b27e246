// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package maxpars

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/soniakeys/multiset"
)

// DnaSequenceList is a collection of DnaSequence, all of equal length L,
// following the teacher package's convention of a simple named slice type
// with methods that assume a shared shape (compare DNA8List, Kmers).
//
// Unlike the teacher's list types, DnaSequenceList additionally carries a
// lazily computed informative-site analysis: an informative-site bitmap,
// a count of informative sites, and the count of state changes
// contributed by the uninformative sites. These are computed once and
// cached until ExciseUninformativeSites invalidates them.
type DnaSequenceList struct {
	Seqs []*DnaSequence
	L    int

	analyzed             bool
	informative          *bitset.BitSet
	nInformative         int
	uninformativeChanges int
}

// NewDnaSequenceList builds a list from seqs, requiring a non-empty slice
// of sequences all of equal length. Returns an error (this validates
// untrusted input assembled by a loader, not a caller precondition) if
// the list is empty or lengths differ.
func NewDnaSequenceList(seqs []*DnaSequence) (*DnaSequenceList, error) {
	if len(seqs) == 0 {
		return nil, fmt.Errorf("maxpars: NewDnaSequenceList: empty sequence list")
	}
	l := seqs[0].L
	for _, s := range seqs[1:] {
		if s.L != l {
			return nil, fmt.Errorf("maxpars: NewDnaSequenceList: sequence %q has length %d, want %d", s.Name, s.L, l)
		}
	}
	return &DnaSequenceList{Seqs: seqs, L: l}, nil
}

// Len returns the number of sequences in the list.
func (list *DnaSequenceList) Len() int { return len(list.Seqs) }

// analyze computes the informative-site bitmap, its cardinality, and the
// uninformative-site change count, caching the result until invalidated.
//
// A site is informative when at least two distinct states each occur in
// at least two sequences (§3, §4.2). The per-site tally of how many
// sequences carry each of the (up to 16) ambiguity codes is naturally a
// multiset cardinality query, so it is built with soniakeys/multiset
// rather than a hand-rolled map[byte]int.
func (list *DnaSequenceList) analyze() {
	if list.analyzed {
		return
	}
	informative := bitset.New(uint(list.L))
	nInformative := 0
	uninformativeChanges := 0
	for site := 0; site < list.L; site++ {
		counts := multiset.Multiset{}
		for _, s := range list.Seqs {
			counts[s.Sites[site]]++
		}
		distinct := len(counts)
		atLeastTwo := 0
		for _, c := range counts {
			if c >= 2 {
				atLeastTwo++
			}
		}
		if atLeastTwo >= 2 {
			informative.Set(uint(site))
			nInformative++
		} else {
			uninformativeChanges += distinct - 1
		}
	}
	list.informative = informative
	list.nInformative = nInformative
	list.uninformativeChanges = uninformativeChanges
	list.analyzed = true
}

// NInformativeSites returns the number of sites at which at least two
// distinct states each occur in at least two sequences.
func (list *DnaSequenceList) NInformativeSites() int {
	list.analyze()
	return list.nInformative
}

// InformativeSites returns the lazily computed informative-site bitmap.
// Bit i is set iff site i is informative.
func (list *DnaSequenceList) InformativeSites() *bitset.BitSet {
	list.analyze()
	return list.informative
}

// UninformativeChangeCount returns the sum, over uninformative sites, of
// (distinct states at that site − 1). These state changes are unavoidable
// on any tree topology and can be excised from the scored alignment
// without affecting the optimal topology (§4.2).
func (list *DnaSequenceList) UninformativeChangeCount() int {
	list.analyze()
	return list.uninformativeChanges
}

// ExciseUninformativeSites replaces every member's site vector with its
// projection onto the informative sites, and resets the informative-site
// bitmap to all-true (every remaining site is informative by
// construction). Returns the uninformative-site change count that the
// caller must add back to any subsequent parsimony score computed over
// the reduced alignment to recover the true score over the original one.
func (list *DnaSequenceList) ExciseUninformativeSites() int {
	list.analyze()
	changes := list.uninformativeChanges
	n := list.nInformative

	reduced := make([][]byte, len(list.Seqs))
	for i, s := range list.Seqs {
		ns := make([]byte, 0, n)
		for site := 0; site < list.L; site++ {
			if list.informative.Test(uint(site)) {
				ns = append(ns, s.Sites[site])
			}
		}
		reduced[i] = ns
	}
	for i, s := range list.Seqs {
		s.Sites = reduced[i]
		s.L = n
	}
	list.L = n

	allTrue := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		allTrue.Set(uint(i))
	}
	list.informative = allTrue
	list.nInformative = n
	list.uninformativeChanges = 0
	list.analyzed = true
	return changes
}

// CountAbsentStates returns an array A of length len(list.Seqs) where A[i]
// is the number of state bits, summed over every site, that have not yet
// appeared in the union of sequences 0..i (inclusive) — the number of
// bits present somewhere in the full tip set but not reachable by any
// sequence already placed at step i (§4.2).
//
// For each site independently: let U be the bitwise OR of that site's
// state across every sequence. Maintain a running value R, initialized
// to U; at step i, first clear from R every bit present in sequence i's
// state at that site, then add popcount(R) into A[i]. Each site
// contributes independently since the Fitch score, and therefore the
// lower bound on remaining work, is additive across sites.
func (list *DnaSequenceList) CountAbsentStates() []int {
	n := len(list.Seqs)
	a := make([]int, n)
	for site := 0; site < list.L; site++ {
		var union byte
		for _, s := range list.Seqs {
			union |= s.Sites[site]
		}
		r := union
		for i := 0; i < n; i++ {
			r &^= list.Seqs[i].Sites[site]
			a[i] += popcount4[r&0xF]
		}
	}
	return a
}

// ToTree constructs a tree of capacity 2*len(signature)-1 (the full
// capacity for len(signature) tips) and replays signature by calling
// Add(signature[i], list.Seqs[i]) for i from 0 to len(signature)-1.
func (list *DnaSequenceList) ToTree(signature []int) *DnaSequenceTree {
	n := len(signature)
	tree := NewDnaSequenceTree(2*n - 1)
	for i := 0; i < n; i++ {
		tree.Add(signature[i], list.Seqs[i])
	}
	return tree
}
