// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package maxpars

import "fmt"

// DnaSequence holds one row of an aligned DNA matrix as a bitmap-encoded
// site vector, following the same "simple named byte-slice type, methods
// assume the symbol set" convention the teacher package uses for DNA8.
//
// Every byte in Sites is a 4-bit ambiguity code (see state.go); every
// operation that combines two sequences requires equal length and panics
// otherwise, since a length mismatch is a caller bug, not a runtime
// condition to recover from (see §7 of the spec).
type DnaSequence struct {
	L     int
	Sites []byte
	Score int
	Name  string
}

// NewDnaSequence returns a sequence of length n with all sites zeroed
// (the empty/absent state), suitable for an interior tree node that
// Fitch scoring will write into.
func NewDnaSequence(n int) *DnaSequence {
	return &DnaSequence{L: n, Sites: make([]byte, n)}
}

// NewDnaSequenceFromString builds a tip sequence from an IUPAC character
// string, naming it name. It returns an error if the string contains a
// character outside the IUPAC DNA alphabet; '?' and 'X' are accepted as
// the fully ambiguous state.
func NewDnaSequenceFromString(name, s string) (*DnaSequence, error) {
	sites := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := stateFromChar(s[i])
		if !ok {
			return nil, fmt.Errorf("maxpars: sequence %q: invalid symbol %q at site %d", name, s[i], i)
		}
		sites[i] = v
	}
	return &DnaSequence{L: len(s), Sites: sites, Name: name}, nil
}

// Clone returns a shallow copy of the receiver: the new DnaSequence has its
// own header (L, Score, Name) but shares the underlying Sites array with
// the receiver.
//
// This mirrors the source's copy-constructor aliasing exactly (see §9 Open
// Questions): the aliasing is a deliberate, documented convention, not an
// oversight. Callers must never mutate the Sites of a sequence reachable
// through Clone unless they own every alias; in this package, tip
// sequences are loaded once and never mutated after being attached to a
// tree, so the alias is always safe.
func (s *DnaSequence) Clone() *DnaSequence {
	return &DnaSequence{L: s.L, Sites: s.Sites, Score: s.Score, Name: s.Name}
}

// CopySites overwrites the receiver's site vector with a copy of src's,
// panicking if lengths differ.
func (s *DnaSequence) CopySites(src *DnaSequence) {
	if s.L != src.L {
		panic("maxpars: DnaSequence.CopySites: length mismatch")
	}
	copy(s.Sites, src.Sites)
}

// SetScore sets the receiver's score in place.
func (s *DnaSequence) SetScore(score int) { s.Score = score }

// SetName sets the receiver's name in place.
func (s *DnaSequence) SetName(name string) { s.Name = name }

// String satisfies fmt.Stringer, rendering the receiver back to IUPAC text.
func (s *DnaSequence) String() string {
	b := make([]byte, s.L)
	for i, v := range s.Sites {
		b[i] = stateToChar[v&0xF]
	}
	return string(b)
}

// Hamming returns the count of sites where the raw state bytes of s and t
// differ. Ambiguity codes participate by byte inequality, not by set
// difference — this is deliberate (§4.1) and matches the distance used to
// derive Jukes-Cantor inputs.
func (s *DnaSequence) Hamming(t *DnaSequence) int {
	if s.L != t.L {
		panic("maxpars: DnaSequence.Hamming: length mismatch")
	}
	d := 0
	for i, v := range s.Sites {
		if v != t.Sites[i] {
			d++
		}
	}
	return d
}

// SetFitchAncestor builds the receiver, site-wise, as the Fitch ancestor
// of children a and b: the single-pass realization of Fitch's downward
// algorithm that propagates the intersection/union rule through a tree.
//
// For each site i, let s = a.Sites[i] & b.Sites[i]. If s != 0 the ancestor
// takes s; otherwise it takes the union a.Sites[i] | b.Sites[i] and a
// state change is counted. The receiver's Score is set to
// a.Score + b.Score + changes. Panics if any of the three sequences
// differ in length.
func (s *DnaSequence) SetFitchAncestor(a, b *DnaSequence) {
	if s.L != a.L || s.L != b.L {
		panic("maxpars: DnaSequence.SetFitchAncestor: length mismatch")
	}
	changes := 0
	for i := 0; i < s.L; i++ {
		ai, bi := a.Sites[i], b.Sites[i]
		if inter := ai & bi; inter != 0 {
			s.Sites[i] = inter
		} else {
			s.Sites[i] = ai | bi
			changes++
		}
	}
	s.Score = a.Score + b.Score + changes
}

// Equal reports whether s and t have the same length, score, name, and
// site bytes. Unused by the search core; present for test harnesses and
// tree deduplication, as the spec allows (§4.1).
func (s *DnaSequence) Equal(t *DnaSequence) bool {
	if s.L != t.L || s.Score != t.Score || s.Name != t.Name {
		return false
	}
	for i, v := range s.Sites {
		if v != t.Sites[i] {
			return false
		}
	}
	return true
}
