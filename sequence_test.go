package maxpars_test

import (
	"fmt"
	"testing"

	"github.com/gophylo/maxpars"
)

func ExampleDnaSequence_String() {
	s, _ := maxpars.NewDnaSequenceFromString("s1", "AACA")
	fmt.Println(s.String())
	// Output:
	// AACA
}

func TestNewDnaSequenceFromString_roundTrip(t *testing.T) {
	// every character of the IUPAC alphabet in state.go maps through
	// stateFromChar and back to itself via String.
	const alphabet = "-ACMGRSVTWYHKDBN"
	s, err := maxpars.NewDnaSequenceFromString("alpha", alphabet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.String(); got != alphabet {
		t.Errorf("round trip mismatch: got %q, want %q", got, alphabet)
	}
}

func TestNewDnaSequenceFromString_lowerCaseAndWildcard(t *testing.T) {
	s, err := maxpars.NewDnaSequenceFromString("s", "acgt?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := s.String(), "ACGTN"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewDnaSequenceFromString_xAndWildcardAreFullyAmbiguous(t *testing.T) {
	// §3: X/N/? all denote the fully ambiguous state 15.
	s, err := maxpars.NewDnaSequenceFromString("s", "XxN?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := s.String(), "NNNN"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNewDnaSequenceFromString_invalidSymbol(t *testing.T) {
	if _, err := maxpars.NewDnaSequenceFromString("s", "ACGZ"); err == nil {
		t.Fatal("expected error for invalid symbol, got nil")
	}
}

func TestDnaSequence_Hamming(t *testing.T) {
	a, _ := maxpars.NewDnaSequenceFromString("a", "AAAA")
	b, _ := maxpars.NewDnaSequenceFromString("b", "AACA")
	if d := a.Hamming(b); d != 1 {
		t.Errorf("Hamming = %d, want 1", d)
	}
}

func TestDnaSequence_Hamming_ambiguityByByteNotSet(t *testing.T) {
	// R (A|G) and A differ by raw byte even though A is a member of R's
	// ambiguity set -- Hamming is deliberately byte-equality, not set
	// overlap (spec §4.1).
	a, _ := maxpars.NewDnaSequenceFromString("a", "R")
	b, _ := maxpars.NewDnaSequenceFromString("b", "A")
	if d := a.Hamming(b); d != 1 {
		t.Errorf("Hamming = %d, want 1 (ambiguity codes compare by byte)", d)
	}
}

func TestDnaSequence_Hamming_panicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	a, _ := maxpars.NewDnaSequenceFromString("a", "AAAA")
	b, _ := maxpars.NewDnaSequenceFromString("b", "AAA")
	a.Hamming(b)
}

// The Fitch ancestor of AAAA and AACA takes the union M (A|C) at the one
// disagreeing site and scores a single change.
func TestSetFitchAncestor_pairwise(t *testing.T) {
	a, _ := maxpars.NewDnaSequenceFromString("a", "AAAA")
	b, _ := maxpars.NewDnaSequenceFromString("b", "AACA")
	anc := maxpars.NewDnaSequence(4)
	anc.SetFitchAncestor(a, b)
	if anc.Score != 1 {
		t.Errorf("ancestor score = %d, want 1", anc.Score)
	}
	if got, want := anc.String(), "AAMA"; got != want {
		t.Errorf("ancestor sites = %q, want %q (M = A|C)", got, want)
	}
}

func TestDnaSequence_Equal(t *testing.T) {
	a, _ := maxpars.NewDnaSequenceFromString("x", "ACGT")
	b, _ := maxpars.NewDnaSequenceFromString("x", "ACGT")
	c, _ := maxpars.NewDnaSequenceFromString("x", "ACGA")
	if !a.Equal(b) {
		t.Error("expected a.Equal(b)")
	}
	if a.Equal(c) {
		t.Error("expected !a.Equal(c)")
	}
}

func TestDnaSequence_Clone_aliasesSites(t *testing.T) {
	a, _ := maxpars.NewDnaSequenceFromString("x", "ACGT")
	b := a.Clone()
	if !a.Equal(b) {
		t.Fatal("clone should be equal to source")
	}
	// mutating through the source's Sites slice is visible in the clone,
	// by documented design (§9 Open Questions).
	a.Sites[0] = a.Sites[1]
	if b.Sites[0] != a.Sites[0] {
		t.Error("expected Clone to alias the underlying Sites slice")
	}
}
