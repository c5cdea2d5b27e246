package maxpars_test

import (
	"strings"
	"testing"

	"github.com/gophylo/maxpars"
)

func TestDnaSequenceTree_Newick_roundTripsTopology(t *testing.T) {
	seqs := []*maxpars.DnaSequence{
		mustSeq(t, "A", "A"),
		mustSeq(t, "B", "A"),
		mustSeq(t, "C", "C"),
	}
	list, err := maxpars.NewDnaSequenceList(seqs)
	if err != nil {
		t.Fatal(err)
	}
	tree := list.ToTree([]int{0, 0, 0})
	tree.SetBranchLength(tree.Root, 0) // exercise the ":length" rendering path

	s := tree.Newick()
	if !strings.HasSuffix(s, ";") {
		t.Fatalf("Newick output %q missing terminating ';'", s)
	}
	for _, name := range []string{"A", "B", "C"} {
		if !strings.Contains(s, name) {
			t.Errorf("Newick output %q missing tip name %q", s, name)
		}
	}

	parsed, err := maxpars.ParseNewick(s)
	if err != nil {
		t.Fatalf("ParseNewick(%q): %v", s, err)
	}
	if parsed.Len() != tree.Len() {
		t.Errorf("parsed.Len() = %d, want %d", parsed.Len(), tree.Len())
	}
}

func TestParseNewick_rejectsMissingSemicolon(t *testing.T) {
	if _, err := maxpars.ParseNewick("(A,B)"); err == nil {
		t.Fatal("expected error for input missing terminating ';'")
	}
}

func TestParseNewick_rejectsPolytomy(t *testing.T) {
	if _, err := maxpars.ParseNewick("(A,B,C);"); err == nil {
		t.Fatal("expected error for a three-child (multi-furcating) node")
	}
}

func TestParseNewick_simpleTopology(t *testing.T) {
	tree, err := maxpars.ParseNewick("(A,B);")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	if tree.Len() != 3 {
		t.Fatalf("tree.Len() = %d, want 3", tree.Len())
	}
	left, right := tree.Children(tree.Root)
	names := []string{tree.Seq(left).Name, tree.Seq(right).Name}
	if names[0] != "A" || names[1] != "B" {
		t.Errorf("tip names = %v, want [A B]", names)
	}
}

func TestParseNewick_branchLengths(t *testing.T) {
	tree, err := maxpars.ParseNewick("(A:1.5,B:2.5):0;")
	if err != nil {
		t.Fatalf("ParseNewick: %v", err)
	}
	left, right := tree.Children(tree.Root)
	if length, ok := tree.BranchLength(left); !ok || length != 1.5 {
		t.Errorf("left branch length = %v (ok=%v), want 1.5", length, ok)
	}
	if length, ok := tree.BranchLength(right); !ok || length != 2.5 {
		t.Errorf("right branch length = %v (ok=%v), want 2.5", length, ok)
	}
}
