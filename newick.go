package maxpars

import (
	"fmt"
	"strconv"
	"strings"
)

// Newick serializes the tree to Newick format: nested parens for
// interior nodes, tip names at the leaves, and ":length" suffixes
// wherever a branch length has been set. Grounded on the teacher's
// NewickTree.String (newick.go) for the name:weight rendering
// convention, adapted to recurse directly over our parent/child array
// rather than assembling from a leaf-bitset outward (§4.11 peripheral;
// Newick serialization is not part of the core search).
func (t *DnaSequenceTree) Newick() string {
	if t.Length == 0 {
		return ";"
	}
	var b strings.Builder
	t.writeNewick(&b, t.Root)
	b.WriteByte(';')
	return b.String()
}

func (t *DnaSequenceTree) writeNewick(b *strings.Builder, i int) {
	if t.IsTip(i) {
		if seq := t.Seq(i); seq != nil {
			b.WriteString(seq.Name)
		}
	} else {
		left, right := t.Children(i)
		b.WriteByte('(')
		t.writeNewick(b, left)
		b.WriteByte(',')
		t.writeNewick(b, right)
		b.WriteByte(')')
	}
	if length, ok := t.BranchLength(i); ok {
		fmt.Fprintf(b, ":%g", length)
	}
}

type newickBuildNode struct {
	parent, left, right int
	name                string
	hasLength           bool
	length              float64
}

type newickParser struct {
	rem   string
	tok   string
	nodes []newickBuildNode
}

// ParseNewick parses s, which must be terminated with a semicolon, into
// a DnaSequenceTree. Tip DnaSequences are created with their parsed
// name and zero length (ParseNewick carries topology and branch
// lengths, not site data — pair the result with a DnaSequenceList
// keyed by name to attach real sequences). Every internal node in s
// must have exactly two children: ParseNewick rejects polytomies, since
// multi-furcating trees are outside this package's scope (§4.11, and
// see the Non-goals on unrooted and multi-furcating representations).
//
// Grounded on the teacher's newickParser (newick.go): the same
// single-lookahead tokenizer over '(', ')', ',' delimiters, and the
// same name:weight suffix parsing.
func ParseNewick(s string) (*DnaSequenceTree, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("maxpars: ParseNewick: empty input")
	}
	last := len(s) - 1
	if s[last] != ';' {
		return nil, fmt.Errorf("maxpars: ParseNewick: not terminated with ';'")
	}
	p := &newickParser{rem: strings.TrimSpace(s[:last])}
	if p.rem == "" {
		return nil, fmt.Errorf("maxpars: ParseNewick: empty tree")
	}
	p.nodes = []newickBuildNode{{parent: -1, left: -1, right: -1}}
	p.gettok()
	if err := p.parseSubtree(0); err != nil {
		return nil, err
	}
	if p.rem != "" {
		return nil, fmt.Errorf("maxpars: ParseNewick: unparsed text follows complete tree: %q", p.rem)
	}
	return p.build()
}

func (p *newickParser) gettok() {
	if p.rem == "" {
		p.tok = ""
		return
	}
	switch p.rem[0] {
	case '(', ')', ',':
		p.tok = string(p.rem[0])
		p.rem = strings.TrimSpace(p.rem[1:])
		return
	}
	if x := strings.IndexAny(p.rem, "(),"); x > 0 {
		p.tok = strings.TrimSpace(p.rem[:x])
		p.rem = p.rem[x:]
	} else {
		p.tok = p.rem
		p.rem = ""
	}
}

func (p *newickParser) parseSubtree(n int) error {
	if p.tok == "(" {
		return p.parseSet(n)
	}
	if p.tok != ")" && p.tok != "," && p.tok != "" {
		return p.nameWeight(n)
	}
	return nil
}

func (p *newickParser) nameWeight(n int) error {
	nd := &p.nodes[n]
	tok := p.tok
	if w := strings.Index(tok, ":"); w >= 0 {
		length, err := strconv.ParseFloat(tok[w+1:], 64)
		if err != nil {
			return fmt.Errorf("maxpars: ParseNewick: invalid branch length %q: %w", tok[w+1:], err)
		}
		nd.length = length
		nd.hasLength = true
		tok = tok[:w]
	}
	nd.name = tok
	p.gettok()
	return nil
}

func (p *newickParser) parseSet(n int) error {
	p.gettok() // consume '('
	var children []int
	for {
		cn := len(p.nodes)
		p.nodes = append(p.nodes, newickBuildNode{parent: n, left: -1, right: -1})
		if err := p.parseSubtree(cn); err != nil {
			return err
		}
		children = append(children, cn)
		if p.tok != "," {
			break
		}
		p.gettok()
	}
	if p.tok != ")" {
		return fmt.Errorf("maxpars: ParseNewick: expected ')'")
	}
	if len(children) != 2 {
		return fmt.Errorf("maxpars: ParseNewick: node has %d children, want 2 (multi-furcating trees are out of scope)", len(children))
	}
	p.nodes[n].left, p.nodes[n].right = children[0], children[1]
	p.gettok() // consume ')'
	switch p.tok {
	case ")", ",", "":
		return nil
	}
	return p.nameWeight(n)
}

func (p *newickParser) build() (*DnaSequenceTree, error) {
	tree := NewDnaSequenceTree(len(p.nodes))
	for i, nd := range p.nodes {
		tree.Nodes[i] = treeNode{
			Parent:    nd.parent,
			Left:      nd.left,
			Right:     nd.right,
			HasLength: nd.hasLength,
			Length:    nd.length,
		}
		if nd.left == -1 {
			seq, err := NewDnaSequenceFromString(nd.name, "")
			if err != nil {
				return nil, err
			}
			tree.Nodes[i].Seq = seq
		}
	}
	tree.Length = len(p.nodes)
	tree.Root = 0
	return tree, nil
}
