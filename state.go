// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package maxpars

// state.go
//
// The 4-bit ambiguity-set encoding shared by every sequence in the package.
// A site value is a bitmap over {A, C, G, T} with bit weights A=1, C=2,
// G=4, T=8. The 16 possible values correspond one-to-one with the IUPAC
// ambiguity alphabet.

// Bit weights of the four bases within a site value.
const (
	bitA = 1
	bitC = 2
	bitG = 4
	bitT = 8
)

// invalidState marks entries of charToState that are not part of the
// IUPAC alphabet; it cannot be a legal state value since those occupy 0..15.
const invalidState = 0xFF

// stateToChar maps a 4-bit site value (0..15) to its canonical, upper case
// IUPAC ambiguity character.
var stateToChar = [16]byte{
	0:                         '-',
	bitA:                      'A',
	bitC:                      'C',
	bitA | bitC:               'M',
	bitG:                      'G',
	bitA | bitG:               'R',
	bitC | bitG:               'S',
	bitA | bitC | bitG:        'V',
	bitT:                      'T',
	bitA | bitT:               'W',
	bitC | bitT:               'Y',
	bitA | bitC | bitT:        'H',
	bitG | bitT:               'K',
	bitA | bitG | bitT:        'D',
	bitC | bitG | bitT:        'B',
	bitA | bitC | bitG | bitT: 'N',
}

// charToState is the inverse of stateToChar, case-insensitive, plus '?'
// and 'X' mapped to the fully ambiguous state 15 per §3's alphabet
// ("X/N/? = 15"). Built once at init the way the teacher package builds
// its iupacDNAComp complement table.
var charToState [256]byte

// popcount4 is a precomputed population-count (set-bit count) table for
// every 4-bit value, used by absent-state counting (DnaSequenceList's
// CountAbsentStates).
var popcount4 [16]int

func init() {
	for i := range charToState {
		charToState[i] = invalidState
	}
	for state, c := range stateToChar {
		charToState[c] = byte(state)
		if c >= 'A' && c <= 'Z' {
			charToState[c+'a'-'A'] = byte(state)
		}
	}
	charToState['?'] = 15
	charToState['X'] = 15
	charToState['x'] = 15

	for n := range popcount4 {
		count := 0
		for b := n; b != 0; b &= b - 1 {
			count++
		}
		popcount4[n] = count
	}
}

// stateFromChar returns the 4-bit site value for an IUPAC character and
// true, or (0, false) if the character is not part of the alphabet.
func stateFromChar(c byte) (byte, bool) {
	v := charToState[c]
	if v == invalidState {
		return 0, false
	}
	return v, true
}
