package maxpars

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPhylip reads interleaved PHYLIP format from r into a
// DnaSequenceList (§6, §4.11 peripheral). The first line gives the
// species count S (≥2) and site count N (≥1) as two whitespace-
// separated integers; data follows in groups of S lines, the first
// group carrying a 10-character fixed-width name field per line,
// subsequent groups carrying sites only. Blank lines are ignored. Sites
// use the case-insensitive IUPAC alphabet plus '?' (fully ambiguous)
// and '.' ("same state as species 1 at this position"); '.' is
// rejected in species 1 itself and past species 1's own site count.
//
// Grounded on the teacher's ReadFASTA (fasta.go): the same whole-file,
// line-oriented, minimal-frills reading style, adapted to PHYLIP's
// fixed first-group name field and interleaved site blocks instead of
// FASTA's '>' headers.
func ReadPhylip(r io.Reader) (*DnaSequenceList, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		header = line
		break
	}
	if header == "" {
		return nil, fmt.Errorf("maxpars: ReadPhylip: empty input")
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, fmt.Errorf("maxpars: ReadPhylip: header %q: want two integers", header)
	}
	s, err := strconv.Atoi(fields[0])
	if err != nil || s < 2 {
		return nil, fmt.Errorf("maxpars: ReadPhylip: invalid species count %q", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 {
		return nil, fmt.Errorf("maxpars: ReadPhylip: invalid site count %q", fields[1])
	}

	names := make([]string, s)
	sites := make([][]byte, s)
	for i := range sites {
		sites[i] = make([]byte, 0, n)
	}

	row := 0
	firstGroup := true
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		var dataField string
		if firstGroup {
			if len(line) < 10 {
				return nil, fmt.Errorf("maxpars: ReadPhylip: species %d: name field shorter than 10 characters", row+1)
			}
			names[row] = strings.TrimSpace(line[:10])
			dataField = line[10:]
		} else {
			dataField = line
		}
		dataField = strings.Join(strings.Fields(dataField), "")

		for i := 0; i < len(dataField); i++ {
			c := dataField[i]
			var state byte
			if c == '.' {
				if row == 0 {
					return nil, fmt.Errorf("maxpars: ReadPhylip: species 1 cannot use '.'")
				}
				idx := len(sites[row])
				if idx >= len(sites[0]) {
					return nil, fmt.Errorf("maxpars: ReadPhylip: species %d: '.' past species 1's site count", row+1)
				}
				state = sites[0][idx]
			} else {
				v, ok := stateFromChar(c)
				if !ok {
					return nil, fmt.Errorf("maxpars: ReadPhylip: species %d: unknown character %q", row+1, c)
				}
				state = v
			}
			sites[row] = append(sites[row], state)
			if len(sites[row]) > n {
				return nil, fmt.Errorf("maxpars: ReadPhylip: species %d: too many sites", row+1)
			}
		}

		row++
		if row == s {
			row = 0
			firstGroup = false
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	seqs := make([]*DnaSequence, s)
	for i := 0; i < s; i++ {
		if len(sites[i]) != n {
			return nil, fmt.Errorf("maxpars: ReadPhylip: species %d: got %d sites, want %d", i+1, len(sites[i]), n)
		}
		seqs[i] = &DnaSequence{L: n, Sites: sites[i], Name: names[i]}
	}
	return NewDnaSequenceList(seqs)
}
