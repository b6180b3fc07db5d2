package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/planarmis/dcel"
)

// Load reads r in the graphio format and returns a dcel.Builder with
// every half-edge already added, in file order, ready for Build.
func Load(r io.Reader) (*dcel.Builder, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	n, err := readInt(scanner, "vertex count")
	if err != nil {
		return nil, err
	}
	m, err := readInt(scanner, "edge count")
	if err != nil {
		return nil, err
	}
	_ = n

	b := dcel.NewBuilder()
	for i := 0; i < 2*m; i++ {
		u, v, err := readPair(scanner)
		if err != nil {
			return nil, fmt.Errorf("%w: half-edge %d: %v", ErrMalformedInput, i, err)
		}
		if err := b.AddHalfEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: half-edge %d: %v", ErrMalformedInput, i, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return b, nil
}

func readInt(scanner *bufio.Scanner, what string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrMalformedInput, what, err)
	}
	return n, nil
}

func readPair(scanner *bufio.Scanner) (int, int, error) {
	if !scanner.Scan() {
		return 0, 0, fmt.Errorf("unexpected end of input")
	}
	fields := strings.Fields(scanner.Text())
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	u, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("src: %w", err)
	}
	v, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("dst: %w", err)
	}
	return u, v, nil
}
