package main

import (
	"fmt"

	"github.com/katalvlaran/planarmis/reduce"
)

// Scheme selects the top-level algorithm planarmis runs.
type Scheme string

const (
	SchemePTAS        Scheme = "ptas"
	SchemeExhaustive  Scheme = "exhaustive"
	defaultOutputPath        = "data/test.js"
)

// Options collects the parsed CLI surface, passed down the pipeline as a
// single value rather than as loose globals.
type Options struct {
	Scheme     Scheme
	Input      string
	Output     string
	K          int
	Exact      bool
	InputKinds []reduce.Kind
	DonutKinds []reduce.Kind
	Debug      bool
}

// parseScheme validates the scheme positional argument.
func parseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemePTAS, SchemeExhaustive:
		return Scheme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
}

// parseReductions converts the string values of a repeated -R/-D flag
// into reduce.Kind values, in the order given.
func parseReductions(names []string) ([]reduce.Kind, error) {
	kinds := make([]reduce.Kind, 0, len(names))
	for _, name := range names {
		kind, err := parseReduction(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func parseReduction(name string) (reduce.Kind, error) {
	switch name {
	case "isolated-clique":
		return reduce.KindIsolatedClique, nil
	case "twin":
		return reduce.KindTwin, nil
	case "nodal-fold":
		return reduce.KindNodalFold, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownReduction, name)
	}
}
