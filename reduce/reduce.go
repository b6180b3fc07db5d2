package reduce

import "fmt"

// Reduce repeatedly applies the requested reduction kinds to view, in the
// order given, until a full pass over all of them makes no change. It
// returns the sequence of applied reductions so the caller can Lift a
// solution of the reduced graph back to one of the original.
func Reduce(view *AdjacencyView, kinds []Kind) (*Result, error) {
	result := &Result{}

	for {
		changed := false
		for _, kind := range kinds {
			applied, err := applyOnce(view, kind, result)
			if err != nil {
				return nil, err
			}
			if applied {
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return result, nil
}

// applyOnce runs kind's reduction repeatedly until it stops finding
// anything, since one kind can expose further instances of itself (e.g.
// removing an isolated-clique vertex can make a former neighbor isolated
// in turn).
func applyOnce(view *AdjacencyView, kind Kind, result *Result) (bool, error) {
	applyFn, err := ruleFor(kind)
	if err != nil {
		return false, err
	}

	any := false
	for applyFn(view, result) {
		any = true
	}
	return any, nil
}

func ruleFor(kind Kind) (func(*AdjacencyView, *Result) bool, error) {
	switch kind {
	case KindIsolatedClique:
		return applyIsolatedClique, nil
	case KindTwin:
		return applyTwin, nil
	case KindNodalFold:
		return applyNodalFold, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}
