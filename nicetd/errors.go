package nicetd

import "errors"

// ErrInvalidNiceTD is returned by Validate when a node violates one of the
// four nice-tree-decomposition node-kind invariants.
var ErrInvalidNiceTD = errors.New("nicetd: invalid nice tree decomposition")
