package ptaslog

import "errors"

// ErrAlreadyOpen is returned by Open when a log file is already open for
// this Logger.
var ErrAlreadyOpen = errors.New("ptaslog: log file already open")
