package main

import "errors"

// ErrUnknownScheme is returned when the scheme positional argument is
// neither "ptas" nor "exhaustive".
var ErrUnknownScheme = errors.New("planarmis: unknown scheme")

// ErrUnknownReduction is returned when -R or -D names a reduction other
// than "twin", "isolated-clique", or "nodal-fold".
var ErrUnknownReduction = errors.New("planarmis: unknown reduction")
