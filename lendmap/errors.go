package lendmap

import "errors"

// ErrValueOnLoan indicates an attempt to mutate or drain an entry while a
// loan of it is still outstanding. It is carried by the panics raised from
// Insert, Remove, and Drain.
var ErrValueOnLoan = errors.New("lendmap: value is checked out")
