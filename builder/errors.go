package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's
// minimum. Branch with errors.Is.
var ErrTooFewNodes = errors.New("builder: parameter too small")
