package tensor

import "errors"

// ErrSingularMatrix indicates a matrix whose pivot magnitude fell below
// epsilon during Gauss-Jordan elimination. The matrix has no usable
// inverse and the caller cannot recover by retrying.
var ErrSingularMatrix = errors.New("tensor: singular matrix (pivot below epsilon)")
