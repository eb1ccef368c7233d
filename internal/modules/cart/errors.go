package cart

import "errors"

var (
	ErrUnknownLensType   = errors.New("unknown lens type")
	ErrUnknownLensOption = errors.New("unknown lens option")
	ErrSnapshotNotFound  = errors.New("cart snapshot not found")
)
