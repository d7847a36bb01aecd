package types

import "errors"

// Collection operation errors. These are reported to the user as notices;
// they never abort the program.
var (
	ErrInvalidIndex = errors.New("invalid index")
	ErrCannotBreed  = errors.New("breeding impossible")
)
