package board

import "errors"

// Errors returned by the external move/query surface. All of them are
// recoverable: bad input never aborts the process.
var (
	ErrOutOfBounds             = errors.New("square index out of bounds")
	ErrEmptySquare             = errors.New("no piece on square")
	ErrWrongSideToMove         = errors.New("piece does not belong to the side to move")
	ErrIllegalDestination      = errors.New("destination is not a legal move")
	ErrPromotionChoiceRequired = errors.New("promotion choice required")
	ErrPromotionChoiceInvalid  = errors.New("invalid promotion choice")
)
