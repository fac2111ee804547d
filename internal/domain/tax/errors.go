package tax

import "errors"

var (
	ErrMalformedTable     = errors.New("withholding table does not partition [0, inf)")
	ErrBracketNotResolved = errors.New("withholding bracket not resolved")
)
