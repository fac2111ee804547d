package teacher

import "errors"

var (
	ErrTeacherNotFound   = errors.New("teacher not found")
	ErrDisplayNameExists = errors.New("display name already registered in this school")
)
