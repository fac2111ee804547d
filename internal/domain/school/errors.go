package school

import "errors"

var (
	ErrSchoolNotFound   = errors.New("school not found")
	ErrSchoolNameExists = errors.New("school name already registered")
)
