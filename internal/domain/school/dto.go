package school

import (
	"github.com/jukulabs/juku-backend-go/internal/pkg/validator"
)

type CreateSchoolRequest struct {
	Name string `json:"school_name"`
}

func (r *CreateSchoolRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "school_name", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SchoolResponse struct {
	ID   string `json:"school_id"`
	Name string `json:"school_name"`
}
