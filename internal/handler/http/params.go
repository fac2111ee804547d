package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jukulabs/juku-backend-go/internal/handler/http/response"
	"github.com/jukulabs/juku-backend-go/internal/pkg/validator"
)

// uuidParam reads an id path parameter, rejecting anything that is not a
// UUIDv7, the only id format the store issues. On failure it writes the
// error response and returns false.
func uuidParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	id := chi.URLParam(r, name)
	if !validator.IsValidUUID(id) {
		response.BadRequest(w, label+" must be a valid id", nil)
		return "", false
	}
	return id, true
}
