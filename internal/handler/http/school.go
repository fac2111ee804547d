package http

import (
	"encoding/json"
	"net/http"

	"github.com/jukulabs/juku-backend-go/internal/domain/school"
	"github.com/jukulabs/juku-backend-go/internal/handler/http/response"
)

type SchoolHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type schoolHandlerImpl struct {
	schoolService school.SchoolService
}

func NewSchoolHandler(schoolService school.SchoolService) SchoolHandler {
	return &schoolHandlerImpl{schoolService: schoolService}
}

func (h *schoolHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req school.CreateSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.schoolService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "School created", result)
}

func (h *schoolHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	result, err := h.schoolService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *schoolHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.schoolService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *schoolHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	var req school.CreateSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.schoolService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *schoolHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	if err := h.schoolService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "School deleted", nil)
}
