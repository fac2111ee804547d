package http

import (
	"encoding/json"
	"net/http"

	"github.com/jukulabs/juku-backend-go/internal/domain/teacher"
	"github.com/jukulabs/juku-backend-go/internal/handler/http/response"
)

type TeacherHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListBySchool(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type teacherHandlerImpl struct {
	teacherService teacher.TeacherService
}

func NewTeacherHandler(teacherService teacher.TeacherService) TeacherHandler {
	return &teacherHandlerImpl{teacherService: teacherService}
}

func (h *teacherHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	var req teacher.CreateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.SchoolID = schoolID

	result, err := h.teacherService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Teacher created", result)
}

func (h *teacherHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "teacherID", "teacher id")
	if !ok {
		return
	}

	result, err := h.teacherService.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *teacherHandlerImpl) ListBySchool(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	result, err := h.teacherService.ListBySchool(r.Context(), schoolID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *teacherHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "teacherID", "teacher id")
	if !ok {
		return
	}

	var req teacher.UpdateTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.teacherService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *teacherHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "teacherID", "teacher id")
	if !ok {
		return
	}

	if err := h.teacherService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Teacher deleted", nil)
}
