package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jukulabs/juku-backend-go/internal/domain/attendance"
	"github.com/jukulabs/juku-backend-go/internal/handler/http/response"
)

// maxSheetUploadBytes caps class workbook uploads.
const maxSheetUploadBytes = 10 << 20

type SalaryHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ListBySchool(w http.ResponseWriter, r *http.Request)
	ListBetween(w http.ResponseWriter, r *http.Request)
	DeleteBySchool(w http.ResponseWriter, r *http.Request)
	IngestGrid(w http.ResponseWriter, r *http.Request)
	IngestWorkbook(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	payrollService attendance.PayrollService
}

func NewSalaryHandler(payrollService attendance.PayrollService) SalaryHandler {
	return &salaryHandlerImpl{payrollService: payrollService}
}

// yearMonthFromURL reads the {year} and optional {month} URL params. A route
// without a month param yields a whole-year period.
func yearMonthFromURL(r *http.Request) (attendance.YearMonth, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return attendance.YearMonth{}, fmt.Errorf("%w: year must be numeric", attendance.ErrInvalidPeriod)
	}

	month := 0
	if raw := chi.URLParam(r, "month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil {
			return attendance.YearMonth{}, fmt.Errorf("%w: month must be numeric", attendance.ErrInvalidPeriod)
		}
		if month == 0 {
			return attendance.YearMonth{}, fmt.Errorf("%w: month must be in range 1-12, got 0", attendance.ErrInvalidPeriod)
		}
	}

	return attendance.NewYearMonth(year, month)
}

// parsePeriod parses a "YYYY-MM" query value.
func parsePeriod(s string) (attendance.YearMonth, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return attendance.YearMonth{}, fmt.Errorf("%w: expected YYYY-MM, got %q", attendance.ErrInvalidPeriod, s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return attendance.YearMonth{}, fmt.Errorf("%w: year must be numeric", attendance.ErrInvalidPeriod)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return attendance.YearMonth{}, fmt.Errorf("%w: month must be numeric", attendance.ErrInvalidPeriod)
	}
	if month == 0 {
		return attendance.YearMonth{}, fmt.Errorf("%w: month must be in range 1-12, got 0", attendance.ErrInvalidPeriod)
	}
	return attendance.NewYearMonth(year, month)
}

func (h *salaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ym, err := yearMonthFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	teacherID, ok := uuidParam(w, r, "teacherID", "teacher id")
	if !ok {
		return
	}

	result, err := h.payrollService.Get(r.Context(), ym, teacherID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ym, err := yearMonthFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	teacherID, ok := uuidParam(w, r, "teacherID", "teacher id")
	if !ok {
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Update(r.Context(), ym, teacherID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ListBySchool(w http.ResponseWriter, r *http.Request) {
	ym, err := yearMonthFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	schoolID, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	result, err := h.payrollService.ListBySchool(r.Context(), schoolID, ym)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ListBetween(w http.ResponseWriter, r *http.Request) {
	schoolID, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	start, err := parsePeriod(r.URL.Query().Get("start"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	end, err := parsePeriod(r.URL.Query().Get("end"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ListBetween(r.Context(), schoolID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) DeleteBySchool(w http.ResponseWriter, r *http.Request) {
	ym, err := yearMonthFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	schoolID, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	result, err := h.payrollService.DeleteBySchool(r.Context(), schoolID, ym)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance records deleted", result)
}

func (h *salaryHandlerImpl) IngestGrid(w http.ResponseWriter, r *http.Request) {
	ym, err := yearMonthFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	schoolID, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	var req attendance.IngestGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.IngestGrid(r.Context(), schoolID, req.Blocks, ym)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule grid ingested", result)
}

func (h *salaryHandlerImpl) IngestWorkbook(w http.ResponseWriter, r *http.Request) {
	ym, err := yearMonthFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	schoolID, ok := uuidParam(w, r, "schoolID", "school id")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxSheetUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Workbook file is required", nil)
		return
	}
	defer file.Close()

	result, err := h.payrollService.IngestWorkbook(r.Context(), schoolID, file, ym)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Class workbook ingested", result)
}
