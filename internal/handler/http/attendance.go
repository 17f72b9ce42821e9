package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/attendance"
	"github.com/centraljuan/payroll-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Reconcile(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

func (h *attendanceHandlerImpl) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req attendance.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	from, _ := time.Parse("2006-01-02", req.DateFrom)
	until, _ := time.Parse("2006-01-02", req.DateUntil)

	result, err := h.attendanceService.EnsurePeriod(r.Context(), req.EmployeeID, from, until)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
