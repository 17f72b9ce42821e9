package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/schedule"
	"github.com/centraljuan/payroll-backend-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateShiftScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Merged {
		response.SuccessWithMessage(w, "Schedule merged into an existing shift", result)
		return
	}
	response.Created(w, "Schedule created", result)
}

func (h *scheduleHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	dateStr := r.URL.Query().Get("date")

	if employeeID == "" || dateStr == "" {
		response.BadRequest(w, "employee_id and date query parameters are required", nil)
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "date must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	resolved, err := h.scheduleService.Resolve(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := schedule.ResolvedShiftResponse{
		Date:         dateStr,
		WorkTimeID:   resolved.WorkTime.ID,
		WorkTimeName: resolved.WorkTime.Name,
		StartTime:    resolved.WorkTime.StartTime.Format("15:04:05"),
		EndTime:      resolved.WorkTime.EndTime.Format("15:04:05"),
		TotalMinutes: resolved.WorkTime.TotalMinutes,
		FromDefault:  resolved.FromDefault,
		RestDay:      resolved.WorkTime.IsRestDay(),
	}
	if resolved.Schedule != nil {
		resp.ScheduleID = &resolved.Schedule.ID
	}

	response.Success(w, resp)
}
