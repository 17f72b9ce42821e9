package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/retro"
	"github.com/centraljuan/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RetroHandler interface {
	CreateAndApply(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Totals(w http.ResponseWriter, r *http.Request)
}

type retroHandlerImpl struct {
	retroService retro.RetroService
}

func NewRetroHandler(retroService retro.RetroService) RetroHandler {
	return &retroHandlerImpl{retroService: retroService}
}

func (h *retroHandlerImpl) CreateAndApply(w http.ResponseWriter, r *http.Request) {
	var req retro.CreateAndApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.retroService.CreateAndApply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Retro adjustment applied", result)
}

func (h *retroHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "id must be an integer", nil)
		return
	}
	force := r.URL.Query().Get("force") == "true"

	if err := h.retroService.Cancel(r.Context(), id, force); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Retro adjustment cancelled", nil)
}

func (h *retroHandlerImpl) Totals(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id query parameter is required", nil)
		return
	}

	var asOf *time.Time
	if v := r.URL.Query().Get("as_of"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "as_of must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		asOf = &parsed
	}

	result, err := h.retroService.TotalsForEmployee(r.Context(), employeeID, asOf)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
