package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/centraljuan/payroll-backend-go/internal/domain/loan"
	"github.com/centraljuan/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LoanHandler interface {
	GetAmortization(w http.ResponseWriter, r *http.Request)
}

type loanHandlerImpl struct {
	loanService loan.LoanService
	loanRepo    loan.LoanRepository
}

func NewLoanHandler(loanService loan.LoanService, loanRepo loan.LoanRepository) LoanHandler {
	return &loanHandlerImpl{loanService: loanService, loanRepo: loanRepo}
}

func (h *loanHandlerImpl) GetAmortization(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "id must be an integer", nil)
		return
	}

	from, err := time.Parse("2006-01-02", r.URL.Query().Get("date_from"))
	if err != nil {
		response.BadRequest(w, "date_from must be a valid date (YYYY-MM-DD)", nil)
		return
	}
	until, err := time.Parse("2006-01-02", r.URL.Query().Get("date_until"))
	if err != nil {
		response.BadRequest(w, "date_until must be a valid date (YYYY-MM-DD)", nil)
		return
	}

	l, err := h.loanRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.loanService.Compute(r.Context(), l, from, until)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
