package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/workforce-backend-go/internal/domain/loan"
	"github.com/staffdesk/workforce-backend-go/internal/handler/http/response"
)

type LoanHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Balance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type LoanHandlerImpl struct {
	loanService loan.LoanService
}

// Apply implements LoanHandler.
func (h *LoanHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req loan.ApplyLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.loanService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan application submitted successfully", result)
}

// Decide implements LoanHandler.
func (h *LoanHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req loan.DecideLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.loanService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan application decided successfully", result)
}

// Settle implements LoanHandler.
func (h *LoanHandlerImpl) Settle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	result, err := h.loanService.Settle(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan settled successfully", result)
}

// Cancel implements LoanHandler.
func (h *LoanHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Loan ID is required", nil)
		return
	}

	if err := h.loanService.Cancel(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan application cancelled successfully", nil)
}

// Balance implements LoanHandler.
func (h *LoanHandlerImpl) Balance(w http.ResponseWriter, r *http.Request) {
	result, err := h.loanService.Balance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements LoanHandler.
func (h *LoanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := loan.LoanFilter{
		Status: queryString(r, "status"),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			filter.Year = &year
		}
	}

	result, err := h.loanService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &LoanHandlerImpl{loanService: loanService}
}
