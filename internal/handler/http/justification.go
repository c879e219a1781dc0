package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chronoline/attendance-backend-go/internal/domain/justification"
	"github.com/chronoline/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
}

type JustificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &JustificationHandlerImpl{
		justificationService: justificationService,
	}
}

// Create implements JustificationHandler.
func (h *JustificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req justification.CreateJustificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.justificationService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification submitted", result)
}

// List implements JustificationHandler.
func (h *JustificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter justification.JustificationFilter
	if raw := q.Get("userId"); raw != "" {
		filter.UserID = &raw
	}
	if raw := q.Get("status"); raw != "" {
		status := justification.Status(raw)
		filter.Status = &status
	}
	if raw := q.Get("page"); raw != "" {
		filter.Page, _ = strconv.Atoi(raw)
	}
	if raw := q.Get("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	justifications, total, err := h.justificationService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List justifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, justifications, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}

// Review implements JustificationHandler.
func (h *JustificationHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	var req justification.ReviewJustificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.justificationService.Review(r.Context(), req)
	if err != nil {
		slog.Error("Review justification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Justification reviewed", result)
}
