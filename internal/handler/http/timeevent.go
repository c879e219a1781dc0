package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/chronoline/attendance-backend-go/internal/domain/timeevent"
	"github.com/chronoline/attendance-backend-go/internal/handler/http/response"
	"github.com/chronoline/attendance-backend-go/internal/pkg/validator"
)

type TimeEventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
}

type TimeEventHandlerImpl struct {
	timeEventService timeevent.TimeEventService
}

func NewTimeEventHandler(timeEventService timeevent.TimeEventService) TimeEventHandler {
	return &TimeEventHandlerImpl{
		timeEventService: timeEventService,
	}
}

// Create implements TimeEventHandler.
func (h *TimeEventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req timeevent.CreateTimeEventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create time event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timeEventService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create time event service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time event recorded", result)
}

// ListMy implements TimeEventHandler.
func (h *TimeEventHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var errs validator.ValidationErrors

	var filter timeevent.MyTimeEventsFilter
	if raw := q.Get("startDate"); raw != "" {
		if _, ok := validator.IsValidDate(raw); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be YYYY-MM-DD"})
		} else {
			filter.StartDate = &raw
		}
	}
	if raw := q.Get("endDate"); raw != "" {
		if _, ok := validator.IsValidDate(raw); !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be YYYY-MM-DD"})
		} else {
			filter.EndDate = &raw
		}
	}
	if raw := q.Get("page"); raw != "" {
		filter.Page, _ = strconv.Atoi(raw)
	}
	if raw := q.Get("limit"); raw != "" {
		filter.Limit, _ = strconv.Atoi(raw)
	}

	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	events, total, err := h.timeEventService.ListMy(r.Context(), filter)
	if err != nil {
		slog.Error("ListMy time events service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, events, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
	})
}
