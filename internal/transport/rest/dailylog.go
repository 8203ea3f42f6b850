package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
	"github.com/tallyapp/tally-backend/internal/service/dailylog"
)

// dailyLogService defines the minimal interface needed by DailyLogHandler.
type dailyLogService interface {
	Upsert(ctx context.Context, input dailylog.UpsertInput) (*domain.DailyLog, error)
	UpsertBatch(ctx context.Context, input dailylog.BatchInput) ([]*domain.DailyLog, error)
	Get(ctx context.Context, logID uuid.UUID) (*domain.DailyLog, error)
	ListRange(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]*domain.DailyLog, error)
	Delete(ctx context.Context, logID uuid.UUID) error
}

// DailyLogHandler serves daily log REST endpoints.
type DailyLogHandler struct {
	svc dailyLogService
	log *slog.Logger
}

// NewDailyLogHandler creates a DailyLogHandler.
func NewDailyLogHandler(svc dailyLogService, logger *slog.Logger) *DailyLogHandler {
	return &DailyLogHandler{svc: svc, log: logger.With("handler", "dailylog")}
}

type upsertRequest struct {
	HabitID   string  `json:"habitId"`
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes"`
}

type batchRequest struct {
	Entries []upsertRequest `json:"entries"`
}

type logResponse struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habitId"`
	Date      string    `json:"date"`
	Completed bool      `json:"completed"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (req upsertRequest) toInput() (dailylog.UpsertInput, error) {
	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		return dailylog.UpsertInput{}, domain.NewValidationError("habitId", "invalid id")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return dailylog.UpsertInput{}, domain.NewValidationError("date", "invalid date, expected YYYY-MM-DD")
	}
	return dailylog.UpsertInput{
		HabitID:   habitID,
		Date:      date,
		Completed: req.Completed,
		Notes:     req.Notes,
	}, nil
}

// Upsert handles POST /api/logs. Creates or updates the log for (habit, date).
func (h *DailyLogHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input, err := req.toInput()
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Upsert(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLogResponse(result))
}

// UpsertBatch handles POST /api/logs/batch. All entries apply atomically.
func (h *DailyLogHandler) UpsertBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entries := make([]dailylog.UpsertInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		input, err := e.toInput()
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		entries = append(entries, input)
	}

	results, err := h.svc.UpsertBatch(r.Context(), dailylog.BatchInput{Entries: entries})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]logResponse, 0, len(results))
	for _, l := range results {
		resp = append(resp, toLogResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/logs/{id}.
func (h *DailyLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toLogResponse(l))
}

// List handles GET /api/logs?habitId=...&startDate=...&endDate=...
// Both range bounds are required.
func (h *DailyLogHandler) List(w http.ResponseWriter, r *http.Request) {
	habitID, err := uuid.Parse(r.URL.Query().Get("habitId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid habitId")
		return
	}

	q := r.URL.Query()
	if q.Get("startDate") == "" || q.Get("endDate") == "" {
		writeError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}
	start, err := domain.ParseDate(q.Get("startDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := domain.ParseDate(q.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	logs, err := h.svc.ListRange(r.Context(), habitID, start, end)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]logResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, toLogResponse(l))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/logs/{id}.
func (h *DailyLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toLogResponse(l *domain.DailyLog) logResponse {
	return logResponse{
		ID:        l.ID.String(),
		HabitID:   l.HabitID.String(),
		Date:      domain.FormatDate(l.LogDate),
		Completed: l.Completed,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}
