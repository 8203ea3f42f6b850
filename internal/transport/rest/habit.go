package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tallyapp/tally-backend/internal/domain"
	"github.com/tallyapp/tally-backend/internal/service/habit"
)

// habitService defines the minimal interface needed by HabitHandler.
type habitService interface {
	Create(ctx context.Context, input habit.CreateInput) (*domain.Habit, error)
	Get(ctx context.Context, habitID uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Habit, error)
	Update(ctx context.Context, input habit.UpdateInput) (*domain.Habit, error)
	Archive(ctx context.Context, habitID uuid.UUID) (*domain.Habit, error)
	Delete(ctx context.Context, habitID uuid.UUID) error
	Reorder(ctx context.Context, input habit.ReorderInput) error
	GetStats(ctx context.Context, habitID uuid.UUID) (*domain.HabitStats, error)
	GetHeatmap(ctx context.Context, habitID uuid.UUID, start, end time.Time) ([]domain.HeatmapDay, error)
}

// HabitHandler serves habit REST endpoints.
type HabitHandler struct {
	svc habitService
	log *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(svc habitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{svc: svc, log: logger.With("handler", "habit")}
}

type habitRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

type reorderRequest struct {
	HabitIDs []string `json:"habitIds"`
}

type habitResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Color        *string    `json:"color,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	Archived     bool       `json:"archived"`
	ArchivedAt   *time.Time `json:"archivedAt,omitempty"`
	DisplayOrder int        `json:"displayOrder"`
}

type statsResponse struct {
	HabitID              string  `json:"habitId"`
	CurrentStreak        int     `json:"currentStreak"`
	LongestStreak        int     `json:"longestStreak"`
	TotalCompleted       int     `json:"totalCompleted"`
	CompletionPercentage float64 `json:"completionPercentage"`
}

type heatmapDayResponse struct {
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Notes     *string `json:"notes,omitempty"`
}

// Create handles POST /api/habits.
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), habit.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toHabitResponse(created))
}

// List handles GET /api/habits?includeArchived=true.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("includeArchived") == "true"

	habits, err := h.svc.List(r.Context(), includeArchived)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]habitResponse, 0, len(habits))
	for _, hb := range habits {
		resp = append(resp, toHabitResponse(hb))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/habits/{id}.
func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	hb, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(hb))
}

// Update handles PUT /api/habits/{id}.
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req habitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), habit.UpdateInput{
		HabitID:     id,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(updated))
}

// Archive handles PUT /api/habits/{id}/archive.
func (h *HabitHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	archived, err := h.svc.Archive(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(archived))
}

// Delete handles DELETE /api/habits/{id}.
func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Reorder handles PUT /api/habits/reorder.
func (h *HabitHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.HabitIDs))
	for _, s := range req.HabitIDs {
		id, err := uuid.Parse(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid habit id: "+s)
			return
		}
		ids = append(ids, id)
	}

	if err := h.svc.Reorder(r.Context(), habit.ReorderInput{HabitIDs: ids}); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats handles GET /api/habits/{id}/stats.
func (h *HabitHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	stats, err := h.svc.GetStats(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		HabitID:              stats.HabitID.String(),
		CurrentStreak:        stats.CurrentStreak,
		LongestStreak:        stats.LongestStreak,
		TotalCompleted:       stats.TotalCompleted,
		CompletionPercentage: stats.CompletionPercentage,
	})
}

// Heatmap handles GET /api/habits/{id}/heatmap?startDate=...&endDate=...
func (h *HabitHandler) Heatmap(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	start, err := domain.ParseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate")
		return
	}
	end, err := domain.ParseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate")
		return
	}

	days, err := h.svc.GetHeatmap(r.Context(), id, start, end)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]heatmapDayResponse, 0, len(days))
	for _, d := range days {
		resp = append(resp, heatmapDayResponse{
			Date:      domain.FormatDate(d.Date),
			Completed: d.Completed,
			Notes:     d.Notes,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func toHabitResponse(h *domain.Habit) habitResponse {
	return habitResponse{
		ID:           h.ID.String(),
		Name:         h.Name,
		Description:  h.Description,
		Color:        h.Color,
		CreatedAt:    h.CreatedAt,
		Archived:     h.Archived,
		ArchivedAt:   h.ArchivedAt,
		DisplayOrder: h.DisplayOrder,
	}
}
