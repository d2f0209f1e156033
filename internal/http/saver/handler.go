package saver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"piggybank/internal/http/auth"
	"piggybank/internal/saver"
)

type Handler struct {
	svc *saver.Service
}

func NewHandler(svc *saver.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/{childID}/savers", h.create)
	r.Get("/{childID}/savers", h.list)
	r.Patch("/{childID}/savers/{saverID}", h.update)
	r.Delete("/{childID}/savers/{saverID}", h.delete)
}

type saverResponse struct {
	ID          uuid.UUID  `json:"id"`
	ChildID     uuid.UUID  `json:"child_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Target      int64      `json:"target"`
	IsGoal      bool       `json:"is_goal"`
	Allocation  int        `json:"allocation"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toResponse(item *saver.Saver) saverResponse {
	return saverResponse{
		ID:          item.ID,
		ChildID:     item.ChildID,
		Name:        item.Name,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		Target:      item.Target,
		IsGoal:      item.IsGoal,
		Allocation:  item.Allocation,
		Completed:   item.Completed,
		CompletedAt: item.CompletedAt,
		CreatedAt:   item.CreatedAt,
	}
}

type createSaverRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Target      int64  `json:"target"`
	IsGoal      bool   `json:"is_goal"`
	Allocation  int    `json:"allocation"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childID"))
	if err != nil {
		http.Error(w, "invalid child id", http.StatusBadRequest)
		return
	}

	// Both parents and children may create savers.
	if _, ok := auth.ActorFrom(r.Context()); !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req createSaverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	item, err := h.svc.Create(r.Context(), saver.CreateParams{
		ChildID:     childID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Target:      req.Target,
		IsGoal:      req.IsGoal,
		Allocation:  req.Allocation,
	})
	if err != nil {
		if errors.Is(err, saver.ErrInvalidAllocation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, toResponse(item))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	childID, err := uuid.Parse(chi.URLParam(r, "childID"))
	if err != nil {
		http.Error(w, "invalid child id", http.StatusBadRequest)
		return
	}

	savers, err := h.svc.ListByChild(r.Context(), childID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]saverResponse, len(savers))
	for i, item := range savers {
		resp[i] = toResponse(item)
	}

	writeJSON(w, http.StatusOK, resp)
}

type updateSaverRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Target      *int64  `json:"target,omitempty"`
	IsGoal      *bool   `json:"is_goal,omitempty"`
	Allocation  *int    `json:"allocation,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "saverID"))
	if err != nil {
		http.Error(w, "invalid saver id", http.StatusBadRequest)
		return
	}

	var req updateSaverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.svc.Update(r.Context(), id, saver.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Target:      req.Target,
		IsGoal:      req.IsGoal,
		Allocation:  req.Allocation,
	})
	if err != nil {
		switch {
		case errors.Is(err, saver.ErrNotFound):
			http.Error(w, "saver not found", http.StatusNotFound)
		case errors.Is(err, saver.ErrInvalidAllocation):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	writeJSON(w, http.StatusOK, toResponse(item))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "saverID"))
	if err != nil {
		http.Error(w, "invalid saver id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
