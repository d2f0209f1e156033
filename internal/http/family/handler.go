package family

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"piggybank/internal/family"
	"piggybank/internal/http/auth"
	"piggybank/internal/ledger"
)

type Handler struct {
	svc *family.Service
}

func NewHandler(svc *family.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) FamilyRoutes(r chi.Router) {
	r.Post("/", h.createFamily)
	r.Get("/", h.listFamilies)
	r.Post("/{familyID}/children", h.addChild)
	r.Get("/{familyID}/children", h.listChildren)
	r.Post("/{familyID}/chores", h.createChore)
	r.Get("/{familyID}/chores", h.listChores)
}

func (h *Handler) CompletionRoutes(r chi.Router) {
	r.Post("/", h.markDone)
	r.Post("/{completionID}/approve", h.approve)
	r.Post("/{completionID}/reject", h.reject)
}

func familyID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "familyID"))
	if err != nil {
		http.Error(w, "invalid family id", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

type createFamilyRequest struct {
	Name string `json:"name"`
}

func (h *Handler) createFamily(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RequireActor(w, r, ledger.RoleParent); !ok {
		return
	}

	var req createFamilyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	fam, err := h.svc.CreateFamily(r.Context(), req.Name)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, fam)
}

func (h *Handler) listFamilies(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RequireActor(w, r, ledger.RoleParent); !ok {
		return
	}

	families, err := h.svc.ListFamilies(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, families)
}

type addChildRequest struct {
	Name string `json:"name"`
}

type childResponse struct {
	ID        uuid.UUID `json:"id"`
	FamilyID  uuid.UUID `json:"family_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *Handler) addChild(w http.ResponseWriter, r *http.Request) {
	famID, ok := familyID(w, r)
	if !ok {
		return
	}

	if _, ok := auth.RequireActor(w, r, ledger.RoleParent); !ok {
		return
	}

	var req addChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	child, err := h.svc.AddChild(r.Context(), famID, req.Name)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, childResponse{
		ID: child.ID, FamilyID: child.FamilyID, Name: child.Name, CreatedAt: child.CreatedAt,
	})
}

func (h *Handler) listChildren(w http.ResponseWriter, r *http.Request) {
	famID, ok := familyID(w, r)
	if !ok {
		return
	}

	children, err := h.svc.ListChildren(r.Context(), famID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]childResponse, len(children))
	for i, c := range children {
		resp[i] = childResponse{ID: c.ID, FamilyID: c.FamilyID, Name: c.Name, CreatedAt: c.CreatedAt}
	}

	writeJSON(w, http.StatusOK, resp)
}

type createChoreRequest struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

func (h *Handler) createChore(w http.ResponseWriter, r *http.Request) {
	famID, ok := familyID(w, r)
	if !ok {
		return
	}

	if _, ok := auth.RequireActor(w, r, ledger.RoleParent); !ok {
		return
	}

	var req createChoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Value < 0 {
		http.Error(w, "value must not be negative", http.StatusBadRequest)
		return
	}

	chore, err := h.svc.CreateChore(r.Context(), famID, req.Name, req.Value)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, chore)
}

func (h *Handler) listChores(w http.ResponseWriter, r *http.Request) {
	famID, ok := familyID(w, r)
	if !ok {
		return
	}

	chores, err := h.svc.ListChores(r.Context(), famID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, chores)
}

type markDoneRequest struct {
	ChoreID uuid.UUID `json:"chore_id"`
	ChildID uuid.UUID `json:"child_id"`
	Date    string    `json:"date"`
}

func (h *Handler) markDone(w http.ResponseWriter, r *http.Request) {
	var req markDoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A child records their own completions; a parent may record for
	// any child.
	actor, ok := auth.ActorFrom(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	if actor.Role != ledger.RoleParent {
		if actor.Role != ledger.RoleChild || actor.ID == nil || *actor.ID != req.ChildID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
	}

	if _, err := time.Parse(time.DateOnly, req.Date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	completion, err := h.svc.MarkDone(r.Context(), req.ChoreID, req.ChildID, req.Date)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, completion)
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.svc.Approve)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.svc.Reject)
}

func (h *Handler) review(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "completionID"))
	if err != nil {
		http.Error(w, "invalid completion id", http.StatusBadRequest)
		return
	}

	if _, ok := auth.RequireActor(w, r, ledger.RoleParent); !ok {
		return
	}

	if err := fn(r.Context(), id); err != nil {
		if errors.Is(err, family.ErrNotFound) {
			http.Error(w, "completion not found", http.StatusNotFound)
			return
		}

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
