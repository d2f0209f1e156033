package payout

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"piggybank/internal/family"
	"piggybank/internal/http/auth"
	"piggybank/internal/ledger"
	"piggybank/internal/payout"
)

type Handler struct {
	svc *payout.Service
}

func NewHandler(svc *payout.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/run", h.run)
}

type runRequest struct {
	FamilyID  uuid.UUID `json:"family_id"`
	WeekStart string    `json:"week_start"`
}

type childPayoutResponse struct {
	ChildID uuid.UUID `json:"child_id"`
	Amount  int64     `json:"amount"`
}

type runResponse struct {
	FamilyID    uuid.UUID             `json:"family_id"`
	WeekStart   string                `json:"week_start"`
	WeekEnd     string                `json:"week_end"`
	Paid        []childPayoutResponse `json:"paid"`
	AlreadyPaid []uuid.UUID           `json:"already_paid,omitempty"`
	NothingDue  []uuid.UUID           `json:"nothing_due,omitempty"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.RequireActor(w, r, ledger.RoleParent); !ok {
		return
	}

	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Run(r.Context(), req.FamilyID, req.WeekStart)
	if err != nil {
		switch {
		case errors.Is(err, payout.ErrInvalidWeekStart):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, family.ErrNotFound):
			http.Error(w, "family not found", http.StatusNotFound)
		default:
			// Partial runs are rerunnable; surface the failure.
			slog.Error("payout run failed", "family_id", req.FamilyID, "week_start", req.WeekStart, "error", err)
			http.Error(w, "payout incomplete, rerun required", http.StatusInternalServerError)
		}

		return
	}

	resp := runResponse{
		FamilyID:    result.FamilyID,
		WeekStart:   result.WeekStart,
		WeekEnd:     result.WeekEnd,
		Paid:        make([]childPayoutResponse, len(result.Paid)),
		AlreadyPaid: result.AlreadyPaid,
		NothingDue:  result.NothingDue,
	}
	for i, p := range result.Paid {
		resp.Paid[i] = childPayoutResponse{ChildID: p.ChildID, Amount: p.Amount}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
