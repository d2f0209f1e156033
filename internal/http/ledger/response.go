package ledger

import (
	"time"

	"github.com/google/uuid"

	"piggybank/internal/ledger"
)

type balanceResponse struct {
	Available int64 `json:"available"`
	Reserved  int64 `json:"reserved"`
}

type actorResponse struct {
	Role  ledger.Role `json:"role"`
	ID    *uuid.UUID  `json:"id,omitempty"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email,omitempty"`
}

type entryResponse struct {
	ID        uuid.UUID        `json:"id"`
	ChildID   uuid.UUID        `json:"child_id"`
	Amount    int64            `json:"amount"`
	Type      ledger.EntryType `json:"type"`
	Note      string           `json:"note,omitempty"`
	FamilyID  *uuid.UUID       `json:"family_id,omitempty"`
	WeekStart string           `json:"week_start,omitempty"`
	SaverID   *uuid.UUID       `json:"saver_id,omitempty"`
	Actor     actorResponse    `json:"actor"`
	CreatedAt time.Time        `json:"created_at"`
}

func toResponse(e *ledger.Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		ChildID:   e.ChildID,
		Amount:    e.Amount,
		Type:      e.Type,
		Note:      e.Note,
		FamilyID:  e.FamilyID,
		WeekStart: e.WeekStart,
		SaverID:   e.SaverID,
		Actor: actorResponse{
			Role:  e.Actor.Role,
			ID:    e.Actor.ID,
			Name:  e.Actor.Name,
			Email: e.Actor.Email,
		},
		CreatedAt: e.CreatedAt,
	}
}

func toResponseList(entries []*ledger.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = toResponse(e)
	}

	return resp
}
