package family_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"piggybank/internal/family"
	"piggybank/internal/http/auth"
	familyHandler "piggybank/internal/http/family"
	"piggybank/internal/ledger"
)

func completionsRouter(t *testing.T, repo *family.MockRepository) http.Handler {
	t.Helper()

	r := chi.NewRouter()
	r.Route("/completions", familyHandler.NewHandler(family.NewService(repo)).CompletionRoutes)

	return r
}

func postMarkDone(t *testing.T, h http.Handler, childID uuid.UUID, actor *ledger.Actor) *httptest.ResponseRecorder {
	t.Helper()

	body := `{"chore_id":"` + uuid.NewString() + `","child_id":"` + childID.String() + `","date":"2026-08-24"}`
	req := httptest.NewRequest(http.MethodPost, "/completions", strings.NewReader(body))
	if actor != nil {
		req = req.WithContext(auth.WithActor(context.Background(), *actor))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestHandler_MarkDone_ChildForSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	childID := uuid.New()

	repo := family.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *family.Completion) error {
			c.ID = uuid.New()
			return nil
		})

	rec := postMarkDone(t, completionsRouter(t, repo), childID,
		&ledger.Actor{Role: ledger.RoleChild, ID: &childID, Name: "Maya"})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_MarkDone_ChildForSiblingForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	siblingID := uuid.New()

	// No CreateCompletion expected.
	repo := family.NewMockRepository(ctrl)

	rec := postMarkDone(t, completionsRouter(t, repo), siblingID,
		&ledger.Actor{Role: ledger.RoleChild, ID: &actorID, Name: "Maya"})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_MarkDone_ParentForAnyChild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	parentID := uuid.New()
	childID := uuid.New()

	repo := family.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *family.Completion) error {
			c.ID = uuid.New()
			return nil
		})

	rec := postMarkDone(t, completionsRouter(t, repo), childID,
		&ledger.Actor{Role: ledger.RoleParent, ID: &parentID, Name: "Sam"})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_MarkDone_NoActorUnauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := family.NewMockRepository(ctrl)

	rec := postMarkDone(t, completionsRouter(t, repo), uuid.New(), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
