package saver_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"piggybank/internal/saver"
)

func TestService_Create_CapsAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	childID := uuid.New()

	existing := []*saver.Saver{
		{ID: uuid.New(), ChildID: childID, Name: "Bike", IsGoal: true, Allocation: 40},
		{ID: uuid.New(), ChildID: childID, Name: "Poster", IsGoal: false, Allocation: 90}, // wishlist, ignored
	}

	repo := saver.NewMockRepository(ctrl)
	repo.EXPECT().ListSaversByChild(gomock.Any(), childID).Return(existing, nil)
	repo.EXPECT().
		CreateSaver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *saver.Saver) error {
			s.ID = uuid.New()
			return nil
		})

	svc := saver.NewService(repo)

	// 40 already claimed by the bike, so 70 gets capped to 60.
	got, err := svc.Create(context.Background(), saver.CreateParams{
		ChildID:    childID,
		Name:       "Lego set",
		Target:     500,
		IsGoal:     true,
		Allocation: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, got.Allocation)
}

func TestService_Create_WishlistSkipsCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := saver.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateSaver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *saver.Saver) error {
			s.ID = uuid.New()
			return nil
		})

	got, err := saver.NewService(repo).Create(context.Background(), saver.CreateParams{
		ChildID:    uuid.New(),
		Name:       "Skateboard",
		Target:     900,
		IsGoal:     false,
		Allocation: 100,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, got.Allocation)
}

func TestService_Create_RejectsOutOfRangeAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := saver.NewMockRepository(ctrl)
	svc := saver.NewService(repo)

	_, err := svc.Create(context.Background(), saver.CreateParams{Allocation: 101})
	assert.ErrorIs(t, err, saver.ErrInvalidAllocation)

	_, err = svc.Create(context.Background(), saver.CreateParams{Allocation: -1})
	assert.ErrorIs(t, err, saver.ErrInvalidAllocation)
}

func TestService_Update_CapsAgainstSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	childID := uuid.New()
	target := &saver.Saver{ID: uuid.New(), ChildID: childID, Name: "Lego set", IsGoal: true, Allocation: 10}
	sibling := &saver.Saver{ID: uuid.New(), ChildID: childID, Name: "Bike", IsGoal: true, Allocation: 40}

	repo := saver.NewMockRepository(ctrl)
	repo.EXPECT().GetSaver(gomock.Any(), target.ID).Return(target, nil)
	repo.EXPECT().ListSaversByChild(gomock.Any(), childID).Return([]*saver.Saver{target, sibling}, nil)
	repo.EXPECT().UpdateSaver(gomock.Any(), gomock.Any()).Return(nil)

	allocation := 70

	got, err := saver.NewService(repo).Update(context.Background(), target.ID, saver.UpdateParams{
		Allocation: &allocation,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, got.Allocation)
}

// Promoting a wishlist item to goal status subjects its stored allocation
// to the cap, so the child's active goals still sum to at most 100.
func TestService_Update_PromotionCapsStoredAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	childID := uuid.New()
	item := &saver.Saver{ID: uuid.New(), ChildID: childID, Name: "Poster", IsGoal: false, Allocation: 80}
	sibling := &saver.Saver{ID: uuid.New(), ChildID: childID, Name: "Bike", IsGoal: true, Allocation: 75}

	repo := saver.NewMockRepository(ctrl)
	repo.EXPECT().GetSaver(gomock.Any(), item.ID).Return(item, nil)
	repo.EXPECT().ListSaversByChild(gomock.Any(), childID).Return([]*saver.Saver{item, sibling}, nil)
	repo.EXPECT().UpdateSaver(gomock.Any(), gomock.Any()).Return(nil)

	isGoal := true

	got, err := saver.NewService(repo).Update(context.Background(), item.ID, saver.UpdateParams{
		IsGoal: &isGoal,
	})
	require.NoError(t, err)
	assert.True(t, got.IsGoal)
	assert.Equal(t, 25, got.Allocation)
}

func TestService_ListActiveGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	childID := uuid.New()

	savers := []*saver.Saver{
		{ID: uuid.New(), ChildID: childID, Name: "Bike", IsGoal: true, Allocation: 40},
		{ID: uuid.New(), ChildID: childID, Name: "Poster", IsGoal: false, Allocation: 30},
		{ID: uuid.New(), ChildID: childID, Name: "Done", IsGoal: true, Allocation: 20, Completed: true},
		{ID: uuid.New(), ChildID: childID, Name: "Paused", IsGoal: true, Allocation: 0},
	}

	repo := saver.NewMockRepository(ctrl)
	repo.EXPECT().ListSaversByChild(gomock.Any(), childID).Return(savers, nil)

	goals, err := saver.NewService(repo).ListActiveGoals(context.Background(), childID)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Bike", goals[0].Name)
}
