package payout_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"piggybank/internal/family"
	"piggybank/internal/ledger"
	"piggybank/internal/payout"
)

func TestService_Run_SumsOnlyApprovedCompletions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	familyID := uuid.New()
	childID := uuid.New()
	choreA := uuid.New() // worth 2
	choreB := uuid.New() // worth 3
	choreC := uuid.New() // worth 5, completion still pending

	families := payout.NewMockFamilyDirectory(ctrl)
	entries := payout.NewMockLedger(ctrl)
	alloc := payout.NewMockAllocator(ctrl)

	families.EXPECT().GetFamily(gomock.Any(), familyID).
		Return(&family.Family{ID: familyID, ChildIDs: []uuid.UUID{childID}}, nil)
	families.EXPECT().ListChores(gomock.Any(), familyID).
		Return([]*family.Chore{
			{ID: choreA, Value: 2},
			{ID: choreB, Value: 3},
			{ID: choreC, Value: 5},
		}, nil)

	entries.EXPECT().FindPayoutForWeek(gomock.Any(), childID, familyID, "2024-03-03").
		Return(nil, ledger.ErrNotFound)

	// The window is weekStart..weekStart+6 days, inclusive.
	families.EXPECT().ListCompletionsForChildInRange(gomock.Any(), childID, "2024-03-03", "2024-03-09").
		Return([]*family.Completion{
			{ChoreID: choreA, ChildID: childID, Date: "2024-03-04", Status: family.StatusApproved},
			{ChoreID: choreB, ChildID: childID, Date: "2024-03-06", Status: family.StatusApproved},
			{ChoreID: choreC, ChildID: childID, Date: "2024-03-07", Status: family.StatusPending},
		}, nil)

	entries.EXPECT().
		AddEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p ledger.CreateParams) (*ledger.Entry, error) {
			assert.Equal(t, childID, p.ChildID)
			assert.Equal(t, int64(5), p.Amount)
			assert.Equal(t, ledger.TypePayout, p.Type)
			require.NotNil(t, p.FamilyID)
			assert.Equal(t, familyID, *p.FamilyID)
			assert.Equal(t, "2024-03-03", p.WeekStart)
			assert.Equal(t, ledger.RoleSystem, p.Actor.Role)
			assert.Equal(t, "Weekly Payout", p.Actor.Name)
			return &ledger.Entry{ID: uuid.New()}, nil
		})
	alloc.EXPECT().Apply(gomock.Any(), childID, int64(5)).Return(nil)

	result, err := payout.NewService(families, entries, alloc).Run(context.Background(), familyID, "2024-03-03")
	require.NoError(t, err)
	require.Len(t, result.Paid, 1)
	assert.Equal(t, int64(5), result.Paid[0].Amount)
	assert.Equal(t, "2024-03-09", result.WeekEnd)
}

func TestService_Run_SkipsAlreadyPaidChild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	familyID := uuid.New()
	childID := uuid.New()

	families := payout.NewMockFamilyDirectory(ctrl)
	entries := payout.NewMockLedger(ctrl)
	alloc := payout.NewMockAllocator(ctrl)

	families.EXPECT().GetFamily(gomock.Any(), familyID).
		Return(&family.Family{ID: familyID, ChildIDs: []uuid.UUID{childID}}, nil)
	families.EXPECT().ListChores(gomock.Any(), familyID).Return(nil, nil)

	entries.EXPECT().FindPayoutForWeek(gomock.Any(), childID, familyID, "2024-03-03").
		Return(&ledger.Entry{ID: uuid.New(), Type: ledger.TypePayout}, nil)

	result, err := payout.NewService(families, entries, alloc).Run(context.Background(), familyID, "2024-03-03")
	require.NoError(t, err)
	assert.Empty(t, result.Paid)
	assert.Equal(t, []uuid.UUID{childID}, result.AlreadyPaid)
}

func TestService_Run_DuplicateInsertCountsAsAlreadyPaid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	familyID := uuid.New()
	childID := uuid.New()
	choreID := uuid.New()

	families := payout.NewMockFamilyDirectory(ctrl)
	entries := payout.NewMockLedger(ctrl)
	alloc := payout.NewMockAllocator(ctrl)

	families.EXPECT().GetFamily(gomock.Any(), familyID).
		Return(&family.Family{ID: familyID, ChildIDs: []uuid.UUID{childID}}, nil)
	families.EXPECT().ListChores(gomock.Any(), familyID).
		Return([]*family.Chore{{ID: choreID, FamilyID: familyID, Value: 5}}, nil)

	// A concurrent run posts its payout between our lookup and insert;
	// the storage uniqueness error must read as a skip, not a failure.
	entries.EXPECT().FindPayoutForWeek(gomock.Any(), childID, familyID, "2024-03-03").
		Return(nil, ledger.ErrNotFound)
	families.EXPECT().ListCompletionsForChildInRange(gomock.Any(), childID, "2024-03-03", "2024-03-09").
		Return([]*family.Completion{
			{ChoreID: choreID, ChildID: childID, Date: "2024-03-04", Status: family.StatusApproved},
		}, nil)
	entries.EXPECT().AddEntry(gomock.Any(), gomock.Any()).
		Return(nil, ledger.ErrDuplicatePayout)

	result, err := payout.NewService(families, entries, alloc).Run(context.Background(), familyID, "2024-03-03")
	require.NoError(t, err)
	assert.Empty(t, result.Paid)
	assert.Equal(t, []uuid.UUID{childID}, result.AlreadyPaid)
}

func TestService_Run_NoEntryForZeroTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	familyID := uuid.New()
	childID := uuid.New()
	deletedChore := uuid.New() // no longer in the chore list

	families := payout.NewMockFamilyDirectory(ctrl)
	entries := payout.NewMockLedger(ctrl)
	alloc := payout.NewMockAllocator(ctrl)

	families.EXPECT().GetFamily(gomock.Any(), familyID).
		Return(&family.Family{ID: familyID, ChildIDs: []uuid.UUID{childID}}, nil)
	families.EXPECT().ListChores(gomock.Any(), familyID).Return(nil, nil)

	entries.EXPECT().FindPayoutForWeek(gomock.Any(), childID, familyID, "2024-03-03").
		Return(nil, ledger.ErrNotFound)

	// An approved completion of a deleted chore is worth 0, so the total
	// stays 0 and no ledger entry is written.
	families.EXPECT().ListCompletionsForChildInRange(gomock.Any(), childID, "2024-03-03", "2024-03-09").
		Return([]*family.Completion{
			{ChoreID: deletedChore, ChildID: childID, Date: "2024-03-05", Status: family.StatusApproved},
		}, nil)

	result, err := payout.NewService(families, entries, alloc).Run(context.Background(), familyID, "2024-03-03")
	require.NoError(t, err)
	assert.Empty(t, result.Paid)
	assert.Equal(t, []uuid.UUID{childID}, result.NothingDue)
}

func TestService_Run_UnknownFamilyIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	familyID := uuid.New()

	families := payout.NewMockFamilyDirectory(ctrl)
	entries := payout.NewMockLedger(ctrl)
	alloc := payout.NewMockAllocator(ctrl)

	families.EXPECT().GetFamily(gomock.Any(), familyID).Return(nil, family.ErrNotFound)

	result, err := payout.NewService(families, entries, alloc).Run(context.Background(), familyID, "2024-03-03")
	assert.ErrorIs(t, err, family.ErrNotFound)
	assert.Nil(t, result)
}

func TestService_Run_RejectsMalformedWeekStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := payout.NewService(
		payout.NewMockFamilyDirectory(ctrl),
		payout.NewMockLedger(ctrl),
		payout.NewMockAllocator(ctrl),
	)

	for _, weekStart := range []string{"", "03/03/2024", "2024-3-3", "next sunday"} {
		_, err := svc.Run(context.Background(), uuid.New(), weekStart)
		assert.ErrorIs(t, err, payout.ErrInvalidWeekStart, "weekStart=%q", weekStart)
	}
}

// One child failing must not block the others, and the failure has to
// surface so the operator knows to rerun.
func TestService_Run_ChildFailureDoesNotBlockSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	familyID := uuid.New()
	brokenChild := uuid.New()
	healthyChild := uuid.New()
	chore := uuid.New()

	families := payout.NewMockFamilyDirectory(ctrl)
	entries := payout.NewMockLedger(ctrl)
	alloc := payout.NewMockAllocator(ctrl)

	families.EXPECT().GetFamily(gomock.Any(), familyID).
		Return(&family.Family{ID: familyID, ChildIDs: []uuid.UUID{brokenChild, healthyChild}}, nil)
	families.EXPECT().ListChores(gomock.Any(), familyID).
		Return([]*family.Chore{{ID: chore, Value: 4}}, nil)

	entries.EXPECT().FindPayoutForWeek(gomock.Any(), brokenChild, familyID, "2024-03-03").
		Return(nil, ledger.ErrNotFound)
	families.EXPECT().ListCompletionsForChildInRange(gomock.Any(), brokenChild, "2024-03-03", "2024-03-09").
		Return(nil, errors.New("storage offline"))

	entries.EXPECT().FindPayoutForWeek(gomock.Any(), healthyChild, familyID, "2024-03-03").
		Return(nil, ledger.ErrNotFound)
	families.EXPECT().ListCompletionsForChildInRange(gomock.Any(), healthyChild, "2024-03-03", "2024-03-09").
		Return([]*family.Completion{
			{ChoreID: chore, ChildID: healthyChild, Date: "2024-03-03", Status: family.StatusApproved},
		}, nil)
	entries.EXPECT().AddEntry(gomock.Any(), gomock.Any()).Return(&ledger.Entry{ID: uuid.New()}, nil)
	alloc.EXPECT().Apply(gomock.Any(), healthyChild, int64(4)).Return(nil)

	result, err := payout.NewService(families, entries, alloc).Run(context.Background(), familyID, "2024-03-03")
	require.Error(t, err)
	assert.Contains(t, err.Error(), brokenChild.String())
	require.Len(t, result.Paid, 1)
	assert.Equal(t, healthyChild, result.Paid[0].ChildID)
}

// memLedger keeps payout entries keyed by the idempotency triple, the way
// the Postgres store's partial unique index does.
type memLedger struct {
	payouts map[string]*ledger.Entry
	posted  int
}

func (m *memLedger) key(childID, familyID uuid.UUID, weekStart string) string {
	return fmt.Sprintf("%s|%s|%s", childID, familyID, weekStart)
}

func (m *memLedger) FindPayoutForWeek(_ context.Context, childID, familyID uuid.UUID, weekStart string) (*ledger.Entry, error) {
	if e, ok := m.payouts[m.key(childID, familyID, weekStart)]; ok {
		return e, nil
	}

	return nil, ledger.ErrNotFound
}

func (m *memLedger) AddEntry(_ context.Context, p ledger.CreateParams) (*ledger.Entry, error) {
	e := &ledger.Entry{
		ID:        uuid.New(),
		ChildID:   p.ChildID,
		Amount:    p.Amount,
		Type:      p.Type,
		FamilyID:  p.FamilyID,
		WeekStart: p.WeekStart,
		Actor:     p.Actor,
	}

	if m.payouts == nil {
		m.payouts = make(map[string]*ledger.Entry)
	}

	m.payouts[m.key(p.ChildID, *p.FamilyID, p.WeekStart)] = e
	m.posted++

	return e, nil
}

type noopAllocator struct{}

func (noopAllocator) Apply(context.Context, uuid.UUID, int64) error { return nil }

// Running the job twice for the same week credits each child exactly
// once, and a child added between runs is paid by the second run.
func TestService_Run_IdempotentAcrossRunsAndNewChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	familyID := uuid.New()
	firstChild := uuid.New()
	secondChild := uuid.New()
	chore := uuid.New()

	families := payout.NewMockFamilyDirectory(ctrl)
	entries := &memLedger{}

	families.EXPECT().GetFamily(gomock.Any(), familyID).
		Return(&family.Family{ID: familyID, ChildIDs: []uuid.UUID{firstChild}}, nil)
	families.EXPECT().GetFamily(gomock.Any(), familyID).
		Return(&family.Family{ID: familyID, ChildIDs: []uuid.UUID{firstChild, secondChild}, Name: "after new sibling"}, nil)

	families.EXPECT().ListChores(gomock.Any(), familyID).
		Return([]*family.Chore{{ID: chore, Value: 10}}, nil).
		Times(2)

	completions := func(childID uuid.UUID) []*family.Completion {
		return []*family.Completion{
			{ChoreID: chore, ChildID: childID, Date: "2024-03-05", Status: family.StatusApproved},
		}
	}

	families.EXPECT().ListCompletionsForChildInRange(gomock.Any(), firstChild, "2024-03-03", "2024-03-09").
		Return(completions(firstChild), nil)
	families.EXPECT().ListCompletionsForChildInRange(gomock.Any(), secondChild, "2024-03-03", "2024-03-09").
		Return(completions(secondChild), nil)

	svc := payout.NewService(families, entries, noopAllocator{})

	first, err := svc.Run(context.Background(), familyID, "2024-03-03")
	require.NoError(t, err)
	require.Len(t, first.Paid, 1)

	second, err := svc.Run(context.Background(), familyID, "2024-03-03")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{firstChild}, second.AlreadyPaid)
	require.Len(t, second.Paid, 1)
	assert.Equal(t, secondChild, second.Paid[0].ChildID)

	// One payout entry per child per week, total.
	assert.Equal(t, 2, entries.posted)
}
