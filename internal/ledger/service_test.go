package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"piggybank/internal/ledger"
)

func TestService_AddEntry(t *testing.T) {
	type testCase struct {
		name      string
		params    ledger.CreateParams
		setupMock func(m *ledger.MockRepository)
		wantErr   error
	}

	childID := uuid.New()

	tests := []testCase{
		{
			name: "Success",
			params: ledger.CreateParams{
				ChildID: childID,
				Amount:  250,
				Type:    ledger.TypeAdjustment,
				Note:    "birthday bonus",
				Actor:   ledger.Actor{Role: ledger.RoleParent, Name: "Ana"},
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
						e.ID = uuid.New()
						e.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "ZeroAmountRejected",
			params: ledger.CreateParams{
				ChildID: childID,
				Amount:  0,
				Type:    ledger.TypeAdjustment,
			},
			wantErr: ledger.ErrInvalidAmount,
		},
		{
			name: "RepoError",
			params: ledger.CreateParams{
				ChildID: childID,
				Amount:  10,
				Type:    ledger.TypePayout,
			},
			setupMock: func(m *ledger.MockRepository) {
				m.EXPECT().
					CreateEntry(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := ledger.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := ledger.NewService(repo)
			got, err := svc.AddEntry(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, tt.params.Amount, got.Amount)
		})
	}
}

func TestService_Balance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	childID := uuid.New()
	saverID := uuid.New()

	entries := []*ledger.Entry{
		{ChildID: childID, Amount: 100, Type: ledger.TypePayout},
		{ChildID: childID, Amount: -40, Type: ledger.TypeReserve, SaverID: &saverID},
		{ChildID: childID, Amount: -15, Type: ledger.TypeSpend},
		{ChildID: childID, Amount: 10, Type: ledger.TypeRelease, SaverID: &saverID},
		{ChildID: childID, Amount: -5, Type: ledger.TypeAdjustment},
	}

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().ListEntriesByChild(gomock.Any(), childID).Return(entries, nil)

	svc := ledger.NewService(repo)
	b, err := svc.Balance(context.Background(), childID)
	require.NoError(t, err)

	assert.Equal(t, int64(50), b.Available)
	assert.Equal(t, int64(30), b.Reserved)
}

// The available balance is a plain sum, so it must not depend on the
// order the store returns entries in.
func TestService_Balance_OrderIndependent(t *testing.T) {
	childID := uuid.New()

	entries := []*ledger.Entry{
		{ChildID: childID, Amount: 7, Type: ledger.TypePayout},
		{ChildID: childID, Amount: -3, Type: ledger.TypeSpend},
		{ChildID: childID, Amount: 12, Type: ledger.TypeAdjustment},
		{ChildID: childID, Amount: -6, Type: ledger.TypeReserve},
	}

	permutations := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{2, 0, 3, 1},
	}

	for _, perm := range permutations {
		ctrl := gomock.NewController(t)

		ordered := make([]*ledger.Entry, len(perm))
		for i, idx := range perm {
			ordered[i] = entries[idx]
		}

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().ListEntriesByChild(gomock.Any(), childID).Return(ordered, nil)

		b, err := ledger.NewService(repo).Balance(context.Background(), childID)
		require.NoError(t, err)
		assert.Equal(t, int64(10), b.Available)
		assert.Equal(t, int64(6), b.Reserved)

		ctrl.Finish()
	}
}

func TestService_Spend(t *testing.T) {
	childID := uuid.New()
	actor := ledger.Actor{Role: ledger.RoleChild, Name: "Leo"}

	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockSpendTx(ctrl)

		repo.EXPECT().BeginSpend(gomock.Any(), childID).Return(tx, nil)
		tx.EXPECT().Available(gomock.Any(), childID).Return(int64(10), nil)
		tx.EXPECT().CreateEntry(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
				e.ID = uuid.New()
				return nil
			})
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil)

		e, err := ledger.NewService(repo).Spend(context.Background(), childID, 4, "ice cream", actor)
		require.NoError(t, err)
		assert.Equal(t, int64(-4), e.Amount)
		assert.Equal(t, ledger.TypeSpend, e.Type)
		assert.Equal(t, actor, e.Actor)
	})

	t.Run("InsufficientFunds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		tx := ledger.NewMockSpendTx(ctrl)

		repo.EXPECT().BeginSpend(gomock.Any(), childID).Return(tx, nil)
		tx.EXPECT().Available(gomock.Any(), childID).Return(int64(1), nil)
		tx.EXPECT().Rollback().Return(nil)

		e, err := ledger.NewService(repo).Spend(context.Background(), childID, 5, "too much", actor)
		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
		assert.Nil(t, e)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)

		_, err := ledger.NewService(repo).Spend(context.Background(), childID, 0, "", actor)
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

		_, err = ledger.NewService(repo).Spend(context.Background(), childID, -3, "", actor)
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	})
}

// Adjustments bypass the balance guard: parents may push a child negative.
func TestService_Adjust_AllowsNegativeBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	childID := uuid.New()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
			e.ID = uuid.New()
			return nil
		})

	e, err := ledger.NewService(repo).Adjust(context.Background(), childID, -500, "broken window", ledger.Actor{Role: ledger.RoleParent})
	require.NoError(t, err)
	assert.Equal(t, int64(-500), e.Amount)
	assert.Equal(t, ledger.TypeAdjustment, e.Type)
}

// lockingStore is an in-memory Repository whose BeginSpend honors the
// per-child lock the Postgres store takes, mirroring its semantics.
type lockingStore struct {
	mu      sync.Mutex
	entries []*ledger.Entry
}

func (f *lockingStore) CreateEntry(_ context.Context, e *ledger.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	e.ID = uuid.New()
	f.entries = append(f.entries, e)

	return nil
}

func (f *lockingStore) ListEntriesByChild(_ context.Context, childID uuid.UUID) ([]*ledger.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*ledger.Entry

	for _, e := range f.entries {
		if e.ChildID == childID {
			out = append(out, e)
		}
	}

	return out, nil
}

func (f *lockingStore) FindPayoutForWeek(context.Context, uuid.UUID, uuid.UUID, string) (*ledger.Entry, error) {
	return nil, ledger.ErrNotFound
}

func (f *lockingStore) BeginSpend(context.Context, uuid.UUID) (ledger.SpendTx, error) {
	f.mu.Lock()
	return &lockingSpendTx{store: f}, nil
}

type lockingSpendTx struct {
	store   *lockingStore
	pending []*ledger.Entry
	done    bool
}

func (tx *lockingSpendTx) Available(_ context.Context, childID uuid.UUID) (int64, error) {
	var sum int64

	for _, e := range tx.store.entries {
		if e.ChildID == childID {
			sum += e.Amount
		}
	}

	return sum, nil
}

func (tx *lockingSpendTx) CreateEntry(_ context.Context, e *ledger.Entry) error {
	e.ID = uuid.New()
	tx.pending = append(tx.pending, e)

	return nil
}

func (tx *lockingSpendTx) Commit() error {
	if tx.done {
		return errors.New("already finished")
	}

	tx.store.entries = append(tx.store.entries, tx.pending...)
	tx.done = true
	tx.store.mu.Unlock()

	return nil
}

func (tx *lockingSpendTx) Rollback() error {
	if tx.done {
		return nil
	}

	tx.done = true
	tx.store.mu.Unlock()

	return nil
}

// Two concurrent spends of the full available balance must not both be
// admitted. The spend path serializes on a per-child lock, so the second
// one re-reads the drained balance and is rejected.
func TestService_Spend_ConcurrentFullBalance(t *testing.T) {
	childID := uuid.New()
	store := &lockingStore{}
	svc := ledger.NewService(store)

	_, err := svc.AddEntry(context.Background(), ledger.CreateParams{
		ChildID: childID,
		Amount:  100,
		Type:    ledger.TypePayout,
		Actor:   ledger.Actor{Role: ledger.RoleSystem, Name: "Weekly Payout"},
	})
	require.NoError(t, err)

	errs := make(chan error, 2)

	var wg sync.WaitGroup

	for range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Spend(context.Background(), childID, 100, "race", ledger.Actor{Role: ledger.RoleChild})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	var ok, rejected int

	for err := range errs {
		if err == nil {
			ok++
			continue
		}

		assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)
		rejected++
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, rejected)

	b, err := svc.Balance(context.Background(), childID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), b.Available)
}

// A rejected spend must leave the ledger untouched.
func TestService_Spend_FailureLeavesBalanceUnchanged(t *testing.T) {
	childID := uuid.New()
	store := &lockingStore{}
	svc := ledger.NewService(store)

	_, err := svc.AddEntry(context.Background(), ledger.CreateParams{
		ChildID: childID,
		Amount:  1,
		Type:    ledger.TypeAdjustment,
		Actor:   ledger.Actor{Role: ledger.RoleParent},
	})
	require.NoError(t, err)

	_, err = svc.Spend(context.Background(), childID, 5, "", ledger.Actor{Role: ledger.RoleChild})
	assert.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	b, err := svc.Balance(context.Background(), childID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.Available)
	assert.Equal(t, int64(0), b.Reserved)
}
