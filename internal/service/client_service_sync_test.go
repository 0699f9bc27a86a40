// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/mock"
	"github.com/soletraderai/teachy-sub001/internal/store"
	"github.com/soletraderai/teachy-sub001/internal/workers"
	"github.com/soletraderai/teachy-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type coordinatorFixture struct {
	c       *syncCoordinator
	records *store.RecordStore
	gateway *mock.MockRemoteGateway
	auth    *mock.MockClientAuthService
	kv      *mock.MockLocalKVRepository
}

func newCoordinatorFixture(t *testing.T, authenticated bool) *coordinatorFixture {
	t.Helper()
	return newCoordinatorFixtureWithKV(t, authenticated, func(kv *mock.MockLocalKVRepository) {
		kv.EXPECT().Get(gomock.Any(), store.KeyLastSyncedAt).Return("", store.ErrKeyNotFound).AnyTimes()
	})
}

func newCoordinatorFixtureWithKV(t *testing.T, authenticated bool, expectKV func(kv *mock.MockLocalKVRepository)) *coordinatorFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &coordinatorFixture{
		records: store.NewRecordStore(nil, nil, logger.Nop()),
		gateway: mock.NewMockRemoteGateway(ctrl),
		auth:    mock.NewMockClientAuthService(ctrl),
		kv:      mock.NewMockLocalKVRepository(ctrl),
	}
	f.auth.EXPECT().IsAuthenticated().Return(authenticated).AnyTimes()
	expectKV(f.kv)

	pool := workers.NewPool(2, logger.Nop())
	f.c = NewSyncCoordinator(f.records, f.gateway, f.auth, f.kv, pool, DefaultRetryCeiling, logger.Nop()).(*syncCoordinator)
	f.c.Run()
	t.Cleanup(f.c.Stop)
	return f
}

func (f *coordinatorFixture) create(id string, createdAt int64) models.Session {
	return f.records.Create(context.Background(), rec(id, createdAt, "title "+id))
}

// ── OnCreate ─────────────────────────────────────────────────────────────────

func TestSyncCoordinator_OnCreate_Success(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	f.gateway.EXPECT().Create(gomock.Any(), s).Return("r-S", nil)

	f.c.OnCreate(ctx, s)
	f.c.Wait()

	got, ok := f.records.Get("S")
	require.True(t, ok)
	assert.Equal(t, "r-S", got.RemoteID)
	assert.Zero(t, f.c.PendingCount())
}

func TestSyncCoordinator_OnCreate_FailureQueuesFirstAttempt(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	f.gateway.EXPECT().Create(gomock.Any(), s).Return("", adapter.ErrNetwork)

	f.c.OnCreate(ctx, s)
	f.c.Wait()

	state := f.c.State()
	assert.Equal(t, []string{"S"}, state.PendingSyncSessions)
	assert.Equal(t, 1, state.SyncErrors["S"].Attempts)
	assert.Contains(t, state.SyncErrors["S"].LastError, adapter.ErrNetwork.Error())
}

func TestSyncCoordinator_NotAuthenticated_SkipsRemote(t *testing.T) {
	f := newCoordinatorFixture(t, false)
	ctx := context.Background()
	s := f.create("S", 1)

	f.c.OnCreate(ctx, s)
	f.c.OnDelete(ctx, s)
	f.c.LogCommitment(ctx, models.Commitment{SessionID: "S"})
	f.c.RetryPendingSyncs(ctx)
	f.c.SyncWithCloud(ctx)
	f.c.Wait()

	assert.Zero(t, f.c.PendingCount())
	assert.Nil(t, f.c.State().LastSyncedAt)
}

// ── failure bookkeeping ──────────────────────────────────────────────────────

func TestSyncCoordinator_RetryCeiling(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	x := f.create("X", 1)

	f.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", adapter.ErrNetwork).Times(4)

	f.c.OnCreate(ctx, x)
	f.c.Wait()
	f.c.RetryPendingSyncs(ctx)
	f.c.RetryPendingSyncs(ctx)

	entry, ok := f.records.Queue().Entry("X")
	require.True(t, ok)
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, []string{"X"}, f.c.State().PendingSyncSessions)

	// fourth failure drops the entry
	f.c.RetryPendingSyncs(ctx)

	state := f.c.State()
	assert.Empty(t, state.PendingSyncSessions)
	assert.Equal(t, 3, state.SyncErrors["X"].Attempts)

	// nothing left to retry: Times(4) fails the test on a fifth call
	f.c.RetryPendingSyncs(ctx)
	assert.Zero(t, f.c.PendingCount())
}

func TestSyncCoordinator_ValidationErrorDropsWithoutAttempt(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	f.gateway.EXPECT().Create(gomock.Any(), s).Return("", adapter.ErrValidation)

	f.c.OnCreate(ctx, s)
	f.c.Wait()

	entry, ok := f.records.Queue().Entry("S")
	require.True(t, ok)
	assert.False(t, entry.Pending)
	assert.Zero(t, entry.Attempts)
	assert.Zero(t, f.c.PendingCount())
	assert.Contains(t, f.c.State().SyncErrors, "S")
}

func TestSyncCoordinator_AuthErrorHoldsAndLogsOut(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	f.gateway.EXPECT().Create(gomock.Any(), s).Return("", adapter.ErrAuth)
	f.auth.EXPECT().ForceLogout(gomock.Any(), gomock.Any())

	f.c.OnCreate(ctx, s)
	f.c.Wait()

	entry, ok := f.records.Queue().Entry("S")
	require.True(t, ok)
	assert.True(t, entry.Pending)
	assert.Zero(t, entry.Attempts)
}

func TestSyncCoordinator_NotFoundOnUpdateIsRetried(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)

	title := "renamed"
	update := models.SessionUpdate{Title: &title}
	prev, next, ok := f.records.Update(ctx, "S", update)
	require.True(t, ok)

	gomock.InOrder(
		f.gateway.EXPECT().Update(gomock.Any(), "S", update).Return(adapter.ErrNotFound),
		f.gateway.EXPECT().Create(gomock.Any(), next).Return("r-S", nil),
	)

	f.c.OnUpdate(ctx, update, prev, next)
	f.c.Wait()
	assert.Equal(t, 1, f.c.PendingCount())

	f.c.RetryPendingSyncs(ctx)
	assert.Zero(t, f.c.PendingCount())
	got, _ := f.records.Get("S")
	assert.Equal(t, "r-S", got.RemoteID)
}

func TestSyncCoordinator_NewMutationRevivesDroppedEntry(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	f.gateway.EXPECT().Create(gomock.Any(), s).Return("", adapter.ErrValidation)
	f.c.OnCreate(ctx, s)
	f.c.Wait()
	require.Zero(t, f.c.PendingCount())

	score := 3
	update := models.SessionUpdate{Score: &score}
	prev, next, _ := f.records.Update(ctx, "S", update)
	f.gateway.EXPECT().Update(gomock.Any(), "S", update).Return(adapter.ErrNetwork)

	f.c.OnUpdate(ctx, update, prev, next)
	f.c.Wait()

	entry, ok := f.records.Queue().Entry("S")
	require.True(t, ok)
	assert.True(t, entry.Pending)
	assert.Equal(t, 1, entry.Attempts)
}

// ── delete wins ──────────────────────────────────────────────────────────────

func TestSyncCoordinator_DeleteWinsOverPendingRetry(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	f.gateway.EXPECT().Create(gomock.Any(), s).Return("", adapter.ErrNetwork).Times(1)
	f.c.OnCreate(ctx, s)
	f.c.Wait()
	require.Equal(t, 1, f.c.PendingCount())

	removed, ok := f.records.Delete(ctx, "S")
	require.True(t, ok)
	f.gateway.EXPECT().Delete(gomock.Any(), "S").Return(nil)
	f.c.OnDelete(ctx, removed)
	f.c.Wait()

	f.c.RetryPendingSyncs(ctx)
	assert.Zero(t, f.c.PendingCount())
	assert.NotContains(t, f.c.State().SyncErrors, "S")
}

func TestSyncCoordinator_DeleteWinsOverInFlightWrite(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	started := make(chan struct{})
	release := make(chan struct{})
	f.gateway.EXPECT().Create(gomock.Any(), s).DoAndReturn(func(context.Context, models.Session) (string, error) {
		close(started)
		<-release
		return "", adapter.ErrNetwork
	})

	f.c.OnCreate(ctx, s)
	<-started
	_, ok := f.records.Delete(ctx, "S")
	require.True(t, ok)
	close(release)
	f.c.Wait()

	_, tracked := f.records.Queue().Entry("S")
	assert.False(t, tracked)

	f.c.RetryPendingSyncs(ctx)
	assert.Zero(t, f.c.PendingCount())
}

func TestSyncCoordinator_StaleCreateSuccessKeepsLaterFailedUpdate(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)

	started := make(chan struct{})
	release := make(chan struct{})
	title := "edited"
	update := models.SessionUpdate{Title: &title}

	createCall := f.gateway.EXPECT().Create(gomock.Any(), s).DoAndReturn(func(context.Context, models.Session) (string, error) {
		close(started)
		<-release
		return "", nil
	})
	f.gateway.EXPECT().Update(gomock.Any(), "S", update).Return(adapter.ErrNotFound).After(createCall)

	f.c.OnCreate(ctx, s)
	<-started

	prev, next, ok := f.records.Update(ctx, "S", update)
	require.True(t, ok)
	f.c.OnUpdate(ctx, update, prev, next)

	close(release)
	f.c.Wait()

	assert.Equal(t, []string{"S"}, f.c.State().PendingSyncSessions)
	entry, tracked := f.records.Queue().Entry("S")
	require.True(t, tracked)
	assert.Equal(t, 1, entry.Attempts)

	f.gateway.EXPECT().Create(gomock.Any(), next).Return("r-S", nil)
	f.c.RetryPendingSyncs(ctx)
	assert.Zero(t, f.c.PendingCount())
}

func TestSyncCoordinator_OnDeleteFailureIsNotQueued(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)
	removed, _ := f.records.Delete(ctx, s.ID)

	f.gateway.EXPECT().Delete(gomock.Any(), "S").Return(adapter.ErrNetwork)

	f.c.OnDelete(ctx, removed)
	f.c.Wait()

	assert.Zero(t, f.c.PendingCount())
	assert.Empty(t, f.c.State().SyncErrors)
}

// ── OnUpdate ─────────────────────────────────────────────────────────────────

func TestSyncCoordinator_OnUpdate_CompletePath(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)
	require.True(t, f.records.SetRemoteID(ctx, "S", "r-S"))

	completed := models.StatusCompleted
	update := models.SessionUpdate{Status: &completed}
	prev, next, ok := f.records.Update(ctx, "S", update)
	require.True(t, ok)

	gomock.InOrder(
		f.gateway.EXPECT().Update(gomock.Any(), "r-S", models.FullUpdate(next)).Return(nil),
		f.gateway.EXPECT().Complete(gomock.Any(), "r-S").Return(nil),
	)

	f.c.OnUpdate(ctx, update, prev, next)
	f.c.Wait()
	assert.Zero(t, f.c.PendingCount())
}

func TestSyncCoordinator_OnUpdate_CompleteFailureIsQueued(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)

	completed := models.StatusCompleted
	update := models.SessionUpdate{Status: &completed}
	prev, next, _ := f.records.Update(ctx, "S", update)

	f.gateway.EXPECT().Update(gomock.Any(), "S", gomock.Any()).Return(nil)
	f.gateway.EXPECT().Complete(gomock.Any(), "S").Return(adapter.ErrNetwork)

	f.c.OnUpdate(ctx, update, prev, next)
	f.c.Wait()
	assert.Equal(t, 1, f.c.PendingCount())
}

func TestSyncCoordinator_OnUpdate_PlainPath(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)

	active := models.StatusActive
	update := models.SessionUpdate{Status: &active}
	prev, next, _ := f.records.Update(ctx, "S", update)

	f.gateway.EXPECT().Update(gomock.Any(), "S", update).Return(nil)

	f.c.OnUpdate(ctx, update, prev, next)
	f.c.Wait()
	assert.Zero(t, f.c.PendingCount())
}

func TestSyncCoordinator_OnUpdate_CallerMayReuseUpdate(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)

	title := "renamed"
	update := models.SessionUpdate{Title: &title, Topics: []models.Topic{{ID: "t-1", Title: "Select"}}}
	prev, next, ok := f.records.Update(ctx, "S", update)
	require.True(t, ok)

	release := make(chan struct{})
	var sent models.SessionUpdate
	f.gateway.EXPECT().Update(gomock.Any(), "S", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, u models.SessionUpdate) error {
		<-release
		sent = u
		return nil
	})

	f.c.OnUpdate(ctx, update, prev, next)
	title = "reused"
	update.Topics[0].Title = "reused"
	close(release)
	f.c.Wait()

	require.NotNil(t, sent.Title)
	assert.Equal(t, "renamed", *sent.Title)
	assert.Equal(t, "Select", sent.Topics[0].Title)
}

func TestSyncCoordinator_LogCommitmentFailureIsSwallowed(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)
	c := models.Commitment{SessionID: "S", MinutesSpent: 3}

	f.gateway.EXPECT().LogCommitment(gomock.Any(), c).Return(adapter.ErrNetwork)

	f.c.LogCommitment(ctx, c)
	f.c.Wait()
	assert.Zero(t, f.c.PendingCount())
	assert.Empty(t, f.c.State().SyncErrors)
}

// ── RetryPendingSyncs ────────────────────────────────────────────────────────

func TestSyncCoordinator_RetryPendingSyncs_SingleFlight(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)
	f.records.Queue().MarkFailed(ctx, "S", "boom", DefaultRetryCeiling)

	started := make(chan struct{})
	release := make(chan struct{})
	f.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Session) (string, error) {
		close(started)
		<-release
		return "r-S", nil
	}).Times(1)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f.c.RetryPendingSyncs(ctx)
	}()
	<-started
	go func() {
		defer wg.Done()
		f.c.RetryPendingSyncs(ctx)
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Zero(t, f.c.PendingCount())
}

func TestSyncCoordinator_RetryPendingSyncs_ClearsOrphans(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("S", 1)
	f.records.Queue().MarkFailed(ctx, "S", "boom", DefaultRetryCeiling)
	f.records.Delete(ctx, "S")

	f.c.RetryPendingSyncs(ctx)
	assert.Zero(t, f.c.PendingCount())
}

// ── SyncWithCloud ────────────────────────────────────────────────────────────

func TestSyncCoordinator_SyncWithCloud_ReconcilesThenDrainsQueue(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("A", 100)
	l := f.create("L", 50)

	remoteA := rec("A", 90, "remote A")
	remoteB := rec("B", 200, "remote B")

	gomock.InOrder(
		f.gateway.EXPECT().Create(gomock.Any(), l).Return("", adapter.ErrNetwork),
		f.gateway.EXPECT().Create(gomock.Any(), l).Return("r-L", nil),
	)
	f.gateway.EXPECT().List(gomock.Any()).Return([]models.RemoteSession{
		{RemoteID: "r-A", Session: remoteA},
		{RemoteID: "r-B", Session: remoteB},
	}, nil)
	f.kv.EXPECT().Set(gomock.Any(), store.KeyLastSyncedAt, gomock.Any()).Return(nil)

	f.c.OnCreate(ctx, l)
	f.c.Wait()
	require.Equal(t, 1, f.c.PendingCount())

	f.c.SyncWithCloud(ctx)

	list := f.records.List()
	assert.Equal(t, []string{"B", "A", "L"}, idsOf(list))
	assert.Equal(t, "title A", list[1].Title)
	assert.Equal(t, "r-A", list[1].RemoteID)
	assert.Equal(t, "r-B", list[0].RemoteID)
	assert.Equal(t, "r-L", list[2].RemoteID)

	state := f.c.State()
	assert.False(t, state.IsSyncing)
	assert.NotNil(t, state.LastSyncedAt)
	assert.Empty(t, state.LastSyncError)
	assert.Empty(t, state.PendingSyncSessions)
}

func TestSyncCoordinator_SyncWithCloud_FailureLeavesLocalUntouched(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	f.create("A", 100)

	f.gateway.EXPECT().List(gomock.Any()).Return(nil, adapter.ErrNetwork)

	f.c.SyncWithCloud(ctx)

	assert.Equal(t, []string{"A"}, idsOf(f.records.List()))
	state := f.c.State()
	assert.Nil(t, state.LastSyncedAt)
	assert.Contains(t, state.LastSyncError, ErrSyncFailed.Error())
	assert.False(t, state.IsSyncing)
}

func TestSyncCoordinator_SyncWithCloud_AuthErrorLogsOut(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()

	f.gateway.EXPECT().List(gomock.Any()).Return(nil, adapter.ErrAuth)
	f.auth.EXPECT().ForceLogout(gomock.Any(), gomock.Any())

	f.c.SyncWithCloud(ctx)
}

func TestSyncCoordinator_Run_RestoresLastSyncedAt(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := newCoordinatorFixtureWithKV(t, true, func(kv *mock.MockLocalKVRepository) {
		kv.EXPECT().Get(gomock.Any(), store.KeyLastSyncedAt).Return(at.Format(time.RFC3339Nano), nil)
	})

	state := f.c.State()
	require.NotNil(t, state.LastSyncedAt)
	assert.True(t, at.Equal(*state.LastSyncedAt))
}

// ── lifecycle ────────────────────────────────────────────────────────────────

func TestSyncCoordinator_SubmitAfterStopHoldsWrite(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	s := f.create("S", 1)
	f.c.Stop()

	f.c.OnCreate(ctx, s)
	f.c.Wait()

	entry, ok := f.records.Queue().Entry("S")
	require.True(t, ok)
	assert.True(t, entry.Pending)
	assert.Zero(t, entry.Attempts)
}

// ── optimistic visibility ────────────────────────────────────────────────────

func TestCreateSession_VisibleBeforeRemoteWriteCompletes(t *testing.T) {
	f := newCoordinatorFixture(t, true)
	ctx := context.Background()
	sessions := NewClientSessionService(f.records, f.c, nil, logger.Nop())

	release := make(chan struct{})
	f.gateway.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Session) (string, error) {
		<-release
		return "", adapter.ErrNetwork
	})

	created, err := sessions.CreateSession(ctx, models.Session{Title: "Go generics"})
	require.NoError(t, err)

	got, ok := sessions.GetSession(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, got)

	close(release)
	f.c.Wait()

	got, ok = sessions.GetSession(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Go generics", got.Title)
	assert.Equal(t, 1, sessions.GetPendingSyncCount())
}
