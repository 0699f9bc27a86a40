// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/soletraderai/teachy-sub001/internal/config"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReplica(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return db
}

func newPersistentStore(t *testing.T, db *DB) *RecordStore {
	t.Helper()

	l := logger.Nop()
	s := NewRecordStore(NewLocalSessionRepository(db, l), NewLocalSyncQueueRepository(db, l), l)
	require.NoError(t, s.Load(context.Background()))
	return s
}

func newSession(id string, createdAt int64) models.Session {
	return models.Session{ID: id, CreatedAt: createdAt, Title: id, Status: models.StatusOverview}
}

func ids(sessions []models.Session) []string {
	out := make([]string, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, s.ID)
	}
	return out
}

func TestRecordStore_CreatePrependsAndSetsCurrent(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())

	s.Create(ctx, newSession("a", 1))
	s.Create(ctx, newSession("b", 2))

	assert.Equal(t, []string{"b", "a"}, ids(s.List()))
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "b", current.ID)
}

func TestRecordStore_CreateSameIDReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())

	s.Create(ctx, newSession("a", 1))
	s.Create(ctx, newSession("b", 2))
	replaced := newSession("a", 1)
	replaced.Title = "again"
	s.Create(ctx, replaced)

	list := s.List()
	assert.Equal(t, []string{"a", "b"}, ids(list))
	assert.Equal(t, "again", list[0].Title)
}

func TestRecordStore_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())

	created := newSession("a", 1)
	created.Topics = []models.Topic{{ID: "t1", Title: "one"}}
	s.Create(ctx, created)

	got, _ := s.Get("a")
	got.Topics[0].Title = "mutated"

	again, _ := s.Get("a")
	assert.Equal(t, "one", again.Topics[0].Title)
}

func TestRecordStore_Update(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())
	s.Create(ctx, newSession("a", 1))

	title := "renamed"
	prev, next, ok := s.Update(ctx, "a", models.SessionUpdate{Title: &title})
	require.True(t, ok)
	assert.Equal(t, "a", prev.Title)
	assert.Equal(t, "renamed", next.Title)

	_, _, ok = s.Update(ctx, "missing", models.SessionUpdate{Title: &title})
	assert.False(t, ok)
}

func TestRecordStore_DeleteRemovesQueueEntry(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())
	s.Create(ctx, newSession("a", 1))

	_, outcome := s.Queue().MarkFailed(ctx, "a", "network", 3)
	require.Equal(t, FailureQueued, outcome)

	removed, ok := s.Delete(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, "a", removed.ID)

	_, tracked := s.Queue().Entry("a")
	assert.False(t, tracked)
	assert.Zero(t, s.Queue().PendingCount())
	_, hasCurrent := s.Current()
	assert.False(t, hasCurrent)

	_, outcome = s.Queue().MarkFailed(ctx, "a", "late failure", 3)
	assert.Equal(t, FailureIgnored, outcome)
	assert.Zero(t, s.Queue().PendingCount())
}

func TestSyncQueue_RetryCeiling(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())
	s.Create(ctx, newSession("a", 1))
	q := s.Queue()

	for i := 1; i <= 3; i++ {
		entry, outcome := q.MarkFailed(ctx, "a", "network", 3)
		require.Equal(t, FailureQueued, outcome)
		assert.Equal(t, i, entry.Attempts)
		assert.True(t, entry.Pending)
	}

	entry, outcome := q.MarkFailed(ctx, "a", "network", 3)
	assert.Equal(t, FailureDropped, outcome)
	assert.False(t, entry.Pending)
	assert.Equal(t, 3, entry.Attempts)

	assert.Empty(t, q.PendingIDs())
	assert.Equal(t, models.SyncError{LastError: "network", Attempts: 3}, q.Errors()["a"])
}

func TestSyncQueue_DropHoldAndReset(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())
	s.Create(ctx, newSession("a", 1))
	q := s.Queue()

	require.True(t, q.Drop(ctx, "a", "validation"))
	entry, _ := q.Entry("a")
	assert.False(t, entry.Pending)
	assert.Zero(t, entry.Attempts)

	q.ResetTerminal(ctx, "a")
	entry, _ = q.Entry("a")
	assert.True(t, entry.Pending)

	q.MarkFailed(ctx, "a", "network", 3)
	require.True(t, q.Hold(ctx, "a", "auth"))
	entry, _ = q.Entry("a")
	assert.True(t, entry.Pending)
	assert.Equal(t, 1, entry.Attempts)
	assert.Equal(t, "auth", entry.LastError)

	q.MarkSuccess(ctx, "a")
	_, tracked := q.Entry("a")
	assert.False(t, tracked)
}

func TestSyncQueue_SnapshotKeepsQueueOrder(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())
	for _, id := range []string{"a", "b", "c"} {
		s.Create(ctx, newSession(id, 1))
	}
	q := s.Queue()

	q.MarkFailed(ctx, "c", "x", 3)
	q.MarkFailed(ctx, "a", "x", 3)
	q.MarkFailed(ctx, "b", "x", 3)
	q.MarkFailed(ctx, "c", "x", 3)

	snapshot := q.Snapshot()
	got := make([]string, 0, len(snapshot))
	for _, e := range snapshot {
		got = append(got, e.SessionID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestRecordStore_ReconcileInstallsMerge(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())
	s.Create(ctx, newSession("a", 1))
	s.SetCurrent("a")

	var seenLocal []string
	merged := s.Reconcile(ctx, []models.Session{newSession("b", 2)}, func(local, remote []models.Session) []models.Session {
		seenLocal = ids(local)
		return remote
	})

	assert.Equal(t, []string{"a"}, seenLocal)
	assert.Equal(t, []string{"b"}, ids(merged))
	assert.Equal(t, []string{"b"}, ids(s.List()))
	_, hasCurrent := s.Current()
	assert.False(t, hasCurrent)
}

func TestRecordStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore(nil, nil, logger.Nop())
	s.Create(ctx, newSession("a", 1))
	s.Queue().MarkFailed(ctx, "a", "x", 3)

	s.Clear(ctx)

	assert.Zero(t, s.Len())
	assert.Zero(t, s.Queue().PendingCount())
	assert.Empty(t, s.Queue().Errors())
}

func TestRecordStore_PersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	db := newTestReplica(t)

	s := newPersistentStore(t, db)
	s.Create(ctx, newSession("a", 1))
	s.Create(ctx, newSession("b", 2))
	s.Create(ctx, newSession("c", 3))
	s.Delete(ctx, "b")
	s.SetRemoteID(ctx, "a", "remote-a")

	withProgress := newSession("c", 3)
	withProgress.Progress = &models.Progress{QuestionsAnswered: 2}
	s.Create(ctx, withProgress)

	s.Queue().MarkFailed(ctx, "a", "offline", 3)
	s.Queue().MarkFailed(ctx, "c", "offline", 3)
	s.Queue().MarkFailed(ctx, "a", "offline", 3)

	reloaded := newPersistentStore(t, db)

	list := reloaded.List()
	assert.Equal(t, []string{"c", "a"}, ids(list))
	assert.Equal(t, "remote-a", list[1].RemoteID)
	require.NotNil(t, list[0].Progress)
	assert.Equal(t, 2, list[0].Progress.QuestionsAnswered)

	assert.Equal(t, []string{"a", "c"}, reloaded.Queue().PendingIDs())
	entry, ok := reloaded.Queue().Entry("a")
	require.True(t, ok)
	assert.Equal(t, 2, entry.Attempts)

	reloaded.Create(ctx, newSession("d", 4))
	assert.Equal(t, []string{"d", "c", "a"}, ids(reloaded.List()))
}

func TestRecordStore_ReconcilePersists(t *testing.T) {
	ctx := context.Background()
	db := newTestReplica(t)

	s := newPersistentStore(t, db)
	s.Create(ctx, newSession("a", 1))
	s.Reconcile(ctx, nil, func(local, remote []models.Session) []models.Session {
		return []models.Session{newSession("x", 9), newSession("a", 1)}
	})

	reloaded := newPersistentStore(t, db)
	assert.Equal(t, []string{"x", "a"}, ids(reloaded.List()))
}
