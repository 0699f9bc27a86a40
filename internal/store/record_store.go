// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/models"
)

// MergeFunc combines the local and remote session sets into the new local
// contents. It runs under the record store lock and must not call back into
// the store.
type MergeFunc func(local, remote []models.Session) []models.Session

// RecordStore is the client's authoritative, synchronously readable and
// writable collection of sessions, plus the "current session" pointer used by
// the active-session view.
//
// Every mutation is applied in memory first and then written through to the
// local SQLite replica. Persistence failures are logged and never fail the
// mutation. Reads return deep copies.
//
// The store and its [SyncQueue] share one mutex, so queue bookkeeping is
// linearizable with record mutations.
type RecordStore struct {
	mu sync.Mutex

	order     []string
	records   map[string]models.Session
	positions map[string]int64
	head      int64
	current   string

	repository LocalSessionRepository
	queue      *SyncQueue
	logger     *logger.Logger
}

// NewRecordStore builds an empty store. Nil repositories keep the store
// purely in memory.
func NewRecordStore(sessions LocalSessionRepository, entries LocalSyncQueueRepository, log *logger.Logger) *RecordStore {
	s := &RecordStore{
		records:    make(map[string]models.Session),
		positions:  make(map[string]int64),
		repository: sessions,
		logger:     log,
	}
	s.queue = newSyncQueue(s, entries)
	return s
}

// Queue returns the sync queue guarded by this store's lock.
func (s *RecordStore) Queue() *SyncQueue {
	return s.queue
}

// Load replaces the in-memory state with the persisted replica.
func (s *RecordStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = s.order[:0]
	clear(s.records)
	clear(s.positions)
	s.head = 0
	s.current = ""

	if s.repository != nil {
		stored, err := s.repository.LoadSessions(ctx)
		if err != nil {
			return fmt.Errorf("error loading sessions: %w", err)
		}
		for i, item := range stored {
			if _, dup := s.records[item.Session.ID]; dup {
				continue
			}
			if i == 0 || item.Position < s.head {
				s.head = item.Position
			}
			s.order = append(s.order, item.Session.ID)
			s.records[item.Session.ID] = item.Session
			s.positions[item.Session.ID] = item.Position
		}
	}

	if err := s.queue.loadLocked(ctx); err != nil {
		return fmt.Errorf("error loading sync queue: %w", err)
	}

	s.logger.Debug().
		Str("func", "RecordStore.Load").
		Int("sessions", len(s.order)).
		Int("pending", s.queue.pendingCountLocked()).
		Msg("local replica loaded")

	return nil
}

// Create inserts session at the head of the collection and makes it current.
// An existing record with the same id is replaced and moved to the head, so
// there is never more than one record per id.
func (s *RecordStore) Create(ctx context.Context, session models.Session) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session = session.Clone()
	if _, exists := s.records[session.ID]; exists {
		s.removeFromOrderLocked(session.ID)
	}

	s.head--
	s.order = append([]string{session.ID}, s.order...)
	s.records[session.ID] = session
	s.positions[session.ID] = s.head
	s.current = session.ID

	s.persistLocked(ctx, session)

	return session.Clone()
}

// Update merges update into the record with the given id. ok is false when
// the id is unknown; that is not an error.
func (s *RecordStore) Update(ctx context.Context, id string, update models.SessionUpdate) (prev, next models.Session, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok = s.records[id]
	if !ok {
		return models.Session{}, models.Session{}, false
	}

	next = update.Apply(prev)
	s.records[id] = next
	s.persistLocked(ctx, next)

	return prev.Clone(), next.Clone(), true
}

// SetRemoteID records the identifier assigned by the remote store.
func (s *RecordStore) SetRemoteID(ctx context.Context, id, remoteID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.records[id]
	if !ok || remoteID == "" || session.RemoteID == remoteID {
		return ok
	}

	session.RemoteID = remoteID
	s.records[id] = session
	s.persistLocked(ctx, session)

	return true
}

// Delete removes the record and any sync queue entry for it, in the same
// critical section, so a deleted session is never retried. The removed
// record is returned.
func (s *RecordStore) Delete(ctx context.Context, id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.records[id]
	s.queue.removeLocked(ctx, id)
	if !ok {
		return models.Session{}, false
	}

	s.removeFromOrderLocked(id)
	delete(s.records, id)
	delete(s.positions, id)
	if s.current == id {
		s.current = ""
	}

	if s.repository != nil {
		if err := s.repository.DeleteSession(ctx, id); err != nil {
			s.logger.Err(err).Str("func", "RecordStore.Delete").Str("session_id", id).Msg("failed to persist deletion")
		}
	}

	return session, true
}

// Get returns a copy of the record with the given id.
func (s *RecordStore) Get(id string) (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.records[id]
	if !ok {
		return models.Session{}, false
	}
	return session.Clone(), true
}

// List returns copies of all records, most recent first.
func (s *RecordStore) List() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listLocked()
}

// Len returns the number of records.
func (s *RecordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.order)
}

// Current returns the active session, if any.
func (s *RecordStore) Current() (models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == "" {
		return models.Session{}, false
	}
	session, ok := s.records[s.current]
	return session.Clone(), ok
}

// SetCurrent points the active-session view at id. An empty id clears it.
func (s *RecordStore) SetCurrent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.current = ""
		return true
	}
	if _, ok := s.records[id]; !ok {
		return false
	}
	s.current = id
	return true
}

// Reconcile installs merge(local, remote) as the new store contents.
// The local snapshot, the merge and the install happen under one lock, so a
// mutation can't land between reading and replacing the records.
func (s *RecordStore) Reconcile(ctx context.Context, remote []models.Session, merge MergeFunc) []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := merge(s.listLocked(), remote)

	s.order = make([]string, 0, len(merged))
	clear(s.records)
	clear(s.positions)
	s.head = 0
	for i, session := range merged {
		if _, dup := s.records[session.ID]; dup {
			continue
		}
		session = session.Clone()
		s.order = append(s.order, session.ID)
		s.records[session.ID] = session
		s.positions[session.ID] = int64(i)
	}
	if _, ok := s.records[s.current]; !ok {
		s.current = ""
	}

	if s.repository != nil {
		if err := s.repository.ReplaceSessions(ctx, s.listLocked()); err != nil {
			s.logger.Err(err).Str("func", "RecordStore.Reconcile").Msg("failed to persist reconciled sessions")
		}
	}

	return s.listLocked()
}

// Clear drops every record and every sync queue entry.
func (s *RecordStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	clear(s.records)
	clear(s.positions)
	s.head = 0
	s.current = ""
	s.queue.clearLocked(ctx)

	if s.repository != nil {
		if err := s.repository.ReplaceSessions(ctx, nil); err != nil {
			s.logger.Err(err).Str("func", "RecordStore.Clear").Msg("failed to persist cleared sessions")
		}
	}
}

func (s *RecordStore) existsLocked(id string) bool {
	_, ok := s.records[id]
	return ok
}

func (s *RecordStore) listLocked() []models.Session {
	out := make([]models.Session, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id].Clone())
	}
	return out
}

func (s *RecordStore) removeFromOrderLocked(id string) {
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

func (s *RecordStore) persistLocked(ctx context.Context, session models.Session) {
	if s.repository == nil {
		return
	}
	if err := s.repository.SaveSession(ctx, session, s.positions[session.ID]); err != nil {
		s.logger.Err(err).
			Str("func", "RecordStore.persist").
			Str("session_id", session.ID).
			Msg("failed to persist session")
	}
}
