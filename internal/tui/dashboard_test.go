// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soletraderai/teachy-sub001/internal/adapter"
	"github.com/soletraderai/teachy-sub001/internal/mock"
	"github.com/soletraderai/teachy-sub001/internal/service"
	"github.com/soletraderai/teachy-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardFixture struct {
	sessions  *mock.MockClientSessionService
	auth      *mock.MockClientAuthService
	migration *mock.MockMigrationDriver
	services  *service.ClientServices
}

func newDashboardFixture(t *testing.T, list []models.Session, authenticated bool) *dashboardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &dashboardFixture{
		sessions:  mock.NewMockClientSessionService(ctrl),
		auth:      mock.NewMockClientAuthService(ctrl),
		migration: mock.NewMockMigrationDriver(ctrl),
	}
	f.services = &service.ClientServices{
		AuthService:    f.auth,
		SessionService: f.sessions,
		Migration:      f.migration,
	}

	f.sessions.EXPECT().ListSessions().Return(list).AnyTimes()
	f.sessions.EXPECT().SyncState().Return(models.SyncState{PendingSyncSessions: []string{}}).AnyTimes()
	f.sessions.EXPECT().CurrentSession().Return(models.Session{}, false).AnyTimes()
	f.auth.EXPECT().IsAuthenticated().Return(authenticated).AnyTimes()
	f.auth.EXPECT().UserID().Return("user-1").AnyTimes()
	f.migration.EXPECT().NeedsMigration(gomock.Any()).Return(false).AnyTimes()
	return f
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m tea.Model, keys ...string) (dashboardModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(keyPress(k))
	}
	out, ok := m.(dashboardModel)
	require.True(t, ok)
	return out, cmd
}

func twoSessions() []models.Session {
	return []models.Session{
		{ID: "b", CreatedAt: 2, Title: "Newer", Status: models.StatusActive},
		{ID: "a", CreatedAt: 1, Title: "Older", Status: models.StatusOverview},
	}
}

func TestDashboard_ListView(t *testing.T) {
	f := newDashboardFixture(t, twoSessions(), false)
	m := newDashboardModel(context.Background(), f.services)

	view := m.View()

	assert.Contains(t, view, "Newer")
	assert.Contains(t, view, "Older")
	assert.Contains(t, view, "Local only")
	assert.Contains(t, view, "Pending: 0")
}

func TestDashboard_PauseSelected(t *testing.T) {
	f := newDashboardFixture(t, twoSessions(), true)
	f.sessions.EXPECT().PauseSession(gomock.Any(), "a").Return(models.Session{}, nil)

	m, _ := press(t, newDashboardModel(context.Background(), f.services), "down", "p")

	assert.Equal(t, "Paused", m.status)
	assert.Empty(t, m.errMsg)
}

func TestDashboard_CreateSession(t *testing.T) {
	f := newDashboardFixture(t, nil, true)
	f.sessions.EXPECT().CreateSession(gomock.Any(), models.Session{Title: "Go"}).
		Return(models.Session{ID: "new", Title: "Go"}, nil)

	m, _ := press(t, newDashboardModel(context.Background(), f.services), "n", "G", "o", "enter")

	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, "Session created", m.status)
}

func TestDashboard_DeleteNeedsConfirmation(t *testing.T) {
	f := newDashboardFixture(t, twoSessions(), true)
	f.sessions.EXPECT().DeleteSession(gomock.Any(), "b").Return(nil)

	m, _ := press(t, newDashboardModel(context.Background(), f.services), "d")
	assert.Equal(t, modeConfirmDelete, m.mode)

	m, _ = press(t, m, "n")
	assert.Equal(t, modeList, m.mode)

	m, _ = press(t, m, "d", "y")
	assert.Equal(t, "Session deleted", m.status)
}

func TestDashboard_SyncRunsInBackground(t *testing.T) {
	f := newDashboardFixture(t, nil, true)
	f.sessions.EXPECT().SyncWithCloud(gomock.Any())

	m, cmd := press(t, newDashboardModel(context.Background(), f.services), "s")
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	msg := cmd()
	updated, _ := m.Update(msg)
	assert.False(t, updated.(dashboardModel).busy)
	assert.Equal(t, "Sync finished", updated.(dashboardModel).status)
}

func TestDashboard_LoginError(t *testing.T) {
	f := newDashboardFixture(t, nil, false)
	f.auth.EXPECT().Login(gomock.Any(), "tok").Return(service.ErrInvalidToken)

	m, cmd := press(t, newDashboardModel(context.Background(), f.services), "i", "t", "o", "k", "enter")
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	assert.Equal(t, "That token is not valid", updated.(dashboardModel).errMsg)
}

func TestDashboard_CopyID(t *testing.T) {
	f := newDashboardFixture(t, twoSessions(), true)

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { copyToClipboard = orig })

	m, _ := press(t, newDashboardModel(context.Background(), f.services), "c")

	assert.Equal(t, "b", copied)
	assert.Equal(t, "Session id copied", m.status)
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, "Remote store unreachable, changes stay queued", humanizeError(adapter.ErrNetwork))
	assert.Equal(t, "Sign in first (press i)", humanizeError(service.ErrNotAuthenticated))
	assert.Empty(t, humanizeError(nil))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
