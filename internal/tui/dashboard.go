// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soletraderai/teachy-sub001/internal/service"
	"github.com/soletraderai/teachy-sub001/models"
)

const (
	refreshInterval = time.Second
	statusTTL       = 4 * time.Second
	titleWidth      = 40
)

type mode int

const (
	modeList mode = iota
	modeCreate
	modeLogin
	modeConfirmDelete
)

var copyToClipboard = clipboard.WriteAll

type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices

	sessions       []models.Session
	idx            int
	currentID      string
	state          models.SyncState
	authenticated  bool
	userID         string
	needsMigration bool

	mode       mode
	inputs     []textinput.Model
	focus      int
	tokenInput textinput.Model
	spinner    spinner.Model
	busy       bool
	status     string
	errMsg     string
	now        func() time.Time
}

func newDashboardModel(ctx context.Context, services *service.ClientServices) dashboardModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := dashboardModel{
		ctx:      ctx,
		services: services,
		spinner:  s,
		now:      time.Now,
	}
	m.refresh()
	return m
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickRefresh())
}

func tickRefresh() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return refreshMsg(t) })
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// refresh re-reads everything the view renders. All reads are in-memory.
func (m *dashboardModel) refresh() {
	m.sessions = m.services.SessionService.ListSessions()
	m.state = m.services.SessionService.SyncState()
	m.authenticated = m.services.AuthService.IsAuthenticated()
	m.userID = m.services.AuthService.UserID()
	m.needsMigration = m.services.Migration.NeedsMigration(m.ctx)

	m.currentID = ""
	if current, ok := m.services.SessionService.CurrentSession(); ok {
		m.currentID = current.ID
	}

	if m.idx >= len(m.sessions) {
		m.idx = len(m.sessions) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) selected() (models.Session, bool) {
	if m.idx < 0 || m.idx >= len(m.sessions) {
		return models.Session{}, false
	}
	return m.sessions[m.idx], true
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		m.refresh()
		return m, tickRefresh()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case actionDoneMsg:
		m.busy = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, clearStatusLater()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeCreate:
			return m.updateCreate(msg)
		case modeLogin:
			return m.updateLogin(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m dashboardModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.sessions)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.newItem):
		m.startCreate()
	case key.Matches(msg, keys.login):
		if !m.authenticated {
			m.startLogin()
		}
	case key.Matches(msg, keys.logout):
		if m.authenticated {
			return m.run("Signed out", func(ctx context.Context) error {
				return m.services.AuthService.Logout(ctx)
			})
		}
	case key.Matches(msg, keys.sync):
		return m.run("Sync finished", func(ctx context.Context) error {
			m.services.SessionService.SyncWithCloud(ctx)
			return nil
		})
	case key.Matches(msg, keys.retry):
		return m.run("Retried pending changes", func(ctx context.Context) error {
			m.services.SessionService.RetryPendingSyncs(ctx)
			return nil
		})
	case key.Matches(msg, keys.migrate):
		if m.needsMigration {
			return m.migrate()
		}
	case key.Matches(msg, keys.dismiss):
		if m.needsMigration {
			return m.run("Migration prompt dismissed", m.services.Migration.DismissMigration)
		}
	}

	s, ok := m.selected()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		m.services.SessionService.SetCurrentSession(s.ID)
		m.refresh()
	case key.Matches(msg, keys.pause):
		return m.mutate("Paused", func(ctx context.Context) error {
			_, err := m.services.SessionService.PauseSession(ctx, s.ID)
			return err
		})
	case key.Matches(msg, keys.resume):
		return m.mutate("Resumed", func(ctx context.Context) error {
			_, err := m.services.SessionService.ResumeSession(ctx, s.ID)
			return err
		})
	case key.Matches(msg, keys.end):
		return m.mutate("Session ended", func(ctx context.Context) error {
			_, err := m.services.SessionService.EndSessionEarly(ctx, s.ID)
			return err
		})
	case key.Matches(msg, keys.delete):
		m.mode = modeConfirmDelete
	case key.Matches(msg, keys.copy):
		if err := copyToClipboard(s.ID); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "Session id copied"
		return m, clearStatusLater()
	}

	return m, nil
}

// mutate applies a local change synchronously. The record store answers
// immediately; the remote write happens in the background.
func (m dashboardModel) mutate(status string, fn func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	if err := fn(m.ctx); err != nil {
		m.errMsg = humanizeError(err)
		return m, nil
	}
	m.refresh()
	m.errMsg = ""
	m.status = status
	return m, clearStatusLater()
}

// run executes fn off the UI goroutine and reports back with actionDoneMsg.
func (m dashboardModel) run(status string, fn func(ctx context.Context) error) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	ctx := m.ctx
	return m, func() tea.Msg {
		return actionDoneMsg{status: status, err: fn(ctx)}
	}
}

func (m dashboardModel) migrate() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	ctx, sessions := m.ctx, m.services.SessionService
	return m, func() tea.Msg {
		res, err := sessions.MigrateLocalSessions(ctx)
		return actionDoneMsg{
			status: fmt.Sprintf("Migrated %d of %d sessions (%d skipped)", res.Succeeded, res.Attempted, res.Skipped),
			err:    err,
		}
	}
}

func (m *dashboardModel) startCreate() {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = titleWidth
	}
	inputs[0].Placeholder = "title"
	inputs[1].Placeholder = "video url (optional)"
	inputs[0].Focus()

	m.inputs = inputs
	m.focus = 0
	m.mode = modeCreate
}

func (m dashboardModel) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.tab):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % len(m.inputs)
		return m, m.inputs[m.focus].Focus()
	case key.Matches(msg, keys.enter):
		draft := models.Session{
			Title:    strings.TrimSpace(m.inputs[0].Value()),
			VideoURL: strings.TrimSpace(m.inputs[1].Value()),
		}
		if _, err := m.services.SessionService.CreateSession(m.ctx, draft); err != nil {
			m.errMsg = humanizeError(err)
			return m, nil
		}
		m.mode = modeList
		m.idx = 0
		m.refresh()
		m.errMsg = ""
		m.status = "Session created"
		return m, clearStatusLater()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *dashboardModel) startLogin() {
	in := textinput.New()
	in.Placeholder = "bearer token"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '*'
	in.Width = titleWidth
	in.Focus()

	m.tokenInput = in
	m.mode = modeLogin
}

func (m dashboardModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.mode = modeList
		return m, nil
	case key.Matches(msg, keys.enter):
		token := strings.TrimSpace(m.tokenInput.Value())
		m.mode = modeList
		return m.run("Signed in", func(ctx context.Context) error {
			return m.services.AuthService.Login(ctx, token)
		})
	}

	var cmd tea.Cmd
	m.tokenInput, cmd = m.tokenInput.Update(msg)
	return m, cmd
}

func (m dashboardModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = modeList
	s, ok := m.selected()
	if !ok || !key.Matches(msg, keys.yes) {
		return m, nil
	}

	return m.mutate("Session deleted", func(ctx context.Context) error {
		return m.services.SessionService.DeleteSession(ctx, s.ID)
	})
}

func (m dashboardModel) View() string {
	switch m.mode {
	case modeCreate:
		body := "Title: [" + m.inputs[0].View() + "]\n" +
			"Video: [" + m.inputs[1].View() + "]"
		return renderPage("New session", m.withError(body), "tab next field  enter create  esc cancel")
	case modeLogin:
		return renderPage("Sign in", "Token: ["+m.tokenInput.View()+"]", "enter sign in  esc cancel")
	case modeConfirmDelete:
		s, _ := m.selected()
		return overlayBoxStyle.Render(fmt.Sprintf("Delete %q?\n\ny yes    n no", sessionTitle(s)))
	}

	title := "Teachy sessions"
	if m.busy || m.state.IsSyncing {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	b.WriteString(m.accountLine())
	b.WriteString("\n")
	b.WriteString(m.syncLine())
	b.WriteString("\n")
	if m.needsMigration {
		b.WriteString(pendingStyle.Render("Local sessions were found. m: upload them  x: keep local only"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.listView())

	if s, ok := m.selected(); ok {
		b.WriteString("\n")
		b.WriteString(m.detailView(s))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
	}

	return renderPage(title, m.withError(b.String()), m.hotKeys())
}

func (m dashboardModel) withError(body string) string {
	if m.errMsg == "" {
		return body
	}
	return body + "\n" + errorStyle.Render(m.errMsg)
}

func (m dashboardModel) accountLine() string {
	if !m.authenticated {
		return "Local only, press i to sign in"
	}
	return "Signed in as " + m.userID
}

func (m dashboardModel) syncLine() string {
	line := fmt.Sprintf("Pending: %d   Last synced: %s",
		len(m.state.PendingSyncSessions), formatSyncedAt(m.state.LastSyncedAt, m.now()))
	if m.state.LastSyncError != "" {
		line += "\n" + errorStyle.Render("Last sync failed: "+m.state.LastSyncError)
	}
	return line
}

func (m dashboardModel) listView() string {
	if len(m.sessions) == 0 {
		return "No sessions yet, press n to create one"
	}

	var b strings.Builder
	for i, s := range m.sessions {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		marker := " "
		if s.ID == m.currentID {
			marker = "*"
		}

		syncMark := " "
		if _, failed := m.state.SyncErrors[s.ID]; failed && !slices.Contains(m.state.PendingSyncSessions, s.ID) {
			syncMark = errorStyle.Render("!")
		} else if slices.Contains(m.state.PendingSyncSessions, s.ID) {
			syncMark = pendingStyle.Render("↑")
		}

		line := fmt.Sprintf("%s%s%s %-*s %s", cursor, marker, syncMark, titleWidth, fitText(sessionTitle(s), titleWidth), statusTag(s))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) detailView(s models.Session) string {
	remote := s.RemoteID
	if remote == "" {
		remote = "-"
	}
	out := fmt.Sprintf("id %s  remote %s  score %d", s.ID, remote, s.Score)
	if e, ok := m.state.SyncErrors[s.ID]; ok {
		out += fmt.Sprintf("\nsync error after %d attempts: %s", e.Attempts, e.LastError)
	}
	return helpStyle.Render(out)
}

func (m dashboardModel) hotKeys() string {
	parts := []string{"n new", "enter open", "p pause", "r resume", "e end", "d delete", "c copy id", "s sync", "t retry"}
	if m.authenticated {
		parts = append(parts, "o sign out")
	} else {
		parts = append(parts, "i sign in")
	}
	return strings.Join(append(parts, "q quit"), "  ")
}
