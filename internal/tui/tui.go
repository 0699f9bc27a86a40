// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the terminal dashboard of the teachy client.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/service"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, logger: logger}, nil
}

// Run blocks until the user quits the dashboard.
func (t *TUI) Run(ctx context.Context) error {
	model := newDashboardModel(ctx, t.services)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("dashboard stopped")
		return err
	}
	return nil
}
