// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/soletraderai/teachy-sub001/models"
)

// Field names accepted by SessionValidator.
const (
	FieldID        = "id"
	FieldCreatedAt = "created_at"
	FieldPayload   = "payload"
	FieldStatus    = "status"
	FieldScore     = "score"
	FieldProgress  = "progress"
)

// IdentityFields are the fields a session needs before it can be uploaded.
var IdentityFields = []string{FieldID, FieldCreatedAt, FieldPayload}

type SessionValidator struct {
}

func NewSessionValidator() Validator {
	return &SessionValidator{}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Session:
		return v.validateSession(ctx, value, fields...)
	case *models.Session:
		return v.validateSession(ctx, *value, fields...)

	case models.SessionUpdate:
		return v.validateSessionUpdate(ctx, value)
	case *models.SessionUpdate:
		return v.validateSessionUpdate(ctx, *value)

	case models.Commitment:
		return v.validateCommitment(ctx, value)
	case *models.Commitment:
		return v.validateCommitment(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func (v *SessionValidator) validateSession(ctx context.Context, session models.Session, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldCreatedAt, FieldPayload, FieldStatus, FieldScore, FieldProgress}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(session.ID) == "" {
				return ErrInvalidSessionID
			}
		case FieldCreatedAt:
			if session.CreatedAt <= 0 {
				return ErrInvalidCreatedAt
			}
		case FieldPayload:
			if strings.TrimSpace(session.Title) == "" && strings.TrimSpace(session.VideoURL) == "" {
				return ErrEmptyPayload
			}
			if !session.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, session.Status)
			}
		case FieldStatus:
			if !session.Status.Valid() {
				return fmt.Errorf("%w: %q", ErrInvalidStatus, session.Status)
			}
		case FieldScore:
			if session.Score < 0 {
				return ErrInvalidScore
			}
		case FieldProgress:
			if err := validateProgress(session.Progress); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *SessionValidator) validateSessionUpdate(_ context.Context, update models.SessionUpdate) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if update.Status != nil && !update.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *update.Status)
	}
	if update.Score != nil && *update.Score < 0 {
		return ErrInvalidScore
	}
	return validateProgress(update.Progress)
}

func (v *SessionValidator) validateCommitment(_ context.Context, c models.Commitment) error {
	if strings.TrimSpace(c.SessionID) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCommitment, ErrInvalidSessionID)
	}
	if c.MinutesSpent < 0 || c.QuestionsAnswered < 0 {
		return fmt.Errorf("%w: negative counters", ErrInvalidCommitment)
	}
	return nil
}

func validateProgress(p *models.Progress) error {
	if p == nil {
		return nil
	}
	if p.CurrentTopicIndex < 0 || p.CurrentQuestionIndex < 0 || p.QuestionsAnswered < 0 || p.ElapsedSeconds < 0 {
		return ErrInvalidProgress
	}
	return nil
}
