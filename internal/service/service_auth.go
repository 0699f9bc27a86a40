// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/soletraderai/teachy-sub001/internal/logger"
	"github.com/soletraderai/teachy-sub001/internal/utils"
	"github.com/soletraderai/teachy-sub001/models"
)

// DefaultTokenDuration is the lifetime of tokens issued by CreateToken.
const DefaultTokenDuration = 24 * time.Hour

// authService is the concrete implementation of AuthService.
// It signs and verifies HMAC-SHA256 JWTs; the "sub" claim names the session
// owner.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. A non-positive tokenDuration
// falls back to DefaultTokenDuration.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(tokenSignKey, tokenIssuer string, tokenDuration time.Duration, logger *logger.Logger) AuthService {
	if tokenDuration <= 0 {
		tokenDuration = DefaultTokenDuration
	}
	return &authService{
		tokenSignKey:  tokenSignKey,
		tokenIssuer:   tokenIssuer,
		tokenDuration: tokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT whose subject is userID.
//
// Returns the token model on success or ErrTokenCreationFailed wrapping the
// JWT error.
func (a *authService) CreateToken(ctx context.Context, userID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, userID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
