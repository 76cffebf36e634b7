/*
 * Copyright 2025 The Tracker Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package auth provides opaque session tokens carrying a stable user id
// claim with an expiry.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
)

// ErrInvalidToken is returned when the token is malformed, tampered with or
// expired.
var ErrInvalidToken = errors.Unauthenticated("invalid token").WithCode("ErrInvalidToken")

// TokenManager issues and verifies session tokens signed with the configured
// secret key.
type TokenManager struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewTokenManager creates a new instance of TokenManager.
func NewTokenManager(secretKey string, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{
		secretKey: secretKey,
		tokenTTL:  tokenTTL,
	}
}

// Generate issues a token for the given user.
func (m *TokenManager) Generate(userID types.ID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   userID.String(),
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(m.tokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the signature and expiry of the given token and returns the
// user id it carries.
func (m *TokenManager) Verify(token string) (types.ID, error) {
	claims := jwt.StandardClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.secretKey), nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	userID := types.ID(claims.Subject)
	if err := userID.Validate(); err != nil {
		return "", ErrInvalidToken
	}

	return userID, nil
}
