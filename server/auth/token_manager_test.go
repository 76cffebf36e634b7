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

package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
	"github.com/tracker-team/tracker/server/auth"
)

func TestTokenManager(t *testing.T) {
	userID := types.ID("000000000000000000000001")

	t.Run("round trip test", func(t *testing.T) {
		manager := auth.NewTokenManager("test-secret-key", 7*24*time.Hour)

		token, err := manager.Generate(userID)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		verified, err := manager.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, userID, verified)
	})

	t.Run("tampered token test", func(t *testing.T) {
		manager := auth.NewTokenManager("test-secret-key", 7*24*time.Hour)

		token, err := manager.Generate(userID)
		assert.NoError(t, err)

		_, err = manager.Verify(token + "x")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
		assert.Equal(t, errors.ErrCodeUnauthenticated, errors.StatusOf(err))

		_, err = manager.Verify("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("wrong secret test", func(t *testing.T) {
		issuer := auth.NewTokenManager("test-secret-key", 7*24*time.Hour)
		verifier := auth.NewTokenManager("other-secret-key", 7*24*time.Hour)

		token, err := issuer.Generate(userID)
		assert.NoError(t, err)

		_, err = verifier.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("expired token test", func(t *testing.T) {
		manager := auth.NewTokenManager("test-secret-key", -time.Minute)

		token, err := manager.Generate(userID)
		assert.NoError(t, err)

		_, err = manager.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
