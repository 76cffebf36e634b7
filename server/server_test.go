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

package server_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/server"
	"github.com/tracker-team/tracker/server/auth"
	"github.com/tracker-team/tracker/server/backend"
)

func setupTestServer(t *testing.T) *server.Tracker {
	t.Helper()

	conf := server.NewConfig()
	conf.Backend.SecretKey = "test-secret-key"

	tracker, err := server.New(conf)
	assert.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, tracker.Shutdown())
	})

	return tracker
}

func TestServer(t *testing.T) {
	t.Run("missing secret key test", func(t *testing.T) {
		conf := server.NewConfig()

		_, err := server.New(conf)
		assert.ErrorIs(t, err, backend.ErrEmptySecretKey)
	})

	t.Run("session round trip test", func(t *testing.T) {
		ctx := context.Background()
		tracker := setupTestServer(t)

		username := "alice"
		email := "alice@tracker.dev"
		password := "hunter22"
		registered, err := tracker.RegisterUser(ctx, &types.SignupFields{
			Username: &username,
			Email:    &email,
			Password: &password,
		})
		assert.NoError(t, err)

		token, user, err := tracker.Authenticate(ctx, "alice@tracker.dev", "hunter22")
		assert.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)

		resolved, err := tracker.ResolveSession(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, registered.ID, resolved.ID)

		_, err = tracker.ResolveSession(ctx, "not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("invalid credentials test", func(t *testing.T) {
		ctx := context.Background()
		tracker := setupTestServer(t)

		username := "alice"
		email := "alice@tracker.dev"
		password := "hunter22"
		_, err := tracker.RegisterUser(ctx, &types.SignupFields{
			Username: &username,
			Email:    &email,
			Password: &password,
		})
		assert.NoError(t, err)

		// unknown email and wrong password are indistinguishable
		_, _, err = tracker.Authenticate(ctx, "alice@tracker.dev", "wrong")
		assert.ErrorIs(t, err, server.ErrInvalidCredentials)

		_, _, err = tracker.Authenticate(ctx, "nobody@tracker.dev", "hunter22")
		assert.ErrorIs(t, err, server.ErrInvalidCredentials)
	})

	t.Run("project and ticket flow test", func(t *testing.T) {
		ctx := context.Background()
		tracker := setupTestServer(t)

		username := "alice"
		email := "alice@tracker.dev"
		password := "hunter22"
		user, err := tracker.RegisterUser(ctx, &types.SignupFields{
			Username: &username,
			Email:    &email,
			Password: &password,
		})
		assert.NoError(t, err)

		project, err := tracker.CreateProject(ctx, user.ID, "tracker", "issue tracking")
		assert.NoError(t, err)

		listed, err := tracker.ListMyProjects(ctx, user.ID)
		assert.NoError(t, err)
		assert.Len(t, listed, 1)

		ticket, err := tracker.CreateTicket(ctx, user.ID, project.ID, "broken login", "", "", "")
		assert.NoError(t, err)

		commented, err := tracker.AddComment(ctx, user.ID, ticket.ID, "on it")
		assert.NoError(t, err)
		assert.Len(t, commented.Comments, 1)

		found, err := tracker.ListTickets(ctx, types.TicketFilter{ProjectID: project.ID})
		assert.NoError(t, err)
		assert.Len(t, found, 1)

		assert.NoError(t, tracker.DeleteTicket(ctx, user.ID, ticket.ID))
		assert.NoError(t, tracker.DeleteProject(ctx, user.ID, project.ID))
	})
}
