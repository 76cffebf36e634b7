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

// Package server provides the Tracker service surface. Every operation takes
// the acting identity explicitly; session handling is reduced to opaque
// tokens issued by Authenticate and resolved by ResolveSession.
package server

import (
	"context"
	goerrors "errors"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
	"github.com/tracker-team/tracker/server/auth"
	"github.com/tracker-team/tracker/server/backend"
	"github.com/tracker-team/tracker/server/backend/database"
	"github.com/tracker-team/tracker/server/logging"
	"github.com/tracker-team/tracker/server/projects"
	"github.com/tracker-team/tracker/server/tickets"
	"github.com/tracker-team/tracker/server/users"
)

// ErrInvalidCredentials is returned when authentication fails. Unknown email
// and wrong password are indistinguishable here so callers cannot enumerate
// accounts.
var ErrInvalidCredentials = errors.Unauthenticated("invalid credentials").WithCode("ErrInvalidCredentials")

// Tracker is the facade over the backend and the business packages.
type Tracker struct {
	conf         *Config
	backend      *backend.Backend
	tokenManager *auth.TokenManager
}

// New creates a new instance of Tracker.
func New(conf *Config) (*Tracker, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	be, err := backend.New(conf.Backend, conf.Mongo)
	if err != nil {
		return nil, err
	}

	return &Tracker{
		conf:         conf,
		backend:      be,
		tokenManager: auth.NewTokenManager(conf.Backend.SecretKey, conf.Backend.ParseAuthTokenTTL()),
	}, nil
}

// Shutdown releases the resources of this Tracker.
func (t *Tracker) Shutdown() error {
	if err := t.backend.Shutdown(); err != nil {
		return err
	}

	logging.DefaultLogger().Info("server shutdown")
	return nil
}

// RegisterUser registers a new user account.
func (t *Tracker) RegisterUser(ctx context.Context, fields *types.SignupFields) (*types.User, error) {
	return users.SignUp(ctx, t.backend, fields)
}

// Authenticate checks the credentials and issues a session token for the
// matching user.
func (t *Tracker) Authenticate(ctx context.Context, email, password string) (string, *types.User, error) {
	user, err := users.IsCorrectPassword(ctx, t.backend, email, password)
	if err != nil {
		if goerrors.Is(err, database.ErrUserNotFound) ||
			goerrors.Is(err, database.ErrMismatchedPassword) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := t.tokenManager.Generate(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// ResolveSession verifies the session token and returns the identity it
// belongs to.
func (t *Tracker) ResolveSession(ctx context.Context, token string) (*types.User, error) {
	userID, err := t.tokenManager.Verify(token)
	if err != nil {
		return nil, err
	}

	return users.GetUser(ctx, t.backend, userID)
}

// SearchUsers searches users by username, email or full name.
func (t *Tracker) SearchUsers(ctx context.Context, actor types.ID, query string) ([]*types.User, error) {
	return users.Search(ctx, t.backend, actor, query)
}

// ChangePassword rotates the actor's password after verifying the current
// one.
func (t *Tracker) ChangePassword(ctx context.Context, actor types.ID, fields *types.ChangePasswordFields) error {
	return users.ChangePassword(ctx, t.backend, actor, fields)
}

// CreateProject creates a new project owned by the actor.
func (t *Tracker) CreateProject(ctx context.Context, actor types.ID, name, description string) (*types.Project, error) {
	return projects.Create(ctx, t.backend, actor, name, description)
}

// ListMyProjects returns the projects the actor owns or is a member of.
func (t *Tracker) ListMyProjects(ctx context.Context, actor types.ID) ([]*types.Project, error) {
	return projects.List(ctx, t.backend, actor)
}

// GetProject returns the project with the given ID.
func (t *Tracker) GetProject(ctx context.Context, actor, id types.ID) (*types.Project, error) {
	return projects.Get(ctx, t.backend, actor, id)
}

// UpdateProject updates the whitelisted fields of the project.
func (t *Tracker) UpdateProject(
	ctx context.Context,
	actor, id types.ID,
	fields *types.UpdatableProjectFields,
) (*types.Project, error) {
	return projects.Update(ctx, t.backend, actor, id, fields)
}

// DeleteProject removes the project.
func (t *Tracker) DeleteProject(ctx context.Context, actor, id types.ID) error {
	return projects.Delete(ctx, t.backend, actor, id)
}

// AddMember adds the target user to the project with the given role.
func (t *Tracker) AddMember(
	ctx context.Context,
	actor, projectID, targetUserID types.ID,
	role types.Role,
) (*types.Project, error) {
	return projects.AddMember(ctx, t.backend, actor, projectID, targetUserID, role)
}

// RemoveMember removes the target user from the project.
func (t *Tracker) RemoveMember(
	ctx context.Context,
	actor, projectID, targetUserID types.ID,
) (*types.Project, error) {
	return projects.RemoveMember(ctx, t.backend, actor, projectID, targetUserID)
}

// CreateTicket creates a new ticket in the given project.
func (t *Tracker) CreateTicket(
	ctx context.Context,
	actor, projectID types.ID,
	title, description string,
	status types.TicketStatus,
	priority types.TicketPriority,
) (*types.Ticket, error) {
	return tickets.Create(ctx, t.backend, actor, projectID, title, description, status, priority)
}

// ListTickets returns the tickets matching the filter.
func (t *Tracker) ListTickets(ctx context.Context, filter types.TicketFilter) ([]*types.Ticket, error) {
	return tickets.List(ctx, t.backend, filter)
}

// GetTicket returns the ticket with the given ID.
func (t *Tracker) GetTicket(ctx context.Context, id types.ID) (*types.Ticket, error) {
	return tickets.Get(ctx, t.backend, id)
}

// UpdateTicket patches the whitelisted fields of the ticket.
func (t *Tracker) UpdateTicket(
	ctx context.Context,
	actor, id types.ID,
	fields *types.UpdatableTicketFields,
) (*types.Ticket, error) {
	return tickets.Update(ctx, t.backend, actor, id, fields)
}

// DeleteTicket removes the ticket.
func (t *Tracker) DeleteTicket(ctx context.Context, actor, id types.ID) error {
	return tickets.Delete(ctx, t.backend, actor, id)
}

// AddComment appends a comment authored by the actor to the ticket.
func (t *Tracker) AddComment(ctx context.Context, actor, id types.ID, content string) (*types.Ticket, error) {
	return tickets.AddComment(ctx, t.backend, actor, id, content)
}
