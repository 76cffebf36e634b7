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

// Package database provides the database interface for the Tracker backend.
package database

import (
	"context"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
)

var (
	// ErrUserNotFound is returned when the user is not found.
	ErrUserNotFound = errors.NotFound("user not found").WithCode("ErrUserNotFound")

	// ErrUserAlreadyExists is returned when the user already exists.
	ErrUserAlreadyExists = errors.AlreadyExists("user already exists").WithCode("ErrUserAlreadyExists")

	// ErrProjectNotFound is returned when the project is not found.
	ErrProjectNotFound = errors.NotFound("project not found").WithCode("ErrProjectNotFound")

	// ErrMemberNotFound is returned when the membership is not found.
	ErrMemberNotFound = errors.NotFound("member not found").WithCode("ErrMemberNotFound")

	// ErrMemberAlreadyExists is returned when the user is already a member of
	// the project.
	ErrMemberAlreadyExists = errors.AlreadyExists("member already exists").WithCode("ErrMemberAlreadyExists")

	// ErrTicketNotFound is returned when the ticket is not found.
	ErrTicketNotFound = errors.NotFound("ticket not found").WithCode("ErrTicketNotFound")
)

// Database represents database which reads or saves Tracker data.
type Database interface {
	// Close all resources of this database.
	Close() error

	// CreateUserInfo creates a new user.
	CreateUserInfo(
		ctx context.Context,
		username string,
		email string,
		fullName string,
		avatarURL string,
		hashedPassword string,
	) (*UserInfo, error)

	// FindUserInfoByID returns a user by the given ID.
	FindUserInfoByID(ctx context.Context, id types.ID) (*UserInfo, error)

	// FindUserInfoByEmail returns a user by the given email. The lookup is
	// case-insensitive.
	FindUserInfoByEmail(ctx context.Context, email string) (*UserInfo, error)

	// FindUserInfoByUsername returns a user by the given username.
	FindUserInfoByUsername(ctx context.Context, username string) (*UserInfo, error)

	// FindUserInfosByIDs returns the users of the given IDs. Missing IDs are
	// skipped.
	FindUserInfosByIDs(ctx context.Context, ids []types.ID) ([]*UserInfo, error)

	// SearchUserInfos returns users whose username, email or full name
	// contains the given query, excluding the given user, up to limit entries.
	SearchUserInfos(
		ctx context.Context,
		query string,
		excludeID types.ID,
		limit int,
	) ([]*UserInfo, error)

	// ChangeUserPassword changes to new password for the given user.
	ChangeUserPassword(ctx context.Context, id types.ID, hashedNewPassword string) error

	// CreateProjectInfo creates a new project owned by the given owner.
	CreateProjectInfo(
		ctx context.Context,
		owner types.ID,
		name string,
		description string,
	) (*ProjectInfo, error)

	// FindProjectInfoByID returns a project by the given ID.
	FindProjectInfoByID(ctx context.Context, id types.ID) (*ProjectInfo, error)

	// ListProjectInfosByUser returns all projects the given user owns or is a
	// member of, ordered by creation time descending.
	ListProjectInfosByUser(ctx context.Context, userID types.ID) ([]*ProjectInfo, error)

	// UpdateProjectInfo updates the project with the given fields.
	UpdateProjectInfo(
		ctx context.Context,
		id types.ID,
		fields *types.UpdatableProjectFields,
	) (*ProjectInfo, error)

	// DeleteProjectInfo deletes the project and its memberships.
	DeleteProjectInfo(ctx context.Context, id types.ID) error

	// CreateMemberInfo adds the given user to the project with the given role.
	CreateMemberInfo(
		ctx context.Context,
		projectID types.ID,
		userID types.ID,
		role types.Role,
	) (*MemberInfo, error)

	// FindMemberInfo returns the membership of the given user in the project.
	FindMemberInfo(
		ctx context.Context,
		projectID types.ID,
		userID types.ID,
	) (*MemberInfo, error)

	// ListMemberInfosByProject returns the memberships of the project, oldest
	// first.
	ListMemberInfosByProject(ctx context.Context, projectID types.ID) ([]*MemberInfo, error)

	// DeleteMemberInfo removes the given user from the project. Removing a
	// user that is not a member is a no-op.
	DeleteMemberInfo(ctx context.Context, projectID types.ID, userID types.ID) error

	// CreateTicketInfo creates a new ticket in the given project.
	CreateTicketInfo(
		ctx context.Context,
		projectID types.ID,
		reporter types.ID,
		title string,
		description string,
		status types.TicketStatus,
		priority types.TicketPriority,
	) (*TicketInfo, error)

	// FindTicketInfoByID returns a ticket by the given ID.
	FindTicketInfoByID(ctx context.Context, id types.ID) (*TicketInfo, error)

	// ListTicketInfos returns the tickets matching the given filter, ordered
	// by creation time descending.
	ListTicketInfos(ctx context.Context, filter types.TicketFilter) ([]*TicketInfo, error)

	// UpdateTicketInfo updates the ticket with the given fields.
	UpdateTicketInfo(
		ctx context.Context,
		id types.ID,
		fields *types.UpdatableTicketFields,
	) (*TicketInfo, error)

	// DeleteTicketInfo deletes the ticket.
	DeleteTicketInfo(ctx context.Context, id types.ID) error

	// DeleteTicketInfosByProject deletes all tickets of the given project and
	// returns the number of deleted tickets.
	DeleteTicketInfosByProject(ctx context.Context, projectID types.ID) (int64, error)

	// CreateCommentInfo appends a comment to the ticket and returns the
	// updated ticket.
	CreateCommentInfo(
		ctx context.Context,
		ticketID types.ID,
		author types.ID,
		content string,
	) (*TicketInfo, error)
}
