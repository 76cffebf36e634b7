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

// Package tickets provides the ticket aggregate: creation, whitelist-patch
// updates, comment threads and filtered listings. Whether mutations require
// project membership is decided by the RequireTicketProjectAccess policy.
package tickets

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
	"github.com/tracker-team/tracker/server/authz"
	"github.com/tracker-team/tracker/server/backend"
	"github.com/tracker-team/tracker/server/backend/database"
	"github.com/tracker-team/tracker/server/backend/sync"
	"github.com/tracker-team/tracker/server/logging"
)

var (
	// ErrEmptyTicketTitle is returned when the ticket title is empty after
	// trimming.
	ErrEmptyTicketTitle = errors.InvalidArgument("ticket title must not be empty").WithCode("ErrEmptyTicketTitle")

	// ErrEmptyCommentContent is returned when the comment content is empty
	// after trimming.
	ErrEmptyCommentContent = errors.InvalidArgument("comment content must not be empty").WithCode("ErrEmptyCommentContent")
)

// Create creates a new ticket in the given project with the reporter as its
// immutable origin. Empty status and priority fall back to pending and
// medium. Creating a ticket always requires project access, regardless of
// the mutation policy.
func Create(
	ctx context.Context,
	be *backend.Backend,
	reporter types.ID,
	projectID types.ID,
	title string,
	description string,
	status types.TicketStatus,
	priority types.TicketPriority,
) (*types.Ticket, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTicketTitle
	}
	if status != "" {
		if err := status.Validate(); err != nil {
			return nil, errors.InvalidArgument(err.Error()).WithCode("ErrInvalidTicketStatus")
		}
	}
	if priority != "" {
		if err := priority.Validate(); err != nil {
			return nil, errors.InvalidArgument(err.Error()).WithCode("ErrInvalidTicketPriority")
		}
	}

	projectInfo, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	memberInfos, err := be.DB.ListMemberInfosByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := authz.EnsureProjectAccess(reporter, projectInfo, memberInfos); err != nil {
		return nil, err
	}

	info, err := be.DB.CreateTicketInfo(ctx, projectID, reporter, title, description, status, priority)
	if err != nil {
		return nil, err
	}

	return info.ToTicket(), nil
}

// List returns the tickets matching the filter, newest first. Zero-valued
// filter fields are ignored.
func List(
	ctx context.Context,
	be *backend.Backend,
	filter types.TicketFilter,
) ([]*types.Ticket, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	infos, err := be.DB.ListTicketInfos(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]*types.Ticket, 0, len(infos))
	for _, info := range infos {
		result = append(result, info.ToTicket())
	}

	return result, nil
}

// Get returns the ticket with the given ID.
func Get(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
) (*types.Ticket, error) {
	info, err := be.DB.FindTicketInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return info.ToTicket(), nil
}

// Update patches the whitelisted fields of the ticket.
func Update(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	id types.ID,
	fields *types.UpdatableTicketFields,
) (*types.Ticket, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	locker := be.Lockers.Locker(lockKey(id))
	if err := locker.Lock(); err != nil {
		return nil, err
	}
	defer unlock(locker)

	info, err := be.DB.FindTicketInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ensureMutable(ctx, be, actor, info); err != nil {
		return nil, err
	}

	updated, err := be.DB.UpdateTicketInfo(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	return updated.ToTicket(), nil
}

// Delete removes the ticket and its comment thread.
func Delete(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	id types.ID,
) error {
	locker := be.Lockers.Locker(lockKey(id))
	if err := locker.Lock(); err != nil {
		return err
	}
	defer unlock(locker)

	info, err := be.DB.FindTicketInfoByID(ctx, id)
	if err != nil {
		return err
	}

	if err := ensureMutable(ctx, be, actor, info); err != nil {
		return err
	}

	return be.DB.DeleteTicketInfo(ctx, id)
}

// AddComment appends a comment authored by the actor to the ticket and
// returns the updated ticket.
func AddComment(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	id types.ID,
	content string,
) (*types.Ticket, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyCommentContent
	}

	locker := be.Lockers.Locker(lockKey(id))
	if err := locker.Lock(); err != nil {
		return nil, err
	}
	defer unlock(locker)

	info, err := be.DB.FindTicketInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ensureMutable(ctx, be, actor, info); err != nil {
		return nil, err
	}

	updated, err := be.DB.CreateCommentInfo(ctx, id, actor, content)
	if err != nil {
		return nil, err
	}

	return updated.ToTicket(), nil
}

// ensureMutable applies the ticket mutation policy. Under the strict policy
// the actor must have access to the ticket's project. A ticket orphaned by a
// non-cascading project removal has no project left to gate on and stays
// mutable by any authenticated actor.
func ensureMutable(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	info *database.TicketInfo,
) error {
	if !be.Config.TicketAccessRequired() {
		return nil
	}

	projectInfo, err := be.DB.FindProjectInfoByID(ctx, info.ProjectID)
	if err != nil {
		if goerrors.Is(err, database.ErrProjectNotFound) {
			return nil
		}
		return err
	}

	memberInfos, err := be.DB.ListMemberInfosByProject(ctx, info.ProjectID)
	if err != nil {
		return err
	}

	return authz.EnsureProjectAccess(actor, projectInfo, memberInfos)
}

func lockKey(ticketID types.ID) sync.Key {
	return sync.NewKey(fmt.Sprintf("ticket-%s", ticketID))
}

func unlock(locker sync.Locker) {
	if err := locker.Unlock(); err != nil {
		logging.DefaultLogger().Error(err)
	}
}
