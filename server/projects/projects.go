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

// Package projects provides the project aggregate: membership and lifecycle
// mutations gated by the authorization engine. Mutations of the same project
// are serialized by a per-project locker to uphold membership uniqueness.
package projects

import (
	"context"
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
	// ErrEmptyProjectName is returned when the project name is empty after
	// trimming.
	ErrEmptyProjectName = errors.InvalidArgument("project name must not be empty").WithCode("ErrEmptyProjectName")

	// ErrRemoveOwner is returned when trying to remove the project owner from
	// the member list. The owner's authority is implicit and never removable.
	ErrRemoveOwner = errors.InvalidArgument("project owner cannot be removed").WithCode("ErrRemoveOwner")
)

// Create creates a new project owned by the actor. The actor becomes the
// owner and is seeded as an admin member.
func Create(
	ctx context.Context,
	be *backend.Backend,
	owner types.ID,
	name string,
	description string,
) (*types.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProjectName
	}

	info, err := be.DB.CreateProjectInfo(ctx, owner, name, description)
	if err != nil {
		return nil, err
	}

	if _, err := be.DB.CreateMemberInfo(ctx, info.ID, owner, types.RoleAdmin); err != nil {
		return nil, err
	}

	return buildProject(ctx, be, info)
}

// List returns all projects the actor owns or is a member of, newest first.
func List(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
) ([]*types.Project, error) {
	infos, err := be.DB.ListProjectInfosByUser(ctx, actor)
	if err != nil {
		return nil, err
	}

	result := make([]*types.Project, 0, len(infos))
	for _, info := range infos {
		project, err := buildProject(ctx, be, info)
		if err != nil {
			return nil, err
		}
		result = append(result, project)
	}

	return result, nil
}

// Get returns the project with the given ID. The actor must have access to
// the project.
func Get(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	id types.ID,
) (*types.Project, error) {
	info, err := be.DB.FindProjectInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	memberInfos, err := be.DB.ListMemberInfosByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.EnsureProjectAccess(actor, info, memberInfos); err != nil {
		return nil, err
	}

	return toProject(ctx, be, info, memberInfos)
}

// Update updates the whitelisted fields of the project. The actor must own
// the project or hold the admin role in it.
func Update(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	id types.ID,
	fields *types.UpdatableProjectFields,
) (*types.Project, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	locker := be.Lockers.Locker(lockKey(id))
	if err := locker.Lock(); err != nil {
		return nil, err
	}
	defer unlock(locker)

	info, err := be.DB.FindProjectInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	memberInfos, err := be.DB.ListMemberInfosByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.EnsureAdminOrOwner(actor, info, memberInfos); err != nil {
		return nil, err
	}

	updated, err := be.DB.UpdateProjectInfo(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	return toProject(ctx, be, updated, memberInfos)
}

// Delete removes the project. Only the owner may delete a project. Whether
// the project's tickets are removed with it is decided by the
// CascadeTicketRemoval policy; otherwise they remain as orphans.
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

	info, err := be.DB.FindProjectInfoByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.EnsureOwner(actor, info); err != nil {
		return err
	}

	if be.Config.CascadeTicketRemoval {
		deleted, err := be.DB.DeleteTicketInfosByProject(ctx, id)
		if err != nil {
			return err
		}
		if deleted > 0 {
			logging.From(ctx).Infof("removed %d tickets of project %s", deleted, id)
		}
	}

	return be.DB.DeleteProjectInfo(ctx, id)
}

// AddMember adds the target user to the project with the given role. The
// actor must own the project or hold the admin role in it. An empty role
// defaults to viewer.
func AddMember(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	projectID types.ID,
	targetUserID types.ID,
	role types.Role,
) (*types.Project, error) {
	if role == "" {
		role = types.DefaultRole
	}
	if err := role.Validate(); err != nil {
		return nil, errors.InvalidArgument(err.Error()).WithCode("ErrInvalidMemberRole")
	}

	locker := be.Lockers.Locker(lockKey(projectID))
	if err := locker.Lock(); err != nil {
		return nil, err
	}
	defer unlock(locker)

	info, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	memberInfos, err := be.DB.ListMemberInfosByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := authz.EnsureAdminOrOwner(actor, info, memberInfos); err != nil {
		return nil, err
	}

	if _, err := be.DB.FindUserInfoByID(ctx, targetUserID); err != nil {
		return nil, err
	}

	if _, err := be.DB.CreateMemberInfo(ctx, projectID, targetUserID, role); err != nil {
		return nil, err
	}

	return buildProject(ctx, be, info)
}

// RemoveMember removes the target user from the project. The actor must own
// the project or hold the admin role in it. Removing the owner always fails;
// removing a non-member is a no-op that still succeeds.
func RemoveMember(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	projectID types.ID,
	targetUserID types.ID,
) (*types.Project, error) {
	locker := be.Lockers.Locker(lockKey(projectID))
	if err := locker.Lock(); err != nil {
		return nil, err
	}
	defer unlock(locker)

	info, err := be.DB.FindProjectInfoByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	memberInfos, err := be.DB.ListMemberInfosByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := authz.EnsureAdminOrOwner(actor, info, memberInfos); err != nil {
		return nil, err
	}

	if targetUserID == info.Owner {
		return nil, ErrRemoveOwner
	}

	if err := be.DB.DeleteMemberInfo(ctx, projectID, targetUserID); err != nil {
		return nil, err
	}

	return buildProject(ctx, be, info)
}

// buildProject loads the member list of the project and assembles a
// display-ready snapshot.
func buildProject(
	ctx context.Context,
	be *backend.Backend,
	info *database.ProjectInfo,
) (*types.Project, error) {
	memberInfos, err := be.DB.ListMemberInfosByProject(ctx, info.ID)
	if err != nil {
		return nil, err
	}

	return toProject(ctx, be, info, memberInfos)
}

// toProject resolves the member identities to usernames and converts the
// project to its outward shape.
func toProject(
	ctx context.Context,
	be *backend.Backend,
	info *database.ProjectInfo,
	memberInfos []*database.MemberInfo,
) (*types.Project, error) {
	ids := make([]types.ID, 0, len(memberInfos))
	for _, member := range memberInfos {
		ids = append(ids, member.UserID)
	}

	userInfos, err := be.DB.FindUserInfosByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	usernames := make(map[types.ID]string, len(userInfos))
	for _, user := range userInfos {
		usernames[user.ID] = user.Username
	}

	members := make([]types.Member, 0, len(memberInfos))
	for _, member := range memberInfos {
		members = append(members, member.ToMember(usernames[member.UserID]))
	}

	return info.ToProject(members), nil
}

func lockKey(projectID types.ID) sync.Key {
	return sync.NewKey(fmt.Sprintf("project-%s", projectID))
}

func unlock(locker sync.Locker) {
	if err := locker.Unlock(); err != nil {
		logging.DefaultLogger().Error(err)
	}
}
