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

package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/server/backend/database"
	"github.com/tracker-team/tracker/server/backend/database/memory"
)

func setupTestDB(t *testing.T) *memory.DB {
	t.Helper()

	db, err := memory.New()
	assert.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})

	return db
}

func TestUserInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find user test", func(t *testing.T) {
		db := setupTestDB(t)

		info, err := db.CreateUserInfo(ctx, "alice", "Alice@Example.com", "Alice Kim", "", "hashed")
		assert.NoError(t, err)
		assert.NotEmpty(t, info.ID)
		assert.Equal(t, "alice@example.com", info.Email)

		found, err := db.FindUserInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, info.Username, found.Username)

		// email lookup is case-insensitive
		found, err = db.FindUserInfoByEmail(ctx, "ALICE@example.COM")
		assert.NoError(t, err)
		assert.Equal(t, info.ID, found.ID)

		found, err = db.FindUserInfoByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, info.ID, found.ID)
	})

	t.Run("duplicate user test", func(t *testing.T) {
		db := setupTestDB(t)

		_, err := db.CreateUserInfo(ctx, "alice", "alice@example.com", "", "", "hashed")
		assert.NoError(t, err)

		_, err = db.CreateUserInfo(ctx, "alice", "other@example.com", "", "", "hashed")
		assert.ErrorIs(t, err, database.ErrUserAlreadyExists)

		_, err = db.CreateUserInfo(ctx, "alice2", "ALICE@example.com", "", "", "hashed")
		assert.ErrorIs(t, err, database.ErrUserAlreadyExists)
	})

	t.Run("search users test", func(t *testing.T) {
		db := setupTestDB(t)

		actor, err := db.CreateUserInfo(ctx, "searcher", "searcher@example.com", "", "", "hashed")
		assert.NoError(t, err)
		_, err = db.CreateUserInfo(ctx, "alice", "alice@example.com", "Alice Kim", "", "hashed")
		assert.NoError(t, err)
		_, err = db.CreateUserInfo(ctx, "bob", "bob@example.com", "Bob Alison", "", "hashed")
		assert.NoError(t, err)

		// matches against username, email and full name
		infos, err := db.SearchUserInfos(ctx, "ali", actor.ID, 10)
		assert.NoError(t, err)
		assert.Len(t, infos, 2)

		// the actor is excluded from the result
		infos, err = db.SearchUserInfos(ctx, "search", actor.ID, 10)
		assert.NoError(t, err)
		assert.Len(t, infos, 0)

		infos, err = db.SearchUserInfos(ctx, "a", actor.ID, 1)
		assert.NoError(t, err)
		assert.Len(t, infos, 1)
	})

	t.Run("change password test", func(t *testing.T) {
		db := setupTestDB(t)

		info, err := db.CreateUserInfo(ctx, "alice", "alice@example.com", "", "", "hashed")
		assert.NoError(t, err)

		assert.NoError(t, db.ChangeUserPassword(ctx, info.ID, "rehashed"))
		found, err := db.FindUserInfoByID(ctx, info.ID)
		assert.NoError(t, err)
		assert.Equal(t, "rehashed", found.HashedPassword)

		err = db.ChangeUserPassword(ctx, types.ID("000000000000000000000000"), "rehashed")
		assert.ErrorIs(t, err, database.ErrUserNotFound)
	})
}

func TestProjectInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and update project test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)

		info, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "infra project")
		assert.NoError(t, err)
		assert.Equal(t, types.ProjectActive, info.Status)

		status := types.ProjectArchived
		name := "infra-2"
		updated, err := db.UpdateProjectInfo(ctx, info.ID, &types.UpdatableProjectFields{
			Name:   &name,
			Status: &status,
		})
		assert.NoError(t, err)
		assert.Equal(t, "infra-2", updated.Name)
		assert.Equal(t, types.ProjectArchived, updated.Status)
		assert.Equal(t, "infra project", updated.Description)

		_, err = db.UpdateProjectInfo(ctx, types.ID("000000000000000000000000"), &types.UpdatableProjectFields{Name: &name})
		assert.ErrorIs(t, err, database.ErrProjectNotFound)
	})

	t.Run("list projects by user test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		member, err := db.CreateUserInfo(ctx, "member", "member@example.com", "", "", "hashed")
		assert.NoError(t, err)

		owned, err := db.CreateProjectInfo(ctx, owner.ID, "owned", "")
		assert.NoError(t, err)
		joined, err := db.CreateProjectInfo(ctx, member.ID, "joined", "")
		assert.NoError(t, err)
		_, err = db.CreateMemberInfo(ctx, joined.ID, owner.ID, types.RoleDeveloper)
		assert.NoError(t, err)

		infos, err := db.ListProjectInfosByUser(ctx, owner.ID)
		assert.NoError(t, err)
		assert.Len(t, infos, 2)
		// newest first
		assert.Equal(t, joined.ID, infos[0].ID)
		assert.Equal(t, owned.ID, infos[1].ID)
	})

	t.Run("delete project removes memberships test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		member, err := db.CreateUserInfo(ctx, "member", "member@example.com", "", "", "hashed")
		assert.NoError(t, err)

		info, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)
		_, err = db.CreateMemberInfo(ctx, info.ID, member.ID, types.RoleViewer)
		assert.NoError(t, err)

		assert.NoError(t, db.DeleteProjectInfo(ctx, info.ID))

		_, err = db.FindProjectInfoByID(ctx, info.ID)
		assert.ErrorIs(t, err, database.ErrProjectNotFound)
		members, err := db.ListMemberInfosByProject(ctx, info.ID)
		assert.NoError(t, err)
		assert.Len(t, members, 0)

		assert.ErrorIs(t, db.DeleteProjectInfo(ctx, info.ID), database.ErrProjectNotFound)
	})
}

func TestMemberInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("membership uniqueness test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		member, err := db.CreateUserInfo(ctx, "member", "member@example.com", "", "", "hashed")
		assert.NoError(t, err)
		project, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)

		_, err = db.CreateMemberInfo(ctx, project.ID, member.ID, types.RoleTester)
		assert.NoError(t, err)
		_, err = db.CreateMemberInfo(ctx, project.ID, member.ID, types.RoleAdmin)
		assert.ErrorIs(t, err, database.ErrMemberAlreadyExists)

		info, err := db.FindMemberInfo(ctx, project.ID, member.ID)
		assert.NoError(t, err)
		assert.Equal(t, types.RoleTester, info.Role)
	})

	t.Run("idempotent member removal test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		member, err := db.CreateUserInfo(ctx, "member", "member@example.com", "", "", "hashed")
		assert.NoError(t, err)
		project, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)

		_, err = db.CreateMemberInfo(ctx, project.ID, member.ID, types.RoleViewer)
		assert.NoError(t, err)

		assert.NoError(t, db.DeleteMemberInfo(ctx, project.ID, member.ID))
		// removing a non-member leaves the member list unchanged and succeeds
		assert.NoError(t, db.DeleteMemberInfo(ctx, project.ID, member.ID))

		_, err = db.FindMemberInfo(ctx, project.ID, member.ID)
		assert.ErrorIs(t, err, database.ErrMemberNotFound)
	})
}

func TestTicketInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("create ticket with defaults test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		project, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)

		info, err := db.CreateTicketInfo(ctx, project.ID, owner.ID, "Fix bug", "", "", "")
		assert.NoError(t, err)
		assert.Equal(t, types.TicketPending, info.Status)
		assert.Equal(t, types.PriorityMedium, info.Priority)
		assert.Equal(t, owner.ID, info.Reporter)
	})

	t.Run("list tickets with filter test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		project, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)

		_, err = db.CreateTicketInfo(ctx, project.ID, owner.ID, "Fix login bug", "", "", types.PriorityHigh)
		assert.NoError(t, err)
		_, err = db.CreateTicketInfo(ctx, project.ID, owner.ID, "Add dashboard", "widgets", "", "")
		assert.NoError(t, err)

		infos, err := db.ListTicketInfos(ctx, types.TicketFilter{ProjectID: project.ID})
		assert.NoError(t, err)
		assert.Len(t, infos, 2)

		infos, err = db.ListTicketInfos(ctx, types.TicketFilter{Priority: types.PriorityHigh})
		assert.NoError(t, err)
		assert.Len(t, infos, 1)
		assert.Equal(t, "Fix login bug", infos[0].Title)

		// case-insensitive substring match on title or description
		infos, err = db.ListTicketInfos(ctx, types.TicketFilter{Search: "WIDGET"})
		assert.NoError(t, err)
		assert.Len(t, infos, 1)
		assert.Equal(t, "Add dashboard", infos[0].Title)
	})

	t.Run("update and delete ticket test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		project, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)
		info, err := db.CreateTicketInfo(ctx, project.ID, owner.ID, "Fix bug", "", "", "")
		assert.NoError(t, err)

		status := types.TicketInProgress
		updated, err := db.UpdateTicketInfo(ctx, info.ID, &types.UpdatableTicketFields{Status: &status})
		assert.NoError(t, err)
		assert.Equal(t, types.TicketInProgress, updated.Status)

		assert.NoError(t, db.DeleteTicketInfo(ctx, info.ID))
		assert.ErrorIs(t, db.DeleteTicketInfo(ctx, info.ID), database.ErrTicketNotFound)
	})

	t.Run("append comments test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		project, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)
		info, err := db.CreateTicketInfo(ctx, project.ID, owner.ID, "Fix bug", "", "", "")
		assert.NoError(t, err)

		updated, err := db.CreateCommentInfo(ctx, info.ID, owner.ID, "first")
		assert.NoError(t, err)
		assert.Len(t, updated.Comments, 1)

		updated, err = db.CreateCommentInfo(ctx, info.ID, owner.ID, "second")
		assert.NoError(t, err)
		assert.Len(t, updated.Comments, 2)
		// oldest first
		assert.Equal(t, "first", updated.Comments[0].Content)
		assert.Equal(t, "second", updated.Comments[1].Content)
	})

	t.Run("cascade delete by project test", func(t *testing.T) {
		db := setupTestDB(t)

		owner, err := db.CreateUserInfo(ctx, "owner", "owner@example.com", "", "", "hashed")
		assert.NoError(t, err)
		project, err := db.CreateProjectInfo(ctx, owner.ID, "infra", "")
		assert.NoError(t, err)

		for _, title := range []string{"a", "b", "c"} {
			_, err = db.CreateTicketInfo(ctx, project.ID, owner.ID, title, "", "", "")
			assert.NoError(t, err)
		}

		deleted, err := db.DeleteTicketInfosByProject(ctx, project.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), deleted)

		infos, err := db.ListTicketInfos(ctx, types.TicketFilter{ProjectID: project.ID})
		assert.NoError(t, err)
		assert.Len(t, infos, 0)
	})
}
