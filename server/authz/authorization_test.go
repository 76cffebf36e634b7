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

package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
	"github.com/tracker-team/tracker/server/authz"
	"github.com/tracker-team/tracker/server/backend/database"
)

var (
	ownerID    = types.ID("000000000000000000000001")
	adminID    = types.ID("000000000000000000000002")
	viewerID   = types.ID("000000000000000000000003")
	outsiderID = types.ID("000000000000000000000004")
)

func fixtures() (*database.ProjectInfo, []*database.MemberInfo) {
	project := &database.ProjectInfo{
		ID:    types.ID("00000000000000000000000a"),
		Owner: ownerID,
	}
	members := []*database.MemberInfo{
		{ProjectID: project.ID, UserID: adminID, Role: types.RoleAdmin},
		{ProjectID: project.ID, UserID: viewerID, Role: types.RoleViewer},
	}
	return project, members
}

func TestPredicates(t *testing.T) {
	project, members := fixtures()

	t.Run("is owner test", func(t *testing.T) {
		assert.True(t, authz.IsOwner(ownerID, project))
		assert.False(t, authz.IsOwner(adminID, project))
	})

	t.Run("role of test", func(t *testing.T) {
		assert.Equal(t, types.RoleAdmin, authz.RoleOf(adminID, members))
		assert.Equal(t, types.RoleViewer, authz.RoleOf(viewerID, members))
		assert.Equal(t, types.Role(""), authz.RoleOf(outsiderID, members))
	})

	t.Run("is admin or owner test", func(t *testing.T) {
		assert.True(t, authz.IsAdminOrOwner(ownerID, project, members))
		assert.True(t, authz.IsAdminOrOwner(adminID, project, members))
		assert.False(t, authz.IsAdminOrOwner(viewerID, project, members))
		assert.False(t, authz.IsAdminOrOwner(outsiderID, project, members))
	})

	t.Run("has project access test", func(t *testing.T) {
		assert.True(t, authz.HasProjectAccess(ownerID, project, members))
		assert.True(t, authz.HasProjectAccess(viewerID, project, members))
		assert.False(t, authz.HasProjectAccess(outsiderID, project, members))
	})
}

func TestGuards(t *testing.T) {
	project, members := fixtures()

	t.Run("ensure owner test", func(t *testing.T) {
		assert.NoError(t, authz.EnsureOwner(ownerID, project))

		err := authz.EnsureOwner(adminID, project)
		assert.ErrorIs(t, err, authz.ErrNotProjectOwner)
		assert.Equal(t, errors.ErrCodePermissionDenied, errors.StatusOf(err))
		assert.Equal(t, "ErrNotProjectOwner", errors.CodeOf(err))
	})

	t.Run("ensure admin or owner test", func(t *testing.T) {
		assert.NoError(t, authz.EnsureAdminOrOwner(adminID, project, members))

		err := authz.EnsureAdminOrOwner(viewerID, project, members)
		assert.ErrorIs(t, err, authz.ErrNotAdminOrOwner)
		assert.Equal(t, "ErrNotAdminOrOwner", errors.CodeOf(err))
	})

	t.Run("ensure project access test", func(t *testing.T) {
		assert.NoError(t, authz.EnsureProjectAccess(viewerID, project, members))

		err := authz.EnsureProjectAccess(outsiderID, project, members)
		assert.ErrorIs(t, err, authz.ErrNoProjectAccess)
		assert.Equal(t, "ErrNoProjectAccess", errors.CodeOf(err))
	})
}
