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

// Package authz provides the authorization decisions for projects and
// tickets. All functions are pure: they decide over the given actor and
// aggregate state without touching storage.
package authz

import (
	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
	"github.com/tracker-team/tracker/server/backend/database"
)

var (
	// ErrNotProjectOwner is returned when an operation requires project
	// ownership.
	ErrNotProjectOwner = errors.PermissionDenied("requires project ownership").WithCode("ErrNotProjectOwner")

	// ErrNotAdminOrOwner is returned when an operation requires the admin
	// role or ownership.
	ErrNotAdminOrOwner = errors.PermissionDenied("requires admin role or ownership").WithCode("ErrNotAdminOrOwner")

	// ErrNoProjectAccess is returned when the actor is neither the owner nor
	// a member of the project.
	ErrNoProjectAccess = errors.PermissionDenied("requires project membership").WithCode("ErrNoProjectAccess")
)

// IsOwner returns whether the actor owns the project.
func IsOwner(actor types.ID, project *database.ProjectInfo) bool {
	return project.Owner == actor
}

// RoleOf returns the actor's membership role in the project, or an empty
// role if the actor is not a member.
func RoleOf(actor types.ID, members []*database.MemberInfo) types.Role {
	for _, member := range members {
		if member.UserID == actor {
			return member.Role
		}
	}
	return ""
}

// IsAdminOrOwner returns whether the actor owns the project or holds the
// admin role in it.
func IsAdminOrOwner(actor types.ID, project *database.ProjectInfo, members []*database.MemberInfo) bool {
	return IsOwner(actor, project) || RoleOf(actor, members) == types.RoleAdmin
}

// HasProjectAccess returns whether the actor owns the project or is a member
// of it with any role.
func HasProjectAccess(actor types.ID, project *database.ProjectInfo, members []*database.MemberInfo) bool {
	return IsOwner(actor, project) || RoleOf(actor, members) != ""
}

// EnsureOwner returns an error unless the actor owns the project.
func EnsureOwner(actor types.ID, project *database.ProjectInfo) error {
	if !IsOwner(actor, project) {
		return ErrNotProjectOwner
	}
	return nil
}

// EnsureAdminOrOwner returns an error unless the actor owns the project or
// holds the admin role in it.
func EnsureAdminOrOwner(actor types.ID, project *database.ProjectInfo, members []*database.MemberInfo) error {
	if !IsAdminOrOwner(actor, project, members) {
		return ErrNotAdminOrOwner
	}
	return nil
}

// EnsureProjectAccess returns an error unless the actor owns the project or
// is a member of it.
func EnsureProjectAccess(actor types.ID, project *database.ProjectInfo, members []*database.MemberInfo) error {
	if !HasProjectAccess(actor, project, members) {
		return ErrNoProjectAccess
	}
	return nil
}
