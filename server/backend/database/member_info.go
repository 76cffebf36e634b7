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

package database

import (
	"time"

	"github.com/tracker-team/tracker/api/types"
)

// MemberInfo is a struct for project membership information. A membership
// row is unique per (project, user) pair.
type MemberInfo struct {
	// ID is the unique ID of the membership.
	ID types.ID `bson:"_id"`

	// ProjectID is the ID of the project.
	ProjectID types.ID `bson:"project_id"`

	// UserID is the ID of the member user.
	UserID types.ID `bson:"user_id"`

	// Role is the role of the user in the project.
	Role types.Role `bson:"role"`

	// AddedAt is the time when the member was added to the project.
	AddedAt time.Time `bson:"added_at"`
}

// NewMemberInfo creates a new MemberInfo with the given role.
func NewMemberInfo(projectID, userID types.ID, role types.Role) (*MemberInfo, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &MemberInfo{
		ProjectID: projectID,
		UserID:    userID,
		Role:      role,
		AddedAt:   time.Now(),
	}, nil
}

// DeepCopy returns a deep copy of the MemberInfo.
func (i *MemberInfo) DeepCopy() *MemberInfo {
	if i == nil {
		return nil
	}

	return &MemberInfo{
		ID:        i.ID,
		ProjectID: i.ProjectID,
		UserID:    i.UserID,
		Role:      i.Role,
		AddedAt:   i.AddedAt,
	}
}

// ToMember converts the MemberInfo to a Member with the given username.
func (i *MemberInfo) ToMember(username string) types.Member {
	return types.Member{
		UserID:   i.UserID,
		Username: username,
		Role:     i.Role,
		AddedAt:  i.AddedAt,
	}
}
