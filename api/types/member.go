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

package types

import (
	"fmt"
	"time"
)

// Role is the role a member holds within a project.
type Role string

// The valid member roles. Viewer is the weakest role and is assigned when no
// role is given.
const (
	RoleAdmin     Role = "Admin"
	RoleDeveloper Role = "Developer"
	RoleTester    Role = "Tester"
	RoleViewer    Role = "Viewer"
)

// DefaultRole is the role assigned to a member when none is specified.
const DefaultRole = RoleViewer

// IsValid returns whether the role is one of the defined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDeveloper, RoleTester, RoleViewer:
		return true
	}
	return false
}

// Validate returns an error unless the role is one of the defined roles.
func (r Role) Validate() error {
	if !r.IsValid() {
		return fmt.Errorf("invalid role: %s", r)
	}
	return nil
}

// Member is a user's membership in a project together with the role
// the user holds in that project.
type Member struct {
	// UserID is the ID of the member user.
	UserID ID `json:"user_id"`

	// Username is the username of the member user.
	Username string `json:"username"`

	// Role is the role the member holds in the project.
	Role Role `json:"role"`

	// AddedAt is the time when the member was added to the project.
	AddedAt time.Time `json:"added_at"`
}
