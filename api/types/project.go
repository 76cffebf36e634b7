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

// ProjectStatus is the lifecycle status of a project.
type ProjectStatus string

// The valid project statuses.
const (
	ProjectActive    ProjectStatus = "Active"
	ProjectArchived  ProjectStatus = "Archived"
	ProjectCompleted ProjectStatus = "Completed"
)

// DefaultProjectStatus is the status assigned to a newly created project.
const DefaultProjectStatus = ProjectActive

// IsValid returns whether the status is one of the defined statuses.
func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectActive, ProjectArchived, ProjectCompleted:
		return true
	}
	return false
}

// Validate returns an error unless the status is one of the defined statuses.
func (s ProjectStatus) Validate() error {
	if !s.IsValid() {
		return fmt.Errorf("invalid project status: %s", s)
	}
	return nil
}

// Project is a workspace that groups tickets and members under an owner.
type Project struct {
	// ID is the unique ID of the project.
	ID ID `json:"id"`

	// Name is the name of the project.
	Name string `json:"name"`

	// Description is the description of the project.
	Description string `json:"description"`

	// OwnerID is the ID of the user that owns the project. The owner is
	// fixed at creation time and never changes.
	OwnerID ID `json:"owner_id"`

	// Status is the lifecycle status of the project.
	Status ProjectStatus `json:"status"`

	// Members are the memberships of the project, including the role each
	// member holds.
	Members []Member `json:"members"`

	// CreatedAt is the time when the project was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the time when the project was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
