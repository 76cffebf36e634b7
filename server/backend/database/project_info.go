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

// ProjectInfo is a struct for project information.
type ProjectInfo struct {
	// ID is the unique ID of the project.
	ID types.ID `bson:"_id"`

	// Name is the name of the project.
	Name string `bson:"name"`

	// Description is the description of the project.
	Description string `bson:"description"`

	// Owner is the ID of the user that owns the project. Immutable after
	// creation.
	Owner types.ID `bson:"owner"`

	// Status is the lifecycle status of the project.
	Status types.ProjectStatus `bson:"status"`

	// CreatedAt is the time when the project was created.
	CreatedAt time.Time `bson:"created_at"`

	// UpdatedAt is the time when the project was last updated.
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewProjectInfo creates a new ProjectInfo of the given name and owner.
func NewProjectInfo(owner types.ID, name, description string) *ProjectInfo {
	now := time.Now()
	return &ProjectInfo{
		Name:        name,
		Description: description,
		Owner:       owner,
		Status:      types.DefaultProjectStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DeepCopy returns a deep copy of the ProjectInfo.
func (i *ProjectInfo) DeepCopy() *ProjectInfo {
	if i == nil {
		return nil
	}

	return &ProjectInfo{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Owner:       i.Owner,
		Status:      i.Status,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// UpdateFields updates the fields whitelisted for update.
func (i *ProjectInfo) UpdateFields(fields *types.UpdatableProjectFields) {
	if fields.Name != nil {
		i.Name = *fields.Name
	}
	if fields.Description != nil {
		i.Description = *fields.Description
	}
	if fields.Status != nil {
		i.Status = *fields.Status
	}
	i.UpdatedAt = time.Now()
}

// ToProject converts the ProjectInfo to a Project with the given members.
func (i *ProjectInfo) ToProject(members []types.Member) *types.Project {
	if members == nil {
		members = []types.Member{}
	}

	return &types.Project{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		OwnerID:     i.Owner,
		Status:      i.Status,
		Members:     members,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
