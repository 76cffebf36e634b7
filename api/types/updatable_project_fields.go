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
	"errors"
)

// ErrEmptyProjectFields is returned when all the fields are empty.
var ErrEmptyProjectFields = errors.New("UpdatableProjectFields is empty")

// UpdatableProjectFields is a set of fields that use to update a project.
// Only non-nil fields are applied.
type UpdatableProjectFields struct {
	// Name is the name of this project.
	Name *string `bson:"name,omitempty" validate:"omitempty,notblank,max=100"`

	// Description is the description of this project.
	Description *string `bson:"description,omitempty" validate:"omitempty,max=2000"`

	// Status is the lifecycle status of this project.
	Status *ProjectStatus `bson:"status,omitempty" validate:"omitempty,project_status"`
}

// Validate validates the UpdatableProjectFields.
func (i *UpdatableProjectFields) Validate() error {
	if i.Name == nil && i.Description == nil && i.Status == nil {
		return ErrEmptyProjectFields
	}

	return validateStruct(i)
}
