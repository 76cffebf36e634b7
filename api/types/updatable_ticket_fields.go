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

// ErrEmptyTicketFields is returned when all the fields are empty.
var ErrEmptyTicketFields = errors.New("UpdatableTicketFields is empty")

// UpdatableTicketFields is a set of fields that use to update a ticket.
// Only non-nil fields are applied.
type UpdatableTicketFields struct {
	// Title is the title of this ticket.
	Title *string `bson:"title,omitempty" validate:"omitempty,notblank,max=200"`

	// Description is the description of this ticket.
	Description *string `bson:"description,omitempty" validate:"omitempty,max=5000"`

	// Status is the workflow status of this ticket.
	Status *TicketStatus `bson:"status,omitempty" validate:"omitempty,ticket_status"`

	// Priority is the priority of this ticket.
	Priority *TicketPriority `bson:"priority,omitempty" validate:"omitempty,ticket_priority"`

	// AssigneeID is the ID of the user this ticket is assigned to. An empty
	// string clears the assignee.
	AssigneeID *ID `bson:"assignee_id,omitempty"`
}

// Validate validates the UpdatableTicketFields.
func (i *UpdatableTicketFields) Validate() error {
	if i.Title == nil && i.Description == nil && i.Status == nil &&
		i.Priority == nil && i.AssigneeID == nil {
		return ErrEmptyTicketFields
	}

	if i.AssigneeID != nil && *i.AssigneeID != "" {
		if err := i.AssigneeID.Validate(); err != nil {
			return err
		}
	}

	return validateStruct(i)
}
