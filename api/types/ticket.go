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

// TicketStatus is the workflow status of a ticket.
type TicketStatus string

// The valid ticket statuses.
const (
	TicketPending    TicketStatus = "Pending"
	TicketInProgress TicketStatus = "In Progress"
	TicketCompleted  TicketStatus = "Completed"
	TicketCancelled  TicketStatus = "Cancelled"
)

// DefaultTicketStatus is the status assigned to a newly created ticket.
const DefaultTicketStatus = TicketPending

// IsValid returns whether the status is one of the defined statuses.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketPending, TicketInProgress, TicketCompleted, TicketCancelled:
		return true
	}
	return false
}

// Validate returns an error unless the status is one of the defined statuses.
func (s TicketStatus) Validate() error {
	if !s.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", s)
	}
	return nil
}

// TicketPriority is the priority of a ticket.
type TicketPriority string

// The valid ticket priorities.
const (
	PriorityLow    TicketPriority = "Low"
	PriorityMedium TicketPriority = "Medium"
	PriorityHigh   TicketPriority = "High"
	PriorityUrgent TicketPriority = "Urgent"
)

// DefaultTicketPriority is the priority assigned when none is specified.
const DefaultTicketPriority = PriorityMedium

// IsValid returns whether the priority is one of the defined priorities.
func (p TicketPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Validate returns an error unless the priority is one of the defined
// priorities.
func (p TicketPriority) Validate() error {
	if !p.IsValid() {
		return fmt.Errorf("invalid ticket priority: %s", p)
	}
	return nil
}

// Comment is a comment left on a ticket. Comments are append-only.
type Comment struct {
	// ID is the unique ID of the comment within its ticket.
	ID ID `json:"id"`

	// AuthorID is the ID of the user that wrote the comment.
	AuthorID ID `json:"author_id"`

	// Content is the text of the comment.
	Content string `json:"content"`

	// CreatedAt is the time when the comment was created.
	CreatedAt time.Time `json:"created_at"`
}

// Ticket is a unit of work tracked within a project.
type Ticket struct {
	// ID is the unique ID of the ticket.
	ID ID `json:"id"`

	// ProjectID is the ID of the project the ticket belongs to.
	ProjectID ID `json:"project_id"`

	// Title is the title of the ticket.
	Title string `json:"title"`

	// Description is the description of the ticket.
	Description string `json:"description"`

	// Status is the workflow status of the ticket.
	Status TicketStatus `json:"status"`

	// Priority is the priority of the ticket.
	Priority TicketPriority `json:"priority"`

	// ReporterID is the ID of the user that opened the ticket. The reporter
	// is fixed at creation time and never changes.
	ReporterID ID `json:"reporter_id"`

	// AssigneeID is the ID of the user the ticket is assigned to, if any.
	AssigneeID ID `json:"assignee_id,omitempty"`

	// Comments are the comments left on the ticket, oldest first.
	Comments []Comment `json:"comments"`

	// CreatedAt is the time when the ticket was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the time when the ticket was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketFilter narrows a ticket listing. Zero-valued fields are ignored and
// the set fields are conjunctive.
type TicketFilter struct {
	// ProjectID filters tickets by the project they belong to.
	ProjectID ID

	// Status filters tickets by workflow status.
	Status TicketStatus

	// Priority filters tickets by priority.
	Priority TicketPriority

	// AssigneeID filters tickets by assignee.
	AssigneeID ID

	// Search keeps tickets whose title or description contains the given
	// text, case-insensitively.
	Search string
}

// Validate checks that the set fields carry valid values.
func (f TicketFilter) Validate() error {
	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return err
		}
	}
	if f.Priority != "" {
		if err := f.Priority.Validate(); err != nil {
			return err
		}
	}
	return nil
}
