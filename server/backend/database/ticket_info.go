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

// CommentInfo is a struct for comment information. Comments are owned by
// their ticket and are append-only.
type CommentInfo struct {
	// ID is the unique ID of the comment.
	ID types.ID `bson:"_id"`

	// Author is the ID of the user that wrote the comment.
	Author types.ID `bson:"author"`

	// Content is the text of the comment.
	Content string `bson:"content"`

	// CreatedAt is the time when the comment was created.
	CreatedAt time.Time `bson:"created_at"`
}

// ToComment converts the CommentInfo to a Comment.
func (i *CommentInfo) ToComment() types.Comment {
	return types.Comment{
		ID:        i.ID,
		AuthorID:  i.Author,
		Content:   i.Content,
		CreatedAt: i.CreatedAt,
	}
}

// TicketInfo is a struct for ticket information.
type TicketInfo struct {
	// ID is the unique ID of the ticket.
	ID types.ID `bson:"_id"`

	// ProjectID is the ID of the project the ticket belongs to. Immutable
	// after creation.
	ProjectID types.ID `bson:"project_id"`

	// Title is the title of the ticket.
	Title string `bson:"title"`

	// Description is the description of the ticket.
	Description string `bson:"description"`

	// Status is the workflow status of the ticket.
	Status types.TicketStatus `bson:"status"`

	// Priority is the priority of the ticket.
	Priority types.TicketPriority `bson:"priority"`

	// Reporter is the ID of the user that opened the ticket. Immutable after
	// creation.
	Reporter types.ID `bson:"reporter"`

	// Assignee is the ID of the user the ticket is assigned to, if any.
	Assignee types.ID `bson:"assignee"`

	// Comments are the comments of the ticket, oldest first.
	Comments []CommentInfo `bson:"comments"`

	// CreatedAt is the time when the ticket was created.
	CreatedAt time.Time `bson:"created_at"`

	// UpdatedAt is the time when the ticket was last updated.
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewTicketInfo creates a new TicketInfo in the given project.
func NewTicketInfo(
	projectID types.ID,
	reporter types.ID,
	title string,
	description string,
	status types.TicketStatus,
	priority types.TicketPriority,
) *TicketInfo {
	if status == "" {
		status = types.DefaultTicketStatus
	}
	if priority == "" {
		priority = types.DefaultTicketPriority
	}

	now := time.Now()
	return &TicketInfo{
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		Reporter:    reporter,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// DeepCopy returns a deep copy of the TicketInfo.
func (i *TicketInfo) DeepCopy() *TicketInfo {
	if i == nil {
		return nil
	}

	copied := &TicketInfo{
		ID:          i.ID,
		ProjectID:   i.ProjectID,
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status,
		Priority:    i.Priority,
		Reporter:    i.Reporter,
		Assignee:    i.Assignee,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
	if i.Comments != nil {
		copied.Comments = make([]CommentInfo, len(i.Comments))
		copy(copied.Comments, i.Comments)
	}

	return copied
}

// UpdateFields updates the fields whitelisted for update.
func (i *TicketInfo) UpdateFields(fields *types.UpdatableTicketFields) {
	if fields.Title != nil {
		i.Title = *fields.Title
	}
	if fields.Description != nil {
		i.Description = *fields.Description
	}
	if fields.Status != nil {
		i.Status = *fields.Status
	}
	if fields.Priority != nil {
		i.Priority = *fields.Priority
	}
	if fields.AssigneeID != nil {
		i.Assignee = *fields.AssigneeID
	}
	i.UpdatedAt = time.Now()
}

// ToTicket converts the TicketInfo to a Ticket.
func (i *TicketInfo) ToTicket() *types.Ticket {
	comments := make([]types.Comment, 0, len(i.Comments))
	for idx := range i.Comments {
		comments = append(comments, i.Comments[idx].ToComment())
	}

	return &types.Ticket{
		ID:          i.ID,
		ProjectID:   i.ProjectID,
		Title:       i.Title,
		Description: i.Description,
		Status:      i.Status,
		Priority:    i.Priority,
		ReporterID:  i.Reporter,
		AssigneeID:  i.Assignee,
		Comments:    comments,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
