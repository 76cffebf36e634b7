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

// Package memory implements the database interface using in-memory database.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	gotime "time"

	"github.com/hashicorp/go-memdb"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/server/backend/database"
)

// DB is an in-memory database for testing or temporarily.
type DB struct {
	db *memdb.MemDB
}

// New returns a new in-memory database.
func New() (*DB, error) {
	memDB, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}

	return &DB{
		db: memDB,
	}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return nil
}

// CreateUserInfo creates a new user.
func (d *DB) CreateUserInfo(
	_ context.Context,
	username string,
	email string,
	fullName string,
	avatarURL string,
	hashedPassword string,
) (*database.UserInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tblUsers, "username", username)
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", username, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("create user %s: %w", username, database.ErrUserAlreadyExists)
	}

	existing, err = txn.First(tblUsers, "email", strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", username, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("create user %s: %w", username, database.ErrUserAlreadyExists)
	}

	info := database.NewUserInfo(username, email, fullName, avatarURL, hashedPassword)
	info.ID = newID()
	if err := txn.Insert(tblUsers, info); err != nil {
		return nil, fmt.Errorf("create user %s: %w", username, err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// FindUserInfoByID returns a user by the given ID.
func (d *DB) FindUserInfoByID(_ context.Context, id types.ID) (*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find user by id %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find user by id %s: %w", id, database.ErrUserNotFound)
	}

	return raw.(*database.UserInfo).DeepCopy(), nil
}

// FindUserInfoByEmail returns a user by the given email.
func (d *DB) FindUserInfoByEmail(_ context.Context, email string) (*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "email", strings.ToLower(email))
	if err != nil {
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find user by email %s: %w", email, database.ErrUserNotFound)
	}

	return raw.(*database.UserInfo).DeepCopy(), nil
}

// FindUserInfoByUsername returns a user by the given username.
func (d *DB) FindUserInfoByUsername(_ context.Context, username string) (*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "username", username)
	if err != nil {
		return nil, fmt.Errorf("find user by username %s: %w", username, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find user by username %s: %w", username, database.ErrUserNotFound)
	}

	return raw.(*database.UserInfo).DeepCopy(), nil
}

// FindUserInfosByIDs returns the users of the given IDs.
func (d *DB) FindUserInfosByIDs(_ context.Context, ids []types.ID) ([]*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	var infos []*database.UserInfo
	for _, id := range ids {
		raw, err := txn.First(tblUsers, "id", id.String())
		if err != nil {
			return nil, fmt.Errorf("find user by id %s: %w", id, err)
		}
		if raw == nil {
			continue
		}
		infos = append(infos, raw.(*database.UserInfo).DeepCopy())
	}

	return infos, nil
}

// SearchUserInfos returns users matching the given query.
func (d *DB) SearchUserInfos(
	_ context.Context,
	query string,
	excludeID types.ID,
	limit int,
) ([]*database.UserInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblUsers, "id")
	if err != nil {
		return nil, fmt.Errorf("search users %s: %w", query, err)
	}

	needle := strings.ToLower(query)
	var infos []*database.UserInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		info := raw.(*database.UserInfo)
		if info.ID == excludeID {
			continue
		}
		if !strings.Contains(strings.ToLower(info.Username), needle) &&
			!strings.Contains(strings.ToLower(info.Email), needle) &&
			!strings.Contains(strings.ToLower(info.FullName), needle) {
			continue
		}

		infos = append(infos, info.DeepCopy())
		if limit > 0 && len(infos) == limit {
			break
		}
	}

	return infos, nil
}

// ChangeUserPassword changes to new password for the given user.
func (d *DB) ChangeUserPassword(_ context.Context, id types.ID, hashedNewPassword string) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblUsers, "id", id.String())
	if err != nil {
		return fmt.Errorf("change password of %s: %w", id, err)
	}
	if raw == nil {
		return fmt.Errorf("change password of %s: %w", id, database.ErrUserNotFound)
	}

	info := raw.(*database.UserInfo).DeepCopy()
	info.HashedPassword = hashedNewPassword
	if err := txn.Insert(tblUsers, info); err != nil {
		return fmt.Errorf("change password of %s: %w", id, err)
	}
	txn.Commit()

	return nil
}

// CreateProjectInfo creates a new project owned by the given owner.
func (d *DB) CreateProjectInfo(
	_ context.Context,
	owner types.ID,
	name string,
	description string,
) (*database.ProjectInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	info := database.NewProjectInfo(owner, name, description)
	info.ID = newID()
	if err := txn.Insert(tblProjects, info); err != nil {
		return nil, fmt.Errorf("create project %s: %w", name, err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// FindProjectInfoByID returns a project by the given ID.
func (d *DB) FindProjectInfoByID(_ context.Context, id types.ID) (*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblProjects, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find project by id %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find project by id %s: %w", id, database.ErrProjectNotFound)
	}

	return raw.(*database.ProjectInfo).DeepCopy(), nil
}

// ListProjectInfosByUser returns all projects the given user owns or is a
// member of, ordered by creation time descending.
func (d *DB) ListProjectInfosByUser(
	_ context.Context,
	userID types.ID,
) ([]*database.ProjectInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	seen := map[types.ID]bool{}
	var infos []*database.ProjectInfo

	iter, err := txn.Get(tblProjects, "owner", userID.String())
	if err != nil {
		return nil, fmt.Errorf("list projects of %s: %w", userID, err)
	}
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		info := raw.(*database.ProjectInfo)
		seen[info.ID] = true
		infos = append(infos, info.DeepCopy())
	}

	iter, err = txn.Get(tblMembers, "user_id", userID.String())
	if err != nil {
		return nil, fmt.Errorf("list projects of %s: %w", userID, err)
	}
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		member := raw.(*database.MemberInfo)
		if seen[member.ProjectID] {
			continue
		}

		rawProject, err := txn.First(tblProjects, "id", member.ProjectID.String())
		if err != nil {
			return nil, fmt.Errorf("list projects of %s: %w", userID, err)
		}
		if rawProject == nil {
			continue
		}

		info := rawProject.(*database.ProjectInfo)
		seen[info.ID] = true
		infos = append(infos, info.DeepCopy())
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	return infos, nil
}

// UpdateProjectInfo updates the project with the given fields.
func (d *DB) UpdateProjectInfo(
	_ context.Context,
	id types.ID,
	fields *types.UpdatableProjectFields,
) (*database.ProjectInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblProjects, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("update project %s: %w", id, database.ErrProjectNotFound)
	}

	info := raw.(*database.ProjectInfo).DeepCopy()
	info.UpdateFields(fields)
	if err := txn.Insert(tblProjects, info); err != nil {
		return nil, fmt.Errorf("update project %s: %w", id, err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// DeleteProjectInfo deletes the project and its memberships.
func (d *DB) DeleteProjectInfo(_ context.Context, id types.ID) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblProjects, "id", id.String())
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if raw == nil {
		return fmt.Errorf("delete project %s: %w", id, database.ErrProjectNotFound)
	}

	if _, err := txn.DeleteAll(tblMembers, "project_id", id.String()); err != nil {
		return fmt.Errorf("delete members of %s: %w", id, err)
	}
	if err := txn.Delete(tblProjects, raw); err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	txn.Commit()

	return nil
}

// CreateMemberInfo adds the given user to the project with the given role.
func (d *DB) CreateMemberInfo(
	_ context.Context,
	projectID types.ID,
	userID types.ID,
	role types.Role,
) (*database.MemberInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(tblMembers, "project_id_user_id", projectID.String(), userID.String())
	if err != nil {
		return nil, fmt.Errorf("create member %s: %w", userID, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("create member %s: %w", userID, database.ErrMemberAlreadyExists)
	}

	info, err := database.NewMemberInfo(projectID, userID, role)
	if err != nil {
		return nil, err
	}
	info.ID = newID()
	if err := txn.Insert(tblMembers, info); err != nil {
		return nil, fmt.Errorf("create member %s: %w", userID, err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// FindMemberInfo returns the membership of the given user in the project.
func (d *DB) FindMemberInfo(
	_ context.Context,
	projectID types.ID,
	userID types.ID,
) (*database.MemberInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblMembers, "project_id_user_id", projectID.String(), userID.String())
	if err != nil {
		return nil, fmt.Errorf("find member %s: %w", userID, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find member %s: %w", userID, database.ErrMemberNotFound)
	}

	return raw.(*database.MemberInfo).DeepCopy(), nil
}

// ListMemberInfosByProject returns the memberships of the project, oldest
// first.
func (d *DB) ListMemberInfosByProject(
	_ context.Context,
	projectID types.ID,
) ([]*database.MemberInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	iter, err := txn.Get(tblMembers, "project_id", projectID.String())
	if err != nil {
		return nil, fmt.Errorf("list members of %s: %w", projectID, err)
	}

	var infos []*database.MemberInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		infos = append(infos, raw.(*database.MemberInfo).DeepCopy())
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].AddedAt.Before(infos[j].AddedAt)
	})

	return infos, nil
}

// DeleteMemberInfo removes the given user from the project. Removing a user
// that is not a member is a no-op.
func (d *DB) DeleteMemberInfo(_ context.Context, projectID types.ID, userID types.ID) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblMembers, "project_id_user_id", projectID.String(), userID.String())
	if err != nil {
		return fmt.Errorf("delete member %s: %w", userID, err)
	}
	if raw == nil {
		return nil
	}

	if err := txn.Delete(tblMembers, raw); err != nil {
		return fmt.Errorf("delete member %s: %w", userID, err)
	}
	txn.Commit()

	return nil
}

// CreateTicketInfo creates a new ticket in the given project.
func (d *DB) CreateTicketInfo(
	_ context.Context,
	projectID types.ID,
	reporter types.ID,
	title string,
	description string,
	status types.TicketStatus,
	priority types.TicketPriority,
) (*database.TicketInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	info := database.NewTicketInfo(projectID, reporter, title, description, status, priority)
	info.ID = newID()
	if err := txn.Insert(tblTickets, info); err != nil {
		return nil, fmt.Errorf("create ticket %s: %w", title, err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// FindTicketInfoByID returns a ticket by the given ID.
func (d *DB) FindTicketInfoByID(_ context.Context, id types.ID) (*database.TicketInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(tblTickets, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("find ticket by id %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("find ticket by id %s: %w", id, database.ErrTicketNotFound)
	}

	return raw.(*database.TicketInfo).DeepCopy(), nil
}

// ListTicketInfos returns the tickets matching the given filter, ordered by
// creation time descending.
func (d *DB) ListTicketInfos(
	_ context.Context,
	filter types.TicketFilter,
) ([]*database.TicketInfo, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	var iter memdb.ResultIterator
	var err error
	if filter.ProjectID != "" {
		iter, err = txn.Get(tblTickets, "project_id", filter.ProjectID.String())
	} else {
		iter, err = txn.Get(tblTickets, "id")
	}
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	needle := strings.ToLower(filter.Search)
	var infos []*database.TicketInfo
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		info := raw.(*database.TicketInfo)
		if filter.Status != "" && info.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && info.Priority != filter.Priority {
			continue
		}
		if filter.AssigneeID != "" && info.Assignee != filter.AssigneeID {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(info.Title), needle) &&
			!strings.Contains(strings.ToLower(info.Description), needle) {
			continue
		}

		infos = append(infos, info.DeepCopy())
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})

	return infos, nil
}

// UpdateTicketInfo updates the ticket with the given fields.
func (d *DB) UpdateTicketInfo(
	_ context.Context,
	id types.ID,
	fields *types.UpdatableTicketFields,
) (*database.TicketInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblTickets, "id", id.String())
	if err != nil {
		return nil, fmt.Errorf("update ticket %s: %w", id, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("update ticket %s: %w", id, database.ErrTicketNotFound)
	}

	info := raw.(*database.TicketInfo).DeepCopy()
	info.UpdateFields(fields)
	if err := txn.Insert(tblTickets, info); err != nil {
		return nil, fmt.Errorf("update ticket %s: %w", id, err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

// DeleteTicketInfo deletes the ticket.
func (d *DB) DeleteTicketInfo(_ context.Context, id types.ID) error {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblTickets, "id", id.String())
	if err != nil {
		return fmt.Errorf("delete ticket %s: %w", id, err)
	}
	if raw == nil {
		return fmt.Errorf("delete ticket %s: %w", id, database.ErrTicketNotFound)
	}

	if err := txn.Delete(tblTickets, raw); err != nil {
		return fmt.Errorf("delete ticket %s: %w", id, err)
	}
	txn.Commit()

	return nil
}

// DeleteTicketInfosByProject deletes all tickets of the given project.
func (d *DB) DeleteTicketInfosByProject(
	_ context.Context,
	projectID types.ID,
) (int64, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	deleted, err := txn.DeleteAll(tblTickets, "project_id", projectID.String())
	if err != nil {
		return 0, fmt.Errorf("delete tickets of %s: %w", projectID, err)
	}
	txn.Commit()

	return int64(deleted), nil
}

// CreateCommentInfo appends a comment to the ticket and returns the updated
// ticket.
func (d *DB) CreateCommentInfo(
	_ context.Context,
	ticketID types.ID,
	author types.ID,
	content string,
) (*database.TicketInfo, error) {
	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(tblTickets, "id", ticketID.String())
	if err != nil {
		return nil, fmt.Errorf("create comment on %s: %w", ticketID, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("create comment on %s: %w", ticketID, database.ErrTicketNotFound)
	}

	now := gotime.Now()
	info := raw.(*database.TicketInfo).DeepCopy()
	info.Comments = append(info.Comments, database.CommentInfo{
		ID:        newID(),
		Author:    author,
		Content:   content,
		CreatedAt: now,
	})
	info.UpdatedAt = now
	if err := txn.Insert(tblTickets, info); err != nil {
		return nil, fmt.Errorf("create comment on %s: %w", ticketID, err)
	}
	txn.Commit()

	return info.DeepCopy(), nil
}

func newID() types.ID {
	return types.ID(bson.NewObjectID().Hex())
}
