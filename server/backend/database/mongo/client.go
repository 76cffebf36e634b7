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

// Package mongo implements database interfaces using MongoDB.
package mongo

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	gotime "time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/server/backend/database"
	"github.com/tracker-team/tracker/server/logging"
)

const (
	// userCacheSize is the size of the user cache used for session resolution.
	userCacheSize = 1000

	// userCacheTTL is the time-to-live of cached user entries.
	userCacheTTL = 10 * gotime.Second

	// projectCacheSize is the size of the project cache used on the ticket
	// mutation path.
	projectCacheSize = 1000

	// projectCacheTTL is the time-to-live of cached project entries.
	projectCacheTTL = 10 * gotime.Second
)

// bsonOptions decodes stored ObjectIDs into types.ID hex strings. Without it
// the driver refuses to decode an ObjectID into a string-kind field.
var bsonOptions = &options.BSONOptions{
	ObjectIDAsHexString: true,
}

// Client is a client that connects to Mongo DB and reads or saves Tracker data.
type Client struct {
	config *Config
	client *mongo.Client

	// userCache caches users by ID. Session resolution looks up the actor on
	// every operation, so cache it briefly.
	userCache *expirable.LRU[types.ID, *database.UserInfo]

	// projectCache caches projects by ID. Every gated ticket mutation
	// resolves the ticket's project, so cache it briefly and drop the entry
	// on update or delete.
	projectCache *expirable.LRU[types.ID, *database.ProjectInfo]
}

// Dial creates an instance of Client and dials the given MongoDB.
func Dial(conf *Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), conf.ParseConnectionTimeout())
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(conf.ConnectionURI).
		SetBSONOptions(bsonOptions)

	client, err := mongo.Connect(clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	ctxPing, cancel := context.WithTimeout(ctx, conf.ParsePingTimeout())
	defer cancel()

	if err := client.Ping(ctxPing, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	if err := ensureIndexes(ctx, client.Database(conf.TrackerDatabase)); err != nil {
		return nil, err
	}

	logging.DefaultLogger().Infof(
		"MongoDB connected, URI: %s, DB: %s",
		conf.ConnectionURI,
		conf.TrackerDatabase,
	)

	return &Client{
		config:    conf,
		client:    client,
		userCache:    expirable.NewLRU[types.ID, *database.UserInfo](userCacheSize, nil, userCacheTTL),
		projectCache: expirable.NewLRU[types.ID, *database.ProjectInfo](projectCacheSize, nil, projectCacheTTL),
	}, nil
}

// Close all resources of this client.
func (c *Client) Close() error {
	if err := c.client.Disconnect(context.Background()); err != nil {
		return fmt.Errorf("close mongo client: %w", err)
	}

	c.userCache.Purge()
	c.projectCache.Purge()

	return nil
}

// CreateUserInfo creates a new user.
func (c *Client) CreateUserInfo(
	ctx context.Context,
	username string,
	email string,
	fullName string,
	avatarURL string,
	hashedPassword string,
) (*database.UserInfo, error) {
	info := database.NewUserInfo(username, email, fullName, avatarURL, hashedPassword)
	result, err := c.collection(ColUsers).InsertOne(ctx, bson.M{
		"username":        info.Username,
		"email":           info.Email,
		"full_name":       info.FullName,
		"avatar_url":      info.AvatarURL,
		"hashed_password": info.HashedPassword,
		"created_at":      info.CreatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, database.ErrUserAlreadyExists
		}

		return nil, fmt.Errorf("create user info: %w", err)
	}

	info.ID = types.ID(result.InsertedID.(bson.ObjectID).Hex())
	return info, nil
}

// FindUserInfoByID returns a user by the given ID.
func (c *Client) FindUserInfoByID(ctx context.Context, id types.ID) (*database.UserInfo, error) {
	if info, ok := c.userCache.Get(id); ok {
		return info.DeepCopy(), nil
	}

	oid, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	result := c.collection(ColUsers).FindOne(ctx, bson.M{"_id": oid})

	info := database.UserInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	c.userCache.Add(id, info.DeepCopy())
	return &info, nil
}

// FindUserInfoByEmail returns a user by the given email.
func (c *Client) FindUserInfoByEmail(ctx context.Context, email string) (*database.UserInfo, error) {
	result := c.collection(ColUsers).FindOne(ctx, bson.M{
		"email": strings.ToLower(email),
	})

	info := database.UserInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", email, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &info, nil
}

// FindUserInfoByUsername returns a user by the given username.
func (c *Client) FindUserInfoByUsername(ctx context.Context, username string) (*database.UserInfo, error) {
	result := c.collection(ColUsers).FindOne(ctx, bson.M{
		"username": username,
	})

	info := database.UserInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", username, database.ErrUserNotFound)
		}
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	return &info, nil
}

// FindUserInfosByIDs returns the users of the given IDs.
func (c *Client) FindUserInfosByIDs(ctx context.Context, ids []types.ID) ([]*database.UserInfo, error) {
	oids := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := encodeID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}

	cursor, err := c.collection(ColUsers).Find(ctx, bson.M{
		"_id": bson.M{"$in": oids},
	})
	if err != nil {
		return nil, fmt.Errorf("find user infos: %w", err)
	}

	var infos []*database.UserInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch user infos: %w", err)
	}

	return infos, nil
}

// SearchUserInfos returns users matching the given query.
func (c *Client) SearchUserInfos(
	ctx context.Context,
	query string,
	excludeID types.ID,
	limit int,
) ([]*database.UserInfo, error) {
	pattern := escapeRegex(query)
	filter := bson.M{
		"$or": []bson.M{
			{"username": bson.Regex{Pattern: pattern, Options: "i"}},
			{"email": bson.Regex{Pattern: pattern, Options: "i"}},
			{"full_name": bson.Regex{Pattern: pattern, Options: "i"}},
		},
	}
	if excludeID != "" {
		oid, err := encodeID(excludeID)
		if err != nil {
			return nil, err
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := c.collection(ColUsers).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search users %s: %w", query, err)
	}

	var infos []*database.UserInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch searched users: %w", err)
	}

	return infos, nil
}

// ChangeUserPassword changes to new password for the given user.
func (c *Client) ChangeUserPassword(ctx context.Context, id types.ID, hashedNewPassword string) error {
	oid, err := encodeID(id)
	if err != nil {
		return err
	}

	result, err := c.collection(ColUsers).UpdateOne(ctx, bson.M{
		"_id": oid,
	}, bson.M{
		"$set": bson.M{"hashed_password": hashedNewPassword},
	})
	if err != nil {
		return fmt.Errorf("change password of %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", id, database.ErrUserNotFound)
	}

	c.userCache.Remove(id)
	return nil
}

// CreateProjectInfo creates a new project owned by the given owner.
func (c *Client) CreateProjectInfo(
	ctx context.Context,
	owner types.ID,
	name string,
	description string,
) (*database.ProjectInfo, error) {
	ownerID, err := encodeID(owner)
	if err != nil {
		return nil, err
	}

	info := database.NewProjectInfo(owner, name, description)
	result, err := c.collection(ColProjects).InsertOne(ctx, bson.M{
		"name":        info.Name,
		"description": info.Description,
		"owner":       ownerID,
		"status":      info.Status,
		"created_at":  info.CreatedAt,
		"updated_at":  info.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create project info: %w", err)
	}

	info.ID = types.ID(result.InsertedID.(bson.ObjectID).Hex())
	return info, nil
}

// FindProjectInfoByID returns a project by the given ID.
func (c *Client) FindProjectInfoByID(ctx context.Context, id types.ID) (*database.ProjectInfo, error) {
	if info, ok := c.projectCache.Get(id); ok {
		return info.DeepCopy(), nil
	}

	oid, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	result := c.collection(ColProjects).FindOne(ctx, bson.M{"_id": oid})

	info := database.ProjectInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("decode project info: %w", err)
	}

	c.projectCache.Add(id, info.DeepCopy())
	return &info, nil
}

// ListProjectInfosByUser returns all projects the given user owns or is a
// member of, ordered by creation time descending.
func (c *Client) ListProjectInfosByUser(
	ctx context.Context,
	userID types.ID,
) ([]*database.ProjectInfo, error) {
	uid, err := encodeID(userID)
	if err != nil {
		return nil, err
	}

	cursor, err := c.collection(ColMembers).Find(ctx, bson.M{"user_id": uid})
	if err != nil {
		return nil, fmt.Errorf("list memberships of %s: %w", userID, err)
	}

	var memberInfos []*database.MemberInfo
	if err := cursor.All(ctx, &memberInfos); err != nil {
		return nil, fmt.Errorf("fetch memberships of %s: %w", userID, err)
	}

	joined := make([]bson.ObjectID, 0, len(memberInfos))
	for _, info := range memberInfos {
		oid, err := encodeID(info.ProjectID)
		if err != nil {
			return nil, err
		}
		joined = append(joined, oid)
	}

	cursor, err = c.collection(ColProjects).Find(ctx, bson.M{
		"$or": []bson.M{
			{"owner": uid},
			{"_id": bson.M{"$in": joined}},
		},
	}, options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		return nil, fmt.Errorf("list projects of %s: %w", userID, err)
	}

	var infos []*database.ProjectInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch projects of %s: %w", userID, err)
	}

	return infos, nil
}

// UpdateProjectInfo updates the project with the given fields.
func (c *Client) UpdateProjectInfo(
	ctx context.Context,
	id types.ID,
	fields *types.UpdatableProjectFields,
) (*database.ProjectInfo, error) {
	oid, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	updatableFields := bson.M{}
	data, err := bson.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	if err = bson.Unmarshal(data, &updatableFields); err != nil {
		return nil, fmt.Errorf("unmarshal updatable fields: %w", err)
	}
	updatableFields["updated_at"] = gotime.Now()

	res := c.collection(ColProjects).FindOneAndUpdate(ctx, bson.M{
		"_id": oid,
	}, bson.M{
		"$set": updatableFields,
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	info := database.ProjectInfo{}
	if err := res.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
		}
		return nil, fmt.Errorf("decode project info: %w", err)
	}

	c.projectCache.Remove(id)
	return &info, nil
}

// DeleteProjectInfo deletes the project and its memberships.
func (c *Client) DeleteProjectInfo(ctx context.Context, id types.ID) error {
	oid, err := encodeID(id)
	if err != nil {
		return err
	}

	result, err := c.collection(ColProjects).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", id, database.ErrProjectNotFound)
	}

	if _, err := c.collection(ColMembers).DeleteMany(ctx, bson.M{"project_id": oid}); err != nil {
		return fmt.Errorf("delete members of %s: %w", id, err)
	}

	c.projectCache.Remove(id)
	return nil
}

// CreateMemberInfo adds the given user to the project with the given role.
// The unique (project_id, user_id) index upholds membership uniqueness even
// under concurrent adds.
func (c *Client) CreateMemberInfo(
	ctx context.Context,
	projectID types.ID,
	userID types.ID,
	role types.Role,
) (*database.MemberInfo, error) {
	pid, err := encodeID(projectID)
	if err != nil {
		return nil, err
	}
	uid, err := encodeID(userID)
	if err != nil {
		return nil, err
	}

	info, err := database.NewMemberInfo(projectID, userID, role)
	if err != nil {
		return nil, err
	}

	result, err := c.collection(ColMembers).InsertOne(ctx, bson.M{
		"project_id": pid,
		"user_id":    uid,
		"role":       info.Role,
		"added_at":   info.AddedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", userID, database.ErrMemberAlreadyExists)
		}

		return nil, fmt.Errorf("create member info: %w", err)
	}

	info.ID = types.ID(result.InsertedID.(bson.ObjectID).Hex())
	return info, nil
}

// FindMemberInfo returns the membership of the given user in the project.
func (c *Client) FindMemberInfo(
	ctx context.Context,
	projectID types.ID,
	userID types.ID,
) (*database.MemberInfo, error) {
	pid, err := encodeID(projectID)
	if err != nil {
		return nil, err
	}
	uid, err := encodeID(userID)
	if err != nil {
		return nil, err
	}

	result := c.collection(ColMembers).FindOne(ctx, bson.M{
		"project_id": pid,
		"user_id":    uid,
	})

	info := database.MemberInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", userID, database.ErrMemberNotFound)
		}
		return nil, fmt.Errorf("decode member info: %w", err)
	}

	return &info, nil
}

// ListMemberInfosByProject returns the memberships of the project, oldest
// first.
func (c *Client) ListMemberInfosByProject(
	ctx context.Context,
	projectID types.ID,
) ([]*database.MemberInfo, error) {
	pid, err := encodeID(projectID)
	if err != nil {
		return nil, err
	}

	cursor, err := c.collection(ColMembers).Find(ctx, bson.M{
		"project_id": pid,
	}, options.Find().SetSort(bson.M{"added_at": 1}))
	if err != nil {
		return nil, fmt.Errorf("list members of %s: %w", projectID, err)
	}

	var infos []*database.MemberInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch members of %s: %w", projectID, err)
	}

	return infos, nil
}

// DeleteMemberInfo removes the given user from the project. Removing a user
// that is not a member is a no-op.
func (c *Client) DeleteMemberInfo(ctx context.Context, projectID types.ID, userID types.ID) error {
	pid, err := encodeID(projectID)
	if err != nil {
		return err
	}
	uid, err := encodeID(userID)
	if err != nil {
		return err
	}

	if _, err := c.collection(ColMembers).DeleteOne(ctx, bson.M{
		"project_id": pid,
		"user_id":    uid,
	}); err != nil {
		return fmt.Errorf("delete member %s: %w", userID, err)
	}

	return nil
}

// CreateTicketInfo creates a new ticket in the given project.
func (c *Client) CreateTicketInfo(
	ctx context.Context,
	projectID types.ID,
	reporter types.ID,
	title string,
	description string,
	status types.TicketStatus,
	priority types.TicketPriority,
) (*database.TicketInfo, error) {
	pid, err := encodeID(projectID)
	if err != nil {
		return nil, err
	}
	rid, err := encodeID(reporter)
	if err != nil {
		return nil, err
	}

	info := database.NewTicketInfo(projectID, reporter, title, description, status, priority)
	doc := bson.M{
		"project_id":  pid,
		"title":       info.Title,
		"description": info.Description,
		"status":      info.Status,
		"priority":    info.Priority,
		"reporter":    rid,
		"comments":    []bson.M{},
		"created_at":  info.CreatedAt,
		"updated_at":  info.UpdatedAt,
	}

	result, err := c.collection(ColTickets).InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("create ticket info: %w", err)
	}

	info.ID = types.ID(result.InsertedID.(bson.ObjectID).Hex())
	return info, nil
}

// FindTicketInfoByID returns a ticket by the given ID.
func (c *Client) FindTicketInfoByID(ctx context.Context, id types.ID) (*database.TicketInfo, error) {
	oid, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	result := c.collection(ColTickets).FindOne(ctx, bson.M{"_id": oid})

	info := database.TicketInfo{}
	if err := result.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrTicketNotFound)
		}
		return nil, fmt.Errorf("decode ticket info: %w", err)
	}

	return &info, nil
}

// ListTicketInfos returns the tickets matching the given filter, ordered by
// creation time descending.
func (c *Client) ListTicketInfos(
	ctx context.Context,
	filter types.TicketFilter,
) ([]*database.TicketInfo, error) {
	query := bson.M{}
	if filter.ProjectID != "" {
		pid, err := encodeID(filter.ProjectID)
		if err != nil {
			return nil, err
		}
		query["project_id"] = pid
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.AssigneeID != "" {
		aid, err := encodeID(filter.AssigneeID)
		if err != nil {
			return nil, err
		}
		query["assignee"] = aid
	}
	if filter.Search != "" {
		pattern := escapeRegex(filter.Search)
		query["$or"] = []bson.M{
			{"title": bson.Regex{Pattern: pattern, Options: "i"}},
			{"description": bson.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	cursor, err := c.collection(ColTickets).Find(
		ctx,
		query,
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	var infos []*database.TicketInfo
	if err := cursor.All(ctx, &infos); err != nil {
		return nil, fmt.Errorf("fetch tickets: %w", err)
	}

	return infos, nil
}

// UpdateTicketInfo updates the ticket with the given fields.
func (c *Client) UpdateTicketInfo(
	ctx context.Context,
	id types.ID,
	fields *types.UpdatableTicketFields,
) (*database.TicketInfo, error) {
	oid, err := encodeID(id)
	if err != nil {
		return nil, err
	}

	updatableFields, err := ticketUpdateSet(fields)
	if err != nil {
		return nil, err
	}

	res := c.collection(ColTickets).FindOneAndUpdate(ctx, bson.M{
		"_id": oid,
	}, bson.M{
		"$set": updatableFields,
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	info := database.TicketInfo{}
	if err := res.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", id, database.ErrTicketNotFound)
		}
		return nil, fmt.Errorf("decode ticket info: %w", err)
	}

	return &info, nil
}

// ticketUpdateSet builds the $set document for a ticket patch. Only the
// whitelisted keys end up in the document; the assignee is re-encoded as an
// ObjectID (or nil to clear it) under its stored key.
func ticketUpdateSet(fields *types.UpdatableTicketFields) (bson.M, error) {
	set := bson.M{}
	data, err := bson.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal fields: %w", err)
	}
	if err = bson.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unmarshal updatable fields: %w", err)
	}

	delete(set, "assignee_id")
	if fields.AssigneeID != nil {
		if *fields.AssigneeID == "" {
			set["assignee"] = nil
		} else {
			aid, err := encodeID(*fields.AssigneeID)
			if err != nil {
				return nil, err
			}
			set["assignee"] = aid
		}
	}
	set["updated_at"] = gotime.Now()

	return set, nil
}

// DeleteTicketInfo deletes the ticket.
func (c *Client) DeleteTicketInfo(ctx context.Context, id types.ID) error {
	oid, err := encodeID(id)
	if err != nil {
		return err
	}

	result, err := c.collection(ColTickets).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete ticket %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", id, database.ErrTicketNotFound)
	}

	return nil
}

// DeleteTicketInfosByProject deletes all tickets of the given project.
func (c *Client) DeleteTicketInfosByProject(
	ctx context.Context,
	projectID types.ID,
) (int64, error) {
	pid, err := encodeID(projectID)
	if err != nil {
		return 0, err
	}

	result, err := c.collection(ColTickets).DeleteMany(ctx, bson.M{"project_id": pid})
	if err != nil {
		return 0, fmt.Errorf("delete tickets of %s: %w", projectID, err)
	}

	return result.DeletedCount, nil
}

// CreateCommentInfo appends a comment to the ticket and returns the updated
// ticket. The append uses an atomic push so concurrent comments never lose
// each other.
func (c *Client) CreateCommentInfo(
	ctx context.Context,
	ticketID types.ID,
	author types.ID,
	content string,
) (*database.TicketInfo, error) {
	oid, err := encodeID(ticketID)
	if err != nil {
		return nil, err
	}
	aid, err := encodeID(author)
	if err != nil {
		return nil, err
	}

	now := gotime.Now()
	res := c.collection(ColTickets).FindOneAndUpdate(ctx, bson.M{
		"_id": oid,
	}, bson.M{
		"$push": bson.M{
			"comments": bson.M{
				"_id":        bson.NewObjectID(),
				"author":     aid,
				"content":    content,
				"created_at": now,
			},
		},
		"$set": bson.M{"updated_at": now},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))

	info := database.TicketInfo{}
	if err := res.Decode(&info); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%s: %w", ticketID, database.ErrTicketNotFound)
		}
		return nil, fmt.Errorf("decode ticket info: %w", err)
	}

	return &info, nil
}

func (c *Client) collection(
	name string,
	opts ...options.Lister[options.CollectionOptions],
) *mongo.Collection {
	return c.client.
		Database(c.config.TrackerDatabase).
		Collection(name, opts...)
}

// escapeRegex escapes special characters by putting a backslash in front of it.
func escapeRegex(str string) string {
	regex := `\.+*?()|[]{}^$`
	if !strings.ContainsAny(str, regex) {
		return str
	}

	var buf bytes.Buffer
	for _, r := range str {
		if strings.ContainsRune(regex, r) {
			buf.WriteByte('\\')
		}
		buf.WriteByte(byte(r))
	}
	return buf.String()
}
