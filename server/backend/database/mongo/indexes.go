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

package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	// ColUsers represents the users collection in the database.
	ColUsers = "users"
	// ColProjects represents the projects collection in the database.
	ColProjects = "projects"
	// ColMembers represents the memberships collection in the database.
	ColMembers = "members"
	// ColTickets represents the tickets collection in the database.
	ColTickets = "tickets"
)

// Collections represents the list of all collections in the database.
var Collections = []string{
	ColUsers,
	ColProjects,
	ColMembers,
	ColTickets,
}

type collectionInfo struct {
	name    string
	indexes []mongo.IndexModel
}

// Below are names and indexes information of Collections that stores Tracker data.
var collectionInfos = []collectionInfo{
	{
		name: ColUsers,
		indexes: []mongo.IndexModel{{
			Keys:    bson.D{{Key: "username", Value: int32(1)}},
			Options: options.Index().SetUnique(true),
		}, {
			Keys:    bson.D{{Key: "email", Value: int32(1)}},
			Options: options.Index().SetUnique(true),
		}},
	},
	{
		name: ColProjects,
		indexes: []mongo.IndexModel{{
			Keys: bson.D{{Key: "owner", Value: int32(1)}},
		}},
	},
	{
		name: ColMembers,
		indexes: []mongo.IndexModel{{
			Keys: bson.D{
				{Key: "project_id", Value: int32(1)},
				{Key: "user_id", Value: int32(1)},
			},
			Options: options.Index().SetUnique(true),
		}, {
			Keys: bson.D{{Key: "user_id", Value: int32(1)}},
		}},
	},
	{
		name: ColTickets,
		indexes: []mongo.IndexModel{{
			Keys: bson.D{
				{Key: "project_id", Value: int32(1)},
				{Key: "created_at", Value: int32(-1)},
			},
		}, {
			Keys: bson.D{{Key: "assignee", Value: int32(1)}},
		}},
	},
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, info := range collectionInfos {
		_, err := db.Collection(info.name).Indexes().CreateMany(ctx, info.indexes)
		if err != nil {
			return fmt.Errorf("create indexes: %w", err)
		}
	}
	return nil
}
