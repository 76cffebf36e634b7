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
	"bytes"
	"testing"
	gotime "time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/pkg/errors"
	"github.com/tracker-team/tracker/server/backend/database"
)

// decode unmarshals the given document the way the dialed client does,
// with ObjectIDs decoding into hex strings.
func decode(t *testing.T, doc bson.M, out interface{}) {
	t.Helper()

	data, err := bson.Marshal(doc)
	assert.NoError(t, err)

	dec := bson.NewDecoder(bson.NewDocumentReader(bytes.NewReader(data)))
	dec.ObjectIDAsHexString()
	assert.NoError(t, dec.Decode(out))
}

func TestObjectIDDecoding(t *testing.T) {
	// the client must opt into hex-string decoding; the driver's default
	// refuses ObjectID into string-kind fields
	assert.True(t, bsonOptions.ObjectIDAsHexString)

	t.Run("user info round trip test", func(t *testing.T) {
		oid := bson.NewObjectID()
		now := gotime.Now()

		info := database.UserInfo{}
		decode(t, bson.M{
			"_id":             oid,
			"username":        "alice",
			"email":           "alice@tracker.dev",
			"full_name":       "Alice Liddell",
			"hashed_password": "hashed",
			"created_at":      now,
		}, &info)

		assert.Equal(t, types.ID(oid.Hex()), info.ID)
		assert.Equal(t, "alice", info.Username)
		assert.WithinDuration(t, now, info.CreatedAt, gotime.Second)
	})

	t.Run("ticket info round trip test", func(t *testing.T) {
		oid := bson.NewObjectID()
		pid := bson.NewObjectID()
		rid := bson.NewObjectID()
		cid := bson.NewObjectID()

		info := database.TicketInfo{}
		decode(t, bson.M{
			"_id":        oid,
			"project_id": pid,
			"title":      "broken login",
			"status":     types.TicketPending,
			"priority":   types.PriorityMedium,
			"reporter":   rid,
			"comments": []bson.M{
				{"_id": cid, "author": rid, "content": "on it", "created_at": gotime.Now()},
			},
		}, &info)

		assert.Equal(t, types.ID(oid.Hex()), info.ID)
		assert.Equal(t, types.ID(pid.Hex()), info.ProjectID)
		assert.Equal(t, types.ID(rid.Hex()), info.Reporter)
		assert.Len(t, info.Comments, 1)
		assert.Equal(t, types.ID(cid.Hex()), info.Comments[0].ID)
		assert.Equal(t, types.ID(rid.Hex()), info.Comments[0].Author)
	})
}

func TestTicketUpdateSet(t *testing.T) {
	t.Run("assignee re-encoded under its stored key test", func(t *testing.T) {
		assigneeID := types.ID("000000000000000000000001")
		title := "renamed"
		set, err := ticketUpdateSet(&types.UpdatableTicketFields{
			Title:      &title,
			AssigneeID: &assigneeID,
		})
		assert.NoError(t, err)

		assert.Equal(t, "renamed", set["title"])
		aid, err := encodeID(assigneeID)
		assert.NoError(t, err)
		assert.Equal(t, aid, set["assignee"])
		assert.Contains(t, set, "updated_at")

		// only stored keys may reach the document
		assert.NotContains(t, set, "assignee_id")
	})

	t.Run("clear assignee test", func(t *testing.T) {
		empty := types.ID("")
		set, err := ticketUpdateSet(&types.UpdatableTicketFields{AssigneeID: &empty})
		assert.NoError(t, err)

		assert.Nil(t, set["assignee"])
		assert.NotContains(t, set, "assignee_id")
	})

	t.Run("absent assignee untouched test", func(t *testing.T) {
		status := types.TicketCompleted
		set, err := ticketUpdateSet(&types.UpdatableTicketFields{Status: &status})
		assert.NoError(t, err)

		assert.NotContains(t, set, "assignee")
		assert.NotContains(t, set, "assignee_id")
	})
}

func TestEncodeID(t *testing.T) {
	t.Run("valid id test", func(t *testing.T) {
		oid := bson.NewObjectID()
		encoded, err := encodeID(types.ID(oid.Hex()))
		assert.NoError(t, err)
		assert.Equal(t, oid, encoded)
	})

	t.Run("malformed id test", func(t *testing.T) {
		_, err := encodeID(types.ID("not-hex"))
		assert.ErrorIs(t, err, types.ErrInvalidID)
		assert.Equal(t, errors.ErrCodeInvalidArgument, errors.StatusOf(err))
	})
}
