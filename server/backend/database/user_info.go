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
	"strings"
	"time"

	"github.com/tracker-team/tracker/api/types"
)

// UserInfo is a structure representing information of a user.
type UserInfo struct {
	ID             types.ID  `bson:"_id"`
	Username       string    `bson:"username"`
	Email          string    `bson:"email"`
	FullName       string    `bson:"full_name"`
	AvatarURL      string    `bson:"avatar_url"`
	HashedPassword string    `bson:"hashed_password"`
	CreatedAt      time.Time `bson:"created_at"`
}

// NewUserInfo creates a new UserInfo with the given fields. The email is
// normalized to lower case so that lookups are case-insensitive.
func NewUserInfo(username, email, fullName, avatarURL, hashedPassword string) *UserInfo {
	return &UserInfo{
		Username:       username,
		Email:          strings.ToLower(email),
		FullName:       fullName,
		AvatarURL:      avatarURL,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now(),
	}
}

// DeepCopy returns a deep copy of the UserInfo.
func (i *UserInfo) DeepCopy() *UserInfo {
	if i == nil {
		return nil
	}

	return &UserInfo{
		ID:             i.ID,
		Username:       i.Username,
		Email:          i.Email,
		FullName:       i.FullName,
		AvatarURL:      i.AvatarURL,
		HashedPassword: i.HashedPassword,
		CreatedAt:      i.CreatedAt,
	}
}

// ToUser converts the UserInfo to a User. The password credential is never
// exposed outward.
func (i *UserInfo) ToUser() *types.User {
	return &types.User{
		ID:        i.ID,
		Username:  i.Username,
		Email:     i.Email,
		FullName:  i.FullName,
		AvatarURL: i.AvatarURL,
		CreatedAt: i.CreatedAt,
	}
}
