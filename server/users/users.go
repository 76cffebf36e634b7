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

// Package users provides the user related business logic.
package users

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tracker-team/tracker/api/types"
	"github.com/tracker-team/tracker/server/backend"
	"github.com/tracker-team/tracker/server/backend/database"
)

const (
	// minSearchQueryLen is the minimum query length for user search. Shorter
	// queries return an empty result instead of an error.
	minSearchQueryLen = 2

	// maxSearchResults caps the number of users a search returns.
	maxSearchResults = 10
)

// SignUp signs up a new user.
func SignUp(
	ctx context.Context,
	be *backend.Backend,
	fields *types.SignupFields,
) (*types.User, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	hashed, err := database.HashedPassword(*fields.Password)
	if err != nil {
		return nil, fmt.Errorf("cannot hash password: %w", err)
	}

	var fullName, avatarURL string
	if fields.FullName != nil {
		fullName = *fields.FullName
	}
	if fields.AvatarURL != nil {
		avatarURL = *fields.AvatarURL
	}

	info, err := be.DB.CreateUserInfo(
		ctx,
		strings.TrimSpace(*fields.Username),
		*fields.Email,
		fullName,
		avatarURL,
		hashed,
	)
	if err != nil {
		return nil, err
	}

	return info.ToUser(), nil
}

// IsCorrectPassword checks if the password is correct for the user with the
// given email.
func IsCorrectPassword(
	ctx context.Context,
	be *backend.Backend,
	email,
	password string,
) (*types.User, error) {
	info, err := be.DB.FindUserInfoByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := database.CompareHashAndPassword(
		info.HashedPassword,
		password,
	); err != nil {
		return nil, err
	}

	return info.ToUser(), nil
}

// GetUser returns a user by the given ID.
func GetUser(
	ctx context.Context,
	be *backend.Backend,
	id types.ID,
) (*types.User, error) {
	info, err := be.DB.FindUserInfoByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return info.ToUser(), nil
}

// Search returns users matching the given query, excluding the actor. A
// query shorter than two characters returns an empty result.
func Search(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	query string,
) ([]*types.User, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSearchQueryLen {
		return []*types.User{}, nil
	}

	infos, err := be.DB.SearchUserInfos(ctx, query, actor, maxSearchResults)
	if err != nil {
		return nil, err
	}

	users := make([]*types.User, 0, len(infos))
	for _, info := range infos {
		users = append(users, info.ToUser())
	}

	return users, nil
}

// ChangePassword rotates the password credential of the user.
func ChangePassword(
	ctx context.Context,
	be *backend.Backend,
	actor types.ID,
	fields *types.ChangePasswordFields,
) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	info, err := be.DB.FindUserInfoByID(ctx, actor)
	if err != nil {
		return err
	}

	if err := database.CompareHashAndPassword(
		info.HashedPassword,
		*fields.Password,
	); err != nil {
		return err
	}

	hashed, err := database.HashedPassword(*fields.NewPassword)
	if err != nil {
		return fmt.Errorf("cannot hash password: %w", err)
	}

	return be.DB.ChangeUserPassword(ctx, actor, hashed)
}
