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
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tracker-team/tracker/pkg/errors"
)

// ErrInvalidID is returned when the given ID is not valid.
var ErrInvalidID = errors.InvalidArgument("invalid ID").WithCode("ErrInvalidID")

// ID represents the unique identifier of a stored record.
type ID string

// String returns the string representation of the ID.
func (id ID) String() string {
	return string(id)
}

// Validate checks whether the ID is well-formed.
func (id ID) Validate() error {
	if _, err := bson.ObjectIDFromHex(id.String()); err != nil {
		return ErrInvalidID
	}
	return nil
}

// IDFromHex parses the given hex string into an ID.
func IDFromHex(s string) (ID, error) {
	if _, err := bson.ObjectIDFromHex(s); err != nil {
		return "", ErrInvalidID
	}
	return ID(s), nil
}
