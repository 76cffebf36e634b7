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

// SignupFields is a set of fields that use to sign up to the service.
type SignupFields struct {
	// Username is the username of the user.
	Username *string `bson:"username" validate:"required,notblank,min=2,max=30"`

	// Email is the email address of the user.
	Email *string `bson:"email" validate:"required,email"`

	// Password is the password of the user.
	Password *string `bson:"password" validate:"required,min=6,max=72"`

	// FullName is the display name of the user.
	FullName *string `bson:"full_name,omitempty" validate:"omitempty,max=100"`

	// AvatarURL is a reference to the avatar image of the user.
	AvatarURL *string `bson:"avatar_url,omitempty" validate:"omitempty,max=500"`
}

// Validate validates the SignupFields.
func (i *SignupFields) Validate() error {
	return validateStruct(i)
}

// ChangePasswordFields is a set of fields that use to change the password.
type ChangePasswordFields struct {
	// Password is the current password of the user.
	Password *string `bson:"password" validate:"required"`

	// NewPassword is the password to change to.
	NewPassword *string `bson:"new_password" validate:"required,min=6,max=72"`
}

// Validate validates the ChangePasswordFields.
func (i *ChangePasswordFields) Validate() error {
	return validateStruct(i)
}
