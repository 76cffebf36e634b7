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
	"errors"

	"github.com/tracker-team/tracker/internal/validation"
)

// FieldViolation is used to describe a single bad request field
type FieldViolation struct {
	// A Field of which field of the request is bad.
	Field string
	// A description of why the request element is bad.
	Description string
}

// InvalidFieldsError is used to describe invalid fields.
type InvalidFieldsError struct {
	Violations []*FieldViolation
}

// Error returns the error message.
func (e *InvalidFieldsError) Error() string { return "invalid fields" }

// validateStruct runs the struct validation and converts violations into
// an InvalidFieldsError.
func validateStruct(s interface{}) error {
	if err := validation.ValidateStruct(s); err != nil {
		invalidFieldsError := &InvalidFieldsError{}
		var structError *validation.StructError
		if errors.As(err, &structError) {
			for _, v := range structError.Violations {
				invalidFieldsError.Violations = append(
					invalidFieldsError.Violations,
					&FieldViolation{Field: v.Field, Description: v.Description},
				)
			}
			return invalidFieldsError
		}
		return err
	}
	return nil
}

func registerValidation(tag string, fn validation.CustomRuleFunc) {
	if err := validation.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func registerTranslation(tag, msg string) {
	if err := validation.RegisterTranslation(tag, msg); err != nil {
		panic(err)
	}
}

func init() {
	registerValidation("project_status", func(level validation.FieldLevel) bool {
		return ProjectStatus(level.Field().String()).IsValid()
	})
	registerTranslation("project_status", "given {0} is invalid project status")

	registerValidation("ticket_status", func(level validation.FieldLevel) bool {
		return TicketStatus(level.Field().String()).IsValid()
	})
	registerTranslation("ticket_status", "given {0} is invalid ticket status")

	registerValidation("ticket_priority", func(level validation.FieldLevel) bool {
		return TicketPriority(level.Field().String()).IsValid()
	})
	registerTranslation("ticket_priority", "given {0} is invalid ticket priority")
}
