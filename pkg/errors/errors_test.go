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

package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tracker-team/tracker/pkg/errors"
)

func TestStatusErrors(t *testing.T) {
	t.Run("status extraction test", func(t *testing.T) {
		err := errors.NotFound("project not found")
		assert.Equal(t, errors.ErrCodeNotFound, errors.StatusOf(err))
		assert.True(t, errors.IsStatus(err, errors.ErrCodeNotFound))
		assert.True(t, errors.IsClientError(err))
		assert.False(t, errors.IsServerError(err))
	})

	t.Run("wrapped status extraction test", func(t *testing.T) {
		base := errors.PermissionDenied("admin or owner required")
		wrapped := fmt.Errorf("update project: %w", base)
		assert.Equal(t, errors.ErrCodePermissionDenied, errors.StatusOf(wrapped))
	})

	t.Run("rule code test", func(t *testing.T) {
		err := errors.PermissionDenied("project access required").
			WithCode("ErrProjectAccessRequired")
		assert.Equal(t, "ErrProjectAccessRequired", err.Code())

		wrapped := fmt.Errorf("view project: %w", err)
		assert.Equal(t, "ErrProjectAccessRequired", errors.CodeOf(wrapped))
	})

	t.Run("no status test", func(t *testing.T) {
		assert.Equal(t, errors.StatusCode(0), errors.StatusOf(nil))
		assert.Equal(t, errors.StatusCode(0), errors.StatusOf(fmt.Errorf("plain")))
	})

	t.Run("server error test", func(t *testing.T) {
		err := errors.Unavailable("store timeout")
		assert.True(t, errors.IsServerError(err))
		assert.False(t, errors.IsClientError(err))
	})
}
