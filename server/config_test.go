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

package server_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracker-team/tracker/server"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tracker.yml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestConfig(t *testing.T) {
	t.Run("default config test", func(t *testing.T) {
		conf := server.NewConfig()
		assert.Equal(t, server.DefaultAuthTokenTTL, conf.Backend.AuthTokenTTL)
		assert.True(t, conf.Backend.TicketAccessRequired())
	})

	t.Run("omitted fields keep strict defaults test", func(t *testing.T) {
		path := writeConfigFile(t, `
Backend:
  SecretKey: "file-secret"
`)
		conf, err := server.NewConfigFromFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "file-secret", conf.Backend.SecretKey)
		assert.Equal(t, server.DefaultAuthTokenTTL, conf.Backend.AuthTokenTTL)

		// a file that says nothing about the access gate keeps it closed
		assert.NotNil(t, conf.Backend.RequireTicketProjectAccess)
		assert.True(t, conf.Backend.TicketAccessRequired())
		assert.NoError(t, conf.Validate())
	})

	t.Run("explicit lax mode test", func(t *testing.T) {
		path := writeConfigFile(t, `
Backend:
  SecretKey: "file-secret"
  RequireTicketProjectAccess: false
`)
		conf, err := server.NewConfigFromFile(path)
		assert.NoError(t, err)
		assert.False(t, conf.Backend.TicketAccessRequired())
	})

	t.Run("mongo defaults test", func(t *testing.T) {
		path := writeConfigFile(t, `
Backend:
  SecretKey: "file-secret"
Mongo:
  ConnectionURI: "mongodb://localhost:27017"
`)
		conf, err := server.NewConfigFromFile(path)
		assert.NoError(t, err)
		assert.Equal(t, server.DefaultMongoDatabase, conf.Mongo.TrackerDatabase)
		assert.Equal(t, server.DefaultMongoConnectionTimeout, conf.Mongo.ConnectionTimeout)
		assert.Equal(t, server.DefaultMongoPingTimeout, conf.Mongo.PingTimeout)
	})

	t.Run("missing secret key test", func(t *testing.T) {
		path := writeConfigFile(t, `
Backend:
  AuthTokenTTL: "24h"
`)
		conf, err := server.NewConfigFromFile(path)
		assert.NoError(t, err)
		assert.Error(t, conf.Validate())
	})
}
