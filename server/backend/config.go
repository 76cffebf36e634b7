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

package backend

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrEmptySecretKey is returned when the secret key is not configured. The
// server never falls back to a built-in secret.
var ErrEmptySecretKey = errors.New("secret key must be set")

// Config is the configuration for creating a Backend instance.
type Config struct {
	// SecretKey is the secret key used to sign session tokens. Required.
	SecretKey string `yaml:"SecretKey"`

	// AuthTokenTTL is the validity duration of issued session tokens.
	AuthTokenTTL string `yaml:"AuthTokenTTL"`

	// RequireTicketProjectAccess requires the actor to have access to the
	// ticket's project for ticket mutations (update, delete, comment). When
	// disabled only authentication is required, matching the lax legacy
	// behavior. Unset means required; the lax mode must be asked for
	// explicitly.
	RequireTicketProjectAccess *bool `yaml:"RequireTicketProjectAccess"`

	// CascadeTicketRemoval deletes all tickets of a project when the project
	// is deleted. When disabled, deleted projects leave their tickets behind
	// as orphans.
	CascadeTicketRemoval bool `yaml:"CascadeTicketRemoval"`
}

// TicketAccessRequired returns whether ticket mutations require project
// access. Defaults to true when the field is unset.
func (c *Config) TicketAccessRequired() bool {
	return c.RequireTicketProjectAccess == nil || *c.RequireTicketProjectAccess
}

// Validate validates this config.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrEmptySecretKey
	}

	if _, err := time.ParseDuration(c.AuthTokenTTL); err != nil {
		return fmt.Errorf(
			`invalid argument "%s" for "--auth-token-ttl" flag: %w`,
			c.AuthTokenTTL,
			err,
		)
	}

	return nil
}

// ParseAuthTokenTTL returns the auth token TTL duration.
func (c *Config) ParseAuthTokenTTL() time.Duration {
	result, err := time.ParseDuration(c.AuthTokenTTL)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return result
}
