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

package server

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/tracker-team/tracker/server/backend"
	"github.com/tracker-team/tracker/server/backend/database/mongo"
)

// Below are the values of the default values of the configuration.
const (
	DefaultAuthTokenTTL = "168h"

	DefaultRequireTicketProjectAccess = true

	DefaultMongoConnectionURI     = "mongodb://localhost:27017"
	DefaultMongoConnectionTimeout = "5s"
	DefaultMongoPingTimeout       = "5s"
	DefaultMongoDatabase          = "tracker"
)

// Config is the configuration for creating a Tracker instance.
type Config struct {
	Backend *backend.Config `yaml:"Backend"`
	Mongo   *mongo.Config   `yaml:"Mongo"`
}

// NewConfig returns a Config struct that contains reasonable defaults
// for most of the configurations.
func NewConfig() *Config {
	return newConfig()
}

// NewConfigFromFile returns a Config struct for the given config file.
func NewConfigFromFile(path string) (*Config, error) {
	conf := &Config{}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	conf.ensureDefaultValue()
	return conf, nil
}

// Validate returns an error if the provided Config is invalidated.
func (c *Config) Validate() error {
	if err := c.Backend.Validate(); err != nil {
		return err
	}

	if c.Mongo != nil {
		if err := c.Mongo.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ensureDefaultValue sets the value of the option to which the default value
// should be applied when the user does not input it.
func (c *Config) ensureDefaultValue() {
	if c.Backend == nil {
		c.Backend = &backend.Config{}
	}

	if c.Backend.AuthTokenTTL == "" {
		c.Backend.AuthTokenTTL = DefaultAuthTokenTTL
	}

	// An omitted field keeps the strict default; only an explicit false in
	// the file relaxes the gate.
	if c.Backend.RequireTicketProjectAccess == nil {
		required := DefaultRequireTicketProjectAccess
		c.Backend.RequireTicketProjectAccess = &required
	}

	if c.Mongo != nil {
		if c.Mongo.ConnectionURI == "" {
			c.Mongo.ConnectionURI = DefaultMongoConnectionURI
		}

		if c.Mongo.ConnectionTimeout == "" {
			c.Mongo.ConnectionTimeout = DefaultMongoConnectionTimeout
		}

		if c.Mongo.PingTimeout == "" {
			c.Mongo.PingTimeout = DefaultMongoPingTimeout
		}

		if c.Mongo.TrackerDatabase == "" {
			c.Mongo.TrackerDatabase = DefaultMongoDatabase
		}
	}
}

func newConfig() *Config {
	required := DefaultRequireTicketProjectAccess
	return &Config{
		Backend: &backend.Config{
			AuthTokenTTL:               DefaultAuthTokenTTL,
			RequireTicketProjectAccess: &required,
		},
	}
}
