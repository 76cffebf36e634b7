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

// Package backend provides the backend implementation of the Tracker.
// This package is responsible for managing the database and other
// resources required to run Tracker.
package backend

import (
	"github.com/tracker-team/tracker/server/backend/database"
	memdb "github.com/tracker-team/tracker/server/backend/database/memory"
	"github.com/tracker-team/tracker/server/backend/database/mongo"
	"github.com/tracker-team/tracker/server/backend/sync"
	"github.com/tracker-team/tracker/server/logging"
)

// Backend manages Tracker's backend such as Database and Lockers.
type Backend struct {
	Config *Config

	// Lockers is used to serialize mutations per aggregate.
	Lockers *sync.LockerManager

	// DB is the database instance.
	DB database.Database
}

// New creates a new instance of Backend. If the MongoDB configuration is
// given, it connects to MongoDB. Otherwise it uses the in-memory database.
func New(conf *Config, mongoConf *mongo.Config) (*Backend, error) {
	var db database.Database
	var err error
	if mongoConf != nil {
		db, err = mongo.Dial(mongoConf)
		if err != nil {
			return nil, err
		}
	} else {
		db, err = memdb.New()
		if err != nil {
			return nil, err
		}
	}

	dbInfo := "memory"
	if mongoConf != nil {
		dbInfo = mongoConf.ConnectionURI
	}
	logging.DefaultLogger().Infof("backend created: db: %s", dbInfo)

	return &Backend{
		Config:  conf,
		Lockers: sync.New(),
		DB:      db,
	}, nil
}

// Shutdown closes all resources of this instance.
func (b *Backend) Shutdown() error {
	if err := b.DB.Close(); err != nil {
		return err
	}

	logging.DefaultLogger().Infof("backend stopped")
	return nil
}
