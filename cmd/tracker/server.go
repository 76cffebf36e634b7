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

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracker-team/tracker/server"
	"github.com/tracker-team/tracker/server/backend/database/mongo"
	"github.com/tracker-team/tracker/server/logging"
)

var (
	flagConfPath string
	flagLogLevel string

	authTokenTTL               time.Duration
	requireTicketProjectAccess bool

	mongoConnectionURI     string
	mongoConnectionTimeout time.Duration
	mongoTrackerDatabase   string
	mongoPingTimeout       time.Duration

	conf = server.NewConfig()
)

func newServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server [options]",
		Short: "Start Tracker server",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf.Backend.AuthTokenTTL = authTokenTTL.String()
			conf.Backend.RequireTicketProjectAccess = &requireTicketProjectAccess

			if mongoConnectionURI != "" {
				conf.Mongo = &mongo.Config{
					ConnectionURI:     mongoConnectionURI,
					ConnectionTimeout: mongoConnectionTimeout.String(),
					TrackerDatabase:   mongoTrackerDatabase,
					PingTimeout:       mongoPingTimeout.String(),
				}
			}

			// If config file is given, command-line arguments will be overwritten.
			if flagConfPath != "" {
				parsed, err := server.NewConfigFromFile(flagConfPath)
				if err != nil {
					return err
				}
				conf = parsed
			}

			if err := logging.SetLogLevel(flagLogLevel); err != nil {
				return err
			}

			tracker, err := server.New(conf)
			if err != nil {
				return err
			}

			handleSignal(tracker)
			return nil
		},
	}
}

func handleSignal(tracker *server.Tracker) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	<-sigCh

	if err := tracker.Shutdown(); err != nil {
		logging.DefaultLogger().Error(err)
	}
}

func init() {
	cmd := newServerCmd()
	cmd.Flags().StringVarP(
		&flagConfPath,
		"config",
		"c",
		"",
		"Config path",
	)
	cmd.Flags().StringVarP(
		&flagLogLevel,
		"log-level",
		"l",
		"info",
		"Log level: debug, info, warn, error, panic, fatal",
	)
	cmd.Flags().StringVar(
		&conf.Backend.SecretKey,
		"backend-secret-key",
		"",
		"The secret key for signing session tokens. Required.",
	)
	cmd.Flags().DurationVar(
		&authTokenTTL,
		"backend-auth-token-ttl",
		7*24*time.Hour,
		"The validity duration of issued session tokens.",
	)
	cmd.Flags().BoolVar(
		&requireTicketProjectAccess,
		"backend-require-ticket-project-access",
		server.DefaultRequireTicketProjectAccess,
		"Require project access for ticket mutations.",
	)
	cmd.Flags().BoolVar(
		&conf.Backend.CascadeTicketRemoval,
		"backend-cascade-ticket-removal",
		false,
		"Delete the tickets of a project when the project is deleted.",
	)
	cmd.Flags().StringVar(
		&mongoConnectionURI,
		"mongo-connection-uri",
		"",
		"MongoDB's connection URI",
	)
	cmd.Flags().DurationVar(
		&mongoConnectionTimeout,
		"mongo-connection-timeout",
		5*time.Second,
		"Mongo DB's connection timeout",
	)
	cmd.Flags().StringVar(
		&mongoTrackerDatabase,
		"mongo-tracker-database",
		server.DefaultMongoDatabase,
		"Tracker's database name in MongoDB",
	)
	cmd.Flags().DurationVar(
		&mongoPingTimeout,
		"mongo-ping-timeout",
		5*time.Second,
		"Mongo DB's ping timeout",
	)

	rootCmd.AddCommand(cmd)
}
