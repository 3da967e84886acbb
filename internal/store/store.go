// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package store persists analysis records to MongoDB. Persistence is an
// optional collaborator: without a configured URI every operation is a
// silent no-op returning false or nil, and connection or write failures
// are swallowed the same way. The pipeline never depends on it.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	databaseName     = "codebase_genius"
	selectionTimeout = 5 * time.Second
)

// AnalysesCollection holds one record per completed pipeline run.
const AnalysesCollection = "analyses"

// Store is a MongoDB-backed record store. The zero value (empty URI) is a
// valid, disabled store.
type Store struct {
	uri string
}

// New creates a store for the given connection URI. An empty URI yields a
// disabled store whose operations no-op.
func New(uri string) *Store {
	return &Store{uri: uri}
}

// Enabled reports whether a connection URI is configured.
func (s *Store) Enabled() bool {
	return s.uri != ""
}

// connect dials a fresh client for one operation, mirroring the
// one-connection-per-call shape of the original tool. Returns nil when
// the store is disabled or the dial fails.
func (s *Store) connect() *mongo.Client {
	if s.uri == "" {
		return nil
	}
	client, err := mongo.Connect(options.Client().
		ApplyURI(s.uri).
		SetServerSelectionTimeout(selectionTimeout))
	if err != nil {
		return nil
	}
	return client
}

// Save inserts one record into the named collection. Returns false when
// the store is disabled or the insert fails; it never returns an error.
func (s *Store) Save(ctx context.Context, collection string, record any) bool {
	client := s.connect()
	if client == nil {
		return false
	}
	defer client.Disconnect(ctx)

	_, err := client.Database(databaseName).Collection(collection).InsertOne(ctx, record)
	return err == nil
}

// Query returns all records in the named collection matching filter (nil
// matches everything). Returns nil when the store is disabled or the
// query fails.
func (s *Store) Query(ctx context.Context, collection string, filter any) []bson.M {
	client := s.connect()
	if client == nil {
		return nil
	}
	defer client.Disconnect(ctx)

	if filter == nil {
		filter = bson.D{}
	}

	cursor, err := client.Database(databaseName).Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil
	}
	return results
}
