//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mongocontainer "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
)

func TestConnectIndexAndPing(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongocontainer.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := DBInstance(ctx, uri)
	require.NoError(t, err)

	ping := Pinger(client)
	require.NoError(t, ping(ctx))

	const dbName = "exercise-tracker-test"
	require.NoError(t, EnsureIndexes(ctx, client, dbName))
	// Creating an existing index again is a no-op.
	require.NoError(t, EnsureIndexes(ctx, client, dbName))

	cursor, err := OpenCollection(client, dbName, ExerciseCollection).Indexes().List(ctx)
	require.NoError(t, err)
	var indexes []struct {
		Name string `bson:"name"`
		Key  bson.D `bson:"key"`
	}
	require.NoError(t, cursor.All(ctx, &indexes))

	var keys bson.D
	for _, index := range indexes {
		if index.Name == "userId_1_date_1__id_1" {
			keys = index.Key
		}
	}
	require.Len(t, keys, 3, "log query index missing: %v", indexes)
	assert.Equal(t, []string{"userId", "date", "_id"}, []string{keys[0].Key, keys[1].Key, keys[2].Key})

	require.NoError(t, client.Disconnect(ctx))
	assert.Error(t, ping(ctx))
}

func TestDBInstanceUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := DBInstance(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500")
	assert.Nil(t, client)
	assert.ErrorContains(t, err, "ping MongoDB")
}
