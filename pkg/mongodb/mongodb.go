package mongodb

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	once   sync.Once
	client *mongo.Client
	errCon error
)

// Connect returns the process-wide MongoDB client, establishing it on first
// use. The connection is cached for the process lifetime and never explicitly
// torn down; repeated calls are cheap and return the same client.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, errCon = mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
		if errCon != nil {
			return
		}
		errCon = client.Ping(connectCtx, readpref.Primary())
	})
	return client, errCon
}
