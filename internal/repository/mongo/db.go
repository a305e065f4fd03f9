package mongo

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// connectTimeout bounds connect plus the first ping when ctx has no deadline.
const connectTimeout = 10 * time.Second

// ConnectDB connects to uri and pings the primary, so a wrong URI fails on
// startup rather than on the first session read.
func ConnectDB(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetAppName("workout-planner"))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			log.Printf("WARN: Disconnect after failed ping: %v", dErr)
		}
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	log.Printf("INFO: Connected to MongoDB")
	return client, nil
}

// DisconnectDB closes client, waiting at most connectTimeout for in-flight
// operations.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}
