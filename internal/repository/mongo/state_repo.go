package mongo

import (
	"alcyxob/workout-planner/internal/repository"
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const stateCollectionName = "session_state"

// stateDocument is one key of one scope. Value keeps the serialized blob as
// text so the collection stays readable from the mongo shell.
type stateDocument struct {
	ID        string    `bson:"_id"`
	Scope     string    `bson:"scope"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoStateRepository implements repository.StateStore using MongoDB.
type mongoStateRepository struct {
	collection *mongo.Collection
	scope      string
	client     *mongo.Client // owned when built through Open; nil otherwise
}

// NewMongoStateRepository creates a state store over db partitioned by scope.
// The caller keeps ownership of the client behind db.
func NewMongoStateRepository(db *mongo.Database, scope string) repository.StateStore {
	return &mongoStateRepository{
		collection: db.Collection(stateCollectionName),
		scope:      scope,
	}
}

// Open connects to uri, ensures indexes and returns a store that disconnects
// the client on Close.
func Open(ctx context.Context, uri, database, scope string) (repository.StateStore, error) {
	client, err := ConnectDB(ctx, uri)
	if err != nil {
		return nil, err
	}
	db := client.Database(database)
	EnsureStateIndexes(ctx, db.Collection(stateCollectionName))
	return &mongoStateRepository{
		collection: db.Collection(stateCollectionName),
		scope:      scope,
		client:     client,
	}, nil
}

func (r *mongoStateRepository) docID(key string) string {
	return r.scope + "/" + key
}

// Get retrieves the value stored under key for this scope.
func (r *mongoStateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var doc stateDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": r.docID(key)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return []byte(doc.Value), nil
}

// Put upserts the value of key.
func (r *mongoStateRepository) Put(ctx context.Context, key string, value []byte) error {
	doc := stateDocument{
		ID:        r.docID(key),
		Scope:     r.scope,
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 && result.UpsertedCount == 0 {
		return repository.ErrUpdateFailed
	}
	return nil
}

// Delete removes key. A missing key is fine.
func (r *mongoStateRepository) Delete(ctx context.Context, key string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": r.docID(key)})
	return err
}

// Clear removes every key of the scope.
func (r *mongoStateRepository) Clear(ctx context.Context) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"scope": r.scope})
	if err != nil {
		return errors.Join(repository.ErrDeleteFailed, err)
	}
	return nil
}

// Close disconnects the client when the store owns it.
func (r *mongoStateRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return DisconnectDB(r.client)
}

// EnsureStateIndexes creates necessary indexes for the state collection.
// Call this once during startup.
func EnsureStateIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "scope", Value: 1}, {Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		log.Printf("WARN: Failed to create indexes for collection %s: %v", collection.Name(), err)
	}
}
