package history

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSink appends records to a MongoDB collection, one document per
// build.
type MongoSink struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoSink connects to the given URI and targets db.coll. The
// connection is verified with a ping before the sink is returned.
func NewMongoSink(ctx context.Context, uri, db, coll string) (*MongoSink, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("history: connect %s: %w", uri, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("history: mongo %s unreachable: %w", uri, err)
	}
	return &MongoSink{client: client, coll: client.Database(db).Collection(coll)}, nil
}

// Append inserts one record.
func (s *MongoSink) Append(ctx context.Context, r Record) error {
	_, err := s.coll.InsertOne(ctx, r)
	return err
}

// Close disconnects the client.
func (s *MongoSink) Close(ctx context.Context) error { return s.client.Disconnect(ctx) }

// Ensure MongoSink implements Sink.
var _ Sink = (*MongoSink)(nil)
