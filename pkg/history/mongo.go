package history

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/matzehuels/lexicloud/pkg/errors"
)

const (
	defaultDatabase   = "lexicloud"
	defaultCollection = "messages"
	connectTimeout    = 10 * time.Second
)

// mongoMessage is the archive document shape.
type mongoMessage struct {
	ID     string    `bson:"_id"`
	Place  string    `bson:"place"`
	Person string    `bson:"person"`
	Text   string    `bson:"text"`
	SentAt time.Time `bson:"sent_at"`
}

// MongoSource reads archived messages from a MongoDB collection.
type MongoSource struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the archive connection. Empty Database and
// Collection fall back to "lexicloud" and "messages".
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// NewMongoSource connects to the archive and verifies the connection.
func NewMongoSource(ctx context.Context, cfg MongoConfig) (*MongoSource, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connecting to message archive")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "pinging message archive")
	}

	db := cfg.Database
	if db == "" {
		db = defaultDatabase
	}
	coll := cfg.Collection
	if coll == "" {
		coll = defaultCollection
	}
	return &MongoSource{client: client, coll: client.Database(db).Collection(coll)}, nil
}

// Messages returns up to limit messages for place, newest first.
func (s *MongoSource) Messages(ctx context.Context, place string, limit int) ([]Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := s.coll.Find(ctx, bson.D{{Key: "place", Value: place}}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "querying message archive for %s", place)
	}
	defer cursor.Close(ctx)

	var docs []mongoMessage
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "reading message archive for %s", place)
	}

	out := make([]Message, len(docs))
	for i, d := range docs {
		out[i] = Message{ID: d.ID, Place: d.Place, Person: d.Person, Text: d.Text, SentAt: d.SentAt}
	}
	return out, nil
}

// Close disconnects from the archive.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
