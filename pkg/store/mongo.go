package store

import (
	"context"
	stderrors "errors"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/probelab/beliefnet/pkg/errors"
	"github.com/probelab/beliefnet/pkg/netio"
)

// collection is the MongoDB collection holding network documents.
const collection = "networks"

// MongoStore persists network documents in a MongoDB collection, one
// document per network, keyed by a unique index on the name field.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB, verifies connectivity with a ping,
// and ensures the unique name index exists.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "ping mongodb")
	}

	coll := client.Database(database).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create name index")
	}

	return &MongoStore{client: client, coll: coll}, nil
}

// Save upserts the document under its Name.
func (s *MongoStore) Save(ctx context.Context, doc netio.Network) error {
	if err := errors.ValidateNetworkName(doc.Name); err != nil {
		return err
	}
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"name": doc.Name}, doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "save network %q", doc.Name)
	}
	return nil
}

// Load returns the stored document or a NETWORK_NOT_FOUND error.
func (s *MongoStore) Load(ctx context.Context, name string) (netio.Network, error) {
	var doc netio.Network
	err := s.coll.FindOne(ctx, bson.M{"name": name}).Decode(&doc)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return netio.Network{}, notFound(name)
	}
	if err != nil {
		return netio.Network{}, errors.Wrap(errors.ErrCodeStorage, err, "load network %q", name)
	}
	return doc, nil
}

// List returns all stored network names in sorted order.
func (s *MongoStore) List(ctx context.Context) ([]string, error) {
	values, err := s.coll.Distinct(ctx, "name", bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list networks")
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			names = append(names, s)
		}
	}
	slices.Sort(names)
	return names, nil
}

// Delete removes the document or returns a NETWORK_NOT_FOUND error.
func (s *MongoStore) Delete(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "delete network %q", name)
	}
	if res.DeletedCount == 0 {
		return notFound(name)
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
