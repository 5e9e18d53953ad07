package gateway

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/shopkit/admin/config"
	"github.com/shopkit/admin/pkg/metrics"
)

// mongoStore keeps one Mongo collection per logical collection, records
// keyed by a string _id.
type mongoStore struct {
	broadcaster

	client *mongo.Client
	db     *mongo.Database
}

func connectMongo(ctx context.Context) (*mongoStore, error) {
	ctx, cancel := bound(ctx)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI()))
	if err != nil {
		return nil, wrap("connect", "", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, wrap("ping", "", err)
	}

	return &mongoStore{
		client: client,
		db:     client.Database(config.MongoDatabase()),
	}, nil
}

func (s *mongoStore) List(ctx context.Context, collection string, out interface{}) error {
	defer metrics.ObserveGateway("list", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return wrap("list", collection, err)
	}
	return wrap("list", collection, cur.All(ctx, out))
}

func (s *mongoStore) Get(ctx context.Context, collection, id string, out interface{}) error {
	defer metrics.ObserveGateway("get", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return wrap("get", collection, err)
}

func (s *mongoStore) Create(ctx context.Context, collection, id string, record interface{}) error {
	defer metrics.ObserveGateway("create", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	_, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return wrap("create", collection, err)
	}

	s.notify(collection)
	return nil
}

func (s *mongoStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	defer metrics.ObserveGateway("update", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res, err := s.db.Collection(collection).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return wrap("update", collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	s.notify(collection)
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, collection, id string) error {
	defer metrics.ObserveGateway("delete", time.Now())
	ctx, cancel := bound(ctx)
	defer cancel()

	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return wrap("delete", collection, err)
	}

	s.notify(collection)
	return nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	ctx, cancel := bound(ctx)
	defer cancel()
	return s.client.Disconnect(ctx)
}
