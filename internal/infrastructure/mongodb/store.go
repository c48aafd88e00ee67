package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
)

// Store serves one collection from MongoDB. The record id lives in _id so
// Put can upsert with ReplaceOne.
type Store[T repository.Record] struct {
	coll *mongo.Collection
}

func NewStore[T repository.Record](db *mongo.Database, collection string) *Store[T] {
	return &Store[T]{coll: db.Collection(collection)}
}

func (s *Store[T]) Put(ctx context.Context, rec T) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.RecordID()}, rec, opts)
	return err
}

func (s *Store[T]) GetByID(ctx context.Context, id string) (T, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *Store[T]) FindOneBy(ctx context.Context, field, value string) (T, error) {
	return s.findOne(ctx, bson.M{field: value})
}

func (s *Store[T]) findOne(ctx context.Context, filter bson.M) (T, error) {
	var rec T
	err := s.coll.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return rec, repository.ErrNotFound
	}
	if err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *Store[T]) GetAll(ctx context.Context) (map[string]T, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	out := make(map[string]T)
	for cur.Next(ctx) {
		var rec T
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out[rec.RecordID()] = rec
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ repository.Store[repository.Record] = (*Store[repository.Record])(nil)
