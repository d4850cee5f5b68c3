package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/formbridge/formbridge/internal/submission"
)

// MongoRepo implements a MongoDB-backed repository for submissions.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, s *submission.Submission) error {
	res, err := m.col.InsertOne(ctx, s)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return nil
}

func (m *MongoRepo) List(ctx context.Context) ([]*submission.Submission, error) {
	cur, err := m.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*submission.Submission{}
	for cur.Next(ctx) {
		var s submission.Submission
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
