package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ecowaste-be/models"
)

// MongoUserStore implements UserStore on a MongoDB collection.
type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(coll *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{coll: coll}
}

func (s *MongoUserStore) Insert(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	count, err := s.coll.CountDocuments(ctx, bson.M{"email": u.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicate
	}
	_, err = s.coll.InsertOne(ctx, u)
	return err
}

func (s *MongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUserStore) Count(ctx context.Context) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{})
}

func (s *MongoUserStore) CountByRole(ctx context.Context, role models.Role) (int64, error) {
	return s.coll.CountDocuments(ctx, bson.M{"role": role})
}
