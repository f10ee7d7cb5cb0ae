package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"golang-exercisetracker/models"
)

// insertionOrder sorts by _id; ObjectIds minted by one process increase
// monotonically, so this is the order documents were written in.
var insertionOrder = bson.D{{Key: "_id", Value: 1}}

type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(collection *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{collection: collection}
}

func (s *MongoUserStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := validateDocument("user", user); err != nil {
		return err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *MongoUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 1}, {Key: "username", Value: 1}}).
		SetSort(insertionOrder)

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *MongoUserStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	err = s.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

type MongoExerciseStore struct {
	collection *mongo.Collection
}

func NewMongoExerciseStore(collection *mongo.Collection) *MongoExerciseStore {
	return &MongoExerciseStore{collection: collection}
}

func (s *MongoExerciseStore) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	if err := validateDocument("exercise", exercise); err != nil {
		return err
	}
	if exercise.ID.IsZero() {
		exercise.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, exercise); err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

func (s *MongoExerciseStore) FindExercises(ctx context.Context, userID primitive.ObjectID, q ExerciseQuery) ([]models.Exercise, error) {
	exercises := []models.Exercise{}
	if !q.Matchable() {
		return exercises, nil
	}

	opts := options.Find().SetSort(insertionOrder)
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := s.collection.Find(ctx, ExerciseFilter(userID, q), opts)
	if err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	if err := cursor.All(ctx, &exercises); err != nil {
		return nil, fmt.Errorf("find exercises: %w", err)
	}
	return exercises, nil
}

// ExerciseFilter builds the query document for a user's exercises with
// inclusive date bounds. Documents with a null date never match a bound.
func ExerciseFilter(userID primitive.ObjectID, q ExerciseQuery) bson.M {
	filter := bson.M{"userId": userID}
	if q.From == nil && q.To == nil {
		return filter
	}
	dateRange := bson.M{}
	if q.From != nil {
		dateRange["$gte"] = primitive.NewDateTimeFromTime(q.From.Time)
	}
	if q.To != nil {
		dateRange["$lte"] = primitive.NewDateTimeFromTime(q.To.Time)
	}
	filter["date"] = dateRange
	return filter
}
