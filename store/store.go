// Package store holds the data-access contracts for users and exercises and
// their MongoDB and in-memory implementations.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"golang-exercisetracker/models"
)

var (
	// ErrNotFound is returned when a lookup by id matches no document.
	ErrNotFound = errors.New("store: record not found")
	// ErrInvalidID is returned when an id is not a valid ObjectId.
	ErrInvalidID = errors.New("invalid id")
)

// ExerciseQuery narrows the exercises returned for a user. Nil bounds are
// open, and a Limit of zero returns everything.
type ExerciseQuery struct {
	From  *models.CalendarDate
	To    *models.CalendarDate
	Limit int64
}

// Matchable reports whether any exercise can satisfy the query's bounds.
func (q ExerciseQuery) Matchable() bool {
	return (q.From == nil || q.From.Valid) && (q.To == nil || q.To.Valid)
}

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id string) (*models.User, error)
}

// ExerciseStore returns exercises in insertion order.
type ExerciseStore interface {
	CreateExercise(ctx context.Context, exercise *models.Exercise) error
	FindExercises(ctx context.Context, userID primitive.ObjectID, q ExerciseQuery) ([]models.Exercise, error)
}

func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: cast to ObjectId failed for value %q", ErrInvalidID, id)
	}
	return oid, nil
}
