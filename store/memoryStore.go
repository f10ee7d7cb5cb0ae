package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"golang-exercisetracker/models"
)

// MemoryStore keeps users and exercises in process, in insertion order. It
// applies the same schema checks and query semantics as the Mongo stores.
type MemoryStore struct {
	mu        sync.RWMutex
	users     []models.User
	exercises []models.Exercise
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateDocument("user", user); err != nil {
		return err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *MemoryStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == oid {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateExercise(ctx context.Context, exercise *models.Exercise) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateDocument("exercise", exercise); err != nil {
		return err
	}
	if exercise.ID.IsZero() {
		exercise.ID = primitive.NewObjectID()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exercises = append(s.exercises, *exercise)
	return nil
}

func (s *MemoryStore) FindExercises(ctx context.Context, userID primitive.ObjectID, q ExerciseQuery) ([]models.Exercise, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exercises := []models.Exercise{}
	if !q.Matchable() {
		return exercises, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ex := range s.exercises {
		if ex.UserID != userID || !ex.Date.Within(q.From, q.To) {
			continue
		}
		exercises = append(exercises, ex)
		if q.Limit > 0 && int64(len(exercises)) == q.Limit {
			break
		}
	}
	return exercises, nil
}

// ExerciseCount is the number of stored exercises across all users.
func (s *MemoryStore) ExerciseCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.exercises)
}
