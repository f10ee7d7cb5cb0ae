// Package services holds the exercise tracker's business operations: user
// registration, exercise logging and log queries.
package services

import (
	"context"
	"errors"

	"golang-exercisetracker/models"
	"golang-exercisetracker/observability"
	"golang-exercisetracker/store"
)

type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// CreateUser stores a user under the given name as is. Names are not
// required to be unique.
func (s *UserService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{Username: username}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, persistenceError("create user", err)
	}
	observability.RecordUserCreated()
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, persistenceError("list users", err)
	}
	return users, nil
}

// findUser resolves a user id, turning a missing record into ErrUserNotFound.
func findUser(ctx context.Context, users store.UserStore, id string) (*models.User, error) {
	user, err := users.FindUserByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, persistenceError("find user", err)
	}
	return user, nil
}
