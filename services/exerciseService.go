package services

import (
	"context"
	"time"

	"golang-exercisetracker/helpers"
	"golang-exercisetracker/models"
	"golang-exercisetracker/observability"
	"golang-exercisetracker/store"
)

// ExerciseInput is an exercise as sent by a client, before coercion.
type ExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	// DurationSet is false when the client omitted duration altogether.
	DurationSet bool
	Date        string
}

// ExerciseLogged echoes a new exercise together with its owner. ID is the
// owning user's id, not the exercise's.
type ExerciseLogged struct {
	Username    string          `json:"username"`
	Description string          `json:"description"`
	Duration    models.Duration `json:"duration"`
	Date        string          `json:"date"`
	ID          string          `json:"_id"`
}

type ExerciseService struct {
	users     store.UserStore
	exercises store.ExerciseStore
	now       func() time.Time
}

// NewExerciseService builds the logging service. now defaults to time.Now.
func NewExerciseService(users store.UserStore, exercises store.ExerciseStore, now func() time.Time) *ExerciseService {
	if now == nil {
		now = time.Now
	}
	return &ExerciseService{users: users, exercises: exercises, now: now}
}

func (s *ExerciseService) LogExercise(ctx context.Context, in ExerciseInput) (*ExerciseLogged, error) {
	user, err := findUser(ctx, s.users, in.UserID)
	if err != nil {
		return nil, err
	}

	exercise := &models.Exercise{
		UserID:      user.ID,
		Description: in.Description,
		Duration:    helpers.CoerceDuration(in.Duration, in.DurationSet),
		Date:        helpers.ResolveDate(in.Date, s.now()),
	}
	if err := s.exercises.CreateExercise(ctx, exercise); err != nil {
		return nil, persistenceError("create exercise", err)
	}
	observability.RecordExerciseLogged()

	return &ExerciseLogged{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.Date.DateString(),
		ID:          user.ID.Hex(),
	}, nil
}
