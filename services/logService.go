package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"golang-exercisetracker/config"
	"golang-exercisetracker/helpers"
	"golang-exercisetracker/models"
	"golang-exercisetracker/observability"
	"golang-exercisetracker/store"
)

// LogQuery carries the raw from, to and limit query values.
type LogQuery struct {
	From  string
	To    string
	Limit string
}

type UserLog struct {
	Username string            `json:"username"`
	ID       string            `json:"_id"`
	Count    int               `json:"count"`
	Log      []models.LogEntry `json:"log"`
}

// LogFilter decides where date bounds and the limit are applied when reading
// a user's exercises. Both implementations return exercises in insertion
// order and agree on every query.
type LogFilter interface {
	Name() string
	Exercises(ctx context.Context, exercises store.ExerciseStore, userID primitive.ObjectID, q store.ExerciseQuery) ([]models.Exercise, error)
}

// QueryFilter hands the bounds and the limit to the store.
type QueryFilter struct{}

func (QueryFilter) Name() string { return config.StrategyQuery }

func (QueryFilter) Exercises(ctx context.Context, exercises store.ExerciseStore, userID primitive.ObjectID, q store.ExerciseQuery) ([]models.Exercise, error) {
	return exercises.FindExercises(ctx, userID, q)
}

// MemoryFilter reads every exercise of the user and filters them here.
type MemoryFilter struct{}

func (MemoryFilter) Name() string { return config.StrategyMemory }

func (MemoryFilter) Exercises(ctx context.Context, exercises store.ExerciseStore, userID primitive.ObjectID, q store.ExerciseQuery) ([]models.Exercise, error) {
	all, err := exercises.FindExercises(ctx, userID, store.ExerciseQuery{})
	if err != nil {
		return nil, err
	}
	kept := []models.Exercise{}
	if !q.Matchable() {
		return kept, nil
	}
	for _, ex := range all {
		if !ex.Date.Within(q.From, q.To) {
			continue
		}
		kept = append(kept, ex)
	}
	if q.Limit > 0 && int64(len(kept)) > q.Limit {
		kept = kept[:q.Limit]
	}
	return kept, nil
}

// NewLogFilter returns the filter registered under name.
func NewLogFilter(name string) (LogFilter, error) {
	switch name {
	case config.StrategyQuery:
		return QueryFilter{}, nil
	case config.StrategyMemory:
		return MemoryFilter{}, nil
	}
	return nil, fmt.Errorf("unknown log filter strategy %q", name)
}

type LogService struct {
	users     store.UserStore
	exercises store.ExerciseStore
	filter    LogFilter
}

func NewLogService(users store.UserStore, exercises store.ExerciseStore, filter LogFilter) *LogService {
	if filter == nil {
		filter = QueryFilter{}
	}
	return &LogService{users: users, exercises: exercises, filter: filter}
}

// GetLogs returns a user's exercises between the optional inclusive from/to
// bounds, cut to the first limit entries.
func (s *LogService) GetLogs(ctx context.Context, userID string, in LogQuery) (*UserLog, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	q := store.ExerciseQuery{
		From:  helpers.ParseBound(in.From),
		To:    helpers.ParseBound(in.To),
		Limit: helpers.ParseLimit(in.Limit),
	}
	exercises, err := s.filter.Exercises(ctx, s.exercises, user.ID, q)
	if err != nil {
		return nil, persistenceError("find exercises", err)
	}
	observability.RecordLogQuery(s.filter.Name())

	log := make([]models.LogEntry, 0, len(exercises))
	for _, ex := range exercises {
		log = append(log, ex.LogEntry())
	}
	return &UserLog{
		Username: user.Username,
		ID:       user.ID.Hex(),
		Count:    len(log),
		Log:      log,
	}, nil
}
