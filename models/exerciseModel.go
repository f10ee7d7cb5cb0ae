package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Exercise struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	UserID      primitive.ObjectID `json:"userId" bson:"userId" validate:"required"`
	Description string             `json:"description" bson:"description" validate:"required"`
	Duration    Duration           `json:"duration" bson:"duration"`
	Date        CalendarDate       `json:"date" bson:"date"`
}

// LogEntry is the rendered form of an Exercise inside a user's log.
type LogEntry struct {
	Description string   `json:"description"`
	Duration    Duration `json:"duration"`
	Date        string   `json:"date"`
}

func (e Exercise) LogEntry() LogEntry {
	return LogEntry{
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.DateString(),
	}
}
