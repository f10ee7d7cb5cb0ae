package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateStringLayout renders a date as weekday, month, day and year only.
const DateStringLayout = "Mon Jan 02 2006"

const InvalidDateString = "Invalid Date"

// CalendarDate is a point in time kept at the store's millisecond precision.
// A CalendarDate that is not Valid came from unparsable input; it is stored as
// null, renders as "Invalid Date" and never falls inside a date range.
type CalendarDate struct {
	Time  time.Time
	Valid bool
}

func NewCalendarDate(t time.Time) CalendarDate {
	return CalendarDate{Time: t.UTC().Truncate(time.Millisecond), Valid: true}
}

func InvalidDate() CalendarDate {
	return CalendarDate{}
}

// DateString formats the date in UTC without its time of day.
func (d CalendarDate) DateString() string {
	if !d.Valid {
		return InvalidDateString
	}
	return d.Time.UTC().Format(DateStringLayout)
}

// Within reports whether d lies inside the inclusive range [from, to]. A nil
// bound leaves that side open. Invalid dates and invalid bounds never match.
func (d CalendarDate) Within(from, to *CalendarDate) bool {
	if from != nil && (!from.Valid || !d.Valid || d.Time.Before(from.Time)) {
		return false
	}
	if to != nil && (!to.Valid || !d.Valid || d.Time.After(to.Time)) {
		return false
	}
	return true
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.DateString())
}

func (d CalendarDate) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !d.Valid {
		return bsontype.Null, nil, nil
	}
	return bson.MarshalValue(primitive.NewDateTimeFromTime(d.Time))
}

func (d *CalendarDate) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.DateTime:
		*d = NewCalendarDate(primitive.DateTime(raw.DateTime()).Time())
	case bsontype.Null, bsontype.Undefined:
		*d = InvalidDate()
	default:
		return fmt.Errorf("date: cannot decode bson type %s", t)
	}
	return nil
}
