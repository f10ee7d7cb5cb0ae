package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Duration is an exercise length in minutes. A Duration that is not Valid is
// the not-a-number sentinel produced by coercing non-numeric input; it is
// stored as a NaN double and rendered as JSON null.
type Duration struct {
	Minutes int
	Valid   bool
}

func Minutes(n int) Duration {
	return Duration{Minutes: n, Valid: true}
}

// NaNDuration returns the sentinel for input that could not be read as a number.
func NaNDuration() Duration {
	return Duration{}
}

func (d Duration) String() string {
	if !d.Valid {
		return "NaN"
	}
	return strconv.Itoa(d.Minutes)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(d.Minutes)), nil
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = NaNDuration()
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	*d = Minutes(int(f))
	return nil
}

func (d Duration) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !d.Valid {
		return bson.MarshalValue(math.NaN())
	}
	return bson.MarshalValue(int64(d.Minutes))
}

func (d *Duration) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int32:
		*d = Minutes(int(raw.Int32()))
	case bsontype.Int64:
		*d = Minutes(int(raw.Int64()))
	case bsontype.Double:
		f := raw.Double()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			*d = NaNDuration()
			return nil
		}
		*d = Minutes(int(f))
	case bsontype.Null, bsontype.Undefined:
		*d = NaNDuration()
	default:
		return fmt.Errorf("duration: cannot decode bson type %s", t)
	}
	return nil
}
