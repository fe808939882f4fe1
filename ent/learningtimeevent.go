// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/imranulf/learnora/ent/learningtimeevent"
)

// LearningTimeEvent is the model entity for the LearningTimeEvent schema.
type LearningTimeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Content completed during this study block
	ContentIds []string `json:"content_ids,omitempty"`
	// Minutes holds the value of the "minutes" field.
	Minutes      int `json:"minutes,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearningTimeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learningtimeevent.FieldContentIds:
			values[i] = new([]byte)
		case learningtimeevent.FieldID, learningtimeevent.FieldSequence, learningtimeevent.FieldMinutes:
			values[i] = new(sql.NullInt64)
		case learningtimeevent.FieldUserID:
			values[i] = new(sql.NullString)
		case learningtimeevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearningTimeEvent fields.
func (_m *LearningTimeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learningtimeevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learningtimeevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case learningtimeevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case learningtimeevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learningtimeevent.FieldContentIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ContentIds); err != nil {
					return fmt.Errorf("unmarshal field content_ids: %w", err)
				}
			}
		case learningtimeevent.FieldMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field minutes", values[i])
			} else if value.Valid {
				_m.Minutes = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearningTimeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *LearningTimeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearningTimeEvent.
// Note that you need to call LearningTimeEvent.Unwrap() before calling this method if this LearningTimeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearningTimeEvent) Update() *LearningTimeEventUpdateOne {
	return NewLearningTimeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearningTimeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearningTimeEvent) Unwrap() *LearningTimeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearningTimeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearningTimeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("LearningTimeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("content_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentIds))
	builder.WriteString(", ")
	builder.WriteString("minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Minutes))
	builder.WriteByte(')')
	return builder.String()
}

// LearningTimeEvents is a parsable slice of LearningTimeEvent.
type LearningTimeEvents []*LearningTimeEvent
