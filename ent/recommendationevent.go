// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/imranulf/learnora/ent/recommendationevent"
)

// RecommendationEvent is the model entity for the RecommendationEvent schema.
type RecommendationEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BundleID holds the value of the "bundle_id" field.
	BundleID string `json:"bundle_id,omitempty"`
	// GapCount holds the value of the "gap_count" field.
	GapCount int `json:"gap_count,omitempty"`
	// ContentCount holds the value of the "content_count" field.
	ContentCount int `json:"content_count,omitempty"`
	// EstimatedMinutes holds the value of the "estimated_minutes" field.
	EstimatedMinutes int `json:"estimated_minutes,omitempty"`
	// Ordered content IDs
	LearningPath []string `json:"learning_path,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RecommendationEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case recommendationevent.FieldLearningPath:
			values[i] = new([]byte)
		case recommendationevent.FieldID, recommendationevent.FieldSequence, recommendationevent.FieldGapCount, recommendationevent.FieldContentCount, recommendationevent.FieldEstimatedMinutes:
			values[i] = new(sql.NullInt64)
		case recommendationevent.FieldUserID, recommendationevent.FieldBundleID:
			values[i] = new(sql.NullString)
		case recommendationevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RecommendationEvent fields.
func (_m *RecommendationEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case recommendationevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case recommendationevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case recommendationevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case recommendationevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case recommendationevent.FieldBundleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bundle_id", values[i])
			} else if value.Valid {
				_m.BundleID = value.String
			}
		case recommendationevent.FieldGapCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field gap_count", values[i])
			} else if value.Valid {
				_m.GapCount = int(value.Int64)
			}
		case recommendationevent.FieldContentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field content_count", values[i])
			} else if value.Valid {
				_m.ContentCount = int(value.Int64)
			}
		case recommendationevent.FieldEstimatedMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_minutes", values[i])
			} else if value.Valid {
				_m.EstimatedMinutes = int(value.Int64)
			}
		case recommendationevent.FieldLearningPath:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_path", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearningPath); err != nil {
					return fmt.Errorf("unmarshal field learning_path: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RecommendationEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RecommendationEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RecommendationEvent.
// Note that you need to call RecommendationEvent.Unwrap() before calling this method if this RecommendationEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RecommendationEvent) Update() *RecommendationEventUpdateOne {
	return NewRecommendationEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RecommendationEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RecommendationEvent) Unwrap() *RecommendationEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RecommendationEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RecommendationEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RecommendationEvent(")
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
	builder.WriteString("bundle_id=")
	builder.WriteString(_m.BundleID)
	builder.WriteString(", ")
	builder.WriteString("gap_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.GapCount))
	builder.WriteString(", ")
	builder.WriteString("content_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentCount))
	builder.WriteString(", ")
	builder.WriteString("estimated_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedMinutes))
	builder.WriteString(", ")
	builder.WriteString("learning_path=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningPath))
	builder.WriteByte(')')
	return builder.String()
}

// RecommendationEvents is a parsable slice of RecommendationEvent.
type RecommendationEvents []*RecommendationEvent
