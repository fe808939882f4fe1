// Code generated by ent, DO NOT EDIT.

package recommendationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the recommendationevent type in the database.
	Label = "recommendation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBundleID holds the string denoting the bundle_id field in the database.
	FieldBundleID = "bundle_id"
	// FieldGapCount holds the string denoting the gap_count field in the database.
	FieldGapCount = "gap_count"
	// FieldContentCount holds the string denoting the content_count field in the database.
	FieldContentCount = "content_count"
	// FieldEstimatedMinutes holds the string denoting the estimated_minutes field in the database.
	FieldEstimatedMinutes = "estimated_minutes"
	// FieldLearningPath holds the string denoting the learning_path field in the database.
	FieldLearningPath = "learning_path"
	// Table holds the table name of the recommendationevent in the database.
	Table = "recommendation_events"
)

// Columns holds all SQL columns for recommendationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldBundleID,
	FieldGapCount,
	FieldContentCount,
	FieldEstimatedMinutes,
	FieldLearningPath,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// BundleIDValidator is a validator for the "bundle_id" field. It is called by the builders before save.
	BundleIDValidator func(string) error
)

// OrderOption defines the ordering options for the RecommendationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBundleID orders the results by the bundle_id field.
func ByBundleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBundleID, opts...).ToFunc()
}

// ByGapCount orders the results by the gap_count field.
func ByGapCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGapCount, opts...).ToFunc()
}

// ByContentCount orders the results by the content_count field.
func ByContentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentCount, opts...).ToFunc()
}

// ByEstimatedMinutes orders the results by the estimated_minutes field.
func ByEstimatedMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedMinutes, opts...).ToFunc()
}
