// Code generated by ent, DO NOT EDIT.

package assessmentevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the assessmentevent type in the database.
	Label = "assessment_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSkills holds the string denoting the skills field in the database.
	FieldSkills = "skills"
	// FieldTheta holds the string denoting the theta field in the database.
	FieldTheta = "theta"
	// FieldStandardError holds the string denoting the standard_error field in the database.
	FieldStandardError = "standard_error"
	// FieldItemsAsked holds the string denoting the items_asked field in the database.
	FieldItemsAsked = "items_asked"
	// FieldEarlyTermination holds the string denoting the early_termination field in the database.
	FieldEarlyTermination = "early_termination"
	// FieldConceptMapScore holds the string denoting the concept_map_score field in the database.
	FieldConceptMapScore = "concept_map_score"
	// FieldGraderScore holds the string denoting the grader_score field in the database.
	FieldGraderScore = "grader_score"
	// FieldGraderPath holds the string denoting the grader_path field in the database.
	FieldGraderPath = "grader_path"
	// Table holds the table name of the assessmentevent in the database.
	Table = "assessment_events"
)

// Columns holds all SQL columns for assessmentevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldSessionID,
	FieldSkills,
	FieldTheta,
	FieldStandardError,
	FieldItemsAsked,
	FieldEarlyTermination,
	FieldConceptMapScore,
	FieldGraderScore,
	FieldGraderPath,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultEarlyTermination holds the default value on creation for the "early_termination" field.
	DefaultEarlyTermination bool
	// DefaultGraderPath holds the default value on creation for the "grader_path" field.
	DefaultGraderPath string
)

// OrderOption defines the ordering options for the AssessmentEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTheta orders the results by the theta field.
func ByTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheta, opts...).ToFunc()
}

// ByStandardError orders the results by the standard_error field.
func ByStandardError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStandardError, opts...).ToFunc()
}

// ByItemsAsked orders the results by the items_asked field.
func ByItemsAsked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsAsked, opts...).ToFunc()
}

// ByEarlyTermination orders the results by the early_termination field.
func ByEarlyTermination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarlyTermination, opts...).ToFunc()
}

// ByConceptMapScore orders the results by the concept_map_score field.
func ByConceptMapScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConceptMapScore, opts...).ToFunc()
}

// ByGraderScore orders the results by the grader_score field.
func ByGraderScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraderScore, opts...).ToFunc()
}

// ByGraderPath orders the results by the grader_path field.
func ByGraderPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraderPath, opts...).ToFunc()
}
