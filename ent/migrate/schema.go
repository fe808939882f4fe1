// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "skills", Type: field.TypeJSON},
		{Name: "theta", Type: field.TypeFloat64},
		{Name: "standard_error", Type: field.TypeFloat64},
		{Name: "items_asked", Type: field.TypeInt},
		{Name: "early_termination", Type: field.TypeBool, Default: false},
		{Name: "concept_map_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "grader_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "grader_path", Type: field.TypeString, Default: ""},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
			{
				Name:    "assessmentevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LearningTimeEventsColumns holds the columns for the "learning_time_events" table.
	LearningTimeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "content_ids", Type: field.TypeJSON},
		{Name: "minutes", Type: field.TypeInt},
	}
	// LearningTimeEventsTable holds the schema information for the "learning_time_events" table.
	LearningTimeEventsTable = &schema.Table{
		Name:       "learning_time_events",
		Columns:    LearningTimeEventsColumns,
		PrimaryKey: []*schema.Column{LearningTimeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningtimeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LearningTimeEventsColumns[1]},
			},
			{
				Name:    "learningtimeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LearningTimeEventsColumns[2]},
			},
			{
				Name:    "learningtimeevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearningTimeEventsColumns[3]},
			},
		},
	}
	// RecommendationEventsColumns holds the columns for the "recommendation_events" table.
	RecommendationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "bundle_id", Type: field.TypeString, Unique: true},
		{Name: "gap_count", Type: field.TypeInt},
		{Name: "content_count", Type: field.TypeInt},
		{Name: "estimated_minutes", Type: field.TypeInt},
		{Name: "learning_path", Type: field.TypeJSON},
	}
	// RecommendationEventsTable holds the schema information for the "recommendation_events" table.
	RecommendationEventsTable = &schema.Table{
		Name:       "recommendation_events",
		Columns:    RecommendationEventsColumns,
		PrimaryKey: []*schema.Column{RecommendationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recommendationevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[1]},
			},
			{
				Name:    "recommendationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[2]},
			},
			{
				Name:    "recommendationevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[3]},
			},
			{
				Name:    "recommendationevent_bundle_id",
				Unique:  false,
				Columns: []*schema.Column{RecommendationEventsColumns[4]},
			},
		},
	}
	// ResponseEventsColumns holds the columns for the "response_events" table.
	ResponseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "item_code", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
	}
	// ResponseEventsTable holds the schema information for the "response_events" table.
	ResponseEventsTable = &schema.Table{
		Name:       "response_events",
		Columns:    ResponseEventsColumns,
		PrimaryKey: []*schema.Column{ResponseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "responseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[1]},
			},
			{
				Name:    "responseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[2]},
			},
			{
				Name:    "responseevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[3]},
			},
			{
				Name:    "responseevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[4]},
			},
			{
				Name:    "responseevent_skill",
				Unique:  false,
				Columns: []*schema.Column{ResponseEventsColumns[6]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		LlmRequestEventsTable,
		LearningTimeEventsTable,
		RecommendationEventsTable,
		ResponseEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
