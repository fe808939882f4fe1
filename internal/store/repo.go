package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full learner state at a point in time.
type SnapshotData struct {
	Version int    `json:"version"`
	UserID  string `json:"user_id"`

	// Mastery is the per-skill BKT mastery map.
	Mastery map[string]float64 `json:"mastery"`

	// Theta is the last ability estimate.
	Theta float64 `json:"theta"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AssessmentEventData captures one completed assessment session.
type AssessmentEventData struct {
	UserID           string
	SessionID        string
	Skills           []string
	Theta            float64
	StandardError    float64
	ItemsAsked       int
	EarlyTermination bool
	ConceptMapScore  *float64
	GraderScore      *float64
	GraderPath       string
}

// ResponseEventData captures one administered item and its answer.
type ResponseEventData struct {
	UserID    string
	SessionID string
	ItemCode  string
	Skill     string
	Correct   bool
}

// RecommendationEventData captures one emitted recommendation bundle.
type RecommendationEventData struct {
	UserID           string
	BundleID         string
	GapCount         int
	ContentCount     int
	EstimatedMinutes int
	LearningPath     []string
}

// LearningTimeEventData captures externally tracked study time.
type LearningTimeEventData struct {
	UserID     string
	ContentIDs []string
	Minutes    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is one stored LLM request event.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMPurposeUsage aggregates token usage per purpose label.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SkillStats summarizes response accuracy for one skill.
type SkillStats struct {
	Skill    string
	Total    int
	Correct  int
	Accuracy float64
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendAssessment records a completed assessment session.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendResponse records one administered item.
	AppendResponse(ctx context.Context, data ResponseEventData) error

	// AppendRecommendation records an emitted bundle.
	AppendRecommendation(ctx context.Context, data RecommendationEventData) error

	// AppendLearningTime records externally tracked study time.
	AppendLearningTime(ctx context.Context, data LearningTimeEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns stored LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil when not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// SkillAccuracy aggregates per-skill response accuracy across the
	// event log.
	SkillAccuracy(ctx context.Context, userID string) ([]SkillStats, error)

	// RecentAssessments returns the most recent assessment events for a
	// user, newest first.
	RecentAssessments(ctx context.Context, userID string, limit int) ([]AssessmentEventData, error)
}
