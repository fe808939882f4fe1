// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/imranulf/learnora/ent/assessmentevent"
	"github.com/imranulf/learnora/ent/learningtimeevent"
	"github.com/imranulf/learnora/ent/llmrequestevent"
	"github.com/imranulf/learnora/ent/recommendationevent"
	"github.com/imranulf/learnora/ent/responseevent"
	"github.com/imranulf/learnora/ent/schema"
	"github.com/imranulf/learnora/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescUserID is the schema descriptor for user_id field.
	assessmenteventDescUserID := assessmenteventFields[0].Descriptor()
	// assessmentevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	assessmentevent.UserIDValidator = assessmenteventDescUserID.Validators[0].(func(string) error)
	// assessmenteventDescSessionID is the schema descriptor for session_id field.
	assessmenteventDescSessionID := assessmenteventFields[1].Descriptor()
	// assessmentevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessmentevent.SessionIDValidator = assessmenteventDescSessionID.Validators[0].(func(string) error)
	// assessmenteventDescEarlyTermination is the schema descriptor for early_termination field.
	assessmenteventDescEarlyTermination := assessmenteventFields[6].Descriptor()
	// assessmentevent.DefaultEarlyTermination holds the default value on creation for the early_termination field.
	assessmentevent.DefaultEarlyTermination = assessmenteventDescEarlyTermination.Default.(bool)
	// assessmenteventDescGraderPath is the schema descriptor for grader_path field.
	assessmenteventDescGraderPath := assessmenteventFields[9].Descriptor()
	// assessmentevent.DefaultGraderPath holds the default value on creation for the grader_path field.
	assessmentevent.DefaultGraderPath = assessmenteventDescGraderPath.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	learningtimeeventMixin := schema.LearningTimeEvent{}.Mixin()
	learningtimeeventMixinFields0 := learningtimeeventMixin[0].Fields()
	_ = learningtimeeventMixinFields0
	learningtimeeventFields := schema.LearningTimeEvent{}.Fields()
	_ = learningtimeeventFields
	// learningtimeeventDescTimestamp is the schema descriptor for timestamp field.
	learningtimeeventDescTimestamp := learningtimeeventMixinFields0[1].Descriptor()
	// learningtimeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	learningtimeevent.DefaultTimestamp = learningtimeeventDescTimestamp.Default.(func() time.Time)
	// learningtimeeventDescUserID is the schema descriptor for user_id field.
	learningtimeeventDescUserID := learningtimeeventFields[0].Descriptor()
	// learningtimeevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learningtimeevent.UserIDValidator = learningtimeeventDescUserID.Validators[0].(func(string) error)
	recommendationeventMixin := schema.RecommendationEvent{}.Mixin()
	recommendationeventMixinFields0 := recommendationeventMixin[0].Fields()
	_ = recommendationeventMixinFields0
	recommendationeventFields := schema.RecommendationEvent{}.Fields()
	_ = recommendationeventFields
	// recommendationeventDescTimestamp is the schema descriptor for timestamp field.
	recommendationeventDescTimestamp := recommendationeventMixinFields0[1].Descriptor()
	// recommendationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	recommendationevent.DefaultTimestamp = recommendationeventDescTimestamp.Default.(func() time.Time)
	// recommendationeventDescUserID is the schema descriptor for user_id field.
	recommendationeventDescUserID := recommendationeventFields[0].Descriptor()
	// recommendationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	recommendationevent.UserIDValidator = recommendationeventDescUserID.Validators[0].(func(string) error)
	// recommendationeventDescBundleID is the schema descriptor for bundle_id field.
	recommendationeventDescBundleID := recommendationeventFields[1].Descriptor()
	// recommendationevent.BundleIDValidator is a validator for the "bundle_id" field. It is called by the builders before save.
	recommendationevent.BundleIDValidator = recommendationeventDescBundleID.Validators[0].(func(string) error)
	responseeventMixin := schema.ResponseEvent{}.Mixin()
	responseeventMixinFields0 := responseeventMixin[0].Fields()
	_ = responseeventMixinFields0
	responseeventFields := schema.ResponseEvent{}.Fields()
	_ = responseeventFields
	// responseeventDescTimestamp is the schema descriptor for timestamp field.
	responseeventDescTimestamp := responseeventMixinFields0[1].Descriptor()
	// responseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	responseevent.DefaultTimestamp = responseeventDescTimestamp.Default.(func() time.Time)
	// responseeventDescUserID is the schema descriptor for user_id field.
	responseeventDescUserID := responseeventFields[0].Descriptor()
	// responseevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	responseevent.UserIDValidator = responseeventDescUserID.Validators[0].(func(string) error)
	// responseeventDescSessionID is the schema descriptor for session_id field.
	responseeventDescSessionID := responseeventFields[1].Descriptor()
	// responseevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	responseevent.SessionIDValidator = responseeventDescSessionID.Validators[0].(func(string) error)
	// responseeventDescItemCode is the schema descriptor for item_code field.
	responseeventDescItemCode := responseeventFields[2].Descriptor()
	// responseevent.ItemCodeValidator is a validator for the "item_code" field. It is called by the builders before save.
	responseevent.ItemCodeValidator = responseeventDescItemCode.Validators[0].(func(string) error)
	// responseeventDescSkill is the schema descriptor for skill field.
	responseeventDescSkill := responseeventFields[3].Descriptor()
	// responseevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	responseevent.SkillValidator = responseeventDescSkill.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
