// Code generated by ent, DO NOT EDIT.

package recommendationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/imranulf/learnora/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldUserID, v))
}

// BundleID applies equality check predicate on the "bundle_id" field. It's identical to BundleIDEQ.
func BundleID(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldBundleID, v))
}

// GapCount applies equality check predicate on the "gap_count" field. It's identical to GapCountEQ.
func GapCount(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldGapCount, v))
}

// ContentCount applies equality check predicate on the "content_count" field. It's identical to ContentCountEQ.
func ContentCount(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldContentCount, v))
}

// EstimatedMinutes applies equality check predicate on the "estimated_minutes" field. It's identical to EstimatedMinutesEQ.
func EstimatedMinutes(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldContainsFold(FieldUserID, v))
}

// BundleIDEQ applies the EQ predicate on the "bundle_id" field.
func BundleIDEQ(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldBundleID, v))
}

// BundleIDNEQ applies the NEQ predicate on the "bundle_id" field.
func BundleIDNEQ(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldBundleID, v))
}

// BundleIDIn applies the In predicate on the "bundle_id" field.
func BundleIDIn(vs ...string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldBundleID, vs...))
}

// BundleIDNotIn applies the NotIn predicate on the "bundle_id" field.
func BundleIDNotIn(vs ...string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldBundleID, vs...))
}

// BundleIDGT applies the GT predicate on the "bundle_id" field.
func BundleIDGT(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldBundleID, v))
}

// BundleIDGTE applies the GTE predicate on the "bundle_id" field.
func BundleIDGTE(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldBundleID, v))
}

// BundleIDLT applies the LT predicate on the "bundle_id" field.
func BundleIDLT(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldBundleID, v))
}

// BundleIDLTE applies the LTE predicate on the "bundle_id" field.
func BundleIDLTE(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldBundleID, v))
}

// BundleIDContains applies the Contains predicate on the "bundle_id" field.
func BundleIDContains(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldContains(FieldBundleID, v))
}

// BundleIDHasPrefix applies the HasPrefix predicate on the "bundle_id" field.
func BundleIDHasPrefix(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldHasPrefix(FieldBundleID, v))
}

// BundleIDHasSuffix applies the HasSuffix predicate on the "bundle_id" field.
func BundleIDHasSuffix(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldHasSuffix(FieldBundleID, v))
}

// BundleIDEqualFold applies the EqualFold predicate on the "bundle_id" field.
func BundleIDEqualFold(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEqualFold(FieldBundleID, v))
}

// BundleIDContainsFold applies the ContainsFold predicate on the "bundle_id" field.
func BundleIDContainsFold(v string) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldContainsFold(FieldBundleID, v))
}

// GapCountEQ applies the EQ predicate on the "gap_count" field.
func GapCountEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldGapCount, v))
}

// GapCountNEQ applies the NEQ predicate on the "gap_count" field.
func GapCountNEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldGapCount, v))
}

// GapCountIn applies the In predicate on the "gap_count" field.
func GapCountIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldGapCount, vs...))
}

// GapCountNotIn applies the NotIn predicate on the "gap_count" field.
func GapCountNotIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldGapCount, vs...))
}

// GapCountGT applies the GT predicate on the "gap_count" field.
func GapCountGT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldGapCount, v))
}

// GapCountGTE applies the GTE predicate on the "gap_count" field.
func GapCountGTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldGapCount, v))
}

// GapCountLT applies the LT predicate on the "gap_count" field.
func GapCountLT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldGapCount, v))
}

// GapCountLTE applies the LTE predicate on the "gap_count" field.
func GapCountLTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldGapCount, v))
}

// ContentCountEQ applies the EQ predicate on the "content_count" field.
func ContentCountEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldContentCount, v))
}

// ContentCountNEQ applies the NEQ predicate on the "content_count" field.
func ContentCountNEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldContentCount, v))
}

// ContentCountIn applies the In predicate on the "content_count" field.
func ContentCountIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldContentCount, vs...))
}

// ContentCountNotIn applies the NotIn predicate on the "content_count" field.
func ContentCountNotIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldContentCount, vs...))
}

// ContentCountGT applies the GT predicate on the "content_count" field.
func ContentCountGT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldContentCount, v))
}

// ContentCountGTE applies the GTE predicate on the "content_count" field.
func ContentCountGTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldContentCount, v))
}

// ContentCountLT applies the LT predicate on the "content_count" field.
func ContentCountLT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldContentCount, v))
}

// ContentCountLTE applies the LTE predicate on the "content_count" field.
func ContentCountLTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldContentCount, v))
}

// EstimatedMinutesEQ applies the EQ predicate on the "estimated_minutes" field.
func EstimatedMinutesEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesNEQ applies the NEQ predicate on the "estimated_minutes" field.
func EstimatedMinutesNEQ(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNEQ(FieldEstimatedMinutes, v))
}

// EstimatedMinutesIn applies the In predicate on the "estimated_minutes" field.
func EstimatedMinutesIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesNotIn applies the NotIn predicate on the "estimated_minutes" field.
func EstimatedMinutesNotIn(vs ...int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldNotIn(FieldEstimatedMinutes, vs...))
}

// EstimatedMinutesGT applies the GT predicate on the "estimated_minutes" field.
func EstimatedMinutesGT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesGTE applies the GTE predicate on the "estimated_minutes" field.
func EstimatedMinutesGTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldGTE(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLT applies the LT predicate on the "estimated_minutes" field.
func EstimatedMinutesLT(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLT(FieldEstimatedMinutes, v))
}

// EstimatedMinutesLTE applies the LTE predicate on the "estimated_minutes" field.
func EstimatedMinutesLTE(v int) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.FieldLTE(FieldEstimatedMinutes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecommendationEvent) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecommendationEvent) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecommendationEvent) predicate.RecommendationEvent {
	return predicate.RecommendationEvent(sql.NotPredicates(p))
}
