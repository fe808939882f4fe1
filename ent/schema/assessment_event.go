package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentEvent records the outcome of one completed adaptive
// assessment session.
type AssessmentEvent struct {
	ent.Schema
}

func (AssessmentEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssessmentEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("session_id").NotEmpty().Unique(),
		field.JSON("skills", []string{}).
			Comment("Target skills of the session"),
		field.Float("theta").
			Comment("Final ability estimate"),
		field.Float("standard_error"),
		field.Int("items_asked"),
		field.Bool("early_termination").
			Default(false).
			Comment("True when the item bank was exhausted before the stopping criteria"),
		field.Float("concept_map_score").
			Optional().
			Nillable(),
		field.Float("grader_score").
			Optional().
			Nillable(),
		field.String("grader_path").
			Default("").
			Comment("Scoring path for free-text grading: llm or rubric"),
	}
}

func (AssessmentEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("session_id"),
	}
}
