package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningTimeEvent records externally tracked study time against
// completed content. It is the trigger point for re-assessment.
type LearningTimeEvent struct {
	ent.Schema
}

func (LearningTimeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LearningTimeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.JSON("content_ids", []string{}).
			Comment("Content completed during this study block"),
		field.Int("minutes"),
	}
}

func (LearningTimeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
