package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RecommendationEvent records one emitted recommendation bundle.
type RecommendationEvent struct {
	ent.Schema
}

func (RecommendationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RecommendationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("bundle_id").NotEmpty().Unique(),
		field.Int("gap_count"),
		field.Int("content_count"),
		field.Int("estimated_minutes"),
		field.JSON("learning_path", []string{}).
			Comment("Ordered content IDs"),
	}
}

func (RecommendationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("bundle_id"),
	}
}
