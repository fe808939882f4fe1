package store

import (
	"context"
	"fmt"

	"github.com/imranulf/learnora/ent"
	"github.com/imranulf/learnora/ent/assessmentevent"
)

func (r *eventRepo) AppendAssessment(ctx context.Context, data AssessmentEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AssessmentEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetSkills(data.Skills).
		SetTheta(data.Theta).
		SetStandardError(data.StandardError).
		SetItemsAsked(data.ItemsAsked).
		SetEarlyTermination(data.EarlyTermination).
		SetGraderPath(data.GraderPath)

	if data.ConceptMapScore != nil {
		builder = builder.SetConceptMapScore(*data.ConceptMapScore)
	}
	if data.GraderScore != nil {
		builder = builder.SetGraderScore(*data.GraderScore)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save assessment event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAssessments(ctx context.Context, userID string, limit int) ([]AssessmentEventData, error) {
	q := r.client.AssessmentEvent.Query().
		Where(assessmentevent.UserID(userID)).
		Order(ent.Desc(assessmentevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}

	out := make([]AssessmentEventData, 0, len(events))
	for _, e := range events {
		out = append(out, AssessmentEventData{
			UserID:           e.UserID,
			SessionID:        e.SessionID,
			Skills:           e.Skills,
			Theta:            e.Theta,
			StandardError:    e.StandardError,
			ItemsAsked:       e.ItemsAsked,
			EarlyTermination: e.EarlyTermination,
			ConceptMapScore:  e.ConceptMapScore,
			GraderScore:      e.GraderScore,
			GraderPath:       e.GraderPath,
		})
	}
	return out, nil
}
