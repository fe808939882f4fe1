package cmd

import (
	"context"
	"fmt"

	"github.com/imranulf/learnora/internal/assessment"
	"github.com/imranulf/learnora/internal/itembank"
	"github.com/imranulf/learnora/internal/pipeline"
	"github.com/imranulf/learnora/internal/store"
)

// storeRecorder adapts the event store to the pipeline's persistence
// boundary. The bank resolves item codes back to skills for per-response
// events.
type storeRecorder struct {
	events store.EventRepo
	bank   *itembank.Bank
}

func newStoreRecorder(events store.EventRepo, bank *itembank.Bank) *storeRecorder {
	return &storeRecorder{events: events, bank: bank}
}

func (r *storeRecorder) RecordAssessment(ctx context.Context, summary *assessment.Summary) error {
	err := r.events.AppendAssessment(ctx, store.AssessmentEventData{
		UserID:           summary.UserID,
		SessionID:        summary.SessionID,
		Skills:           summary.Skills,
		Theta:            summary.Theta,
		StandardError:    summary.StandardError,
		ItemsAsked:       len(summary.ItemsAsked),
		EarlyTermination: summary.EarlyTermination,
		ConceptMapScore:  summary.ConceptMapScore,
		GraderScore:      summary.GraderScore,
		GraderPath:       summary.GraderPath,
	})
	if err != nil {
		return err
	}

	for _, code := range summary.ItemsAsked {
		skill := ""
		if item, err := r.bank.Item(code); err == nil {
			skill = item.Skill
		}
		err := r.events.AppendResponse(ctx, store.ResponseEventData{
			UserID:    summary.UserID,
			SessionID: summary.SessionID,
			ItemCode:  code,
			Skill:     skill,
			Correct:   summary.Responses[code] == 1,
		})
		if err != nil {
			return fmt.Errorf("response %s: %w", code, err)
		}
	}
	return nil
}

func (r *storeRecorder) RecordRecommendation(ctx context.Context, bundle *pipeline.Bundle) error {
	return r.events.AppendRecommendation(ctx, store.RecommendationEventData{
		UserID:           bundle.UserID,
		BundleID:         bundle.ID,
		GapCount:         len(bundle.Gaps),
		ContentCount:     len(bundle.Recommended),
		EstimatedMinutes: bundle.EstimatedCompletionMinutes,
		LearningPath:     bundle.LearningPath,
	})
}

func (r *storeRecorder) RecordLearningTime(ctx context.Context, userID string, contentIDs []string, minutes int) error {
	return r.events.AppendLearningTime(ctx, store.LearningTimeEventData{
		UserID:     userID,
		ContentIDs: contentIDs,
		Minutes:    minutes,
	})
}
