package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRecommendation(ctx context.Context, data RecommendationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RecommendationEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetBundleID(data.BundleID).
		SetGapCount(data.GapCount).
		SetContentCount(data.ContentCount).
		SetEstimatedMinutes(data.EstimatedMinutes).
		SetLearningPath(data.LearningPath).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save recommendation event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLearningTime(ctx context.Context, data LearningTimeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LearningTimeEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetContentIds(data.ContentIDs).
		SetMinutes(data.Minutes).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save learning time event: %w", err)
	}
	return nil
}
