package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/imranulf/learnora/ent/responseevent"
)

func (r *eventRepo) AppendResponse(ctx context.Context, data ResponseEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ResponseEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetItemCode(data.ItemCode).
		SetSkill(data.Skill).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save response event: %w", err)
	}
	return nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context, userID string) ([]SkillStats, error) {
	events, err := r.client.ResponseEvent.Query().
		Where(responseevent.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responses: %w", err)
	}

	bySkill := make(map[string]*SkillStats)
	for _, e := range events {
		st, ok := bySkill[e.Skill]
		if !ok {
			st = &SkillStats{Skill: e.Skill}
			bySkill[e.Skill] = st
		}
		st.Total++
		if e.Correct {
			st.Correct++
		}
	}

	out := make([]SkillStats, 0, len(bySkill))
	for _, st := range bySkill {
		st.Accuracy = float64(st.Correct) / float64(st.Total)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Skill < out[j].Skill })
	return out, nil
}
