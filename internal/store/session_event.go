package store

import (
	"context"
	"fmt"

	"github.com/abhisek/learnloop/ent"
	"github.com/abhisek/learnloop/ent/sessionevent"
)

// eventRepo implements EventRepo over ent, drawing sequence numbers
// from the shared allocator.
type eventRepo struct {
	client *ent.Client
	seq    *seqAllocator
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetKind(data.Kind).
		SetSubject(data.Subject).
		SetTopic(data.Topic).
		SetDifficulty(data.Difficulty).
		SetQuestionsAttempted(data.QuestionsAttempted).
		SetQuestionsCorrect(data.QuestionsCorrect).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetSelectedAnswer(data.SelectedAnswer).
		SetCorrect(data.Correct).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// SessionSummaries rebuilds one row per session from the journal. The
// start event carries the metadata; every event carries the counters as
// of its append, so the latest event per session is the current state.
func (r *eventRepo) SessionSummaries(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("start")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	starts, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session starts: %w", err)
	}

	summaries := make([]SessionSummary, 0, len(starts))
	for _, se := range starts {
		summary := SessionSummary{
			SessionID:  se.SessionID,
			Kind:       se.Kind,
			Subject:    se.Subject,
			Topic:      se.Topic,
			Difficulty: se.Difficulty,
			StartedAt:  se.Timestamp,
			LastAction: se.Action,
		}

		last, err := r.client.SessionEvent.Query().
			Where(sessionevent.SessionID(se.SessionID)).
			Order(ent.Desc(sessionevent.FieldSequence)).
			First(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query session state: %w", err)
		}
		if last != nil {
			summary.LastAction = last.Action
			summary.QuestionsAttempted = last.QuestionsAttempted
			summary.QuestionsCorrect = last.QuestionsCorrect
			summary.DurationSecs = last.DurationSecs
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}
