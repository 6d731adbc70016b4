package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSyncEvent(ctx context.Context, data SyncEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SyncEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetOperation(data.Operation).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetLatencyMs(data.LatencyMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save sync event: %w", err)
	}
	return nil
}
