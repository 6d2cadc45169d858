package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// DefaultChunkSize keeps each transaction well under Spanner's mutation limit.
const DefaultChunkSize = 1000

type Adapter struct {
	client    *spanner.Client
	chunkSize int
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client, chunkSize: DefaultChunkSize}
}

// Apply commits the plan chunk by chunk, one read-write transaction each, in
// order. It stops at the first failing chunk.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.Len() == 0 {
		return nil
	}

	if a.client == nil {
		return fmt.Errorf("committer: spanner client is nil")
	}

	for i, chunk := range plan.Chunks(a.chunkSize) {
		_, err := a.client.ReadWriteTransaction(ctx, func(ctx context.Context, tx *spanner.ReadWriteTransaction) error {
			return tx.BufferWrite(chunk)
		})
		if err != nil {
			return fmt.Errorf("committer: chunk %d: %w", i, err)
		}
	}
	return nil
}
