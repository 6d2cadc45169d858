package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// OpenSpanner creates a Spanner data client for the given database path
// (projects/<p>/instances/<i>/databases/<d>). SPANNER_EMULATOR_HOST is honoured
// by the client library.
func OpenSpanner(ctx context.Context, database string) (*spanner.Client, error) {
	if database == "" {
		return nil, fmt.Errorf("spanner database is required")
	}
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return nil, fmt.Errorf("spanner.NewClient: %w", err)
	}
	return client, nil
}
