package gift

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/murkotick/gift-finder-service/internal/app/gift/domain"
)

// mapError translates query outcomes into gRPC status codes. Store details
// are logged by the query handlers and not sent to clients.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "query timed out")
	}

	if errors.Is(err, domain.ErrNoProductsFound) {
		return status.Error(codes.NotFound, err.Error())
	}

	return status.Error(codes.Internal, "failed to query catalog")
}
