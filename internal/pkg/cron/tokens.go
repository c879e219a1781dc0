package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/chronoline/attendance-backend-go/internal/pkg/jwt"
)

// TokenPruneJob drops stale entries from the JWT revocation list. Revoked
// refresh tokens only need to stay listed until they expire on their own.
func TokenPruneJob(jwtService jwt.Service, refreshLifetime time.Duration) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		pruned := jwtService.PruneRevoked(refreshLifetime)
		if pruned > 0 {
			slog.Info("Pruned revoked tokens", "count", pruned)
		}
		return nil
	}
}
