package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Resolver resolves an opaque session token to an identity. A nil identity
// with a nil error means the token is unknown or expired.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*Identity, error)
}

// sessionResolver implements Resolver against the sessions and users tables
// maintained by the external auth system. This service only reads them.
type sessionResolver struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSessionResolver creates a PostgreSQL-backed session resolver.
func NewSessionResolver(pool *pgxpool.Pool, logger zerolog.Logger) Resolver {
	return &sessionResolver{
		pool:   pool,
		logger: logger.With().Str("component", "session-resolver").Logger(),
	}
}

// Resolve looks up a non-expired session and the owning user's role.
func (r *sessionResolver) Resolve(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	query := `
		SELECT s.user_id, u.role, u.email_verified
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > now()
	`

	var identity Identity
	err := r.pool.QueryRow(ctx, query, token).Scan(
		&identity.UserID,
		&identity.Role,
		&identity.EmailVerified,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Msg("session token not found or expired")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to resolve session")
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	return &identity, nil
}
