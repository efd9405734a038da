package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrSessionNotActive  = errors.New("table has no active session")
	ErrSessionMismatch   = errors.New("session id does not match the table's active session")
	ErrSessionInProgress = errors.New("table already has an active session")
)

// Sessions owns the table session lifecycle and the session check performed
// on every order.
type Sessions struct {
	repo Repository
}

func NewSessions(repo Repository) *Sessions {
	return &Sessions{repo: repo}
}

// Start issues a fresh session token for the table and marks it active.
func (s *Sessions) Start(ctx context.Context, tableID int64) (string, error) {
	t, err := s.repo.GetByID(ctx, tableID)
	if err != nil {
		return "", err
	}

	if t.SessionActive {
		return "", ErrSessionInProgress
	}

	token, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("sessions: failed to generate session token: %w", err)
	}

	if err := s.repo.SetSession(ctx, tableID, token.String(), true); err != nil {
		return "", err
	}

	log.Info().Int64("table_id", tableID).Msg("sessions: session started")
	return token.String(), nil
}

// End deactivates the table's session. The token is kept on the row so that
// existing orders remain attributable to it.
func (s *Sessions) End(ctx context.Context, tableID int64) error {
	t, err := s.repo.GetByID(ctx, tableID)
	if err != nil {
		return err
	}

	if !t.SessionActive {
		return ErrSessionNotActive
	}

	if err := s.repo.SetSession(ctx, tableID, t.SessionID, false); err != nil {
		return err
	}

	log.Info().Int64("table_id", tableID).Msg("sessions: session ended")
	return nil
}

// Validate confirms that sessionID is the session currently bound to the
// table and that the session is active. The three failure modes are kept
// distinct so callers can tell a stale QR code from a missing table.
func (s *Sessions) Validate(ctx context.Context, tableID int64, sessionID string) error {
	t, err := s.repo.GetByID(ctx, tableID)
	if err != nil {
		return err
	}

	if !t.SessionActive || t.SessionID == "" {
		return ErrSessionNotActive
	}

	if t.SessionID != sessionID {
		return ErrSessionMismatch
	}

	return nil
}
