package auth

import (
	"context"
	"fmt"
)

// Logout Закрывает сессию
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	const op = "service.auth.Logout"

	if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
