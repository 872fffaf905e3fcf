package service

import (
	"context"

	"github.com/istvank-dev/Project-Tracking-Software/internal/repository"
)

// requireMember is the authorization gate for every project-scoped
// operation. It is a fresh lookup on each call — no caching — and a
// missing membership row is answered with ErrProjectNotFound so
// non-members cannot tell an existing project from a nonexistent one.
func requireMember(ctx context.Context, projects *repository.ProjectRepository, projectID uint, callerID string) error {
	_, ok, err := projects.MemberRole(ctx, projectID, callerID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectNotFound
	}
	return nil
}
