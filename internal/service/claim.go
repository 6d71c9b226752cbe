package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/teamtrack/tracker/internal/domain"
)

// ClaimService coordinates exclusive claims on problems. The correctness
// core is the repository's conditional UPDATE: the "is it free" check and
// the write happen in one atomic statement, so two concurrent claimers on
// the same problem cannot both win. The read-back after the write is a
// secondary confirmation, not the primary guard.
type ClaimService struct {
	problems domain.ProblemRepository
	users    domain.UserRepository
}

// NewClaimService creates a new ClaimService.
func NewClaimService(problems domain.ProblemRepository, users domain.UserRepository) *ClaimService {
	return &ClaimService{problems: problems, users: users}
}

// Claim assigns the problem to the user and moves it to In Progress.
//
// Returns ErrInvalidUser for a zero/negative or unknown user, ErrNotFound
// for an unknown problem, ErrAlreadyClaimed when another user holds the
// claim, and ErrClaimConflict when a concurrent claimer wins the race
// between the initial check and the conditional write. A failed claim
// leaves the problem untouched.
func (s *ClaimService) Claim(ctx context.Context, problemID, userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: user id %d", domain.ErrInvalidUser, userID)
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: user %d does not exist", domain.ErrInvalidUser, userID)
		}
		return fmt.Errorf("look up user: %w", err)
	}

	problem, err := s.problems.GetByID(ctx, problemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("look up problem: %w", err)
	}
	if problem.ClaimedBy != nil && *problem.ClaimedBy != 0 && *problem.ClaimedBy != userID {
		return domain.ErrAlreadyClaimed
	}

	if err := s.problems.Claim(ctx, problemID, userID); err != nil {
		return err
	}

	// Confirm the stored state before reporting success.
	after, err := s.problems.GetByID(ctx, problemID)
	if err != nil {
		return fmt.Errorf("verify claim: %w", err)
	}
	if after.ClaimedBy == nil || *after.ClaimedBy != userID || after.Status != domain.StatusInProgress {
		return domain.ErrClaimConflict
	}
	return nil
}

// Unclaim releases the problem's claim and resets it to Open. There is no
// ownership check here: any caller may release any claim. Callers that want
// "only the claimant may unclaim" must enforce that themselves.
func (s *ClaimService) Unclaim(ctx context.Context, problemID int64) error {
	return s.problems.Unclaim(ctx, problemID)
}
