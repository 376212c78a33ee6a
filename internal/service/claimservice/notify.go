package claimservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/event"
	"go.uber.org/zap"
)

func (s *Service) executeSettlement(ctx context.Context, e event.ClaimStatusChanged) error {
	switch e.Claim.Status {
	case domain.ClaimApproved, domain.ClaimRequested:
		return s.settlement.Execute(ctx, e.Claim.ID)
	}
	return nil
}

func (s *Service) notifyOfferers(ctx context.Context, e event.ClaimCreated) error {
	offerers, err := s.bids.FindOfferers(ctx, e.Issue.ID, e.Claim.UserID)
	if err != nil {
		return err
	}
	for _, bid := range offerers {
		needs, err := s.NeedsVoteFromUser(ctx, e.Claim, bid.UserID)
		if err != nil || !needs {
			continue
		}
		s.send(ctx, bid.UserID,
			fmt.Sprintf("[codesy] A claim needs your vote for %s", e.Issue.URL),
			fmt.Sprintf("Someone has claimed the bounty for %s. Evidence: %s. Please review it and vote.", e.Issue.URL, e.Claim.Evidence),
		)
	}
	return nil
}

func (s *Service) notifyClaimant(ctx context.Context, e event.ClaimStatusChanged) error {
	if e.Claim.Status != domain.ClaimApproved && e.Claim.Status != domain.ClaimRejected {
		return nil
	}
	issue, err := s.bids.FindIssue(ctx, e.Claim.IssueID)
	if err != nil || issue == nil {
		zap.L().Warn("can't load claimed issue", zap.Int("claim_id", e.Claim.ID), zap.Error(err))
		return nil
	}
	verdict := "approved"
	if e.Claim.Status == domain.ClaimRejected {
		verdict = "rejected"
	}
	s.send(ctx, e.Claim.UserID,
		fmt.Sprintf("[codesy] Your claim for %s has been %s", issue.URL, verdict),
		fmt.Sprintf("The offerers on %s have %s your claim.", issue.URL, verdict),
	)
	return nil
}

// send is best effort: failures are logged and never returned.
func (s *Service) send(ctx context.Context, userID int, subject, body string) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil || user == nil || user.Email == "" {
		zap.L().Warn("can't notify user", zap.Int("user_id", userID), zap.Error(err))
		return
	}
	err = s.notifier.Send(ctx, domain.Message{
		Subject: subject,
		Body:    body,
		From:    s.from,
		To:      []string{user.Email},
	})
	if err != nil {
		zap.L().Error("can't send notification", zap.Int("user_id", userID), zap.String("subject", subject), zap.Error(err))
	}
}
