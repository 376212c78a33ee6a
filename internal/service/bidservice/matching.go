package bidservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"go.uber.org/zap"
)

// AskMet reports whether the other users' offers on the bid's url cover its ask.
func (s *Service) AskMet(ctx context.Context, bid domain.Bid) (bool, error) {
	if !bid.Ask.IsPositive() {
		return false, nil
	}
	others, err := s.bids.SumOtherOffers(ctx, bid.URL, bid.UserID)
	if err != nil {
		return false, err
	}
	return others.GreaterThanOrEqual(bid.Ask), nil
}

// OnBidChanged sends one ask-met notification to every asker on the bid's url whose ask is
// now covered. The ask_match_sent stamp is claimed before sending and released if sending fails.
func (s *Service) OnBidChanged(ctx context.Context, changed domain.Bid) error {
	bids, err := s.bids.FindUnmatchedAsks(ctx, changed.URL)
	if err != nil {
		return err
	}

	var errs []error
	for _, bid := range bids {
		met, err := s.AskMet(ctx, bid)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !met {
			continue
		}

		at := s.now().UTC().Truncate(time.Microsecond)
		won, err := s.bids.MarkAskMatchSent(ctx, bid.ID, at)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !won {
			continue
		}

		if err := s.notifyAskMet(ctx, bid); err != nil {
			zap.L().Error("can't send ask met notification", zap.Int("bid_id", bid.ID), zap.Error(err))
			if err := s.bids.ClearAskMatchSent(ctx, bid.ID, at); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		zap.L().Info("ask met", zap.Int("bid_id", bid.ID), zap.String("url", bid.URL))
	}
	return errors.Join(errs...)
}

func (s *Service) notifyAskMet(ctx context.Context, bid domain.Bid) error {
	user, err := s.users.FindByID(ctx, bid.UserID)
	if err != nil {
		return err
	}
	if user == nil || user.Email == "" {
		return fmt.Errorf("user %d has no email address", bid.UserID)
	}
	return s.notifier.Send(ctx, domain.Message{
		Subject: fmt.Sprintf("[codesy] Your ask for %s for %s has been met", bid.Ask.Truncate(0).String(), bid.URL),
		Body:    fmt.Sprintf("Bidders have met your asking price for %s.", bid.URL),
		From:    s.from,
		To:      []string{user.Email},
	})
}
