package bidservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestAskMet(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name        string
		ask         string
		others      string
		expectQuery bool
		expected    bool
	}{
		{name: "Zero ask never matches", ask: "0", expected: false},
		{name: "Offers below ask", ask: "100", others: "99.99", expectQuery: true, expected: false},
		{name: "Offers equal ask", ask: "100", others: "100", expectQuery: true, expected: true},
		{name: "Offers above ask", ask: "100", others: "140", expectQuery: true, expected: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			if tt.expectQuery {
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 1).Return(d(tt.others), nil)
			}
			met, err := service.AskMet(ctx, domain.Bid{ID: 3, UserID: 1, URL: issueURL, Ask: d(tt.ask)})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, met)
		})
	}
}

func TestOnBidChanged(t *testing.T) {
	ctx := context.Background()
	at := fixedNow.UTC().Truncate(time.Microsecond)
	asker := domain.Bid{ID: 3, UserID: 1, URL: issueURL, Ask: d("50")}
	user := &domain.User{ID: 1, Email: "alice@example.com"}

	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Met ask is notified once",
			prepareMock: func(m *mocks) {
				m.bids.EXPECT().FindUnmatchedAsks(ctx, issueURL).Return([]domain.Bid{asker}, nil)
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 1).Return(d("60"), nil)
				m.bids.EXPECT().MarkAskMatchSent(ctx, 3, at).Return(true, nil)
				m.users.EXPECT().FindByID(ctx, 1).Return(user, nil)
				m.notifier.EXPECT().Send(ctx, domain.Message{
					Subject: "[codesy] Your ask for 50 for " + issueURL + " has been met",
					Body:    "Bidders have met your asking price for " + issueURL + ".",
					From:    "codesy notifications <notifications@codesy.io>",
					To:      []string{"alice@example.com"},
				}).Return(nil)
			},
		},
		{
			name: "Unmet ask is left alone",
			prepareMock: func(m *mocks) {
				m.bids.EXPECT().FindUnmatchedAsks(ctx, issueURL).Return([]domain.Bid{asker}, nil)
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 1).Return(d("49.99"), nil)
			},
		},
		{
			name: "Concurrent trigger already claimed the notification",
			prepareMock: func(m *mocks) {
				m.bids.EXPECT().FindUnmatchedAsks(ctx, issueURL).Return([]domain.Bid{asker}, nil)
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 1).Return(d("60"), nil)
				m.bids.EXPECT().MarkAskMatchSent(ctx, 3, at).Return(false, nil)
			},
		},
		{
			name: "Send failure releases the stamp",
			prepareMock: func(m *mocks) {
				m.bids.EXPECT().FindUnmatchedAsks(ctx, issueURL).Return([]domain.Bid{asker}, nil)
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 1).Return(d("60"), nil)
				m.bids.EXPECT().MarkAskMatchSent(ctx, 3, at).Return(true, nil)
				m.users.EXPECT().FindByID(ctx, 1).Return(user, nil)
				m.notifier.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp down"))
				m.bids.EXPECT().ClearAskMatchSent(ctx, 3, at).Return(nil)
			},
		},
		{
			name: "Asker without email is retried later",
			prepareMock: func(m *mocks) {
				m.bids.EXPECT().FindUnmatchedAsks(ctx, issueURL).Return([]domain.Bid{asker}, nil)
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 1).Return(d("60"), nil)
				m.bids.EXPECT().MarkAskMatchSent(ctx, 3, at).Return(true, nil)
				m.users.EXPECT().FindByID(ctx, 1).Return(&domain.User{ID: 1}, nil)
				m.bids.EXPECT().ClearAskMatchSent(ctx, 3, at).Return(nil)
			},
		},
		{
			name: "Sum failure does not stop other asks",
			prepareMock: func(m *mocks) {
				other := domain.Bid{ID: 4, UserID: 2, URL: issueURL, Ask: d("10")}
				m.bids.EXPECT().FindUnmatchedAsks(ctx, issueURL).Return([]domain.Bid{asker, other}, nil)
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 1).Return(d("0"), errors.New("database error"))
				m.bids.EXPECT().SumOtherOffers(ctx, issueURL, 2).Return(d("5"), nil)
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Scan failure",
			prepareMock: func(m *mocks) {
				m.bids.EXPECT().FindUnmatchedAsks(ctx, issueURL).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			err := service.OnBidChanged(ctx, domain.Bid{URL: issueURL})
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
