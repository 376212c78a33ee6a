package eventrepo

import (
	"context"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	eventColumns = `event_id, user_id, type, message_text, verified, processed, created`

	insertEventQuery = `
		INSERT INTO stripe_events (event_id, user_id, message_text, created)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO NOTHING
		RETURNING ` + eventColumns
	findEventQuery    = `SELECT ` + eventColumns + ` FROM stripe_events WHERE event_id = $1`
	markVerifiedQuery = `
		UPDATE stripe_events
		SET verified = TRUE, type = $2, message_text = $3
		WHERE event_id = $1
	`
	markProcessedQuery = `UPDATE stripe_events SET processed = TRUE WHERE event_id = $1`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEvent(row pgx.Row) (*domain.PaymentEvent, error) {
	var e domain.PaymentEvent
	if err := row.Scan(&e.EventID, &e.UserID, &e.Type, &e.MessageText, &e.Verified, &e.Processed, &e.Created); err != nil {
		return nil, err
	}
	return &e, nil
}

// SaveRaw stores the event unless one with the same id exists. It returns the stored row and
// whether this call created it.
func (r *Repository) SaveRaw(ctx context.Context, event *domain.PaymentEvent) (*domain.PaymentEvent, bool, error) {
	saved, err := scanEvent(r.db.QueryRow(ctx, insertEventQuery, event.EventID, event.UserID, event.MessageText, event.Created))
	if err == nil {
		return saved, true, nil
	}
	if err != pgx.ErrNoRows {
		zap.L().Error("can't save payment event", zap.String("event_id", event.EventID), zap.Error(err))
		return nil, false, err
	}

	existing, err := r.FindEvent(ctx, event.EventID)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

func (r *Repository) FindEvent(ctx context.Context, eventID string) (*domain.PaymentEvent, error) {
	event, err := scanEvent(r.db.QueryRow(ctx, findEventQuery, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find payment event", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (r *Repository) MarkVerified(ctx context.Context, eventID, eventType, message string) error {
	if _, err := r.db.Exec(ctx, markVerifiedQuery, eventID, eventType, message); err != nil {
		zap.L().Error("can't mark payment event verified", zap.String("event_id", eventID), zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkProcessed(ctx context.Context, eventID string) error {
	if _, err := r.db.Exec(ctx, markProcessedQuery, eventID); err != nil {
		zap.L().Error("can't mark payment event processed", zap.String("event_id", eventID), zap.Error(err))
		return err
	}
	return nil
}
