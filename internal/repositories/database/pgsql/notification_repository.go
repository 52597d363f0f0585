package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/personal_finance_api/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_finance_api/internal/core/ports/repositories"
	"github.com/SscSPs/personal_finance_api/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `id, user_id, type, title, message, related_entity_type, related_entity_id,
	is_read, is_sent, created_at, read_at`

type PgxNotificationRepository struct {
	pool *pgxpool.Pool
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{pool: pool}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func toDomainNotification(m models.Notification) domain.Notification {
	n := domain.Notification{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              domain.NotificationType(m.Type),
		Title:             m.Title,
		RelatedEntityType: m.RelatedEntityType,
		RelatedEntityID:   m.RelatedEntityID,
		IsRead:            m.IsRead,
		IsSent:            m.IsSent,
		CreatedAt:         m.CreatedAt,
		ReadAt:            m.ReadAt,
	}
	if m.Message != nil {
		n.Message = *m.Message
	}
	return n
}

func (r *PgxNotificationRepository) collectOne(rows pgx.Rows, action string) (*domain.Notification, error) {
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Notification])
	if err != nil {
		return nil, mapReadError(err, action)
	}
	n := toDomainNotification(m)
	return &n, nil
}

func (r *PgxNotificationRepository) CreateNotification(ctx context.Context, n domain.Notification) (*domain.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		INSERT INTO notifications (user_id, type, title, message, related_entity_type, related_entity_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+notificationColumns,
		n.UserID, string(n.Type), n.Title, n.Message, n.RelatedEntityType, n.RelatedEntityID)
	if err != nil {
		return nil, mapWriteError(err, "create notification")
	}
	return r.collectOne(rows, "create notification")
}

// ListNotifications returns up to filter.Limit notifications, newest first,
// strictly after the (created_at, id) cursor when one is given.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
			AND ($2::boolean = FALSE OR is_read = FALSE)
			AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::bigint))
		ORDER BY created_at DESC, id DESC
		LIMIT $5`
	rows, err := r.pool.Query(ctx, query, filter.UserID, filter.UnreadOnly, filter.CursorCreatedAt, filter.CursorID, filter.Limit)
	if err != nil {
		return nil, mapReadError(err, "list notifications")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Notification])
	if err != nil {
		return nil, mapReadError(err, "list notifications")
	}
	out := make([]domain.Notification, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainNotification(m))
	}
	return out, nil
}

// MarkRead sets read_at only the first time a notification is read.
func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID, userID int64, at time.Time) (*domain.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE notifications
		SET is_read = TRUE, read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND user_id = $2
		RETURNING `+notificationColumns, notificationID, userID, at)
	if err != nil {
		return nil, mapWriteError(err, "mark notification read")
	}
	return r.collectOne(rows, "mark notification read")
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID int64, at time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE, read_at = $2 WHERE user_id = $1 AND is_read = FALSE`,
		userID, at)
	if err != nil {
		return 0, mapWriteError(err, "mark notifications read")
	}
	return tag.RowsAffected(), nil
}

func (r *PgxNotificationRepository) MarkSent(ctx context.Context, notificationID int64) error {
	tag, err := r.pool.Exec(ctx, `UPDATE notifications SET is_sent = TRUE WHERE id = $1`, notificationID)
	if err != nil {
		return mapWriteError(err, "mark notification sent")
	}
	return expectOne(tag)
}
