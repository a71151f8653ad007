package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/marketpulse/marketpulse-api/infrastructure/database/postgres"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/utils"
)

const (
	syncEventsTable = "sync_events se"

	syncEventColumns = "se.id, se.user_id, se.platform, se.items_synced, se.status, " +
		"se.error_message, se.created_at"
)

// SyncEventRepository is append-only: events are created and read, never
// updated or deleted.
type SyncEventRepository interface {
	Create(event *domain.SyncEvent) error
	LatestPerPlatform(userID string) (map[domain.Platform]*domain.SyncEvent, error)
	ListByUser(userID string, limit int) ([]*domain.SyncEvent, error)
}

type syncEventRepository struct {
	conn *postgres.Connection
}

func NewSyncEventRepository(conn *postgres.Connection) SyncEventRepository {
	return &syncEventRepository{
		conn: conn,
	}
}

func (r *syncEventRepository) Create(event *domain.SyncEvent) error {
	if event.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("generating sync event id: %w", err)
		}
		event.ID = id
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("sync_events").
		Columns("id", "user_id", "platform", "items_synced", "status", "error_message", "created_at").
		Values(event.ID, event.UserID, event.Platform, event.ItemsSynced, event.Status, event.ErrorMessage, event.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("inserting sync event: %w", err)
	}

	return nil
}

// LatestPerPlatform resolves each platform's most recent sync attempt,
// surfaced next to the credential listing as "last sync".
func (r *syncEventRepository) LatestPerPlatform(userID string) (map[domain.Platform]*domain.SyncEvent, error) {
	query, args, err := squirrel.
		Select("DISTINCT ON (se.platform) " + syncEventColumns).
		From(syncEventsTable).
		Where(squirrel.Eq{"se.user_id": userID}).
		OrderBy("se.platform", "se.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	latest := make(map[domain.Platform]*domain.SyncEvent)
	for rows.Next() {
		event, err := scanSyncEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sync event: %w", err)
		}
		latest[event.Platform] = event
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync event rows: %w", err)
	}

	return latest, nil
}

func (r *syncEventRepository) ListByUser(userID string, limit int) ([]*domain.SyncEvent, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}

	query, args, err := squirrel.
		Select(syncEventColumns).
		From(syncEventsTable).
		Where(squirrel.Eq{"se.user_id": userID}).
		OrderBy("se.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	events := make([]*domain.SyncEvent, 0)
	for rows.Next() {
		event, err := scanSyncEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning sync event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sync event rows: %w", err)
	}

	return events, nil
}

func scanSyncEvent(rows *sql.Rows) (*domain.SyncEvent, error) {
	event := &domain.SyncEvent{}

	err := rows.Scan(
		&event.ID,
		&event.UserID,
		&event.Platform,
		&event.ItemsSynced,
		&event.Status,
		&event.ErrorMessage,
		&event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return event, nil
}
