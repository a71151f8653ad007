package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/marketpulse/marketpulse-api/infrastructure/database/postgres"
	"github.com/marketpulse/marketpulse-api/internal/domain"
	"github.com/marketpulse/marketpulse-api/pkg/utils"
)

const (
	credentialsTable = "credentials c"

	credentialColumns = "c.id, c.user_id, c.platform, c.store_id, c.store_name, c.store_url, " +
		"c.api_key, c.api_secret, c.access_token, c.refresh_token, c.expires_at, " +
		"c.active, c.created_at, c.updated_at"
)

type CredentialRepository interface {
	Upsert(ctx context.Context, userID string, platform domain.Platform, fields *domain.CredentialFields) (*domain.Credential, error)
	GetActive(userID string, platform domain.Platform) (*domain.Credential, error)
	ListActive(userID string) ([]*domain.Credential, error)
	Deactivate(ctx context.Context, userID string, platform domain.Platform) error
	UpdateTokens(userID string, platform domain.Platform, accessToken, refreshToken string, expiresAt time.Time) error
	ListUserIDsWithActive() ([]string, error)
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// Upsert deactivates any prior credential for (user, platform) and inserts
// the new active row, in a single transaction. The replaced row survives as
// an inactive audit record.
func (r *credentialRepository) Upsert(ctx context.Context, userID string, platform domain.Platform, fields *domain.CredentialFields) (*domain.Credential, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("generating credential id: %w", err)
	}

	now := time.Now().UTC()

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deactivateSQL, deactivateArgs, err := squirrel.
			Update("credentials").
			Set("active", false).
			Set("updated_at", now).
			Where(squirrel.Eq{"user_id": userID, "platform": platform, "active": true}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("building deactivate query: %w", err)
		}

		if _, err := tx.Exec(deactivateSQL, deactivateArgs...); err != nil {
			return fmt.Errorf("deactivating previous credential: %w", err)
		}

		insertSQL, insertArgs, err := squirrel.StatementBuilder.
			Insert("credentials").
			Columns("id", "user_id", "platform", "store_id", "store_name", "store_url",
				"api_key", "api_secret", "access_token", "refresh_token", "expires_at",
				"active", "created_at", "updated_at").
			Values(id, userID, platform, fields.StoreID, fields.StoreName, fields.StoreURL,
				fields.APIKey, fields.APISecret, fields.AccessToken, fields.RefreshToken, fields.ExpiresAt,
				true, now, now).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("building insert query: %w", err)
		}

		if _, err := tx.Exec(insertSQL, insertArgs...); err != nil {
			return fmt.Errorf("inserting credential: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.Credential{
		ID:           id,
		UserID:       userID,
		Platform:     platform,
		StoreID:      fields.StoreID,
		StoreName:    fields.StoreName,
		StoreURL:     fields.StoreURL,
		APIKey:       fields.APIKey,
		APISecret:    fields.APISecret,
		AccessToken:  fields.AccessToken,
		RefreshToken: fields.RefreshToken,
		ExpiresAt:    fields.ExpiresAt,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// GetActive returns the active credential for (user, platform), or nil when
// the platform is not connected. Deactivated rows are never returned.
func (r *credentialRepository) GetActive(userID string, platform domain.Platform) (*domain.Credential, error) {
	query, args, err := squirrel.
		Select(credentialColumns).
		From(credentialsTable).
		Where(squirrel.Eq{"c.user_id": userID, "c.platform": platform, "c.active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	cred, err := scanCredential(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning credential: %w", err)
	}

	return cred, nil
}

func (r *credentialRepository) ListActive(userID string) ([]*domain.Credential, error) {
	query, args, err := squirrel.
		Select(credentialColumns).
		From(credentialsTable).
		Where(squirrel.Eq{"c.user_id": userID, "c.active": true}).
		OrderBy("c.platform ASC").
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

	credentials := make([]*domain.Credential, 0)
	for rows.Next() {
		cred, err := scanCredentialRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning credential: %w", err)
		}
		credentials = append(credentials, cred)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credential rows: %w", err)
	}

	return credentials, nil
}

// Deactivate is idempotent: deactivating an already-inactive credential
// affects zero rows and is not an error.
func (r *credentialRepository) Deactivate(ctx context.Context, userID string, platform domain.Platform) error {
	query, args, err := squirrel.
		Update("credentials").
		Set("active", false).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"user_id": userID, "platform": platform, "active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("deactivating credential: %w", err)
	}

	return nil
}

// UpdateTokens renews the token fields only; store name and URL are left
// untouched. Used exclusively by the token refresh manager.
func (r *credentialRepository) UpdateTokens(userID string, platform domain.Platform, accessToken, refreshToken string, expiresAt time.Time) error {
	query, args, err := squirrel.
		Update("credentials").
		Set("access_token", accessToken).
		Set("refresh_token", refreshToken).
		Set("expires_at", expiresAt).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"user_id": userID, "platform": platform, "active": true}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("updating credential tokens: %w", err)
	}

	return nil
}

// ListUserIDsWithActive lists the users the scheduled sync should visit.
func (r *credentialRepository) ListUserIDsWithActive() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT c.user_id").
		From(credentialsTable).
		Where(squirrel.Eq{"c.active": true}).
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

	userIDs := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user id: %w", err)
		}
		userIDs = append(userIDs, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user id rows: %w", err)
	}

	return userIDs, nil
}

func scanCredential(row *sql.Row) (*domain.Credential, error) {
	cred := &domain.Credential{}

	err := row.Scan(
		&cred.ID,
		&cred.UserID,
		&cred.Platform,
		&cred.StoreID,
		&cred.StoreName,
		&cred.StoreURL,
		&cred.APIKey,
		&cred.APISecret,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.ExpiresAt,
		&cred.Active,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return cred, nil
}

func scanCredentialRows(rows *sql.Rows) (*domain.Credential, error) {
	cred := &domain.Credential{}

	err := rows.Scan(
		&cred.ID,
		&cred.UserID,
		&cred.Platform,
		&cred.StoreID,
		&cred.StoreName,
		&cred.StoreURL,
		&cred.APIKey,
		&cred.APISecret,
		&cred.AccessToken,
		&cred.RefreshToken,
		&cred.ExpiresAt,
		&cred.Active,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return cred, nil
}
