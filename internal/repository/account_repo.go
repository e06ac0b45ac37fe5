package repository

import (
	"context"
	"database/sql"

	"github.com/content-archive-api/internal/database"
	"github.com/content-archive-api/internal/models"
)

// accountRepo is the concrete implementation of AccountRepository
type accountRepo struct {
	db *database.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db *database.DB) AccountRepository {
	return &accountRepo{db: db}
}

const accountColumns = `user_id, provider, provider_account_id, access_token, refresh_token, expires_at`

// GetByUserAndProvider finds the linked account for a user; nil means
// the user has no account with that provider
func (r *accountRepo) GetByUserAndProvider(ctx context.Context, userID, provider string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = $1 AND provider = $2`,
		userID, provider)
	return scanAccount(row)
}

// GetByProviderAccount finds an account by provider + external subject id
func (r *accountRepo) GetByProviderAccount(ctx context.Context, provider, providerAccountID string) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE provider = $1 AND provider_account_id = $2`,
		provider, providerAccountID)
	return scanAccount(row)
}

// UpdateTokens persists a refreshed token pair with its computed expiry
func (r *accountRepo) UpdateTokens(ctx context.Context, provider, providerAccountID, accessToken, refreshToken string, expiresAt int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE accounts
		SET access_token = $3, refresh_token = $4, expires_at = $5
		WHERE provider = $1 AND provider_account_id = $2
	`, provider, providerAccountID, accessToken, refreshToken, expiresAt)
	return err
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var account models.Account
	err := row.Scan(
		&account.UserID, &account.Provider, &account.ProviderAccountID,
		&account.AccessToken, &account.RefreshToken, &account.ExpiresAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
