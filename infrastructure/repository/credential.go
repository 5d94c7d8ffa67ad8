package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/ozmetrics/ozon-performance-sync/infrastructure/database/postgres"
	"github.com/ozmetrics/ozon-performance-sync/internal/domain"
)

const accountListTable = "account_list al"

// ozonMarketplaceID selects the Ozon rows of the shared account_list
// keys table.
const ozonMarketplaceID = 1

type CredentialRepository interface {
	ListPerformanceKeys() ([]domain.Credential, error)
}

type credentialRepository struct {
	conn *postgres.Connection
}

func NewCredentialRepository(conn *postgres.Connection) CredentialRepository {
	return &credentialRepository{
		conn: conn,
	}
}

// ListPerformanceKeys returns one credential per distinct Performance
// API key pair, newest account id winning, ordered by client id so runs
// are reproducible. Rows with an empty client id are kept: the
// dispatcher uses them as an explicit "skip this account" marker.
func (r *credentialRepository) ListPerformanceKeys() ([]domain.Credential, error) {
	query, args, err := squirrel.
		Select("max(al.id)", "al.client_id_performance", "al.client_secret_performance").
		From(accountListTable).
		Where(squirrel.Eq{"al.mp_id": ozonMarketplaceID}).
		GroupBy("al.client_id_performance", "al.client_secret_performance").
		OrderBy("al.client_id_performance").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building credentials query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying credentials: %w", err)
	}
	defer rows.Close()

	creds := make([]domain.Credential, 0)
	for rows.Next() {
		var cred domain.Credential
		var clientID, clientSecret sql.NullString

		if err := rows.Scan(&cred.AccountID, &clientID, &clientSecret); err != nil {
			return nil, fmt.Errorf("scanning credential: %w", err)
		}

		cred.ClientID = clientID.String
		cred.ClientSecret = clientSecret.String
		creds = append(creds, cred)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating credentials: %w", err)
	}

	return creds, nil
}
