package sources

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/otpkeeper/internal/common"
	"github.com/dmitrijs2005/otpkeeper/internal/cryptox"
	"github.com/dmitrijs2005/otpkeeper/internal/dbx"
)

// SQLiteRepository implements Repository over a local SQLite database. URIs
// are encrypted at rest with the vault master key, so listing and matching
// always go through decryption. Read-then-write operations (Add, RemoveURI)
// run inside a transaction.
type SQLiteRepository struct {
	db  *sql.DB
	key []byte
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given
// database and master key.
func NewSQLiteRepository(db *sql.DB, masterKey []byte) *SQLiteRepository {
	return &SQLiteRepository{db: db, key: masterKey}
}

type sourceRow struct {
	id  string
	uri string
}

// listRows loads and decrypts every row in insertion order.
func listRows(ctx context.Context, db dbx.DBTX, key []byte) ([]sourceRow, error) {
	query := `SELECT id, uri, nonce FROM sources ORDER BY rowid`
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select sources: %w", err)
	}
	defer rows.Close()

	var result []sourceRow
	for rows.Next() {
		var id string
		var ciphertext, nonce []byte
		if err := rows.Scan(&id, &ciphertext, &nonce); err != nil {
			return nil, err
		}

		uri, err := cryptox.DecryptString(ciphertext, nonce, key)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt source %s: %w", id, err)
		}

		result = append(result, sourceRow{id: id, uri: uri})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Add(ctx context.Context, uri string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		existing, err := listRows(ctx, tx, r.key)
		if err != nil {
			return err
		}
		for _, row := range existing {
			if row.uri == uri {
				return common.ErrorAlreadyExists
			}
		}

		ciphertext, nonce, err := cryptox.EncryptString(uri, r.key)
		if err != nil {
			return fmt.Errorf("failed to encrypt uri: %w", err)
		}

		query := `INSERT INTO sources (id, uri, nonce) VALUES (?, ?, ?)`
		if _, err := tx.ExecContext(ctx, query, uuid.NewString(), ciphertext, nonce); err != nil {
			return fmt.Errorf("failed to insert source: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) ListURIs(ctx context.Context) ([]string, error) {
	rows, err := listRows(ctx, r.db, r.key)
	if err != nil {
		return nil, err
	}

	uris := make([]string, 0, len(rows))
	for _, row := range rows {
		uris = append(uris, row.uri)
	}
	return uris, nil
}

func (r *SQLiteRepository) RemoveURI(ctx context.Context, uri string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rows, err := listRows(ctx, tx, r.key)
		if err != nil {
			return err
		}

		for _, row := range rows {
			if row.uri != uri {
				continue
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM sources WHERE id=?`, row.id); err != nil {
				return fmt.Errorf("failed to delete source: %w", err)
			}
		}

		// absent uri: idempotent no-op
		return nil
	})
}
