package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pressly/goose/v3"

	"github.com/furball-art/furball/internal/dbx"
	"github.com/furball-art/furball/internal/models"
	"github.com/furball-art/furball/internal/server/migrations"
)

const pgUniqueViolation = "23505"

// DB is what PostgresRepository needs from *sql.DB.
type DB interface {
	dbx.DBTX
	dbx.TxBeginner
}

// PostgresRepository stores document records in PostgreSQL through the pgx
// database/sql driver.
type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// RunMigrations applies the embedded schema with goose.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Insert(ctx context.Context, doc *models.Document) error {
	query := `
		INSERT INTO documents (id, controller, version, content_cid)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, doc.ID.String(), doc.Controller, doc.Version, doc.ContentCID).
		Scan(&doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, id models.DocID) (*models.Document, error) {
	return getDocument(ctx, r.db, id, "")
}

func getDocument(ctx context.Context, db dbx.DBTX, id models.DocID, suffix string) (*models.Document, error) {
	query := `SELECT id, controller, version, content_cid, created_at, updated_at
		FROM documents WHERE id = $1` + suffix

	var (
		doc   models.Document
		rawID string
	)
	err := db.QueryRowContext(ctx, query, id.String()).
		Scan(&rawID, &doc.Controller, &doc.Version, &doc.ContentCID, &doc.CreatedAt, &doc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select document: %w", err)
	}
	doc.ID = models.DocID(rawID)
	return &doc, nil
}

// UpdateContent locks the row, checks controller and version, then writes
// the new content CID in the same transaction.
func (r *PostgresRepository) UpdateContent(ctx context.Context, id models.DocID, controller string, expectedVersion int64, contentCID string) (*models.Document, error) {
	var out *models.Document

	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		doc, err := getDocument(ctx, tx, id, " FOR UPDATE")
		if err != nil {
			return err
		}
		if doc.Controller != controller {
			return ErrNotController
		}
		if doc.Version != expectedVersion {
			return ErrVersionConflict
		}

		query := `UPDATE documents
			SET content_cid = $1, version = version + 1, updated_at = now()
			WHERE id = $2
			RETURNING version, updated_at`
		if err := tx.QueryRowContext(ctx, query, contentCID, id.String()).Scan(&doc.Version, &doc.UpdatedAt); err != nil {
			return fmt.Errorf("update document: %w", err)
		}
		doc.ContentCID = contentCID
		out = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
