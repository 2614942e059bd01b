package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/repository"
)

// WordRepo implements repository.WordCache
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Load returns the stored word list in id order
func (r *WordRepo) Load(ctx context.Context) ([]domain.WordEntry, error) {
	query := `
		SELECT id, term, meaning
		FROM word_entries
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WordEntry
	for rows.Next() {
		var e domain.WordEntry
		if err := rows.Scan(&e.ID, &e.Term, &e.Meaning); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, repository.ErrCacheMiss
	}
	return entries, nil
}

// Save replaces the stored word list in one transaction
func (r *WordRepo) Save(ctx context.Context, entries []domain.WordEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM word_entries`); err != nil {
		return fmt.Errorf("failed to clear word entries: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO word_entries (id, term, meaning)
		VALUES ($1, $2, $3)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.ID, e.Term, e.Meaning); err != nil {
			return fmt.Errorf("failed to insert word %d: %w", e.ID, err)
		}
	}

	return tx.Commit()
}
