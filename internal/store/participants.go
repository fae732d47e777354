package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/santa/internal/core"
)

const insertParticipantSQL = `
	INSERT INTO participants (position, name, email, secret_child_name, secret_child_email)
	VALUES (?, ?, ?, ?, ?)`

// Get returns the roster in position order.
func (s *Store) Get(ctx context.Context) ([]core.Participant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, email, secret_child_name, secret_child_email
		FROM participants
		ORDER BY position ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query participants: %w", err)
	}
	defer rows.Close()

	var out []core.Participant
	for rows.Next() {
		var p core.Participant
		if err := rows.Scan(&p.Name, &p.Email, &p.SecretChildName, &p.SecretChildEmail); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate participants: %w", err)
	}
	return out, nil
}

// Replace swaps the whole roster in one transaction.
func (s *Store) Replace(ctx context.Context, participants []core.Participant) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM participants`); err != nil {
			return fmt.Errorf("clear participants: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, insertParticipantSQL)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for i, p := range participants {
			if _, err := stmt.ExecContext(ctx, i, p.Name, p.Email, p.SecretChildName, p.SecretChildEmail); err != nil {
				return fmt.Errorf("insert participant %d: %w", i, err)
			}
		}
		return nil
	})
}

// Add appends p after validating its required fields.
func (s *Store) Add(ctx context.Context, p core.Participant) error {
	if err := core.ValidateParticipant(p); err != nil {
		return err
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		var next int
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM participants`).Scan(&next); err != nil {
			return fmt.Errorf("next position: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertParticipantSQL, next, p.Name, p.Email, p.SecretChildName, p.SecretChildEmail); err != nil {
			return fmt.Errorf("insert participant: %w", err)
		}
		return nil
	})
}

// Remove deletes the participant at index and closes the gap.
func (s *Store) Remove(ctx context.Context, index int) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var size int
		if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM participants`).Scan(&size); err != nil {
			return fmt.Errorf("count participants: %w", err)
		}
		if index < 0 || index >= size {
			return core.NewInvalidIndexError(index, size)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM participants WHERE position = ?`, index); err != nil {
			return fmt.Errorf("delete participant: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE participants SET position = position - 1 WHERE position > ?`, index); err != nil {
			return fmt.Errorf("shift positions: %w", err)
		}
		return nil
	})
}
