package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tobyns/momentum/internal/database"
	"github.com/tobyns/momentum/internal/database/repository"
)

// RecoverService restores tasks left in the missing state by an interrupted
// import or sync, so they reappear in the lists instead of silently vanishing.
type RecoverService struct {
	DB *sql.DB
}

// Run flips every missing task back to open in one transaction and returns
// the affected ids. Tasks in any other status are untouched; no missing
// tasks means an empty result, not an error.
func (s *RecoverService) Run(ctx context.Context) ([]string, error) {
	var ids []string
	err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT id FROM tasks WHERE status = ?`, repository.StatusMissing)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE tasks SET status = ?, updated_at=CURRENT_TIMESTAMP WHERE status = ?`,
			repository.StatusOpen, repository.StatusMissing)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("recover missing tasks: %w", err)
	}
	return ids, nil
}
