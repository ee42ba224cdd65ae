package budget

import (
	"context"
	"fmt"

	"github.com/finboard/finboard/pkg/transaction"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// Upsert stores a budget line, updating the amount in place when a line
	// for the same (period, category, subcategory) triple already exists.
	Upsert(ctx context.Context, userId int, line BudgetLine) (BudgetLine, error)
	GetForPeriod(ctx context.Context, userId int, period transaction.Period) ([]BudgetLine, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) Upsert(ctx context.Context, userId int, line BudgetLine) (BudgetLine, error) {
	query := `INSERT INTO budget_lines (user_id, period, category, subcategory, amount)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (user_id, period, category, subcategory)
				DO UPDATE SET amount = EXCLUDED.amount
				RETURNING id`
	var id int
	err := r.db.QueryRow(ctx, query,
		userId,
		line.Period.String(),
		line.Category,
		line.Subcategory,
		line.Amount,
	).Scan(&id)
	if err != nil {
		log.Errorf("failed to upsert budget line: %v", err)
		return BudgetLine{}, fmt.Errorf("failed to upsert budget line: %w", err)
	}
	line.ID = id
	return line, nil
}

func (r *RepoImpl) GetForPeriod(ctx context.Context, userId int, period transaction.Period) ([]BudgetLine, error) {
	query := `SELECT id, category, subcategory, amount FROM budget_lines
				WHERE user_id = $1 AND period = $2 ORDER BY category, subcategory`
	rows, err := r.db.Query(ctx, query, userId, period.String())
	if err != nil {
		log.Errorf("failed to query budget lines for period %s: %v", period, err)
		return nil, err
	}
	defer rows.Close()

	lines := make([]BudgetLine, 0)
	for rows.Next() {
		line := BudgetLine{Period: period}
		if err := rows.Scan(&line.ID, &line.Category, &line.Subcategory, &line.Amount); err != nil {
			log.Errorf("failed to scan budget line: %v", err)
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM budget_lines WHERE id = $1 AND user_id = $2`, id, userId)
	if err != nil {
		log.Errorf("failed to delete budget line %d: %v", id, err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
