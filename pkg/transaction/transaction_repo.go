package transaction

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

type Repo interface {
	// StoreAll persists a batch of canonical transactions for the user and
	// returns the number of stored rows.
	StoreAll(ctx context.Context, userId int, transactions []Transaction) (int, error)
	GetAll(ctx context.Context, userId int) ([]Transaction, error)
	GetForPeriod(ctx context.Context, userId int, period Period) ([]Transaction, error)
	Update(ctx context.Context, userId int, tx Transaction) (bool, error)
	Delete(ctx context.Context, userId int, id int) (bool, error)
}

type RepoImpl struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *RepoImpl {
	return &RepoImpl{db: db}
}

func (r *RepoImpl) StoreAll(ctx context.Context, userId int, transactions []Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}
	query := `INSERT INTO transactions (user_id, date, category, subcategory, amount, description)
				VALUES ($1, $2, $3, $4, $5, $6)`

	batch := &pgx.Batch{}
	for _, tx := range transactions {
		batch.Queue(query, userId, tx.Date, tx.Category, tx.Subcategory, tx.Amount, tx.Description)
	}
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	stored := 0
	for range transactions {
		if _, err := results.Exec(); err != nil {
			log.Errorf("failed to store transaction batch: %v", err)
			return stored, fmt.Errorf("failed to store transactions: %w", err)
		}
		stored++
	}
	return stored, nil
}

func (r *RepoImpl) GetAll(ctx context.Context, userId int) ([]Transaction, error) {
	query := `SELECT id, date, category, subcategory, amount, description FROM transactions
				WHERE user_id = $1 ORDER BY date, id`
	rows, err := r.db.Query(ctx, query, userId)
	if err != nil {
		log.Errorf("failed to query transactions: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *RepoImpl) GetForPeriod(ctx context.Context, userId int, period Period) ([]Transaction, error) {
	query := `SELECT id, date, category, subcategory, amount, description FROM transactions
				WHERE user_id = $1 AND date >= $2 AND date < $3 ORDER BY date, id`
	rows, err := r.db.Query(ctx, query, userId, period.Start(), period.Start().AddDate(0, 1, 0))
	if err != nil {
		log.Errorf("failed to query transactions for period %s: %v", period, err)
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *RepoImpl) Update(ctx context.Context, userId int, tx Transaction) (bool, error) {
	query := `UPDATE transactions SET date = $1, category = $2, subcategory = $3, amount = $4, description = $5
				WHERE id = $6 AND user_id = $7`
	tag, err := r.db.Exec(ctx, query, tx.Date, tx.Category, tx.Subcategory, tx.Amount, tx.Description, tx.ID, userId)
	if err != nil {
		log.Errorf("failed to update transaction %d: %v", tx.ID, err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RepoImpl) Delete(ctx context.Context, userId int, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userId)
	if err != nil {
		log.Errorf("failed to delete transaction %d: %v", id, err)
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanTransactions(rows pgx.Rows) ([]Transaction, error) {
	transactions := make([]Transaction, 0)
	for rows.Next() {
		var tx Transaction
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Category, &tx.Subcategory, &tx.Amount, &tx.Description); err != nil {
			log.Errorf("failed to scan transaction row: %v", err)
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
