package transaction

import (
	"context"
	"fmt"

	"github.com/finboard/finboard/internal/event_bus"
	"github.com/finboard/finboard/pkg/user"
	log "github.com/sirupsen/logrus"
)

// ImportResult reports what happened to an uploaded table: how many rows were
// stored and how many were dropped at each coercion step.
type ImportResult struct {
	Stored         int
	DroppedDates   int
	DroppedAmounts int
}

type Service interface {
	// Import normalizes a raw table against the mapping and persists the
	// resulting transactions for the current user.
	Import(ctx context.Context, table RawTable, mapping ColumnMapping) (ImportResult, error)
	GetAll(ctx context.Context) ([]Transaction, error)
	GetForPeriod(ctx context.Context, period Period) ([]Transaction, error)
	Update(ctx context.Context, tx Transaction) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type ServiceImpl struct {
	repo Repo
	bus  *event_bus.EventBus
}

func NewService(repo Repo, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, bus: bus}
}

func (s *ServiceImpl) Import(ctx context.Context, table RawTable, mapping ColumnMapping) (ImportResult, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to get current user: %w", err)
	}

	normalized, err := Normalize(table, mapping)
	if err != nil {
		return ImportResult{}, err
	}

	stored, err := s.repo.StoreAll(ctx, userId, normalized.Transactions)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{
		Stored:         stored,
		DroppedDates:   normalized.DroppedDates,
		DroppedAmounts: normalized.DroppedAmounts,
	}
	event := event_bus.NewEvent(ctx, event_bus.TransactionsImportedEvent, event_bus.TransactionsImported{
		UserId:         userId,
		Stored:         result.Stored,
		DroppedDates:   result.DroppedDates,
		DroppedAmounts: result.DroppedAmounts,
	})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("failed to publish import event: %v", err)
	}
	return result, nil
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetAll(ctx, userId)
}

func (s *ServiceImpl) GetForPeriod(ctx context.Context, period Period) ([]Transaction, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return s.repo.GetForPeriod(ctx, userId, period)
}

func (s *ServiceImpl) Update(ctx context.Context, tx Transaction) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	updated, err := s.repo.Update(ctx, userId, tx)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("transaction not updated, probably because it does not exist (%d) or the user (%d) is not the owner", tx.ID, userId)
	}
	return updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("transaction not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}
