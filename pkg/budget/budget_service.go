package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/finboard/finboard/internal/event_bus"
	"github.com/finboard/finboard/pkg/category"
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/finboard/finboard/pkg/user"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// SetLine cleans the labels and stores the line, updating in place when
	// the (period, category, subcategory) triple already has one.
	SetLine(ctx context.Context, line BudgetLine) (BudgetLine, error)
	// GetForMonth returns the month's budget lines, seeding a zero-amount
	// template from the default category tree when the month has none yet.
	GetForMonth(ctx context.Context, period transaction.Period) ([]BudgetLine, error)
	DeleteLine(ctx context.Context, id int) (bool, error)
	// CompareWithActuals reconciles the month's budget against the month's
	// actual transactions at the given granularity.
	CompareWithActuals(ctx context.Context, period transaction.Period, level Level) ([]ComparisonRow, error)
}

type ServiceImpl struct {
	repo               Repo
	transactionService transaction.Service
	bus                *event_bus.EventBus
}

func NewServiceImpl(repo Repo, transactionService transaction.Service, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{repo: repo, transactionService: transactionService, bus: bus}
}

func (s *ServiceImpl) SetLine(ctx context.Context, line BudgetLine) (BudgetLine, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return BudgetLine{}, fmt.Errorf("failed to get current user: %w", err)
	}

	line.Category = category.Clean(line.Category)
	line.Subcategory = category.Clean(line.Subcategory)

	stored, err := s.repo.Upsert(ctx, userId, line)
	if err != nil {
		return BudgetLine{}, err
	}

	event := event_bus.NewEvent(ctx, event_bus.BudgetLineUpsertedEvent, event_bus.BudgetLineUpserted{
		UserId:      userId,
		Period:      stored.Period.String(),
		Category:    stored.Category,
		Subcategory: stored.Subcategory,
	})
	if err := s.bus.Publish(event); err != nil {
		log.Warnf("failed to publish budget event: %v", err)
	}
	return stored, nil
}

func (s *ServiceImpl) GetForMonth(ctx context.Context, period transaction.Period) ([]BudgetLine, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	lines, err := s.repo.GetForPeriod(ctx, userId, period)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 {
		return lines, nil
	}

	log.Infof("no budget found for %s, seeding template for user %d", period, userId)
	return s.seedTemplate(ctx, userId, period)
}

func (s *ServiceImpl) seedTemplate(ctx context.Context, userId int, period transaction.Period) ([]BudgetLine, error) {
	seeded := make([]BudgetLine, 0)
	for _, categoryName := range category.SortedCategories() {
		for _, subcategory := range category.DefaultTree[categoryName] {
			line, err := s.repo.Upsert(ctx, userId, BudgetLine{
				Period:      period,
				Category:    categoryName,
				Subcategory: subcategory,
				Amount:      decimal.Zero,
			})
			if err != nil {
				return nil, err
			}
			seeded = append(seeded, line)
		}
	}
	return seeded, nil
}

func (s *ServiceImpl) DeleteLine(ctx context.Context, id int) (bool, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to get current user: %w", err)
	}
	deleted, err := s.repo.Delete(ctx, userId, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("budget line not deleted, probably because it does not exist (%d) or the user (%d) is not the owner", id, userId)
	}
	return deleted, nil
}

func (s *ServiceImpl) CompareWithActuals(ctx context.Context, period transaction.Period, level Level) ([]ComparisonRow, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	lines, err := s.repo.GetForPeriod(ctx, currentUser.Id, period)
	if err != nil {
		return nil, err
	}
	transactions, err := s.transactionService.GetForPeriod(ctx, period)
	if err != nil {
		return nil, err
	}

	incomeCategory := currentUser.Settings.IncomeCategory
	if incomeCategory == "" {
		incomeCategory = "Income"
	}
	income := make([]transaction.Transaction, 0)
	expenses := make([]transaction.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if strings.EqualFold(tx.Category, incomeCategory) {
			income = append(income, tx)
		} else {
			expenses = append(expenses, tx)
		}
	}

	return Compare(expenses, lines, level, income, incomeCategory)
}
