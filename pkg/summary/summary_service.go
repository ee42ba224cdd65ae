package summary

import (
	"context"
	"fmt"

	"github.com/finboard/finboard/internal/utils"
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/finboard/finboard/pkg/user"
	log "github.com/sirupsen/logrus"
)

type Service interface {
	// GetSummary aggregates the current user's transactions for the period.
	GetSummary(ctx context.Context, period transaction.Period, includePreviousBalance bool) (FinancialSummary, error)
	// CurrentPeriod returns the period the clock currently falls in.
	CurrentPeriod() transaction.Period
}

type ServiceImpl struct {
	transactionService transaction.Service
	clock              utils.Clock
}

func NewServiceImpl(transactionService transaction.Service) *ServiceImpl {
	return &ServiceImpl{
		transactionService: transactionService,
		clock:              &utils.SystemClock{},
	}
}

func (s *ServiceImpl) GetSummary(ctx context.Context, period transaction.Period, includePreviousBalance bool) (FinancialSummary, error) {
	currentUser, err := user.CurrentUser(ctx)
	if err != nil {
		return FinancialSummary{}, fmt.Errorf("failed to get current user: %w", err)
	}

	// The prior-balance fold needs every transaction before the period, so
	// the full set is loaded rather than just the period's slice.
	transactions, err := s.transactionService.GetAll(ctx)
	if err != nil {
		return FinancialSummary{}, err
	}
	log.Debugf("aggregating %d transactions for period %s", len(transactions), period)

	incomeCategory := currentUser.Settings.IncomeCategory
	if incomeCategory == "" {
		incomeCategory = DefaultIncomeCategory
	}
	return Calculate(transactions, period, includePreviousBalance, incomeCategory), nil
}

func (s *ServiceImpl) CurrentPeriod() transaction.Period {
	return transaction.PeriodOf(s.clock.Now())
}
