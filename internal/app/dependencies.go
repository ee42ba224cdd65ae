package app

import (
	"github.com/finboard/finboard/internal/config"
	"github.com/finboard/finboard/internal/event_bus"
	"github.com/finboard/finboard/pkg/budget"
	"github.com/finboard/finboard/pkg/summary"
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/finboard/finboard/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	UserService user.Service
	UserHandler *user.Handler

	TransactionRepo    transaction.Repo
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	BudgetRepo            budget.Repo
	BudgetService         budget.Service
	CsvComparisonRenderer budget.ComparisonRenderer
	BudgetHandler         *budget.Handler

	SummaryService     summary.Service
	CsvSummaryRenderer summary.SummaryRenderer
	SummaryHandler     *summary.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Bus.Subscribe(event_bus.TransactionsImportedEvent, func(e event_bus.Event) error {
		if imported, ok := e.Data.(event_bus.TransactionsImported); ok {
			log.Infof("user %d imported %d transactions (%d dropped: %d bad dates, %d bad amounts)",
				imported.UserId, imported.Stored,
				imported.DroppedDates+imported.DroppedAmounts,
				imported.DroppedDates, imported.DroppedAmounts)
		}
		return nil
	})

	deps.UserService = user.NewService(user.NewRepo(db), user.Settings{
		Currency:       cfg.Finance.Currency,
		IncomeCategory: cfg.Finance.IncomeCategory,
	})
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.TransactionRepo = transaction.NewRepo(db)
	deps.TransactionService = transaction.NewService(deps.TransactionRepo, deps.Bus)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.BudgetRepo = budget.NewRepo(db)
	deps.BudgetService = budget.NewServiceImpl(deps.BudgetRepo, deps.TransactionService, deps.Bus)
	deps.CsvComparisonRenderer = budget.NewCsvComparisonRenderer()
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService, deps.CsvComparisonRenderer)

	deps.SummaryService = summary.NewServiceImpl(deps.TransactionService)
	deps.CsvSummaryRenderer = summary.NewCsvSummaryRenderer()
	deps.SummaryHandler = summary.NewHandler(deps.SummaryService, deps.CsvSummaryRenderer)

	return deps
}
