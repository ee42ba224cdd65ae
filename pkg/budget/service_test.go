package budget

import (
	"context"
	"testing"
	"time"

	"github.com/finboard/finboard/internal/event_bus"
	"github.com/finboard/finboard/pkg/category"
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/finboard/finboard/pkg/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var testPeriod = transaction.Period{Year: 2024, Month: time.March}

func setup(t *testing.T) (Service, *StubRepo, *transaction.StubRepo, context.Context, func()) {
	budgetRepo := NewStubRepo()
	transactionRepo := transaction.NewStubRepo()
	bus := event_bus.NewEventBus()
	transactionService := transaction.NewService(transactionRepo, bus)
	service := NewServiceImpl(budgetRepo, transactionService, bus)

	ctx := user.WithUser(context.Background(), user.User{
		Id:       1,
		Username: "test-user-1",
		Settings: user.Settings{Currency: "EUR", IncomeCategory: "Income"},
	})

	return service, budgetRepo, transactionRepo, ctx, func() {
		t.Log("Teardown after test")
	}
}

func TestServiceImpl_SetLine_CleansLabels(t *testing.T) {
	service, _, _, ctx, teardown := setup(t)
	defer teardown()

	// when
	stored, err := service.SetLine(ctx, BudgetLine{
		Period:      testPeriod,
		Category:    "  dining   out ",
		Subcategory: "coffee",
		Amount:      decimal.NewFromInt(50),
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, "Dining Out", stored.Category)
	assert.Equal(t, "Coffee", stored.Subcategory)
	assert.NotZero(t, stored.ID)
}

func TestServiceImpl_SetLine_UpdatesInPlace(t *testing.T) {
	service, _, _, ctx, teardown := setup(t)
	defer teardown()

	// given
	first, err := service.SetLine(ctx, BudgetLine{
		Period: testPeriod, Category: "Food", Subcategory: "Groceries", Amount: decimal.NewFromInt(100),
	})
	assert.NoError(t, err)

	// when
	second, err := service.SetLine(ctx, BudgetLine{
		Period: testPeriod, Category: "Food", Subcategory: "Groceries", Amount: decimal.NewFromInt(250),
	})

	// then
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "re-assignment must not create a second line")

	lines, err := service.GetForMonth(ctx, testPeriod)
	assert.NoError(t, err)
	assert.Len(t, lines, 1)
	assert.True(t, decimal.NewFromInt(250).Equal(lines[0].Amount))
}

func TestServiceImpl_GetForMonth_SeedsTemplateWhenEmpty(t *testing.T) {
	service, _, _, ctx, teardown := setup(t)
	defer teardown()

	// when
	lines, err := service.GetForMonth(ctx, testPeriod)

	// then
	assert.NoError(t, err)
	expected := 0
	for _, subcategories := range category.DefaultTree {
		expected += len(subcategories)
	}
	assert.Len(t, lines, expected)
	for _, line := range lines {
		assert.True(t, line.Amount.IsZero())
		assert.Equal(t, testPeriod, line.Period)
	}
}

func TestServiceImpl_CompareWithActuals(t *testing.T) {
	service, budgetRepo, transactionRepo, ctx, teardown := setup(t)
	defer teardown()

	// given
	_, err := budgetRepo.Upsert(ctx, 1, BudgetLine{
		Period: testPeriod, Category: "Food", Amount: decimal.NewFromInt(300),
	})
	assert.NoError(t, err)
	_, err = transactionRepo.StoreAll(ctx, 1, []transaction.Transaction{
		{Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), Category: "Food", Amount: decimal.NewFromInt(120)},
		{Date: time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC), Category: "Income", Amount: decimal.NewFromInt(1000)},
		{Date: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), Category: "Food", Amount: decimal.NewFromInt(999)},
	})
	assert.NoError(t, err)

	// when
	rows, err := service.CompareWithActuals(ctx, testPeriod, LevelCategory)

	// then
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	food := findRow(t, rows, "Food")
	assert.True(t, decimal.NewFromInt(300).Equal(food.Budgeted))
	assert.True(t, decimal.NewFromInt(120).Equal(food.Actual), "April transactions must not leak into March")

	income := findRow(t, rows, "Income")
	assert.True(t, income.Budgeted.IsZero())
	assert.True(t, decimal.NewFromInt(1000).Equal(income.Actual))
}

func TestServiceImpl_RequiresUserInContext(t *testing.T) {
	service, _, _, _, teardown := setup(t)
	defer teardown()

	// when
	_, err := service.GetForMonth(context.Background(), testPeriod)

	// then
	assert.ErrorIs(t, err, user.ErrNoUser)
}
