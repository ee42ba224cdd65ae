package budget

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/finboard/finboard/internal/test_utils"
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/finboard/finboard/pkg/user"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	container *postgres.PostgresContainer
	newDb     func() *pgxpool.Pool
)

func TestMain(m *testing.M) {
	container, newDb = test_utils.TestWithDB()
	code := m.Run()
	_ = container.Terminate(context.Background())
	os.Exit(code)
}

func setupTestRepository(t *testing.T) (context.Context, *RepoImpl, int) {
	ctx := context.Background()
	db := newDb()
	t.Cleanup(db.Close)

	userId, err := user.NewRepo(db).CreateUser(ctx, user.User{
		Uid:          uuid.NewString(),
		Username:     uuid.NewString(),
		DisplayName:  "Test User",
		PasswordHash: "x",
		Settings:     user.Settings{Currency: "EUR", IncomeCategory: "Income"},
	})
	assert.NoError(t, err)

	return ctx, NewRepo(db), userId
}

func TestRepoImpl_Upsert_CreatesLine(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	period := transaction.PeriodOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	// when
	line, err := repo.Upsert(ctx, userId, BudgetLine{
		Period:      period,
		Category:    "Food",
		Subcategory: "Groceries",
		Amount:      decimal.NewFromInt(300),
	})

	// then
	assert.NoError(t, err)
	assert.NotZero(t, line.ID)

	stored, err := repo.GetForPeriod(ctx, userId, period)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.Equal(t, "Food", stored[0].Category)
	assert.True(t, stored[0].Amount.Equal(decimal.NewFromInt(300)))
}

func TestRepoImpl_Upsert_OverwritesExistingAmount(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	period := transaction.PeriodOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	first, err := repo.Upsert(ctx, userId, BudgetLine{
		Period:      period,
		Category:    "Food",
		Subcategory: "Groceries",
		Amount:      decimal.NewFromInt(300),
	})
	assert.NoError(t, err)

	// when
	second, err := repo.Upsert(ctx, userId, BudgetLine{
		Period:      period,
		Category:    "Food",
		Subcategory: "Groceries",
		Amount:      decimal.NewFromInt(450),
	})

	// then the line is updated in place, not duplicated
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.GetForPeriod(ctx, userId, period)
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.True(t, stored[0].Amount.Equal(decimal.NewFromInt(450)))
}

func TestRepoImpl_GetForPeriod_ExcludesOtherPeriods(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	march := transaction.PeriodOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	april := transaction.PeriodOf(time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	_, err := repo.Upsert(ctx, userId, BudgetLine{Period: march, Category: "Food", Subcategory: "Groceries", Amount: decimal.NewFromInt(300)})
	assert.NoError(t, err)
	_, err = repo.Upsert(ctx, userId, BudgetLine{Period: april, Category: "Food", Subcategory: "Groceries", Amount: decimal.NewFromInt(200)})
	assert.NoError(t, err)

	// when
	stored, err := repo.GetForPeriod(ctx, userId, march)

	// then
	assert.NoError(t, err)
	assert.Len(t, stored, 1)
	assert.True(t, stored[0].Amount.Equal(decimal.NewFromInt(300)))
}

func TestRepoImpl_Delete(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)
	period := transaction.PeriodOf(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	line, err := repo.Upsert(ctx, userId, BudgetLine{Period: period, Category: "Food", Subcategory: "Groceries", Amount: decimal.NewFromInt(300)})
	assert.NoError(t, err)

	// when
	ok, err := repo.Delete(ctx, userId, line.ID)

	// then
	assert.NoError(t, err)
	assert.True(t, ok)

	stored, err := repo.GetForPeriod(ctx, userId, period)
	assert.NoError(t, err)
	assert.Empty(t, stored)
}

func TestRepoImpl_Delete_UnknownLine(t *testing.T) {
	// given
	ctx, repo, userId := setupTestRepository(t)

	// when
	ok, err := repo.Delete(ctx, userId, 99999)

	// then
	assert.NoError(t, err)
	assert.False(t, ok)
}
