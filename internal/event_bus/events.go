package event_bus

const (
	TransactionsImportedEvent EventType = "transactions.imported"
	BudgetLineUpsertedEvent   EventType = "budget.line-upserted"
)

// TransactionsImported is published after an upload has been normalized and
// stored, carrying the drop diagnostics of the coercion steps.
type TransactionsImported struct {
	UserId         int
	Stored         int
	DroppedDates   int
	DroppedAmounts int
}

// BudgetLineUpserted is published whenever a budget line is created or its
// amount re-assigned for a (period, category, subcategory) triple.
type BudgetLineUpserted struct {
	UserId      int
	Period      string
	Category    string
	Subcategory string
}
