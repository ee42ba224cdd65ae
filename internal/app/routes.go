package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// User management
	r.HandleFunc("/api/user", deps.UserHandler.Register).Methods("POST")
	r.HandleFunc("/api/user/login", deps.UserHandler.Login).Methods("POST")
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current/settings", deps.UserHandler.UpdateSettings).Methods("PUT")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")

	// Transactions
	r.HandleFunc("/api/transactions/import", deps.TransactionHandler.Import).Methods("POST")
	r.HandleFunc("/api/transactions", deps.TransactionHandler.GetTransactions).Methods("GET")
	r.HandleFunc("/api/transactions/{id}", deps.TransactionHandler.UpdateTransaction).Methods("PUT")
	r.HandleFunc("/api/transactions/{id}", deps.TransactionHandler.DeleteTransaction).Methods("DELETE")

	// Budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetBudget).Queries("period", "{period}").Methods("GET")
	r.HandleFunc("/api/budget/line", deps.BudgetHandler.SetLine).Methods("PUT")
	r.HandleFunc("/api/budget/line/{id}", deps.BudgetHandler.DeleteLine).Methods("DELETE")
	r.HandleFunc("/api/budget/comparison", deps.BudgetHandler.GetComparison).Queries("period", "{period}").Methods("GET")

	// Summary
	r.HandleFunc("/api/summary", deps.SummaryHandler.GetSummary).Methods("GET")
}
