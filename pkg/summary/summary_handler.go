package summary

import (
	"encoding/json"
	"net/http"

	"github.com/finboard/finboard/internal/rest"
	"github.com/finboard/finboard/pkg/transaction"
)

type FinancialSummaryDTO struct {
	Period           string                       `json:"period"`
	TotalIncome      string                       `json:"totalIncome"`
	TotalExpenses    string                       `json:"totalExpenses"`
	MonthlyNetAmount string                       `json:"monthlyNetAmount"`
	PreviousBalance  string                       `json:"previousBalance"`
	NetAmount        string                       `json:"netAmount"`
	Income           []transaction.TransactionDTO `json:"income"`
	Expenses         []transaction.TransactionDTO `json:"expenses"`
}

type Handler struct {
	service  Service
	renderer SummaryRenderer
}

func NewHandler(service Service, renderer SummaryRenderer) *Handler {
	return &Handler{service, renderer}
}

// GetSummary returns the financial summary for the requested period, or the
// current month when no period is given. With Accept: text/csv the summary is
// rendered for export instead of JSON.
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	period := handler.service.CurrentPeriod()
	if periodString := r.URL.Query().Get("period"); periodString != "" {
		parsed, err := transaction.ParsePeriod(periodString)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid period format",
				Details: "period must be in YYYY-MM format",
			})
			return
		}
		period = parsed
	}
	includePreviousBalance := r.URL.Query().Has("includePreviousBalance")

	summary, err := handler.service.GetSummary(r.Context(), period, includePreviousBalance)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.renderer.RenderSummary(summary)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(csv))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func toDTO(summary FinancialSummary) FinancialSummaryDTO {
	income := make([]transaction.TransactionDTO, 0, len(summary.Income))
	for _, tx := range summary.Income {
		income = append(income, transaction.ToDTO(tx))
	}
	expenses := make([]transaction.TransactionDTO, 0, len(summary.Expenses))
	for _, tx := range summary.Expenses {
		expenses = append(expenses, transaction.ToDTO(tx))
	}
	return FinancialSummaryDTO{
		Period:           summary.Period.String(),
		TotalIncome:      summary.TotalIncome.StringFixed(2),
		TotalExpenses:    summary.TotalExpenses.StringFixed(2),
		MonthlyNetAmount: summary.MonthlyNetAmount.StringFixed(2),
		PreviousBalance:  summary.PreviousBalance.StringFixed(2),
		NetAmount:        summary.NetAmount.StringFixed(2),
		Income:           income,
		Expenses:         expenses,
	}
}
