package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/finboard/finboard/internal/rest"
	"github.com/finboard/finboard/pkg/transaction"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetLineDTO struct {
	ID          int    `json:"id,omitempty"`
	Period      string `json:"period"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	Amount      string `json:"amount"`
}

type ComparisonRowDTO struct {
	Label    string `json:"label"`
	Budgeted string `json:"budgeted"`
	Actual   string `json:"actual"`
}

type Handler struct {
	service  Service
	renderer ComparisonRenderer
}

func NewHandler(service Service, renderer ComparisonRenderer) *Handler {
	return &Handler{service, renderer}
}

func (handler *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	period, ok := requirePeriod(w, r)
	if !ok {
		return
	}

	lines, err := handler.service.GetForMonth(r.Context(), period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]BudgetLineDTO, 0, len(lines))
	for _, line := range lines {
		dtos = append(dtos, lineToDTO(line))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) SetLine(w http.ResponseWriter, r *http.Request) {
	log.Debug("Storing budget line")
	w.Header().Set("Content-Type", "application/json")

	var dto BudgetLineDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	line, err := lineFromDTO(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid budget line",
			Details: err.Error(),
		})
		return
	}

	stored, err := handler.service.SetLine(r.Context(), line)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(lineToDTO(stored)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) DeleteLine(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.service.DeleteLine(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Budget line not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetComparison returns budget-vs-actual rows for the period. With
// Accept: text/csv the rows are rendered for export instead of JSON.
func (handler *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	period, ok := requirePeriod(w, r)
	if !ok {
		return
	}
	level := Level(r.URL.Query().Get("level"))
	if level == "" {
		level = LevelCategory
	}

	rows, err := handler.service.CompareWithActuals(r.Context(), period, level)
	if err != nil {
		if errors.Is(err, ErrInvalidLevel) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid comparison level",
				Details: "level must be \"category\" or \"subcategory\"",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.Header.Get("Accept") == "text/csv" {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		csv, err := handler.renderer.RenderComparison(rows)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(csv))
		return
	}

	dtos := make([]ComparisonRowDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, ComparisonRowDTO{
			Label:    row.Label,
			Budgeted: row.Budgeted.StringFixed(2),
			Actual:   row.Actual.StringFixed(2),
		})
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func requirePeriod(w http.ResponseWriter, r *http.Request) (transaction.Period, bool) {
	period, err := transaction.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid period format",
			Details: "period must be in YYYY-MM format",
		})
		return transaction.Period{}, false
	}
	return period, true
}

func lineToDTO(line BudgetLine) BudgetLineDTO {
	return BudgetLineDTO{
		ID:          line.ID,
		Period:      line.Period.String(),
		Category:    line.Category,
		Subcategory: line.Subcategory,
		Amount:      line.Amount.StringFixed(2),
	}
}

func lineFromDTO(dto BudgetLineDTO) (BudgetLine, error) {
	period, err := transaction.ParsePeriod(dto.Period)
	if err != nil {
		return BudgetLine{}, err
	}
	amount := decimal.Zero
	if dto.Amount != "" {
		amount, err = decimal.NewFromString(dto.Amount)
		if err != nil {
			return BudgetLine{}, err
		}
	}
	return BudgetLine{
		ID:          dto.ID,
		Period:      period,
		Category:    dto.Category,
		Subcategory: dto.Subcategory,
		Amount:      amount,
	}, nil
}
