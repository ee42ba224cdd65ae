package transaction

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/finboard/finboard/internal/rest"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TransactionDTO struct {
	ID          int    `json:"id,omitempty"`
	Date        string `json:"date"`
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Amount      string `json:"amount"`
	Description string `json:"description,omitempty"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Day         int    `json:"day"`
	MonthName   string `json:"monthName"`
	WeekdayName string `json:"weekdayName"`
}

type ImportRequestDTO struct {
	Rows    []map[string]any  `json:"rows"`
	Mapping map[string]string `json:"mapping"`
}

type ImportResultDTO struct {
	Stored         int `json:"stored"`
	DroppedDates   int `json:"droppedDates"`
	DroppedAmounts int `json:"droppedAmounts"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	log.Debug("Importing transactions")
	w.Header().Set("Content-Type", "application/json")

	var request ImportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	table := make(RawTable, 0, len(request.Rows))
	for _, row := range request.Rows {
		table = append(table, RawRow(row))
	}
	mapping := make(ColumnMapping, len(request.Mapping))
	for source, field := range request.Mapping {
		mapping[source] = Field(field)
	}

	result, err := handler.service.Import(r.Context(), table, mapping)
	if err != nil {
		if isMappingError(err) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid import request",
				Details: err.Error(),
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ImportResultDTO(result)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var transactions []Transaction
	var err error
	if periodString := r.URL.Query().Get("period"); periodString != "" {
		period, parseErr := ParsePeriod(periodString)
		if parseErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid period format",
				Details: "period must be in YYYY-MM format",
			})
			return
		}
		transactions, err = handler.service.GetForPeriod(r.Context(), period)
	} else {
		transactions, err = handler.service.GetAll(r.Context())
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]TransactionDTO, 0, len(transactions))
	for _, tx := range transactions {
		dtos = append(dtos, ToDTO(tx))
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == 0 {
		dto.ID = id
	}
	if dto.ID != id {
		http.Error(w, "Invalid transaction id in request body", http.StatusBadRequest)
		return
	}

	tx, err := FromDTO(dto)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error:   "Invalid transaction",
			Details: err.Error(),
		})
		return
	}

	ok, err := handler.service.Update(r.Context(), tx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ToDTO(tx)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToDTO converts a transaction into its API shape, attaching the derived
// calendar parts.
func ToDTO(tx Transaction) TransactionDTO {
	dto := TransactionDTO{
		ID:          tx.ID,
		Date:        tx.Date.Format("2006-01-02"),
		Category:    tx.Category,
		Subcategory: tx.Subcategory,
		Amount:      tx.Amount.String(),
		Description: tx.Description,
	}
	if parts, err := EnrichDate(tx.Date); err == nil {
		dto.Year = parts.Year
		dto.Month = parts.Month
		dto.Day = parts.Day
		dto.MonthName = parts.MonthName
		dto.WeekdayName = parts.WeekdayName
	}
	return dto
}

// FromDTO converts an API transaction back into the canonical form.
func FromDTO(dto TransactionDTO) (Transaction, error) {
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          dto.ID,
		Date:        date,
		Category:    dto.Category,
		Subcategory: dto.Subcategory,
		Amount:      amount,
		Description: dto.Description,
	}, nil
}

func isMappingError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrIncompleteMapping) ||
		errors.Is(err, ErrDuplicateMapping) ||
		errors.Is(err, ErrUnknownField)
}
