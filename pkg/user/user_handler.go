package user

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Uid            string `json:"uid"`
	Username       string `json:"username"`
	DisplayName    string `json:"displayName,omitempty"`
	Currency       string `json:"currency,omitempty"`
	IncomeCategory string `json:"incomeCategory,omitempty"`
}

type RegistrationDTO struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName,omitempty"`
	Password    string `json:"password"`
}

type CredentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SettingsDTO struct {
	Currency       string `json:"currency,omitempty"`
	IncomeCategory string `json:"incomeCategory,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new user")
	w.Header().Set("Content-Type", "application/json")

	var dto RegistrationDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.Username == "" || dto.Password == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	created, err := handler.service.Register(r.Context(), User{
		Username:    dto.Username,
		DisplayName: dto.DisplayName,
	}, dto.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toUserDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	authenticated, err := handler.service.Authenticate(r.Context(), dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toUserDTO(authenticated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := handler.service.GetCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			http.Error(w, "not logged in", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toUserDTO(current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := handler.service.UpdateSettings(r.Context(), Settings{
		Currency:       dto.Currency,
		IncomeCategory: dto.IncomeCategory,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SettingsDTO{
		Currency:       updated.Currency,
		IncomeCategory: updated.IncomeCategory,
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) IsUsernameAvailable(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	username := r.URL.Query().Get("username")

	available, err := handler.service.IsUsernameAvailable(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]bool{"available": available}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func toUserDTO(user User) UserDTO {
	return UserDTO{
		Uid:            user.Uid,
		Username:       user.Username,
		DisplayName:    user.DisplayName,
		Currency:       user.Settings.Currency,
		IncomeCategory: user.Settings.IncomeCategory,
	}
}
