package user

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	// PasswordHash is the bcrypt hash of the user's password. It never leaves
	// the backend.
	PasswordHash string
	Settings     Settings
}

type Settings struct {
	// Currency is the display currency code, e.g. "EUR".
	Currency string
	// IncomeCategory is the label whose transactions count as income.
	// Matching is case-insensitive; empty means the "Income" default.
	IncomeCategory string
}
