package transaction

import "errors"

var (
	// ErrMissingColumn indicates a mapped source column is absent from the
	// input table. The wrapping error names the column.
	ErrMissingColumn = errors.New("missing column")

	// ErrIncompleteMapping indicates the column mapping omits a mandatory
	// canonical field (date or amount).
	ErrIncompleteMapping = errors.New("incomplete column mapping")

	// ErrDuplicateMapping indicates two source columns map to the same
	// canonical field.
	ErrDuplicateMapping = errors.New("duplicate column mapping")

	// ErrUnknownField indicates a mapping targets a name outside the
	// canonical schema.
	ErrUnknownField = errors.New("unknown canonical field")

	// ErrInvalidDate indicates a null or unparseable date reached a component
	// that requires a valid one.
	ErrInvalidDate = errors.New("invalid date")
)
