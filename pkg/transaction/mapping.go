package transaction

import "fmt"

// Field names a canonical transaction column.
type Field string

const (
	FieldDate        Field = "date"
	FieldAmount      Field = "amount"
	FieldCategory    Field = "category"
	FieldSubcategory Field = "subcategory"
	FieldDescription Field = "description"
)

// ColumnMapping maps source column names (as they appear in an uploaded
// spreadsheet) to canonical fields. Source columns not present in the mapping
// are dropped during normalization.
type ColumnMapping map[string]Field

// Validate checks the structural rules of a mapping: every target must be a
// canonical field, no canonical field may be targeted twice, and date and
// amount must both be mapped.
func (m ColumnMapping) Validate() error {
	seen := make(map[Field]string, len(m))
	for source, field := range m {
		switch field {
		case FieldDate, FieldAmount, FieldCategory, FieldSubcategory, FieldDescription:
		default:
			return fmt.Errorf("%w: %q (mapped from %q)", ErrUnknownField, field, source)
		}
		if previous, ok := seen[field]; ok {
			return fmt.Errorf("%w: both %q and %q map to %q", ErrDuplicateMapping, previous, source, field)
		}
		seen[field] = source
	}
	if _, ok := seen[FieldDate]; !ok {
		return fmt.Errorf("%w: %q is not mapped", ErrIncompleteMapping, FieldDate)
	}
	if _, ok := seen[FieldAmount]; !ok {
		return fmt.Errorf("%w: %q is not mapped", ErrIncompleteMapping, FieldAmount)
	}
	return nil
}

// source returns the source column mapped to the given canonical field, if any.
func (m ColumnMapping) source(field Field) (string, bool) {
	for source, f := range m {
		if f == field {
			return source, true
		}
	}
	return "", false
}
