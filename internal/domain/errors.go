package domain

import "fmt"

// InvalidRecordError indica um registro malformado que deve ser ignorado pelas projeções
type InvalidRecordError struct {
	Kind   string
	ID     string
	Reason string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.ID, e.Reason)
}

func NewInvalidRecordError(kind, id, reason string) *InvalidRecordError {
	return &InvalidRecordError{
		Kind:   kind,
		ID:     id,
		Reason: reason,
	}
}
