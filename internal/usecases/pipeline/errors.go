package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStage     = errors.New("invalid pipeline stage")
	ErrEntityIDRequired = errors.New("entity ID is required")
	ErrPlanNotFound     = errors.New("treatment plan not found")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrUnitNotAllowed   = errors.New("user cannot access the plan unit")
	ErrUpdateEntity     = errors.New("error updating pipeline entity")
	ErrGenerateID       = errors.New("error generating stage change ID")
)

// TransitionError indica uma transição recusada pelas regras do funil
type TransitionError struct {
	EntityID string
	From     string
	To       string
	Reason   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition %q -> %q rejected for %s: %s", e.From, e.To, e.EntityID, e.Reason)
}
