package usecase

import (
	"context"
	"fmt"
)

// Transaction runs a sequence of store operations with registered
// compensations: when operation i fails, the compensations of the i-1
// operations that already ran execute in reverse order. It is a saga, not a
// database transaction; a failed compensation is reported to the caller's
// logger hook and leaves the stores inconsistent.
type Transaction struct {
	operations    []Operation
	compensations []Compensation

	// OnCompensationError is called when a rollback step itself fails.
	OnCompensationError func(name string, err error)
}

type Operation struct {
	Name string
	Fn   func(context.Context) error
}

type Compensation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{
		operations:    []Operation{},
		compensations: []Compensation{},
	}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, Operation{name, fn})
}

func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, Compensation{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}

	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		if i >= len(t.compensations) {
			continue
		}
		comp := t.compensations[i]
		if err := comp.Fn(ctx); err != nil && t.OnCompensationError != nil {
			t.OnCompensationError(comp.Name, err)
		}
	}
}
