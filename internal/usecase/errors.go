package usecase

import (
	"errors"
	"fmt"
)

// PersistenceError embrulha uma falha do colaborador de persistência.
// É o único erro que nasce DEPOIS de uma mutação otimista e, portanto,
// o único que dispara rollback. Sempre retryable para o chamador.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("falha de persistência em %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Retryable() bool {
	return true
}

func IsPersistenceError(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
