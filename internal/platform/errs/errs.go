package errs

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores que cruzan la frontera con la base de datos.
type Kind int

const (
	KindUnknown Kind = iota
	KindConnection
	KindQuery
	KindNotFound
	KindInvalidInput
)

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindQuery:
		return "query"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	default:
		return "unknown"
	}
}

// Error envuelve un error con su Kind y la operación que falló.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func Connection(op string, err error) error { return E(KindConnection, op, err) }
func Query(op string, err error) error      { return E(KindQuery, op, err) }

// KindOf devuelve el Kind más externo de la cadena, o KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
