package gql

import (
	"github.com/jhoicas/Inventario-visibility/internal/domain"
	apphttp "github.com/jhoicas/Inventario-visibility/internal/interfaces/http"
)

// codedError hace que graphql-go incluya extensions.code en errors[] (gqlerrors.ExtendedError).
type codedError struct {
	err  error
	code string
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

func (e *codedError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// wrap aplica la misma tabla de códigos que la API REST.
func wrap(err error) error {
	_, code := apphttp.ErrorStatus(err)
	msg := err
	switch code {
	case apphttp.CodeInternal:
		msg = errInternal
	case apphttp.CodeFetchFailure:
		msg = domain.ErrFetchFailure
	}
	return &codedError{err: msg, code: code}
}
