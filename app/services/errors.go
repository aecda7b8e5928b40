package services

import "errors"

// Error kinds. Controllers map them to HTTP statuses with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

// Messages sent to clients.
const (
	MsgIncompleteData  = "Dados incompletos"
	MsgUserRequired    = "userId é obrigatório"
	MsgPostNotFound    = "Post não encontrado"
	MsgCommentNotFound = "Comentário não encontrado"
	MsgProductNotFound = "Produto não encontrado"
	MsgForbidden       = "Sem permissão para excluir"
)

// Error is a domain failure carrying the message shown to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationError(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func notFoundError(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func forbiddenError() error {
	return &Error{Kind: ErrForbidden, Message: MsgForbidden}
}

// Message returns the client message of a domain error, or "" for anything else.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
