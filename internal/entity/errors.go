package entity

import "errors"

var (
	ErrLeadNotFound    = errors.New("lead não encontrado")
	ErrCommentNotFound = errors.New("comentário não encontrado")
	ErrInvalidStatus   = errors.New("status fora do funil de vendas")
	ErrForbidden       = errors.New("apenas o autor pode alterar o comentário")
	ErrEmptyContent    = errors.New("comentário vazio")

	ErrBusinessNotFound  = errors.New("empresa não encontrada")
	ErrAlreadyInPipeline = errors.New("empresa já está no funil")
)
