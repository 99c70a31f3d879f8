package handler

import (
	"context"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
)

type HandleFunc func(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error)

func (f HandleFunc) Handle(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error) {
	return f(ctx, req)
}

//go:generate mockgen -source=./type.go -destination=./mocks/handler.mock.go -package=hdlmocks -typed=true Handler
type Handler interface {
	Handle(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error)
}

type Builder interface {
	Next(next Handler) Handler
}
