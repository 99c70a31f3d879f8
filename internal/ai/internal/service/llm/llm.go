package llm

import (
	"context"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm/handler"
)

//go:generate mockgen -source=./llm.go -destination=../../../mocks/llm.mock.go -package=aimocks -typed=true Service
type Service interface {
	Generate(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error)
}

type llmService struct {
	handler handler.Handler
}

func NewService(root handler.Handler) Service {
	return &llmService{
		handler: root,
	}
}

func (s *llmService) Generate(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error) {
	return s.handler.Handle(ctx, req)
}
