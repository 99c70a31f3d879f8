package ai

import (
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm"
)

type GenRequest = domain.GenRequest
type GenResponse = domain.GenResponse
type LLMService = llm.Service

// ErrGenerationUnavailable 生成后端不可用，调用方据此走确定性兜底
var ErrGenerationUnavailable = domain.ErrGenerationUnavailable
