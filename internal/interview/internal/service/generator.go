// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"

	"github.com/ecodeclub/ai-interviewer/internal/ai"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// QuestionGenerator 出题管道：prompt → 生成 → 解析 → 兜底。
// 对外永远成功，生成侧的任何失败都吸收成确定性兜底题
type QuestionGenerator struct {
	llm    ai.LLMService
	prompt *PromptBuilder
	logger *elog.Component
}

func NewQuestionGenerator(llm ai.LLMService, prompt *PromptBuilder) *QuestionGenerator {
	return &QuestionGenerator{
		llm:    llm,
		prompt: prompt,
		logger: elog.DefaultLogger,
	}
}

func (g *QuestionGenerator) Generate(ctx context.Context, dom, difficulty, priorContext string) domain.GeneratedQuestion {
	p := g.prompt.QuestionPrompt(dom, difficulty, priorContext)
	resp, err := g.llm.Generate(ctx, ai.GenRequest{Prompt: p})
	if err != nil {
		g.logger.Warn("生成题目失败，使用兜底题",
			elog.String("domain", dom),
			elog.String("difficulty", difficulty),
			elog.FieldErr(err))
		return fallbackQuestion(dom, difficulty)
	}
	q, ok := parseQuestion(resp.Answer)
	if !ok {
		g.logger.Warn("生成输出无法解析成题目，使用兜底题",
			elog.String("domain", dom),
			elog.String("difficulty", difficulty))
		return fallbackQuestion(dom, difficulty)
	}
	return q
}
