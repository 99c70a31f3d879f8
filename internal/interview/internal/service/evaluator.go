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

// Evaluator 判分管道。阶梯顺序：
// 生成失败 → 确定性兜底判分；
// 解析失败 → 乱码检查 → 长度启发式；
// 解析成功但没有建议 → 领域建议库补齐。
// 无论后端什么状态都返回一个合法的 Evaluation
type Evaluator struct {
	llm    ai.LLMService
	prompt *PromptBuilder
	logger *elog.Component
}

func NewEvaluator(llm ai.LLMService, prompt *PromptBuilder) *Evaluator {
	return &Evaluator{
		llm:    llm,
		prompt: prompt,
		logger: elog.DefaultLogger,
	}
}

func (e *Evaluator) Evaluate(ctx context.Context, question, answer, dom string) domain.Evaluation {
	p := e.prompt.EvaluationPrompt(question, answer, dom)
	resp, err := e.llm.Generate(ctx, ai.GenRequest{Prompt: p})
	if err != nil {
		e.logger.Warn("生成判分失败，使用兜底判分",
			elog.String("domain", dom),
			elog.FieldErr(err))
		return fallbackEvaluation(answer, dom)
	}
	eval, ok := parseEvaluation(resp.Answer)
	if !ok {
		if isGibberish(answer) {
			return gibberishEvaluation()
		}
		return lengthBasedEvaluation(answer, dom)
	}
	if len(eval.Suggestions) == 0 {
		eval.Suggestions = domainSuggestions(dom)
	}
	return eval
}
