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
	"fmt"
	"strings"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/kbase"
	"github.com/ecodeclub/ekit/slice"
)

const (
	// 出题检索三段上下文，判分只要两段
	questionContextLimit   = 3
	evaluationContextLimit = 2
)

// PromptBuilder 纯函数式的 prompt 组装，状态只有知识库引用
type PromptBuilder struct {
	kbase kbase.Service
}

func NewPromptBuilder(kbaseSvc kbase.Service) *PromptBuilder {
	return &PromptBuilder{kbase: kbaseSvc}
}

func (b *PromptBuilder) QuestionPrompt(dom, difficulty, priorContext string) string {
	label := domain.DomainLabel(dom)
	query := fmt.Sprintf("%s %s interview question topics", label, difficulty)
	contextText := strings.Join(b.kbase.Relevant(query, dom, questionContextLimit), "\n")
	if priorContext == "" {
		priorContext = "This is the first question"
	}
	return fmt.Sprintf(`You are an expert interviewer for %s positions.
Generate a %s level interview question based on the following context.
Ensure that the question is specific, practical, and relevant to current industry practices and also doesn't require code execution.

RELEVANT TOPICS AND CONTEXT:
%s

Domain: %s
Difficulty: %s
Previous context: %s

Based on the relevant topics above, create a specific, practical question that:
1. Tests both theoretical knowledge and practical application
2. Is appropriate for the %s difficulty level
3. Draws from the specific topics mentioned in the context
4. Is engaging and relevant to current industry practices

Format your response as:
Question: [Your specific question here]
Type: [technical/behavioral/coding]
Expected_concepts: [key concepts from the context that the answer should cover]
Difficulty_justification: [why this is %s level]
`, label, difficulty, contextText, label, difficulty, priorContext, difficulty, difficulty)
}

func (b *PromptBuilder) EvaluationPrompt(question, answer, dom string) string {
	label := domain.DomainLabel(dom)
	contextText := strings.Join(b.kbase.Relevant(question, dom, evaluationContextLimit), "\n")
	rubricText := strings.Join(slice.Map(domain.DefaultRubric.Bands,
		func(idx int, band domain.ScoreBand) string {
			return band.Render()
		}), "\n")
	return fmt.Sprintf(`You are an EXTREMELY STRICT technical interviewer for %s. Your reputation depends on maintaining the highest standards. You must be ruthless in your evaluation and never give undeserved scores.

DOMAIN CONTEXT:
%s

Question: %s
Answer: %s

**CRITICAL EVALUATION RULES:**

**FIRST: RELEVANCE CHECK**
- Does the answer actually address the question asked? If not, score 0-1 immediately.
- Is the answer in the correct domain (%s)? If not, score 0-1 immediately.
- Is the answer coherent and understandable? If it's gibberish, nonsense, or unrelated rambling, score 0-1 immediately.

**STRICT SCORING RUBRIC (BE RUTHLESS):**

%s

**FORMAT YOUR RESPONSE:**
%s: [0-10]
%s: [Pass/Fail - explain why]
%s: [Assessment of technical accuracy and depth]
%s: [Key concepts not addressed]
%s: [Specific, actionable advice]

**Remember: Your job is to maintain standards, not to be kind. Be merciless with poor answers.**
`, label, contextText, question, answer, label, rubricText,
		domain.FieldScore, domain.FieldRelevanceCheck, domain.FieldContentQuality,
		domain.FieldMissingElements, domain.FieldImprovementSuggestions)
}
