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
	"strings"
	"testing"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFallbackQuestion(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		dom        string
		difficulty string
		wantText   string
	}{
		{
			name:       "数据科学中等难度",
			dom:        domain.DomainDataScience,
			difficulty: "medium",
			wantText:   "Explain bias-variance tradeoff and how to handle it.",
		},
		{
			name:       "展示名拼法同样命中",
			dom:        "Data Science",
			difficulty: "medium",
			wantText:   "Explain bias-variance tradeoff and how to handle it.",
		},
		{
			name:       "软件工程简单难度",
			dom:        domain.DomainSoftwareEngineering,
			difficulty: "easy",
			wantText:   "What is the difference between a class and an object in object-oriented programming?",
		},
		{
			name:       "未知领域用通用兜底题",
			dom:        "quantum_basket_weaving",
			difficulty: "medium",
			wantText:   genericFallbackQuestion,
		},
		{
			name:       "未知难度用通用兜底题",
			dom:        domain.DomainRobotics,
			difficulty: "impossible",
			wantText:   genericFallbackQuestion,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q := fallbackQuestion(tc.dom, tc.difficulty)
			assert.Equal(t, tc.wantText, q.Text)
			assert.Equal(t, "technical", q.Type)
			assert.NotEmpty(t, q.ExpectedConcepts)
		})
	}
}

func TestIsGibberish(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		answer string
		want   bool
	}{
		{
			name:   "乱敲的字母串",
			answer: "asdkj qpx 991",
			want:   true,
		},
		{
			name:   "太短",
			answer: "ok",
			want:   true,
		},
		{
			name:   "正常回答",
			answer: "A binary tree is a hierarchical data structure with at most two children per node.",
			want:   false,
		},
		{
			name:   "带数字和符号的正常回答",
			answer: "The time complexity is O(n log n) because each merge level processes all elements.",
			want:   false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isGibberish(tc.answer))
		})
	}
}

func TestGibberishEvaluation(t *testing.T) {
	t.Parallel()
	eval := gibberishEvaluation()
	assert.Equal(t, 1.0, eval.Score)
	assert.Contains(t, eval.Feedback, "gibberish")
	assert.Len(t, eval.Suggestions, 4)
}

func TestLengthBasedEvaluation(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		answer    string
		wantScore float64
		wantPart  string
	}{
		{
			name:      "短回答锁在下限",
			answer:    "Inheritance lets classes reuse behavior.",
			wantScore: 4,
			wantPart:  "could benefit from more detailed explanations",
		},
		{
			name:      "中等长度按词数打分",
			answer:    strings.Repeat("word ", 40),
			wantScore: 5,
			wantPart:  "Solid answer",
		},
		{
			name:      "超长回答锁在上限",
			answer:    strings.Repeat("word ", 150),
			wantScore: 9,
			wantPart:  "very comprehensive answer",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			eval := lengthBasedEvaluation(tc.answer, domain.DomainSoftwareEngineering)
			assert.Equal(t, tc.wantScore, eval.Score)
			assert.Contains(t, eval.Feedback, tc.wantPart)
			assert.Len(t, eval.Suggestions, 3)
		})
	}
}

func TestFallbackEvaluation(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		answer    string
		dom       string
		wantScore float64
		wantPart  string
	}{
		{
			name:      "明确不会答",
			answer:    "Sorry, I don't know anything about this.",
			dom:       domain.DomainSoftwareEngineering,
			wantScore: 0.5,
			wantPart:  "interviews reward reasoning",
		},
		{
			name:      "两个词以内",
			answer:    "just guessing",
			dom:       domain.DomainSoftwareEngineering,
			wantScore: 1.0,
			wantPart:  "far too brief",
		},
		{
			name:      "不足八个词",
			answer:    "it stores elements in sorted order",
			dom:       domain.DomainSoftwareEngineering,
			wantScore: 2.5,
			wantPart:  "too brief",
		},
		{
			name:      "不足二十个词且没有关键词",
			answer:    "you keep the items ordered and then you look in the middle each time to find things",
			dom:       domain.DomainSoftwareEngineering,
			wantScore: 4.0,
			wantPart:  "needs more detail",
		},
		{
			name: "关键词加分",
			// 13 个词，基础分 4.0，命中 algorithm/complexity 两个关键词 +0.6
			answer:    "the algorithm has logarithmic complexity because it halves the search space each step",
			dom:       domain.DomainSoftwareEngineering,
			wantScore: 4.6,
			wantPart:  "Great use of 2 relevant technical terms.",
		},
		{
			name:      "单个关键词提示不带复数",
			answer:    "a hash map gives constant lookup on average which is why it backs most caches",
			dom:       domain.DomainSoftwareEngineering,
			wantScore: 4.3,
			wantPart:  "Great use of 1 relevant technical term.",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			eval := fallbackEvaluation(tc.answer, tc.dom)
			assert.InDelta(t, tc.wantScore, eval.Score, 0.0001)
			assert.Contains(t, eval.Feedback, tc.wantPart)
			assert.Equal(t, domainSuggestions(tc.dom), eval.Suggestions)
		})
	}
}

func TestFallbackEvaluationBoostCap(t *testing.T) {
	t.Parallel()
	// 长回答塞满关键词，加分最多 1.5，总分不超过 9.5
	keywords := strings.Join(keywordsByDomain[domain.DomainDataScience], " ")
	answer := keywords + " " + strings.Repeat("analysis detail ", 60)
	eval := fallbackEvaluation(answer, domain.DomainDataScience)
	assert.Equal(t, 9.5, eval.Score)
}
