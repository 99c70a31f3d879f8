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
	"testing"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseQuestion(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		raw    string
		wantOk bool
		wantQ  domain.GeneratedQuestion
	}{
		{
			name: "标准格式",
			raw: `Question: Explain the SOLID principles.
Type: technical
Expected_concepts: SOLID, OOP, design
Difficulty_justification: medium level`,
			wantOk: true,
			wantQ: domain.GeneratedQuestion{
				Text:             "Explain the SOLID principles.",
				Type:             "technical",
				ExpectedConcepts: []string{"SOLID", "OOP", "design"},
			},
		},
		{
			name:   "没有字段标记但文本非平凡_整段接受",
			raw:    "How would you design a rate limiter for a public API?",
			wantOk: true,
			wantQ: domain.GeneratedQuestion{
				Text:             "How would you design a rate limiter for a public API?",
				Type:             "technical",
				ExpectedConcepts: []string{"Domain knowledge", "Problem solving"},
			},
		},
		{
			name:   "剥掉题目前缀之后接受",
			raw:    "Interview Question: What is a goroutine and how is it scheduled?",
			wantOk: true,
			wantQ: domain.GeneratedQuestion{
				Text:             "What is a goroutine and how is it scheduled?",
				Type:             "technical",
				ExpectedConcepts: []string{"Domain knowledge", "Problem solving"},
			},
		},
		{
			name:   "文本太短_解析失败",
			raw:    "Q: hi",
			wantOk: false,
		},
		{
			name:   "空输出_解析失败",
			raw:    "   \n  ",
			wantOk: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q, ok := parseQuestion(tc.raw)
			assert.Equal(t, tc.wantOk, ok)
			if tc.wantOk {
				assert.Equal(t, tc.wantQ.Text, q.Text)
				assert.Equal(t, tc.wantQ.Type, q.Type)
				assert.Equal(t, tc.wantQ.ExpectedConcepts, q.ExpectedConcepts)
			}
		})
	}
}

func TestParseEvaluation(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name   string
		raw    string
		wantOk bool
		want   domain.Evaluation
	}{
		{
			name: "标准格式",
			raw: `Score: 7.5
Relevance_Check: Pass - the answer addresses the question
Content_Quality: Accurate but shallow
Missing_Elements: No discussion of trade-offs
Improvement_Suggestions:
- Add concrete examples
- Discuss trade-offs`,
			wantOk: true,
			want: domain.Evaluation{
				Score: 7.5,
				Feedback: "Relevance: Pass - the answer addresses the question\n\n" +
					"Content Quality: Accurate but shallow\n\n" +
					"Missing Elements: No discussion of trade-offs",
				Suggestions: []string{"Add concrete examples", "Discuss trade-offs"},
			},
		},
		{
			name: "分数越界被夹回",
			raw: `Score: 15
Content_Quality: Excellent`,
			wantOk: true,
			want: domain.Evaluation{
				Score:    10,
				Feedback: "Content Quality: Excellent",
			},
		},
		{
			name: "反馈续行归并到上一个字段",
			raw: `Score: 6
Content_Quality: Good coverage of the basics
but misses deeper implications`,
			wantOk: true,
			want: domain.Evaluation{
				Score:    6,
				Feedback: "Content Quality: Good coverage of the basics but misses deeper implications",
			},
		},
		{
			name: "编号建议项剥掉前缀",
			raw: `Score: 5
Improvement_Suggestions:
1. Study the fundamentals
2) Practice explaining out loud`,
			wantOk: true,
			want: domain.Evaluation{
				Score:       5,
				Suggestions: []string{"Study the fundamentals", "Practice explaining out loud"},
			},
		},
		{
			name:   "自由文本_解析失败",
			raw:    "I think this answer is pretty good overall, nice work.",
			wantOk: false,
		},
		{
			name:   "空输出_解析失败",
			raw:    "",
			wantOk: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			eval, ok := parseEvaluation(tc.raw)
			assert.Equal(t, tc.wantOk, ok)
			if tc.wantOk {
				assert.Equal(t, tc.want.Score, eval.Score)
				assert.Equal(t, tc.want.Feedback, eval.Feedback)
				assert.Equal(t, tc.want.Suggestions, eval.Suggestions)
			}
		})
	}
}
