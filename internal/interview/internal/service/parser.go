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
	"regexp"
	"strconv"
	"strings"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
)

// 生成式输出没有任何格式保证，解析器的职责是从里面尽量捞出结构，
// 捞不出来就明确说捞不出来，让调用方走兜底

var (
	scoreRegexp = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
	// - / * / • 开头的列表项，或者 1. / 2) 这类编号项
	bulletRegexp  = regexp.MustCompile(`^[-*•]\s.*`)
	enumRegexp    = regexp.MustCompile(`^\d+[.)].+`)
	itemPrefixReg = regexp.MustCompile(`^[-*•\d.)]+\s*`)
)

// 整段输出当成题目接受之前要剥掉的前缀
var questionPrefixes = []string{
	"Question:", "Q:", "Interview Question:", "Technical Question:",
}

// parseQuestion 按行扫描字段，找不到 Question: 行但文本非平凡时，
// 剥掉前缀后整段接受。返回 false 表示什么都没捞到
func parseQuestion(raw string) (domain.GeneratedQuestion, bool) {
	res := domain.GeneratedQuestion{
		Type:             "technical",
		ExpectedConcepts: []string{"Domain knowledge", "Problem solving"},
	}
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "Question:"):
			res.Text = strings.TrimSpace(strings.TrimPrefix(line, "Question:"))
		case strings.HasPrefix(line, "Type:"):
			res.Type = strings.TrimSpace(strings.TrimPrefix(line, "Type:"))
		case strings.HasPrefix(line, "Expected_concepts:"):
			concepts := strings.TrimSpace(strings.TrimPrefix(line, "Expected_concepts:"))
			parts := strings.Split(concepts, ",")
			res.ExpectedConcepts = make([]string, 0, len(parts))
			for _, p := range parts {
				res.ExpectedConcepts = append(res.ExpectedConcepts, strings.TrimSpace(p))
			}
		}
	}
	if res.Text == "" {
		clean := strings.TrimSpace(raw)
		if len(clean) > 10 {
			for _, prefix := range questionPrefixes {
				if strings.HasPrefix(clean, prefix) {
					clean = strings.TrimSpace(strings.TrimPrefix(clean, prefix))
				}
			}
			if len(clean) > 10 {
				res.Text = clean
			}
		}
	}
	return res, res.Text != ""
}

// parseEvaluation 扫描评分标准约定的字段。
// 返回 false 表示既没有分数也没有反馈，调用方要走兜底阶梯
func parseEvaluation(raw string) (domain.Evaluation, bool) {
	var (
		score         float64
		feedbackParts []string
		suggestions   []string
		section       string
	)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, domain.FieldScore+":"):
			section = "score"
			rest := strings.TrimPrefix(line, domain.FieldScore+":")
			if m := scoreRegexp.FindString(rest); m != "" {
				score, _ = strconv.ParseFloat(m, 64)
			}
		case strings.HasPrefix(line, domain.FieldRelevanceCheck+":"):
			section = "feedback"
			feedbackParts = append(feedbackParts,
				"Relevance: "+strings.TrimSpace(strings.TrimPrefix(line, domain.FieldRelevanceCheck+":")))
		case strings.HasPrefix(line, domain.FieldContentQuality+":"):
			section = "feedback"
			feedbackParts = append(feedbackParts,
				"Content Quality: "+strings.TrimSpace(strings.TrimPrefix(line, domain.FieldContentQuality+":")))
		case strings.HasPrefix(line, domain.FieldMissingElements+":"):
			section = "feedback"
			feedbackParts = append(feedbackParts,
				"Missing Elements: "+strings.TrimSpace(strings.TrimPrefix(line, domain.FieldMissingElements+":")))
		case strings.HasPrefix(line, domain.FieldImprovementSuggestions+":"):
			section = "suggestions"
			if content := strings.TrimSpace(strings.TrimPrefix(line, domain.FieldImprovementSuggestions+":")); content != "" {
				suggestions = append(suggestions, content)
			}
		default:
			// 续行归并到上一个字段
			switch section {
			case "suggestions":
				if bulletRegexp.MatchString(line) || enumRegexp.MatchString(line) {
					suggestions = append(suggestions, strings.TrimSpace(itemPrefixReg.ReplaceAllString(line, "")))
				} else {
					suggestions = append(suggestions, line)
				}
			case "feedback":
				if len(feedbackParts) > 0 {
					feedbackParts[len(feedbackParts)-1] += " " + line
				}
			}
		}
	}
	feedback := strings.Join(feedbackParts, "\n\n")
	if feedback == "" && score == 0 {
		return domain.Evaluation{}, false
	}
	return domain.Evaluation{
		Score:       clampScore(score),
		Feedback:    feedback,
		Suggestions: suggestions,
	}, true
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}
