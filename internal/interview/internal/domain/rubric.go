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

package domain

import "fmt"

// 评估响应的字段名。prompt 和解析器共用这一份定义，
// 改字段名只能改这里，两边永远一致
const (
	FieldScore                  = "Score"
	FieldRelevanceCheck         = "Relevance_Check"
	FieldContentQuality         = "Content_Quality"
	FieldMissingElements        = "Missing_Elements"
	FieldImprovementSuggestions = "Improvement_Suggestions"
)

// ScoreBand 评分档位
type ScoreBand struct {
	Lo      int
	Hi      int
	Verdict string
	Desc    string
}

func (b ScoreBand) Render() string {
	if b.Lo == b.Hi {
		return fmt.Sprintf("**%d: %s** - %s", b.Lo, b.Verdict, b.Desc)
	}
	return fmt.Sprintf("**%d-%d: %s** - %s", b.Lo, b.Hi, b.Verdict, b.Desc)
}

// Rubric 评分标准，作为数据而不是散落在 prompt 文本里
type Rubric struct {
	Bands []ScoreBand
}

var DefaultRubric = Rubric{
	Bands: []ScoreBand{
		{Lo: 0, Hi: 1, Verdict: "IMMEDIATE FAIL", Desc: "Gibberish, random characters, or nonsensical text"},
		{Lo: 2, Hi: 3, Verdict: "FUNDAMENTALLY WRONG", Desc: "Major factual errors"},
		{Lo: 4, Hi: 5, Verdict: "SEVERELY INADEQUATE", Desc: "On-topic but superficial"},
		{Lo: 6, Hi: 7, Verdict: "BELOW EXPECTATIONS", Desc: "Covers basics but lacks detail"},
		{Lo: 8, Hi: 9, Verdict: "MEETS EXPECTATIONS", Desc: "Accurate, well-structured"},
		{Lo: 10, Hi: 10, Verdict: "EXCEPTIONAL", Desc: "Comprehensive and insightful"},
	},
}
