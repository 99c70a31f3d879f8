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
	"math"
	"regexp"
	"strings"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
)

// 生成后端挂掉时的正确性兜底。这条路径必须完全确定、没有副作用，
// 表驱动，不碰网络不碰库

const genericFallbackQuestion = "Tell me about your experience and approach to solving problems in this field."

var fallbackQuestions = map[string]map[string]string{
	domain.DomainSoftwareEngineering: {
		"easy":   "What is the difference between a class and an object in object-oriented programming?",
		"medium": "Explain the SOLID principles and provide an example of each.",
		"hard":   "Design a scalable microservices architecture for an e-commerce platform.",
	},
	domain.DomainDataScience: {
		"easy":   "What is the difference between supervised and unsupervised learning?",
		"medium": "Explain bias-variance tradeoff and how to handle it.",
		"hard":   "Design an A/B testing framework for a recommendation system.",
	},
	domain.DomainAIML: {
		"easy":   "What is the difference between artificial intelligence and machine learning?",
		"medium": "Explain the concept of backpropagation in neural networks.",
		"hard":   "How would you implement a transformer model from scratch?",
	},
	domain.DomainHardwareECE: {
		"easy":   "Explain Ohm's law and its applications.",
		"medium": "What is the difference between analog and digital signals?",
		"hard":   "Design a low-power microcontroller system for IoT applications.",
	},
	domain.DomainRobotics: {
		"easy":   "What are the main components of a robotic system?",
		"medium": "Explain PID control and its use in robotics.",
		"hard":   "How would you implement SLAM for an autonomous robot?",
	},
}

// fallbackQuestion 静态查表。NormalizeDomain 同时容忍 slug 和展示名两种拼法
func fallbackQuestion(dom, difficulty string) domain.GeneratedQuestion {
	text := genericFallbackQuestion
	if byDifficulty, ok := fallbackQuestions[domain.NormalizeDomain(dom)]; ok {
		if q, ok := byDifficulty[difficulty]; ok {
			text = q
		}
	}
	return domain.GeneratedQuestion{
		Text:             text,
		Type:             "technical",
		ExpectedConcepts: []string{"Domain knowledge", "Problem solving"},
	}
}

var nonAnswerPhrases = []string{
	"i don't know", "i dont know", "no idea", "not sure", "idk", "no clue",
}

var alphaWordRegexp = regexp.MustCompile(`^[a-zA-Z]{3,}$`)

// looksLikeWord 纯字母、长度>=3、含元音且没有连续 4 个以上辅音。
// 把 "qpx"、"asdkj" 这类乱敲的字母串挡在外面
func looksLikeWord(token string) bool {
	if !alphaWordRegexp.MatchString(token) {
		return false
	}
	lower := strings.ToLower(token)
	hasVowel := false
	consonants := 0
	for _, r := range lower {
		if strings.ContainsRune("aeiouy", r) {
			hasVowel = true
			consonants = 0
			continue
		}
		consonants++
		if consonants >= 4 {
			return false
		}
	}
	return hasVowel
}

// isGibberish 像真实单词的词元占比低于 0.3，或者整个回答不足 5 个字符。
// 单独检查是为了避免对乱输入默认给中间分
func isGibberish(answer string) bool {
	trimmed := strings.TrimSpace(answer)
	if len(trimmed) < 5 {
		return true
	}
	tokens := strings.Fields(answer)
	total := len(tokens)
	if total == 0 {
		total = 1
	}
	words := 0
	for _, token := range tokens {
		if looksLikeWord(token) {
			words++
		}
	}
	return float64(words)/float64(total) < 0.3
}

func gibberishEvaluation() domain.Evaluation {
	return domain.Evaluation{
		Score:    1.0,
		Feedback: "Your response appears to be gibberish or random characters. Please provide a coherent answer.",
		Suggestions: []string{
			"Read the question carefully",
			"Provide a structured response with clear explanations",
			"Use proper technical terminology",
			"Include specific examples",
		},
	}
}

// lengthBasedEvaluation 解析不出结构、回答又不是乱码时的保守打分。
// 分数随长度走，锁在 [4,9]
func lengthBasedEvaluation(answer, dom string) domain.Evaluation {
	wordCount := len(strings.Fields(answer))
	score := math.Min(9, math.Max(4, float64(wordCount)/8.0))
	var feedback string
	var suggestions []string
	switch {
	case wordCount < 15:
		feedback = "Your answer demonstrates understanding but could benefit from more detailed explanations and specific examples."
		suggestions = []string{
			"Provide more detailed explanations",
			"Include specific examples",
			"Discuss relevant technical approaches",
		}
	case wordCount > 100:
		feedback = "You provided a very comprehensive answer with excellent detail."
		suggestions = []string{
			"Consider organizing with clear structure",
			"Focus on critical aspects first",
			"Practice concise summaries",
		}
	default:
		feedback = "Solid answer that demonstrates good understanding."
		suggestions = []string{
			"Include more technical terminology specific to " + domain.DomainLabel(dom),
			"Provide concrete examples",
			"Consider discussing trade-offs",
		}
	}
	return domain.Evaluation{Score: score, Feedback: feedback, Suggestions: suggestions}
}

// fallbackEvaluation 生成后端完全不可用时的确定性判分：
// 先识别明确的"不会答"，再按词数分档，最后用领域关键词加分
func fallbackEvaluation(answer, dom string) domain.Evaluation {
	lower := strings.ToLower(answer)
	for _, phrase := range nonAnswerPhrases {
		if strings.Contains(lower, phrase) {
			return domain.Evaluation{
				Score:       0.5,
				Feedback:    "It's okay not to know everything, but interviews reward reasoning. Try to talk through what you do know about the problem instead of giving up.",
				Suggestions: domainSuggestions(dom),
			}
		}
	}

	wordCount := len(strings.Fields(answer))
	var score float64
	var feedback string
	switch {
	case wordCount < 3:
		score = 1.0
		feedback = "Your answer is far too brief to evaluate. Technical interviews require complete explanations."
	case wordCount < 8:
		score = 2.5
		feedback = "Your answer is too brief. Technical interviews require detailed explanations."
	case wordCount < 20:
		score = 4.0
		feedback = "Your answer covers some basics but needs more detail."
	case wordCount < 50:
		score = 6.0
		feedback = "Good answer with reasonable detail. Consider adding specific examples."
	case wordCount < 100:
		score = 7.5
		feedback = "Well-structured answer with good detail."
	default:
		score = 8.0
		feedback = "Comprehensive answer with excellent detail."
	}

	matches := 0
	for _, keyword := range domainKeywords(dom) {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			matches++
		}
	}
	if matches > 0 {
		boost := math.Min(1.5, float64(matches)*0.3)
		score = math.Min(9.5, score+boost)
		plural := ""
		if matches > 1 {
			plural = "s"
		}
		feedback += fmt.Sprintf(" Great use of %d relevant technical term%s.", matches, plural)
	}

	return domain.Evaluation{
		Score:       score,
		Feedback:    feedback,
		Suggestions: domainSuggestions(dom),
	}
}

var keywordsByDomain = map[string][]string{
	domain.DomainSoftwareEngineering: {
		"algorithm", "complexity", "scalability", "design pattern", "OOP", "SOLID",
		"database", "API", "REST", "microservices", "testing", "debugging", "optimization",
		"data structure", "array", "linked list", "tree", "graph", "hash", "performance",
	},
	domain.DomainDataScience: {
		"statistics", "probability", "regression", "classification", "clustering", "model",
		"feature", "dataset", "correlation", "variance", "bias", "validation", "cross-validation",
		"pandas", "numpy", "matplotlib", "sklearn", "analysis", "hypothesis", "p-value",
	},
	domain.DomainAIML: {
		"neural network", "deep learning", "gradient", "backpropagation", "overfitting",
		"regularization", "CNN", "RNN", "transformer", "attention", "training", "inference",
		"supervised", "unsupervised", "reinforcement", "algorithm", "optimization", "loss function",
	},
	domain.DomainHardwareECE: {
		"circuit", "voltage", "current", "resistance", "capacitor", "inductor", "transistor",
		"amplifier", "digital", "analog", "microcontroller", "FPGA", "PCB", "signal", "power",
	},
	domain.DomainRobotics: {
		"sensor", "actuator", "control", "PID", "kinematics", "dynamics", "path planning",
		"localization", "mapping", "SLAM", "computer vision", "feedback", "servo", "motor",
	},
}

func domainKeywords(dom string) []string {
	return keywordsByDomain[domain.NormalizeDomain(dom)]
}

var suggestionsByDomain = map[string][]string{
	domain.DomainSoftwareEngineering: {
		"Discuss time and space complexity when relevant",
		"Consider scalability and maintainability",
		"Include specific design patterns or principles",
	},
	domain.DomainDataScience: {
		"Mention relevant statistical concepts",
		"Discuss data preprocessing and validation",
		"Consider model evaluation metrics",
	},
	domain.DomainAIML: {
		"Explain the mathematical intuition behind algorithms",
		"Discuss model architecture choices",
		"Consider training and inference optimization",
	},
	domain.DomainHardwareECE: {
		"Include circuit analysis or component specifications",
		"Discuss power consumption and efficiency",
		"Consider real-world constraints and tolerances",
	},
	domain.DomainRobotics: {
		"Discuss sensor fusion and perception",
		"Consider real-time constraints",
		"Include control theory concepts when relevant",
	},
}

var genericSuggestions = []string{
	"Provide more specific technical details",
	"Include examples from real-world applications",
	"Structure your answer clearly",
}

func domainSuggestions(dom string) []string {
	if suggestions, ok := suggestionsByDomain[domain.NormalizeDomain(dom)]; ok {
		return suggestions
	}
	return genericSuggestions
}
