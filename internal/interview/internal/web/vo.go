package web

import (
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
)

type CreateSessionReq struct {
	Domain          string `json:"domain"`
	Difficulty      string `json:"difficulty"`
	DurationMinutes int64  `json:"durationMinutes"`
}

type SessionVO struct {
	Id              int64    `json:"id"`
	SN              string   `json:"sn"`
	Domain          string   `json:"domain"`
	DomainLabel     string   `json:"domainLabel"`
	Difficulty      string   `json:"difficulty"`
	DurationMinutes int64    `json:"durationMinutes"`
	Status          string   `json:"status"`
	Score           *float64 `json:"score"`
	Ctime           string   `json:"ctime"`
	CompletedAt     string   `json:"completedAt,omitempty"`
}

type NextQuestionReq struct {
	Sid int64 `json:"sid"`
	// 可选的前情上下文，带 "Moving to next question" 标记表示明确要下一题
	Context string `json:"context"`
}

type QuestionVO struct {
	Id               int64    `json:"id"`
	Sid              int64    `json:"sid"`
	Text             string   `json:"text"`
	ExpectedConcepts []string `json:"expectedConcepts,omitempty"`
	UserAnswer       string   `json:"userAnswer,omitempty"`
	Score            *float64 `json:"score,omitempty"`
	Feedback         string   `json:"feedback,omitempty"`
	Suggestions      []string `json:"suggestions,omitempty"`
	AskedAt          string   `json:"askedAt"`
	AnsweredAt       string   `json:"answeredAt,omitempty"`
}

type QuestionListVO struct {
	Total     int64        `json:"total"`
	Questions []QuestionVO `json:"questions"`
}

type AnswerReq struct {
	Answer string `json:"answer"`
}

type EvaluationVO struct {
	Qid         int64    `json:"qid"`
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

type CompleteVO struct {
	FinalScore *float64 `json:"finalScore"`
}

type DomainVO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TopicsVO struct {
	Domain      string   `json:"domain"`
	Topics      []string `json:"topics"`
	TotalTopics int      `json:"totalTopics"`
}

type FeedbackSpeechReq struct {
	Text string `json:"text"`
}

func newSessionVO(sess domain.Session) SessionVO {
	vo := SessionVO{
		Id:              sess.Id,
		SN:              sess.SN,
		Domain:          sess.Domain,
		DomainLabel:     domain.DomainLabel(sess.Domain),
		Difficulty:      sess.Difficulty,
		DurationMinutes: sess.DurationMinutes,
		Status:          sess.Status.String(),
		Score:           sess.Score,
		Ctime:           time.UnixMilli(sess.Ctime).Format(time.DateTime),
	}
	if sess.CompletedAt > 0 {
		vo.CompletedAt = time.UnixMilli(sess.CompletedAt).Format(time.DateTime)
	}
	return vo
}

func newQuestionVO(q domain.Question) QuestionVO {
	vo := QuestionVO{
		Id:               q.Id,
		Sid:              q.Sid,
		Text:             q.Text,
		ExpectedConcepts: q.ExpectedConcepts,
		UserAnswer:       q.UserAnswer,
		Score:            q.Score,
		Feedback:         q.Feedback,
		Suggestions:      q.Suggestions,
		AskedAt:          time.UnixMilli(q.AskedAt).Format(time.DateTime),
	}
	if q.Answered() {
		vo.AnsweredAt = time.UnixMilli(q.AnsweredAt).Format(time.DateTime)
	}
	return vo
}

func newEvaluationVO(qid int64, eval domain.Evaluation) EvaluationVO {
	return EvaluationVO{
		Qid:         qid,
		Score:       eval.Score,
		Feedback:    eval.Feedback,
		Suggestions: eval.Suggestions,
	}
}
