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
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/event"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository"
	"github.com/ecodeclub/ai-interviewer/internal/speech"
	"github.com/ecodeclub/ekit/syncx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSessionNotFound  = repository.ErrSessionNotFound
	ErrQuestionNotFound = repository.ErrQuestionNotFound
	// ErrSessionExpired 面试时间已到。调用方要把它当跳转结果页的信号，
	// 不是可重试错误
	ErrSessionExpired = errors.New("面试时间已到")
)

const (
	defaultDifficulty      = "medium"
	defaultDurationMinutes = 45
)

//go:generate mockgen -source=./flow.go -destination=../../mocks/flow.mock.go -package=interviewmocks -typed=true FlowService
type FlowService interface {
	// Start domain 会被归一成规范 slug，difficulty/duration 缺省 medium/45
	Start(ctx context.Context, dom, difficulty string, durationMinutes int64) (domain.Session, error)
	// NextQuestion 出题状态机：回放、续问或者生成新题。
	// 超过截止时刻会先触发完成，然后返回 ErrSessionExpired
	NextQuestion(ctx context.Context, sid int64, priorContext string) (domain.Question, error)
	// SubmitAnswer 判分并把回答原子地写进题目
	SubmitAnswer(ctx context.Context, qid int64, answer string) (domain.Evaluation, error)
	// SubmitAudio 转写之后转交 SubmitAnswer。识别失败或者转写过短
	// 直接给零分评估，不落库
	SubmitAudio(ctx context.Context, qid int64, audio []byte) (domain.Evaluation, error)
	// Complete 结算最终分：所有已判分题目的平均分，保留两位小数。
	// 一道题都没答时最终分为 nil
	Complete(ctx context.Context, sid int64) (*float64, error)
	Detail(ctx context.Context, sid int64) (domain.Session, error)
	Question(ctx context.Context, qid int64) (domain.Question, error)
	Questions(ctx context.Context, sid int64) ([]domain.Question, int64, error)
}

type flowService struct {
	repo      repository.Repository
	generator *QuestionGenerator
	evaluator *Evaluator
	speech    speech.Service
	storage   speech.Storage
	producer  *event.SessionCompletedProducer
	// 会话级互斥，关掉并发首问时的重复出题竞态
	locks  syncx.Map[int64, *sync.Mutex]
	logger *elog.Component
	sn     func() string
}

func NewFlowService(repo repository.Repository, generator *QuestionGenerator,
	evaluator *Evaluator, speechSvc speech.Service, storage speech.Storage,
	producer *event.SessionCompletedProducer, sn func() string) FlowService {
	return &flowService{
		repo:      repo,
		generator: generator,
		evaluator: evaluator,
		speech:    speechSvc,
		storage:   storage,
		producer:  producer,
		logger:    elog.DefaultLogger,
		sn:        sn,
	}
}

func (f *flowService) Start(ctx context.Context, dom, difficulty string, durationMinutes int64) (domain.Session, error) {
	if difficulty == "" {
		difficulty = defaultDifficulty
	}
	if durationMinutes <= 0 {
		durationMinutes = defaultDurationMinutes
	}
	return f.repo.CreateSession(ctx, domain.Session{
		SN:              f.sn(),
		Domain:          domain.NormalizeDomain(dom),
		Difficulty:      difficulty,
		DurationMinutes: durationMinutes,
		Status:          domain.SessionStatusActive,
	})
}

func (f *flowService) NextQuestion(ctx context.Context, sid int64, priorContext string) (domain.Question, error) {
	mu := f.sessionLock(sid)
	mu.Lock()
	defer mu.Unlock()

	sess, err := f.repo.SessionById(ctx, sid)
	if err != nil {
		return domain.Question{}, err
	}
	if err = f.checkDeadline(ctx, sess); err != nil {
		return domain.Question{}, err
	}

	questions, err := f.repo.QuestionsBySid(ctx, sid)
	if err != nil {
		return domain.Question{}, err
	}

	if strings.TrimSpace(priorContext) == "" {
		// 初始请求。已经出过题就回放第一题，防止刷新页面重复出题
		if len(questions) > 0 {
			return questions[0], nil
		}
	} else if !strings.Contains(priorContext, domain.NextQuestionMarker) {
		// 带上下文但没有显式要下一题：疑似重复调用，回放第一道没答的题
		for _, q := range questions {
			if !q.Answered() {
				return q, nil
			}
		}
	}

	generated := f.generator.Generate(ctx, sess.Domain, sess.Difficulty, priorContext)
	return f.repo.CreateQuestion(ctx, domain.Question{
		Sid:              sid,
		Text:             generated.Text,
		ExpectedConcepts: generated.ExpectedConcepts,
	})
}

func (f *flowService) SubmitAnswer(ctx context.Context, qid int64, answer string) (domain.Evaluation, error) {
	question, err := f.repo.QuestionById(ctx, qid)
	if err != nil {
		return domain.Evaluation{}, err
	}

	mu := f.sessionLock(question.Sid)
	mu.Lock()
	defer mu.Unlock()

	sess, err := f.repo.SessionById(ctx, question.Sid)
	if err != nil {
		return domain.Evaluation{}, err
	}
	if err = f.checkDeadline(ctx, sess); err != nil {
		return domain.Evaluation{}, err
	}

	eval := f.evaluator.Evaluate(ctx, question.Text, answer, sess.Domain)
	err = f.repo.UpdateAnswer(ctx, qid, answer, eval, time.Now().UnixMilli())
	if err != nil {
		return domain.Evaluation{}, err
	}
	return eval, nil
}

func (f *flowService) SubmitAudio(ctx context.Context, qid int64, audio []byte) (domain.Evaluation, error) {
	text, err := f.speech.SpeechToText(ctx, audio)
	if err != nil {
		return domain.Evaluation{}, err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || speech.IsRecognitionFailure(trimmed) {
		return domain.Evaluation{
			Score:    0,
			Feedback: "No speech detected in the audio. Please ensure you're speaking clearly into the microphone and try again.",
			Suggestions: []string{
				"Check that your microphone is working and not muted",
				"Speak clearly and loudly enough for the microphone to pick up",
				"Try recording again or use the text input option instead",
				"Speak clearly and at a normal pace",
				"Try recording again or type your answer instead",
			},
		}, nil
	}
	if len(trimmed) < 10 {
		return domain.Evaluation{
			Score:    0,
			Feedback: fmt.Sprintf("Answer too short: '%s'. Please provide a more detailed response.", trimmed),
			Suggestions: []string{
				"Elaborate on your answer with examples",
				"Explain your reasoning",
				"Consider the key concepts related to the question",
			},
		}, nil
	}
	// 原始录音存档失败不影响判分
	if _, err = f.storage.SaveAudio(audio); err != nil {
		f.logger.Warn("保存回答录音失败", elog.Int64("qid", qid), elog.FieldErr(err))
	}
	return f.SubmitAnswer(ctx, qid, trimmed)
}

func (f *flowService) Complete(ctx context.Context, sid int64) (*float64, error) {
	mu := f.sessionLock(sid)
	mu.Lock()
	defer mu.Unlock()

	sess, err := f.repo.SessionById(ctx, sid)
	if err != nil {
		return nil, err
	}
	if sess.Status == domain.SessionStatusCompleted {
		// 幂等：重复结算直接返回既有结果，不发事件
		return sess.Score, nil
	}
	return f.complete(ctx, sess)
}

// complete 结算。调用方必须已经持有会话锁
func (f *flowService) complete(ctx context.Context, sess domain.Session) (*float64, error) {
	questions, err := f.repo.QuestionsBySid(ctx, sess.Id)
	if err != nil {
		return nil, err
	}
	var sum float64
	var count int
	for _, q := range questions {
		if q.Score != nil {
			sum += *q.Score
			count++
		}
	}
	var final *float64
	if count > 0 {
		avg := math.Round(sum/float64(count)*100) / 100
		final = &avg
	}
	err = f.repo.CompleteSession(ctx, sess.Id, final, time.Now().UnixMilli())
	if err != nil {
		return nil, err
	}
	if f.producer != nil {
		evt := event.SessionCompletedEvent{SN: sess.SN, Domain: sess.Domain, Score: final}
		if perr := f.producer.Produce(ctx, evt); perr != nil {
			f.logger.Error("发送面试完成消息失败",
				elog.Int64("sid", sess.Id),
				elog.FieldErr(perr))
		}
	}
	return final, nil
}

// checkDeadline 超时先结算再返回 ErrSessionExpired
func (f *flowService) checkDeadline(ctx context.Context, sess domain.Session) error {
	if !sess.Expired(time.Now()) {
		return nil
	}
	if sess.Status != domain.SessionStatusCompleted {
		if _, err := f.complete(ctx, sess); err != nil {
			f.logger.Error("超时自动结算失败",
				elog.Int64("sid", sess.Id),
				elog.FieldErr(err))
		}
	}
	return ErrSessionExpired
}

func (f *flowService) Detail(ctx context.Context, sid int64) (domain.Session, error) {
	return f.repo.SessionById(ctx, sid)
}

func (f *flowService) Question(ctx context.Context, qid int64) (domain.Question, error) {
	return f.repo.QuestionById(ctx, qid)
}

func (f *flowService) Questions(ctx context.Context, sid int64) ([]domain.Question, int64, error) {
	var (
		eg        errgroup.Group
		questions []domain.Question
		total     int64
	)
	eg.Go(func() error {
		var err error
		questions, err = f.repo.QuestionsBySid(ctx, sid)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = f.repo.CountQuestions(ctx, sid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}

func (f *flowService) sessionLock(sid int64) *sync.Mutex {
	mu, _ := f.locks.LoadOrStore(sid, &sync.Mutex{})
	return mu
}
