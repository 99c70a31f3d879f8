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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	ErrSessionNotFound  = errors.New("面试会话不存在")
	ErrQuestionNotFound = errors.New("面试题目不存在")
)

//go:generate mockgen -source=./interview.go -destination=../../mocks/repository.mock.go -package=interviewmocks -typed=true Repository
type Repository interface {
	CreateSession(ctx context.Context, sess domain.Session) (domain.Session, error)
	SessionById(ctx context.Context, id int64) (domain.Session, error)
	// CompleteSession score 为 nil 表示没有任何已判分的题目
	CompleteSession(ctx context.Context, id int64, score *float64, completedAt int64) error
	ExpiredActiveSessions(ctx context.Context, now int64, offset, limit int) ([]domain.Session, error)

	CreateQuestion(ctx context.Context, q domain.Question) (domain.Question, error)
	QuestionById(ctx context.Context, id int64) (domain.Question, error)
	QuestionsBySid(ctx context.Context, sid int64) ([]domain.Question, error)
	CountQuestions(ctx context.Context, sid int64) (int64, error)
	UpdateAnswer(ctx context.Context, qid int64, answer string, eval domain.Evaluation, answeredAt int64) error
}

// CachedRepository 会话走缓存，题目直查库。
// 题目列表在一次面试里本来就不长，缓存一致性不值得为它操心
type CachedRepository struct {
	sessionDAO  dao.SessionDAO
	questionDAO dao.QuestionDAO
	cache       cache.SessionCache
	logger      *elog.Component
}

func NewCachedRepository(sessionDAO dao.SessionDAO,
	questionDAO dao.QuestionDAO, c cache.SessionCache) Repository {
	return &CachedRepository{
		sessionDAO:  sessionDAO,
		questionDAO: questionDAO,
		cache:       c,
		logger:      elog.DefaultLogger,
	}
}

func (r *CachedRepository) CreateSession(ctx context.Context, sess domain.Session) (domain.Session, error) {
	id, err := r.sessionDAO.Create(ctx, r.sessionToEntity(sess))
	if err != nil {
		return domain.Session{}, err
	}
	created, err := r.sessionDAO.FindById(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}
	res := r.sessionToDomain(created)
	if err = r.cache.Set(ctx, res); err != nil {
		r.logger.Warn("缓存会话失败", elog.Int64("sid", id), elog.FieldErr(err))
	}
	return res, nil
}

func (r *CachedRepository) SessionById(ctx context.Context, id int64) (domain.Session, error) {
	sess, err := r.cache.Get(ctx, id)
	if err == nil {
		return sess, nil
	}
	entity, err := r.sessionDAO.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}
	sess = r.sessionToDomain(entity)
	if err = r.cache.Set(ctx, sess); err != nil {
		r.logger.Warn("缓存会话失败", elog.Int64("sid", id), elog.FieldErr(err))
	}
	return sess, nil
}

func (r *CachedRepository) CompleteSession(ctx context.Context, id int64, score *float64, completedAt int64) error {
	var val sql.NullFloat64
	if score != nil {
		val = sql.NullFloat64{Float64: *score, Valid: true}
	}
	err := r.sessionDAO.Complete(ctx, id, val, completedAt)
	if err != nil {
		return err
	}
	// 缓存里的还是进行中的旧状态，删掉让下次读回源
	if err = r.cache.Del(ctx, id); err != nil {
		r.logger.Warn("删除会话缓存失败", elog.Int64("sid", id), elog.FieldErr(err))
	}
	return nil
}

func (r *CachedRepository) ExpiredActiveSessions(ctx context.Context, now int64, offset, limit int) ([]domain.Session, error) {
	entities, err := r.sessionDAO.FindExpiredActive(ctx, now, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.InterviewSession) domain.Session {
		return r.sessionToDomain(src)
	}), nil
}

func (r *CachedRepository) CreateQuestion(ctx context.Context, q domain.Question) (domain.Question, error) {
	id, err := r.questionDAO.Create(ctx, r.questionToEntity(q))
	if err != nil {
		return domain.Question{}, err
	}
	entity, err := r.questionDAO.FindById(ctx, id)
	if err != nil {
		return domain.Question{}, err
	}
	return r.questionToDomain(entity), nil
}

func (r *CachedRepository) QuestionById(ctx context.Context, id int64) (domain.Question, error) {
	entity, err := r.questionDAO.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return domain.Question{}, err
	}
	return r.questionToDomain(entity), nil
}

func (r *CachedRepository) QuestionsBySid(ctx context.Context, sid int64) ([]domain.Question, error) {
	entities, err := r.questionDAO.FindBySid(ctx, sid)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.InterviewQuestion) domain.Question {
		return r.questionToDomain(src)
	}), nil
}

func (r *CachedRepository) CountQuestions(ctx context.Context, sid int64) (int64, error) {
	return r.questionDAO.CountBySid(ctx, sid)
}

func (r *CachedRepository) UpdateAnswer(ctx context.Context, qid int64, answer string,
	eval domain.Evaluation, answeredAt int64) error {
	return r.questionDAO.UpdateAnswer(ctx, qid, answer, eval.Score,
		eval.Feedback, eval.Suggestions, answeredAt)
}

func (r *CachedRepository) sessionToDomain(sess dao.InterviewSession) domain.Session {
	res := domain.Session{
		Id:              sess.Id,
		SN:              sess.SN,
		Domain:          sess.Domain,
		Difficulty:      sess.Difficulty,
		DurationMinutes: sess.DurationMinutes,
		Status:          domain.SessionStatus(sess.Status),
		Ctime:           sess.Ctime,
	}
	if sess.Score.Valid {
		score := sess.Score.Float64
		res.Score = &score
	}
	if sess.CompletedAt.Valid {
		res.CompletedAt = sess.CompletedAt.Int64
	}
	return res
}

func (r *CachedRepository) sessionToEntity(sess domain.Session) dao.InterviewSession {
	res := dao.InterviewSession{
		Id:              sess.Id,
		SN:              sess.SN,
		Domain:          sess.Domain,
		Difficulty:      sess.Difficulty,
		DurationMinutes: sess.DurationMinutes,
		Status:          sess.Status.ToUint8(),
	}
	if sess.Score != nil {
		res.Score = sql.NullFloat64{Float64: *sess.Score, Valid: true}
	}
	if sess.CompletedAt > 0 {
		res.CompletedAt = sql.NullInt64{Int64: sess.CompletedAt, Valid: true}
	}
	return res
}

func (r *CachedRepository) questionToDomain(q dao.InterviewQuestion) domain.Question {
	res := domain.Question{
		Id:               q.Id,
		Sid:              q.Sid,
		Text:             q.QuestionText,
		ExpectedConcepts: q.ExpectedConcepts.Val,
		UserAnswer:       q.UserAnswer.String,
		Feedback:         q.Feedback.String,
		Suggestions:      q.Suggestions.Val,
		AskedAt:          q.Ctime,
	}
	if q.Score.Valid {
		score := q.Score.Float64
		res.Score = &score
	}
	if q.AnsweredAt.Valid {
		res.AnsweredAt = q.AnsweredAt.Int64
	}
	return res
}

func (r *CachedRepository) questionToEntity(q domain.Question) dao.InterviewQuestion {
	return dao.InterviewQuestion{
		Id:           q.Id,
		Sid:          q.Sid,
		QuestionText: q.Text,
		ExpectedConcepts: sqlx.JsonColumn[[]string]{
			Val:   q.ExpectedConcepts,
			Valid: len(q.ExpectedConcepts) > 0,
		},
	}
}
