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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
)

var ErrDuplicateSN = errors.New("会话序列号冲突")

type SessionDAO interface {
	Create(ctx context.Context, sess InterviewSession) (int64, error)
	FindById(ctx context.Context, id int64) (InterviewSession, error)
	// Complete 置为已完成。已经完成的行不会被重复更新
	Complete(ctx context.Context, id int64, score sql.NullFloat64, completedAt int64) error
	// FindExpiredActive 进行中但已经超过截止时刻的会话
	FindExpiredActive(ctx context.Context, now int64, offset, limit int) ([]InterviewSession, error)
}

type QuestionDAO interface {
	Create(ctx context.Context, q InterviewQuestion) (int64, error)
	FindById(ctx context.Context, id int64) (InterviewQuestion, error)
	// FindBySid 按创建顺序返回
	FindBySid(ctx context.Context, sid int64) ([]InterviewQuestion, error)
	CountBySid(ctx context.Context, sid int64) (int64, error)
	// UpdateAnswer 一次 UPDATE 写入全部回答字段，保证原子性
	UpdateAnswer(ctx context.Context, id int64, answer string, score float64,
		feedback string, suggestions []string, answeredAt int64) error
}

const statusCompleted = uint8(2)

type GORMSessionDAO struct {
	db *egorm.Component
}

func NewGORMSessionDAO(db *egorm.Component) SessionDAO {
	return &GORMSessionDAO{db: db}
}

func (d *GORMSessionDAO) Create(ctx context.Context, sess InterviewSession) (int64, error) {
	now := time.Now().UnixMilli()
	sess.Ctime = now
	sess.Utime = now
	err := d.db.WithContext(ctx).Create(&sess).Error
	if d.isUniqueIndexError(err) {
		return 0, ErrDuplicateSN
	}
	return sess.Id, err
}

func (d *GORMSessionDAO) isUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (d *GORMSessionDAO) FindById(ctx context.Context, id int64) (InterviewSession, error) {
	var sess InterviewSession
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&sess).Error
	return sess, err
}

func (d *GORMSessionDAO) Complete(ctx context.Context, id int64, score sql.NullFloat64, completedAt int64) error {
	return d.db.WithContext(ctx).Model(&InterviewSession{}).
		Where("id = ? AND status != ?", id, statusCompleted).
		Updates(map[string]any{
			"status":       statusCompleted,
			"score":        score,
			"completed_at": completedAt,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (d *GORMSessionDAO) FindExpiredActive(ctx context.Context, now int64, offset, limit int) ([]InterviewSession, error) {
	var res []InterviewSession
	err := d.db.WithContext(ctx).
		Where("status = ? AND ctime + duration_minutes * 60000 <= ?", uint8(1), now).
		Order("id ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (d *GORMQuestionDAO) Create(ctx context.Context, q InterviewQuestion) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime = now
	q.Utime = now
	err := d.db.WithContext(ctx).Create(&q).Error
	return q.Id, err
}

func (d *GORMQuestionDAO) FindById(ctx context.Context, id int64) (InterviewQuestion, error) {
	var q InterviewQuestion
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&q).Error
	return q, err
}

func (d *GORMQuestionDAO) FindBySid(ctx context.Context, sid int64) ([]InterviewQuestion, error) {
	var res []InterviewQuestion
	err := d.db.WithContext(ctx).
		Where("sid = ?", sid).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (d *GORMQuestionDAO) CountBySid(ctx context.Context, sid int64) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&InterviewQuestion{}).
		Where("sid = ?", sid).Count(&count).Error
	return count, err
}

func (d *GORMQuestionDAO) UpdateAnswer(ctx context.Context, id int64, answer string, score float64,
	feedback string, suggestions []string, answeredAt int64) error {
	return d.db.WithContext(ctx).Model(&InterviewQuestion{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"user_answer": sql.NullString{String: answer, Valid: true},
			"score":       sql.NullFloat64{Float64: score, Valid: true},
			"feedback":    sql.NullString{String: feedback, Valid: true},
			"suggestions": sqlx.JsonColumn[[]string]{Val: suggestions, Valid: true},
			"answered_at": sql.NullInt64{Int64: answeredAt, Valid: true},
			"utime":       time.Now().UnixMilli(),
		}).Error
}
