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
	"database/sql"

	"github.com/ecodeclub/ekit/sqlx"
)

type InterviewSession struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	SN              string `gorm:"column:sn;type:varchar(64);not null;uniqueIndex:uniq_interview_session_sn;comment:会话序列号"`
	Domain          string `gorm:"column:domain;type:varchar(128);not null;comment:领域 slug"`
	Difficulty      string `gorm:"column:difficulty;type:varchar(16);not null;default:'medium';comment:easy/medium/hard"`
	DurationMinutes int64  `gorm:"column:duration_minutes;type:int;not null;default:45;comment:时长预算/分钟"`
	Status          uint8  `gorm:"column:status;type:tinyint(3);not null;default:1;index:idx_interview_session_status;comment:1-进行中 2-已完成 3-已放弃"`
	// 完成之后才有值
	Score       sql.NullFloat64 `gorm:"column:score;comment:最终平均分"`
	CompletedAt sql.NullInt64   `gorm:"column:completed_at;comment:完成时间/毫秒"`
	Ctime       int64
	Utime       int64
}

func (InterviewSession) TableName() string {
	return "interview_sessions"
}

type InterviewQuestion struct {
	Id               int64                     `gorm:"primaryKey,autoIncrement"`
	Sid              int64                     `gorm:"column:sid;not null;index:idx_interview_question_sid;comment:所属会话ID"`
	QuestionText     string                    `gorm:"column:question_text;type:text;not null"`
	ExpectedConcepts sqlx.JsonColumn[[]string] `gorm:"column:expected_concepts;type:text;comment:考点JSON"`
	// 回答三元组一次 UPDATE 写入，要么全空要么全有
	UserAnswer  sql.NullString            `gorm:"column:user_answer;type:text"`
	Score       sql.NullFloat64           `gorm:"column:score"`
	Feedback    sql.NullString            `gorm:"column:feedback;type:text"`
	Suggestions sqlx.JsonColumn[[]string] `gorm:"column:suggestions;type:text;comment:改进建议JSON"`
	AnsweredAt  sql.NullInt64             `gorm:"column:answered_at;comment:回答时间/毫秒"`
	Ctime       int64
	Utime       int64
}

func (InterviewQuestion) TableName() string {
	return "interview_questions"
}
