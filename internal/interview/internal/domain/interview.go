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

import "time"

type SessionStatus uint8

const (
	SessionStatusUnknown SessionStatus = iota
	SessionStatusActive
	SessionStatusCompleted
	SessionStatusAbandoned
)

func (s SessionStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s SessionStatus) String() string {
	switch s {
	case SessionStatusActive:
		return "active"
	case SessionStatusCompleted:
		return "completed"
	case SessionStatusAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// NextQuestionMarker 前端在明确要求下一题时会把这句话拼进上下文。
// 没带这个标记的带上下文请求一律当成刷新或者重复调用
const NextQuestionMarker = "Moving to next question"

type Session struct {
	Id         int64
	SN         string
	Domain     string
	Difficulty string
	// 面试时长预算，分钟
	DurationMinutes int64
	Status          SessionStatus
	// 完成之后才有值，所有已答题目的平均分
	Score *float64
	// 毫秒时间戳
	Ctime int64
	// 完成时间，毫秒。不变式：有值当且仅当 Status 是已完成
	CompletedAt int64
}

// Deadline 面试截止时刻
func (s Session) Deadline() time.Time {
	return time.UnixMilli(s.Ctime).Add(time.Duration(s.DurationMinutes) * time.Minute)
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.Deadline())
}

type Question struct {
	Id   int64
	Sid  int64
	Text string
	// 建议性的考点，不参与判分
	ExpectedConcepts []string
	// 回答三元组要么全空要么全有，UpdateAnswer 一次写入
	UserAnswer  string
	Score       *float64
	Feedback    string
	Suggestions []string
	// 出题时间，毫秒
	AskedAt int64
	// 回答时间，毫秒。0 表示还没回答
	AnsweredAt int64
}

func (q Question) Answered() bool {
	return q.AnsweredAt > 0
}

// Evaluation 一次作答的评估结果，折叠进所属 Question 持久化
type Evaluation struct {
	// [0,10]
	Score       float64
	Feedback    string
	Suggestions []string
}

// GeneratedQuestion 生成或兜底产出的新题目
type GeneratedQuestion struct {
	Text             string
	Type             string
	ExpectedConcepts []string
}
