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

package interview

import (
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/job"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/service"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
	Job *CloseExpiredSessionsJob
}

type Service = service.FlowService
type Handler = web.Handler
type CloseExpiredSessionsJob = job.CloseExpiredSessionsJob

type Session = domain.Session
type Question = domain.Question
type Evaluation = domain.Evaluation

var (
	ErrSessionNotFound  = service.ErrSessionNotFound
	ErrQuestionNotFound = service.ErrQuestionNotFound
	ErrSessionExpired   = service.ErrSessionExpired
)
