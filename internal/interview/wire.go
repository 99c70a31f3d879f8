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

//go:build wireinject

package interview

import (
	"sync"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/ai"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/event"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/job"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/service"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/web"
	"github.com/ecodeclub/ai-interviewer/internal/kbase"
	"github.com/ecodeclub/ai-interviewer/internal/speech"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/lithammer/shortuuid/v4"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ,
	aiModule *ai.Module, kbaseModule *kbase.Module, speechModule *speech.Module) (*Module, error) {
	wire.Build(
		InitSessionDAO,
		InitQuestionDAO,
		cache.NewSessionCache,
		repository.NewCachedRepository,
		service.NewPromptBuilder,
		service.NewQuestionGenerator,
		service.NewEvaluator,
		initFlowService,
		initJob,
		event.NewSessionCompletedProducer,
		web.NewHandler,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*kbase.Module), "Svc"),
		wire.FieldsOf(new(*speech.Module), "Svc", "Storage"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitSessionDAO(db *egorm.Component) dao.SessionDAO {
	InitTableOnce(db)
	return dao.NewGORMSessionDAO(db)
}

func InitQuestionDAO(db *egorm.Component) dao.QuestionDAO {
	InitTableOnce(db)
	return dao.NewGORMQuestionDAO(db)
}

func initFlowService(repo repository.Repository,
	generator *service.QuestionGenerator, evaluator *service.Evaluator,
	speechSvc speech.Service, storage speech.Storage,
	producer *event.SessionCompletedProducer) service.FlowService {
	return service.NewFlowService(repo, generator, evaluator,
		speechSvc, storage, producer, shortuuid.New)
}

func initJob(svc service.FlowService, repo repository.Repository) *job.CloseExpiredSessionsJob {
	return job.NewCloseExpiredSessionsJob(svc, repo, 100, 10*time.Minute)
}
