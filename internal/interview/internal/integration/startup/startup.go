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

package startup

import (
	"github.com/ecodeclub/ai-interviewer/internal/ai"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/event"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/service"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/web"
	"github.com/ecodeclub/ai-interviewer/internal/kbase"
	"github.com/ecodeclub/ai-interviewer/internal/speech"
	testioc "github.com/ecodeclub/ai-interviewer/internal/test/ioc"
	"github.com/lithammer/shortuuid/v4"
)

// InitHandler 集成测试入口。生成、语音和知识库从外面传进来，
// 方便在测试里替换成可控实现
func InitHandler(llmSvc ai.LLMService, speechSvc speech.Service,
	storage speech.Storage, kbaseSvc kbase.Service) (*web.Handler, service.FlowService, error) {
	db := testioc.InitDB()
	if err := dao.InitTables(db); err != nil {
		return nil, nil, err
	}
	ec := testioc.InitCache()
	producer, err := event.NewSessionCompletedProducer(testioc.InitMQ())
	if err != nil {
		return nil, nil, err
	}
	repo := repository.NewCachedRepository(
		dao.NewGORMSessionDAO(db),
		dao.NewGORMQuestionDAO(db),
		cache.NewSessionCache(ec))
	prompt := service.NewPromptBuilder(kbaseSvc)
	svc := service.NewFlowService(repo,
		service.NewQuestionGenerator(llmSvc, prompt),
		service.NewEvaluator(llmSvc, prompt),
		speechSvc, storage, producer, shortuuid.New)
	return web.NewHandler(svc, speechSvc, kbaseSvc), svc, nil
}
