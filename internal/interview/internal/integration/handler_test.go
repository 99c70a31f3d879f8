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

//go:build e2e

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ai-interviewer/internal/ai"
	aimocks "github.com/ecodeclub/ai-interviewer/internal/ai/mocks"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/integration/startup"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/service"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/web"
	kbasemocks "github.com/ecodeclub/ai-interviewer/internal/kbase/mocks"
	speechmocks "github.com/ecodeclub/ai-interviewer/internal/speech/mocks"
	"github.com/ecodeclub/ai-interviewer/internal/test"
	testioc "github.com/ecodeclub/ai-interviewer/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type noopStorage struct{}

func (noopStorage) SaveAudio(audio []byte) (string, error) {
	return "/audio/test.wav", nil
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	svc    service.FlowService
	llm    *aimocks.MockService
}

func (s *HandlerTestSuite) SetupSuite() {
	ctrl := gomock.NewController(s.T())
	s.llm = aimocks.NewMockService(ctrl)
	speechSvc := speechmocks.NewMockService(ctrl)
	kbaseSvc := kbasemocks.NewMockService(ctrl)
	kbaseSvc.EXPECT().Relevant(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"Section content"}).AnyTimes()
	kbaseSvc.EXPECT().SectionNames(gomock.Any()).
		Return([]string{"Algorithms", "System Design"}).AnyTimes()

	handler, svc, err := startup.InitHandler(s.llm, speechSvc, noopStorage{}, kbaseSvc)
	require.NoError(s.T(), err)
	s.svc = svc
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	handler.PublicRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *HandlerTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `interview_sessions`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `interview_questions`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `interview_sessions`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `interview_questions`").Error)
}

func (s *HandlerTestSuite) createSession() web.SessionVO {
	req, err := http.NewRequest(http.MethodPost, "/interview/sessions",
		iox.NewJSONReader(web.CreateSessionReq{
			Domain:          "Data Science",
			Difficulty:      "medium",
			DurationMinutes: 45,
		}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.SessionVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *HandlerTestSuite) TestCreateSession() {
	vo := s.createSession()
	assert.True(s.T(), vo.Id > 0)
	assert.NotEmpty(s.T(), vo.SN)
	assert.Equal(s.T(), "data_science", vo.Domain)
	assert.Equal(s.T(), "Data Science", vo.DomainLabel)
	assert.Equal(s.T(), "active", vo.Status)
}

func (s *HandlerTestSuite) TestNextQuestionReplaysFirstQuestion() {
	vo := s.createSession()
	// 只生成一次，第二次请求必须回放而不是再出题
	s.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(ai.GenResponse{Answer: "Question: Explain cross-validation.\nType: technical\nExpected_concepts: validation"}, nil).
		Times(1)

	ask := func() web.QuestionVO {
		req, err := http.NewRequest(http.MethodPost, "/interview/questions",
			iox.NewJSONReader(web.NextQuestionReq{Sid: vo.Id}))
		require.NoError(s.T(), err)
		req.Header.Set("content-type", "application/json")
		recorder := test.NewJSONResponseRecorder[web.QuestionVO]()
		s.server.ServeHTTP(recorder, req)
		require.Equal(s.T(), http.StatusOK, recorder.Code)
		return recorder.MustScan().Data
	}

	first := ask()
	second := ask()
	assert.Equal(s.T(), first.Id, second.Id)
	assert.Equal(s.T(), "Explain cross-validation.", first.Text)
}

func (s *HandlerTestSuite) TestSubmitAnswerAndComplete() {
	vo := s.createSession()
	s.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(ai.GenResponse{Answer: "Question: Explain cross-validation.\nType: technical\nExpected_concepts: validation"}, nil)
	q, err := s.svc.NextQuestion(s.T().Context(), vo.Id, "")
	require.NoError(s.T(), err)

	s.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(ai.GenResponse{Answer: "Score: 8\nContent_Quality: Accurate\nImprovement_Suggestions:\n- Mention stratified folds"}, nil)
	req, err := http.NewRequest(http.MethodPost,
		fmt.Sprintf("/interview/questions/%d/answer", q.Id),
		iox.NewJSONReader(web.AnswerReq{Answer: "Split the data into folds and rotate the held-out fold."}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.EvaluationVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	eval := recorder.MustScan().Data
	assert.Equal(s.T(), 8.0, eval.Score)

	creq, err := http.NewRequest(http.MethodPut,
		fmt.Sprintf("/interview/sessions/%d/complete", vo.Id), nil)
	require.NoError(s.T(), err)
	crecorder := test.NewJSONResponseRecorder[web.CompleteVO]()
	s.server.ServeHTTP(crecorder, creq)
	require.Equal(s.T(), http.StatusOK, crecorder.Code)
	final := crecorder.MustScan().Data.FinalScore
	require.NotNil(s.T(), final)
	assert.Equal(s.T(), 8.0, *final)
}

func (s *HandlerTestSuite) TestDomains() {
	req, err := http.NewRequest(http.MethodGet, "/interview/domains", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[[]web.DomainVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	assert.Len(s.T(), recorder.MustScan().Data, 5)
}

func (s *HandlerTestSuite) TestDomainTopics() {
	req, err := http.NewRequest(http.MethodGet, "/interview/domains/data_science/topics", nil)
	require.NoError(s.T(), err)
	recorder := test.NewJSONResponseRecorder[web.TopicsVO]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	topics := recorder.MustScan().Data
	assert.Equal(s.T(), "data_science", topics.Domain)
	assert.Equal(s.T(), 2, topics.TotalTopics)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
