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
	"testing"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/ai"
	aimocks "github.com/ecodeclub/ai-interviewer/internal/ai/mocks"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	interviewmocks "github.com/ecodeclub/ai-interviewer/internal/interview/mocks"
	speechmocks "github.com/ecodeclub/ai-interviewer/internal/speech/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeStorage struct {
	saved int
	err   error
}

func (f *fakeStorage) SaveAudio(audio []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved++
	return "/audio/fake.wav", nil
}

type flowTestDeps struct {
	repo    *interviewmocks.MockRepository
	llm     *aimocks.MockService
	speech  *speechmocks.MockService
	storage *fakeStorage
	svc     FlowService
}

func newFlowTestDeps(t *testing.T) flowTestDeps {
	ctrl := gomock.NewController(t)
	repo := interviewmocks.NewMockRepository(ctrl)
	llmSvc := aimocks.NewMockService(ctrl)
	speechSvc := speechmocks.NewMockService(ctrl)
	storage := &fakeStorage{}
	prompt := newTestPromptBuilder(ctrl)
	svc := NewFlowService(repo,
		NewQuestionGenerator(llmSvc, prompt),
		NewEvaluator(llmSvc, prompt),
		speechSvc, storage, nil,
		func() string { return "test-sn" })
	return flowTestDeps{
		repo:    repo,
		llm:     llmSvc,
		speech:  speechSvc,
		storage: storage,
		svc:     svc,
	}
}

func activeSession(id int64) domain.Session {
	return domain.Session{
		Id:              id,
		SN:              "test-sn",
		Domain:          domain.DomainSoftwareEngineering,
		Difficulty:      "medium",
		DurationMinutes: 45,
		Status:          domain.SessionStatusActive,
		Ctime:           time.Now().UnixMilli(),
	}
}

func TestFlowService_Start(t *testing.T) {
	t.Parallel()
	deps := newFlowTestDeps(t)
	deps.repo.EXPECT().CreateSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sess domain.Session) (domain.Session, error) {
			assert.Equal(t, "test-sn", sess.SN)
			assert.Equal(t, domain.DomainDataScience, sess.Domain)
			assert.Equal(t, "medium", sess.Difficulty)
			assert.Equal(t, int64(45), sess.DurationMinutes)
			assert.Equal(t, domain.SessionStatusActive, sess.Status)
			sess.Id = 1
			return sess, nil
		})

	// 展示名拼法、难度和时长都缺省
	sess, err := deps.svc.Start(context.Background(), "Data Science", "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sess.Id)
}

func TestFlowService_NextQuestion(t *testing.T) {
	t.Parallel()

	t.Run("空上下文且已出过题_回放第一题", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		first := domain.Question{Id: 11, Sid: 1, Text: "first question"}
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).
			Return([]domain.Question{first, {Id: 12, Sid: 1, Text: "second"}}, nil)

		q, err := deps.svc.NextQuestion(context.Background(), 1, "")
		require.NoError(t, err)
		assert.Equal(t, first, q)
	})

	t.Run("空上下文且没出过题_生成第一题", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).Return(nil, nil)
		deps.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(ai.GenResponse{Answer: "Question: Explain hash collisions.\nType: technical\nExpected_concepts: hashing"}, nil)
		deps.repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q domain.Question) (domain.Question, error) {
				assert.Equal(t, int64(1), q.Sid)
				assert.Equal(t, "Explain hash collisions.", q.Text)
				q.Id = 11
				return q, nil
			})

		q, err := deps.svc.NextQuestion(context.Background(), 1, "")
		require.NoError(t, err)
		assert.Equal(t, int64(11), q.Id)
	})

	t.Run("带上下文没有下一题标记_回放第一道未答题", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		score := 7.0
		answered := domain.Question{Id: 11, Sid: 1, Text: "first",
			UserAnswer: "done", Score: &score, AnsweredAt: time.Now().UnixMilli()}
		pending := domain.Question{Id: 12, Sid: 1, Text: "second"}
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).
			Return([]domain.Question{answered, pending}, nil)

		q, err := deps.svc.NextQuestion(context.Background(), 1, "previous discussion")
		require.NoError(t, err)
		assert.Equal(t, pending, q)
	})

	t.Run("带下一题标记_生成新题", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).
			Return([]domain.Question{{Id: 11, Sid: 1, Text: "first"}}, nil)
		deps.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(ai.GenResponse{Answer: "Question: Describe optimistic locking.\nType: technical\nExpected_concepts: concurrency"}, nil)
		deps.repo.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, q domain.Question) (domain.Question, error) {
				q.Id = 12
				return q, nil
			})

		q, err := deps.svc.NextQuestion(context.Background(), 1,
			"Moving to next question after the last answer")
		require.NoError(t, err)
		assert.Equal(t, int64(12), q.Id)
		assert.Equal(t, "Describe optimistic locking.", q.Text)
	})

	t.Run("超过截止时刻_先结算再报超时", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		sess := activeSession(1)
		sess.Ctime = time.Now().Add(-46 * time.Minute).UnixMilli()
		score := 8.0
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(sess, nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).
			Return([]domain.Question{{Id: 11, Sid: 1, Score: &score, AnsweredAt: 1}}, nil)
		deps.repo.EXPECT().CompleteSession(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, final *float64, completedAt int64) error {
				require.NotNil(t, final)
				assert.Equal(t, 8.0, *final)
				return nil
			})

		_, err := deps.svc.NextQuestion(context.Background(), 1, "")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("会话不存在", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(404)).
			Return(domain.Session{}, ErrSessionNotFound)

		_, err := deps.svc.NextQuestion(context.Background(), 404, "")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestFlowService_SubmitAnswer(t *testing.T) {
	t.Parallel()

	t.Run("判分并落库", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.repo.EXPECT().QuestionById(gomock.Any(), int64(11)).
			Return(domain.Question{Id: 11, Sid: 1, Text: "Explain indexing."}, nil)
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(ai.GenResponse{Answer: "Score: 8\nContent_Quality: Accurate\nImprovement_Suggestions:\n- Mention covering indexes"}, nil)
		deps.repo.EXPECT().UpdateAnswer(gomock.Any(), int64(11), "Indexes speed up lookups.",
			gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, qid int64, answer string,
				eval domain.Evaluation, answeredAt int64) error {
				assert.Equal(t, 8.0, eval.Score)
				return nil
			})

		eval, err := deps.svc.SubmitAnswer(context.Background(), 11, "Indexes speed up lookups.")
		require.NoError(t, err)
		assert.Equal(t, 8.0, eval.Score)
		assert.Equal(t, []string{"Mention covering indexes"}, eval.Suggestions)
	})

	t.Run("题目不存在", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.repo.EXPECT().QuestionById(gomock.Any(), int64(404)).
			Return(domain.Question{}, ErrQuestionNotFound)

		_, err := deps.svc.SubmitAnswer(context.Background(), 404, "whatever")
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("超时不再接受回答", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		sess := activeSession(1)
		sess.Ctime = time.Now().Add(-time.Hour).UnixMilli()
		deps.repo.EXPECT().QuestionById(gomock.Any(), int64(11)).
			Return(domain.Question{Id: 11, Sid: 1, Text: "q"}, nil)
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(sess, nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).Return(nil, nil)
		deps.repo.EXPECT().CompleteSession(gomock.Any(), int64(1), gomock.Nil(), gomock.Any()).Return(nil)

		_, err := deps.svc.SubmitAnswer(context.Background(), 11, "too late")
		assert.ErrorIs(t, err, ErrSessionExpired)
	})
}

func TestFlowService_SubmitAudio(t *testing.T) {
	t.Parallel()

	t.Run("没识别出语音_零分且不落库", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.speech.EXPECT().SpeechToText(gomock.Any(), gomock.Any()).Return("", nil)

		eval, err := deps.svc.SubmitAudio(context.Background(), 11, []byte{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 0.0, eval.Score)
		assert.Contains(t, eval.Feedback, "No speech detected")
		assert.Len(t, eval.Suggestions, 5)
		assert.Equal(t, 0, deps.storage.saved)
	})

	t.Run("转写过短_零分且不落库", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.speech.EXPECT().SpeechToText(gomock.Any(), gomock.Any()).Return("um hi", nil)

		eval, err := deps.svc.SubmitAudio(context.Background(), 11, []byte{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 0.0, eval.Score)
		assert.Contains(t, eval.Feedback, "Answer too short: 'um hi'")
		assert.Len(t, eval.Suggestions, 3)
		assert.Equal(t, 0, deps.storage.saved)
	})

	t.Run("转写成功_存档并转交文本判分", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		const transcript = "Indexes trade write cost for read speed."
		deps.speech.EXPECT().SpeechToText(gomock.Any(), gomock.Any()).Return(transcript, nil)
		deps.repo.EXPECT().QuestionById(gomock.Any(), int64(11)).
			Return(domain.Question{Id: 11, Sid: 1, Text: "Explain indexing."}, nil)
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.llm.EXPECT().Generate(gomock.Any(), gomock.Any()).
			Return(ai.GenResponse{Answer: "Score: 7\nContent_Quality: Good"}, nil)
		deps.repo.EXPECT().UpdateAnswer(gomock.Any(), int64(11), transcript,
			gomock.Any(), gomock.Any()).Return(nil)

		eval, err := deps.svc.SubmitAudio(context.Background(), 11, []byte{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 7.0, eval.Score)
		assert.Equal(t, 1, deps.storage.saved)
	})
}

func TestFlowService_Complete(t *testing.T) {
	t.Parallel()

	t.Run("平均分保留两位小数", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		s1, s2 := 5.0, 5.555
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).
			Return([]domain.Question{
				{Id: 11, Score: &s1, AnsweredAt: 1},
				{Id: 12, Score: &s2, AnsweredAt: 2},
				{Id: 13}, // 没答的不计入
			}, nil)
		deps.repo.EXPECT().CompleteSession(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, id int64, final *float64, completedAt int64) error {
				require.NotNil(t, final)
				assert.Equal(t, 5.28, *final)
				return nil
			})

		final, err := deps.svc.Complete(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, final)
		assert.Equal(t, 5.28, *final)
	})

	t.Run("一道题都没判分_最终分为nil", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(activeSession(1), nil)
		deps.repo.EXPECT().QuestionsBySid(gomock.Any(), int64(1)).
			Return([]domain.Question{{Id: 11}}, nil)
		deps.repo.EXPECT().CompleteSession(gomock.Any(), int64(1), gomock.Nil(), gomock.Any()).Return(nil)

		final, err := deps.svc.Complete(context.Background(), 1)
		require.NoError(t, err)
		assert.Nil(t, final)
	})

	t.Run("重复结算幂等", func(t *testing.T) {
		t.Parallel()
		deps := newFlowTestDeps(t)
		score := 7.75
		sess := activeSession(1)
		sess.Status = domain.SessionStatusCompleted
		sess.Score = &score
		deps.repo.EXPECT().SessionById(gomock.Any(), int64(1)).Return(sess, nil)

		final, err := deps.svc.Complete(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, final)
		assert.Equal(t, 7.75, *final)
	})
}
