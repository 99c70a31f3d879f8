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

package web

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/service"
	"github.com/ecodeclub/ai-interviewer/internal/kbase"
	"github.com/ecodeclub/ai-interviewer/internal/speech"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

type Handler struct {
	svc    service.FlowService
	speech speech.Service
	kbase  kbase.Service
	logger *elog.Component
}

func NewHandler(svc service.FlowService, speechSvc speech.Service, kbaseSvc kbase.Service) *Handler {
	return &Handler{
		svc:    svc,
		speech: speechSvc,
		kbase:  kbaseSvc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/interview/sessions", ginx.B[CreateSessionReq](h.CreateSession))
	server.GET("/interview/sessions/:sid", ginx.W(h.SessionDetail))
	server.PUT("/interview/sessions/:sid/complete", ginx.W(h.CompleteSession))
	server.GET("/interview/sessions/:sid/questions", ginx.W(h.SessionQuestions))
	server.POST("/interview/questions", ginx.B[NextQuestionReq](h.NextQuestion))
	server.POST("/interview/questions/:qid/answer", ginx.B[AnswerReq](h.SubmitAnswer))
	server.POST("/interview/questions/:qid/audio", h.SubmitAudio)
	server.GET("/interview/questions/:qid/speech", h.QuestionSpeech)
	server.POST("/interview/feedback/speech", h.FeedbackSpeech)
	server.GET("/interview/domains", ginx.W(h.Domains))
	server.GET("/interview/domains/:domain/topics", ginx.W(h.DomainTopics))
}

func (h *Handler) CreateSession(ctx *ginx.Context, req CreateSessionReq) (ginx.Result, error) {
	sess, err := h.svc.Start(ctx, req.Domain, req.Difficulty, req.DurationMinutes)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSessionVO(sess)}, nil
}

func (h *Handler) SessionDetail(ctx *ginx.Context) (ginx.Result, error) {
	sid, err := ctx.Param("sid").AsInt64()
	if err != nil {
		return sessionNotFoundResult, err
	}
	sess, err := h.svc.Detail(ctx, sid)
	if errors.Is(err, service.ErrSessionNotFound) {
		return sessionNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSessionVO(sess)}, nil
}

func (h *Handler) CompleteSession(ctx *ginx.Context) (ginx.Result, error) {
	sid, err := ctx.Param("sid").AsInt64()
	if err != nil {
		return sessionNotFoundResult, err
	}
	final, err := h.svc.Complete(ctx, sid)
	if errors.Is(err, service.ErrSessionNotFound) {
		return sessionNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CompleteVO{FinalScore: final}}, nil
}

func (h *Handler) SessionQuestions(ctx *ginx.Context) (ginx.Result, error) {
	sid, err := ctx.Param("sid").AsInt64()
	if err != nil {
		return sessionNotFoundResult, err
	}
	questions, total, err := h.svc.Questions(ctx, sid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: QuestionListVO{
		Total: total,
		Questions: slice.Map(questions, func(idx int, q domain.Question) QuestionVO {
			return newQuestionVO(q)
		}),
	}}, nil
}

func (h *Handler) NextQuestion(ctx *ginx.Context, req NextQuestionReq) (ginx.Result, error) {
	q, err := h.svc.NextQuestion(ctx, req.Sid, req.Context)
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return sessionExpiredResult, err
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newQuestionVO(q)}, nil
}

func (h *Handler) SubmitAnswer(ctx *ginx.Context, req AnswerReq) (ginx.Result, error) {
	qid, err := ctx.Param("qid").AsInt64()
	if err != nil {
		return questionNotFoundResult, err
	}
	eval, err := h.svc.SubmitAnswer(ctx, qid, req.Answer)
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		return sessionExpiredResult, err
	case errors.Is(err, service.ErrQuestionNotFound):
		return questionNotFoundResult, err
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newEvaluationVO(qid, eval)}, nil
}

// SubmitAudio multipart 上传，ginx 的包装器不适用，手写
func (h *Handler) SubmitAudio(ctx *gin.Context) {
	qid, err := strconv.ParseInt(ctx.Param("qid"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, questionNotFoundResult)
		return
	}
	file, err := ctx.FormFile("audio_file")
	if err != nil {
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	src, err := file.Open()
	if err != nil {
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	defer func() { _ = src.Close() }()
	audio, err := io.ReadAll(src)
	if err != nil {
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	eval, err := h.svc.SubmitAudio(ctx, qid, audio)
	switch {
	case errors.Is(err, service.ErrSessionExpired):
		ctx.JSON(http.StatusOK, sessionExpiredResult)
		return
	case errors.Is(err, service.ErrQuestionNotFound):
		ctx.JSON(http.StatusOK, questionNotFoundResult)
		return
	case err != nil:
		h.logger.Error("处理回答音频失败", elog.Int64("qid", qid), elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{Data: newEvaluationVO(qid, eval)})
}

// QuestionSpeech 题目朗读。合成不可用时退化成 JSON 返回题目文本
func (h *Handler) QuestionSpeech(ctx *gin.Context) {
	qid, err := strconv.ParseInt(ctx.Param("qid"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, questionNotFoundResult)
		return
	}
	q, err := h.svc.Question(ctx, qid)
	if errors.Is(err, service.ErrQuestionNotFound) {
		ctx.JSON(http.StatusOK, questionNotFoundResult)
		return
	}
	if err != nil {
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	audio, err := h.speech.TextToSpeech(ctx, q.Text)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{
			"error":        "Text-to-speech not available",
			"questionText": q.Text,
		})
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=question_%d.wav", qid))
	ctx.Data(http.StatusOK, "audio/wav", audio)
}

func (h *Handler) FeedbackSpeech(ctx *gin.Context) {
	var req FeedbackSpeechReq
	if err := ctx.BindJSON(&req); err != nil {
		return
	}
	audio, err := h.speech.TextToSpeech(ctx, req.Text)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"error": "Text-to-speech service not available"})
		return
	}
	ctx.Header("Content-Disposition", "attachment; filename=feedback_audio.wav")
	ctx.Data(http.StatusOK, "audio/wav", audio)
}

func (h *Handler) Domains(ctx *ginx.Context) (ginx.Result, error) {
	return ginx.Result{
		Data: slice.Map(domain.Domains(), func(idx int, dom string) DomainVO {
			return DomainVO{Value: dom, Label: domain.DomainLabel(dom)}
		}),
	}, nil
}

func (h *Handler) DomainTopics(ctx *ginx.Context) (ginx.Result, error) {
	dom := domain.NormalizeDomain(ctx.Param("domain").StringOrDefault(""))
	topics := h.kbase.SectionNames(dom)
	if len(topics) == 0 {
		topics = []string{fmt.Sprintf("General %s interview topics", dom)}
	}
	return ginx.Result{Data: TopicsVO{
		Domain:      dom,
		Topics:      topics,
		TotalTopics: len(topics),
	}}, nil
}
