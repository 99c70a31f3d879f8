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

package log

import (
	"context"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HandlerBuilder 打日志 + 统计失败次数。
// 生成失败最终都会走确定性兜底，这个计数是判断后端健康度的主要信号
type HandlerBuilder struct {
	platform   string
	logger     *elog.Component
	failures   *prometheus.CounterVec
	generation *prometheus.CounterVec
}

var (
	generationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_generation_total",
			Help: "Total number of generation calls",
		},
		[]string{"platform"},
	)
	generationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_generation_failures_total",
			Help: "Total number of failed generation calls",
		},
		[]string{"platform"},
	)
)

func NewHandlerBuilder(platform string) *HandlerBuilder {
	return &HandlerBuilder{
		platform:   platform,
		logger:     elog.DefaultLogger,
		failures:   generationFailures,
		generation: generationTotal,
	}
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error) {
		h.generation.WithLabelValues(h.platform).Inc()
		h.logger.Debug("发起生成调用",
			elog.String("platform", h.platform),
			elog.Int("promptLen", len(req.Prompt)))
		resp, err := next.Handle(ctx, req)
		if err != nil {
			h.failures.WithLabelValues(h.platform).Inc()
			h.logger.Warn("生成调用失败",
				elog.String("platform", h.platform),
				elog.FieldErr(err))
			return resp, err
		}
		h.logger.Debug("生成调用成功",
			elog.String("platform", h.platform),
			elog.Int64("tokens", resp.Tokens))
		return resp, nil
	})
}
