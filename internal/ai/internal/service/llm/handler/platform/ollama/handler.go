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

package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
)

const defaultTimeout = 60 * time.Second

// Handler 直连 Ollama 的 /api/generate。
// 它是链条的最终出口，所以不会调用 next。
// 任何传输层或解码失败都包成 ErrGenerationUnavailable，调用方据此走兜底
type Handler struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewHandler(baseURL string, model string, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Handler{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

func (h *Handler) Name() string {
	return "ollama"
}

type generateReq struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResp struct {
	Response      string `json:"response"`
	EvalCount     int64  `json:"eval_count"`
	PromptEvalCnt int64  `json:"prompt_eval_count"`
}

func (h *Handler) Handle(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error) {
	body, err := json.Marshal(generateReq{
		Model:  h.model,
		Prompt: req.Prompt,
		Stream: false,
	})
	if err != nil {
		return domain.GenResponse{}, fmt.Errorf("%w: 序列化请求失败: %v", domain.ErrGenerationUnavailable, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		h.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return domain.GenResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := h.client.Do(httpReq)
	if err != nil {
		return domain.GenResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return domain.GenResponse{}, fmt.Errorf("%w: 响应码 %d", domain.ErrGenerationUnavailable, httpResp.StatusCode)
	}

	var res generateResp
	if err = json.NewDecoder(httpResp.Body).Decode(&res); err != nil {
		return domain.GenResponse{}, fmt.Errorf("%w: 解码响应失败: %v", domain.ErrGenerationUnavailable, err)
	}
	return domain.GenResponse{
		Answer: res.Response,
		Tokens: res.EvalCount + res.PromptEvalCnt,
	}, nil
}
