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

package openai

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Handler 走 OpenAI 兼容协议。
// baseURL 指向任何兼容端点都行，比如 Ollama 的 /v1
type Handler struct {
	client *openai.Client
	model  string
}

func NewHandler(baseURL string, apikey string, model string) *Handler {
	opts := []option.RequestOption{
		option.WithAPIKey(apikey),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Handler{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (h *Handler) Name() string {
	return "openai"
}

func (h *Handler) Handle(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error) {
	// 它是最终出口，不会调用 next
	completion, err := h.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		}),
		Model: openai.F(openai.ChatModel(h.model)),
	})
	if err != nil {
		return domain.GenResponse{}, fmt.Errorf("%w: %v", domain.ErrGenerationUnavailable, err)
	}
	resp := domain.GenResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}
