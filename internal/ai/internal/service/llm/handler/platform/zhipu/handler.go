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

package zhipu

import (
	"context"
	"fmt"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
	"github.com/yankeguo/zhipu"
)

type Handler struct {
	client *zhipu.Client
	model  string
}

func NewHandler(apikey string, model string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
		model:  model,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error) {
	// 这边它不会调用 next，因为它是最终的出口
	chatReq := h.client.ChatCompletion(h.model).AddMessage(zhipu.ChatCompletionMessage{
		Role:    zhipu.RoleUser,
		Content: req.Prompt,
	})
	completion, err := chatReq.Do(ctx)
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
