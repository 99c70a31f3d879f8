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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		server   func(t *testing.T) *httptest.Server
		wantResp domain.GenResponse
		wantErr  error
	}{
		{
			name: "生成成功",
			server: func(t *testing.T) *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, http.MethodPost, r.Method)
					assert.Equal(t, "/api/generate", r.URL.Path)
					var req generateReq
					require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
					assert.Equal(t, "llama3", req.Model)
					assert.False(t, req.Stream)
					_ = json.NewEncoder(w).Encode(generateResp{
						Response:      "Score: 7.5",
						EvalCount:     120,
						PromptEvalCnt: 80,
					})
				}))
			},
			wantResp: domain.GenResponse{
				Answer: "Score: 7.5",
				Tokens: 200,
			},
		},
		{
			name: "非 200 响应码",
			server: func(t *testing.T) *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				}))
			},
			wantErr: domain.ErrGenerationUnavailable,
		},
		{
			name: "响应不是合法 JSON",
			server: func(t *testing.T) *httptest.Server {
				return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write([]byte("not json"))
				}))
			},
			wantErr: domain.ErrGenerationUnavailable,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := tc.server(t)
			defer srv.Close()
			h := NewHandler(srv.URL, "llama3", time.Second)
			resp, err := h.Handle(context.Background(), domain.GenRequest{Prompt: "你是一个面试官"})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}

func TestHandler_Handle_后端不可达(t *testing.T) {
	t.Parallel()
	h := NewHandler("http://127.0.0.1:1", "llama3", time.Second)
	_, err := h.Handle(context.Background(), domain.GenRequest{Prompt: "hello"})
	assert.ErrorIs(t, err, domain.ErrGenerationUnavailable)
}
