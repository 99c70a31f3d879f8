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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

// ErrSynthesisUnavailable 表示合成服务没配置或者调用失败。
// 上游会把它转成"语音不可用"的 JSON 响应，而不是硬错误
var ErrSynthesisUnavailable = errors.New("语音合成服务不可用")

// 识别侧的约定：识别失败不返回 error，而是返回一句给用户看的提示。
// 这样面试流程永远不会因为语音问题卡死
const (
	MsgRecognitionNotConfigured = "Speech recognition not available. Please type your answer."
	MsgNoSpeechDetected         = "No speech detected. Please speak clearly and try again."
	MsgNoSpeechCheckMic         = "No speech detected. Please ensure your microphone is working and try again."
	MsgRecognitionFailed        = "Speech recognition failed. Please try again or type your answer."
	MsgRecognitionError         = "Speech recognition error. Please type your answer instead."
)

var recognitionFailures = []string{
	MsgRecognitionNotConfigured,
	MsgNoSpeechDetected,
	MsgNoSpeechCheckMic,
	MsgRecognitionFailed,
	MsgRecognitionError,
}

// IsRecognitionFailure 判断识别结果是不是失败提示而非真实转写
func IsRecognitionFailure(text string) bool {
	for _, msg := range recognitionFailures {
		if text == msg {
			return true
		}
	}
	return false
}

//go:generate mockgen -source=./speech.go -destination=../../mocks/speech.mock.go -package=speechmocks -typed=true Service
type Service interface {
	// SpeechToText 识别失败时返回失败提示文案，不返回 error
	SpeechToText(ctx context.Context, audio []byte) (string, error)
	TextToSpeech(ctx context.Context, text string) ([]byte, error)
}

// restService 对接一个自建的语音 REST 服务。
// endpoint 为空时视为未配置，识别和合成都直接走降级路径
type restService struct {
	endpoint string
	voice    string
	client   *http.Client
	logger   *elog.Component
}

func NewService(endpoint string, voice string, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &restService{
		endpoint: endpoint,
		voice:    voice,
		client:   &http.Client{Timeout: timeout},
		logger:   elog.DefaultLogger,
	}
}

func (s *restService) SpeechToText(ctx context.Context, audio []byte) (string, error) {
	if s.endpoint == "" {
		return MsgRecognitionNotConfigured, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.endpoint+"/stt", bytes.NewReader(EnsureWav(audio)))
	if err != nil {
		return MsgRecognitionError, nil
	}
	req.Header.Set("Content-Type", "audio/wav")
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("语音识别调用失败", elog.FieldErr(err))
		return MsgRecognitionError, nil
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("语音识别返回非 200", elog.Int("code", resp.StatusCode))
		return MsgRecognitionFailed, nil
	}
	var res struct {
		Text string `json:"text"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return MsgRecognitionFailed, nil
	}
	text := strings.TrimSpace(res.Text)
	if text == "" {
		return MsgNoSpeechDetected, nil
	}
	return text, nil
}

func (s *restService) TextToSpeech(ctx context.Context, text string) ([]byte, error) {
	if s.endpoint == "" {
		return nil, ErrSynthesisUnavailable
	}
	body, err := json.Marshal(map[string]string{
		"text":  text,
		"voice": s.voice,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.endpoint+"/tts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("语音合成调用失败", elog.FieldErr(err))
		return nil, fmt.Errorf("%w: %v", ErrSynthesisUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: 响应码 %d", ErrSynthesisUnavailable, resp.StatusCode)
	}
	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisUnavailable, err)
	}
	return audio, nil
}
