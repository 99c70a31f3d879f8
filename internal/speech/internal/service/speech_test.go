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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestService_SpeechToText(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		handler  http.HandlerFunc
		wantText string
	}{
		{
			name: "识别成功",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/stt", r.URL.Path)
				assert.Equal(t, "audio/wav", r.Header.Get("Content-Type"))
				_ = json.NewEncoder(w).Encode(map[string]string{"text": " hello world "})
			},
			wantText: "hello world",
		},
		{
			name: "识别结果为空",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]string{"text": "  "})
			},
			wantText: MsgNoSpeechDetected,
		},
		{
			name: "服务端报错",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantText: MsgRecognitionFailed,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			svc := NewService(srv.URL, "", time.Second)
			text, err := svc.SpeechToText(context.Background(), []byte{0x01, 0x02})
			require.NoError(t, err)
			assert.Equal(t, tc.wantText, text)
		})
	}
}

func TestRestService_SpeechToText_未配置(t *testing.T) {
	t.Parallel()
	svc := NewService("", "", time.Second)
	text, err := svc.SpeechToText(context.Background(), []byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, MsgRecognitionNotConfigured, text)
	assert.True(t, IsRecognitionFailure(text))
}

func TestRestService_TextToSpeech(t *testing.T) {
	t.Parallel()
	t.Run("合成成功", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tts", r.URL.Path)
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "hello", req["text"])
			_, _ = w.Write([]byte("RIFF-audio"))
		}))
		defer srv.Close()
		svc := NewService(srv.URL, "en-US-TonyNeural", time.Second)
		audio, err := svc.TextToSpeech(context.Background(), "hello")
		require.NoError(t, err)
		assert.Equal(t, []byte("RIFF-audio"), audio)
	})
	t.Run("未配置", func(t *testing.T) {
		t.Parallel()
		svc := NewService("", "", time.Second)
		_, err := svc.TextToSpeech(context.Background(), "hello")
		assert.ErrorIs(t, err, ErrSynthesisUnavailable)
	})
}

func TestIsRecognitionFailure(t *testing.T) {
	t.Parallel()
	assert.True(t, IsRecognitionFailure(MsgRecognitionError))
	assert.True(t, IsRecognitionFailure(MsgNoSpeechCheckMic))
	assert.False(t, IsRecognitionFailure("I would use a hash map"))
}

func TestEnsureWav(t *testing.T) {
	t.Parallel()
	t.Run("已经是 WAV", func(t *testing.T) {
		t.Parallel()
		data := append([]byte("RIFF"), 1, 2, 3)
		assert.Equal(t, data, EnsureWav(data))
	})
	t.Run("裸 PCM 包头", func(t *testing.T) {
		t.Parallel()
		pcm := []byte{1, 2, 3, 4}
		wav := EnsureWav(pcm)
		require.Len(t, wav, 44+len(pcm))
		assert.Equal(t, "RIFF", string(wav[:4]))
		assert.Equal(t, "WAVE", string(wav[8:12]))
		assert.Equal(t, pcm, wav[44:])
	})
}

func TestLocalStorage_SaveAudio(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)
	url, err := storage.SaveAudio([]byte{1, 2, 3})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/audio/"))
	assert.True(t, strings.HasSuffix(url, ".wav"))
	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/audio/")))
	require.NoError(t, err)
	assert.Equal(t, "RIFF", string(data[:4]))
}
