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
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Storage 录音落本地盘，返回相对 URL。
// 对象存储直传走 cos 模块的临时凭证，这里只兜底服务端落盘
type Storage interface {
	SaveAudio(audio []byte) (string, error)
}

type localStorage struct {
	dir string
}

func NewLocalStorage(dir string) (Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "创建音频目录失败")
	}
	return &localStorage{dir: dir}, nil
}

func (s *localStorage) SaveAudio(audio []byte) (string, error) {
	filename := uuid.New().String() + ".wav"
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, EnsureWav(audio), 0o644); err != nil {
		return "", errors.Wrap(err, "保存音频失败")
	}
	return "/audio/" + filename, nil
}
