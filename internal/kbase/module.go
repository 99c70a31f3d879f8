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

package kbase

import (
	"github.com/ecodeclub/ai-interviewer/internal/kbase/internal/domain"
	"github.com/ecodeclub/ai-interviewer/internal/kbase/internal/service"
	"github.com/gotomicro/ego/core/econf"
)

type Service = service.Service
type Section = domain.Section

type Module struct {
	Svc Service
}

func InitModule() (*Module, error) {
	type Config struct {
		DataDir string `yaml:"dataDir"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("kbase", &cfg); err != nil {
		return nil, err
	}
	svc, err := service.NewFileService(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	return &Module{Svc: svc}, nil
}
