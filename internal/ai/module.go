package ai

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm/handler/platform/ollama"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm/handler/platform/openai"
	"github.com/ecodeclub/ai-interviewer/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/gotomicro/ego/core/econf"
)

type Module struct {
	Svc LLMService
}

type Config struct {
	// ollama、openai 或者 zhipu
	Platform string `yaml:"platform"`
	Ollama   struct {
		BaseURL string        `yaml:"baseURL"`
		Model   string        `yaml:"model"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"ollama"`
	OpenAI struct {
		BaseURL string `yaml:"baseURL"`
		APIKey  string `yaml:"apiKey"`
		Model   string `yaml:"model"`
	} `yaml:"openai"`
	Zhipu struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"zhipu"`
}

func InitModule() (*Module, error) {
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Platform == "" {
		cfg.Platform = "ollama"
	}
	var platform handler.Handler
	switch cfg.Platform {
	case "openai":
		platform = openai.NewHandler(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	case "zhipu":
		platform, err = zhipu.NewHandler(cfg.Zhipu.APIKey, cfg.Zhipu.Model)
		if err != nil {
			return nil, err
		}
	case "ollama":
		platform = ollama.NewHandler(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Ollama.Timeout)
	default:
		return nil, fmt.Errorf("未知的生成平台 %q", cfg.Platform)
	}
	root := log.NewHandlerBuilder(cfg.Platform).Next(platform)
	return &Module{
		Svc: llm.NewService(root),
	}, nil
}
