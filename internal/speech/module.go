package speech

import (
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/speech/internal/service"
	"github.com/gotomicro/ego/core/econf"
)

type Service = service.Service
type Storage = service.Storage

var ErrSynthesisUnavailable = service.ErrSynthesisUnavailable

// IsRecognitionFailure 判断转写结果是不是识别失败的提示文案
func IsRecognitionFailure(text string) bool {
	return service.IsRecognitionFailure(text)
}

type Module struct {
	Svc     Service
	Storage Storage
}

type Config struct {
	Endpoint string        `yaml:"endpoint"`
	Voice    string        `yaml:"voice"`
	Timeout  time.Duration `yaml:"timeout"`
	AudioDir string        `yaml:"audioDir"`
}

func InitModule() (*Module, error) {
	var cfg Config
	err := econf.UnmarshalKey("speech", &cfg)
	if err != nil {
		return nil, err
	}
	if cfg.AudioDir == "" {
		cfg.AudioDir = "./data/audio"
	}
	storage, err := service.NewLocalStorage(cfg.AudioDir)
	if err != nil {
		return nil, err
	}
	return &Module{
		Svc:     service.NewService(cfg.Endpoint, cfg.Voice, cfg.Timeout),
		Storage: storage,
	}, nil
}
