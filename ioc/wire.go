//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/ai-interviewer/internal/ai"
	"github.com/ecodeclub/ai-interviewer/internal/cos"
	"github.com/ecodeclub/ai-interviewer/internal/interview"
	"github.com/ecodeclub/ai-interviewer/internal/kbase"
	"github.com/ecodeclub/ai-interviewer/internal/speech"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		kbase.InitModule,
		speech.InitModule,
		cos.InitHandler,
		interview.InitModule,
		wire.FieldsOf(new(*interview.Module), "Hdl", "Job"),
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
