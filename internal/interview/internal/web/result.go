package web

import (
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	sessionNotFoundResult = ginx.Result{
		Code: errs.SessionNotFound.Code,
		Msg:  errs.SessionNotFound.Msg,
	}
	questionNotFoundResult = ginx.Result{
		Code: errs.QuestionNotFound.Code,
		Msg:  errs.QuestionNotFound.Msg,
	}
	sessionExpiredResult = ginx.Result{
		Code: errs.SessionExpired.Code,
		Msg:  errs.SessionExpired.Msg,
	}
)
