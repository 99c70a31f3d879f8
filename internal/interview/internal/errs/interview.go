package errs

var (
	SystemError      = ErrorCode{Code: 531001, Msg: "系统错误"}
	SessionNotFound  = ErrorCode{Code: 531002, Msg: "面试会话不存在"}
	QuestionNotFound = ErrorCode{Code: 531003, Msg: "面试题目不存在"}
	// 过期不是可重试错误，前端拿到这个码要跳结果页
	SessionExpired = ErrorCode{Code: 531410, Msg: "面试时间已到"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
