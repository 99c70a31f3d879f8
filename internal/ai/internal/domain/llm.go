package domain

import "errors"

// ErrGenerationUnavailable 表示生成后端不可达或者调用失败。
// 下游只认这个错误类型，不做任何字符串哨兵比较
var ErrGenerationUnavailable = errors.New("生成服务不可用")

type GenRequest struct {
	// 完整的 prompt，由调用方拼好
	Prompt string
}

type GenResponse struct {
	// 生成后端的原始回答
	Answer string
	// 使用的 token 数量，后端不一定会给
	Tokens int64
}
