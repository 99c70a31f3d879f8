package event

type SessionCompletedEvent struct {
	SN     string `json:"sn"`
	Domain string `json:"domain"`
	// 没有任何已判分题目时为 nil
	Score *float64 `json:"score"`
}

func (SessionCompletedEvent) Topic() string {
	return "interview_session_completed"
}
