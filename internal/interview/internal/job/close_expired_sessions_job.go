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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/repository"
	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CloseExpiredSessionsJob 兜底结算。正常流程里超时会在下一次请求时结算，
// 但用户直接关页面就没有下一次请求了
type CloseExpiredSessionsJob struct {
	svc     service.FlowService
	repo    repository.Repository
	limit   int
	timeout time.Duration
	logger  *elog.Component
}

func NewCloseExpiredSessionsJob(svc service.FlowService,
	repo repository.Repository, limit int, timeout time.Duration) *CloseExpiredSessionsJob {
	return &CloseExpiredSessionsJob{
		svc:     svc,
		repo:    repo,
		limit:   limit,
		timeout: timeout,
		logger:  elog.DefaultLogger,
	}
}

func (c *CloseExpiredSessionsJob) Name() string {
	return "CloseExpiredSessionsJob"
}

func (c *CloseExpiredSessionsJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	now := time.Now().UnixMilli()

	for {
		sessions, err := c.repo.ExpiredActiveSessions(ctx, now, 0, c.limit)
		if err != nil {
			return fmt.Errorf("获取过期会话失败: %w", err)
		}

		for _, sess := range sessions {
			// Complete 自带幂等，和请求路径上的超时结算并发也没事
			if _, err = c.svc.Complete(ctx, sess.Id); err != nil {
				c.logger.Error("结算过期会话失败",
					elog.Int64("sid", sess.Id),
					elog.FieldErr(err))
			}
		}

		if len(sessions) < c.limit {
			break
		}
	}
	return nil
}
