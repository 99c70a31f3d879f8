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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ai-interviewer/internal/interview/internal/domain"
	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// 会话在面试期间会被反复读（每次出题、每次判分都要查截止时刻），
// 过期时间只要盖过一场面试的时长就够了
const expiration = 2 * time.Hour

var ErrSessionNotCached = errors.New("会话不在缓存里")

type SessionCache interface {
	Set(ctx context.Context, sess domain.Session) error
	Get(ctx context.Context, id int64) (domain.Session, error)
	Del(ctx context.Context, id int64) error
}

type sessionCache struct {
	ec ecache.Cache
}

func NewSessionCache(ec ecache.Cache) SessionCache {
	return &sessionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "interview:session:",
		},
	}
}

func (c *sessionCache) Set(ctx context.Context, sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "序列化会话失败")
	}
	return c.ec.Set(ctx, c.key(sess.Id), string(data), expiration)
}

func (c *sessionCache) Get(ctx context.Context, id int64) (domain.Session, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Session{}, ErrSessionNotCached
	}
	if val.Err != nil {
		return domain.Session{}, val.Err
	}
	var sess domain.Session
	err := json.Unmarshal([]byte(val.Val.(string)), &sess)
	if err != nil {
		return domain.Session{}, errors.Wrap(err, "反序列化会话失败")
	}
	return sess, nil
}

func (c *sessionCache) Del(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *sessionCache) key(id int64) string {
	return fmt.Sprintf("%d", id)
}
