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

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		dom  string
		want string
	}{
		{name: "规范slug原样通过", dom: "data_science", want: DomainDataScience},
		{name: "展示名归一成slug", dom: "Data Science", want: DomainDataScience},
		{name: "带斜杠的展示名", dom: "AI/ML", want: DomainAIML},
		{name: "前后空白被剥掉", dom: "  robotics  ", want: DomainRobotics},
		{name: "未知领域原样保留", dom: "astrology", want: "astrology"},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeDomain(tc.dom))
		})
	}
}

func TestDomainLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Software Engineering", DomainLabel("software_engineering"))
	assert.Equal(t, "Hardware/ECE", DomainLabel("hardware/ece"))
	assert.Equal(t, "astrology", DomainLabel("astrology"))
}

func TestSessionExpired(t *testing.T) {
	t.Parallel()
	start := time.Now()
	sess := Session{Ctime: start.UnixMilli(), DurationMinutes: 45}
	assert.False(t, sess.Expired(start.Add(44*time.Minute)))
	assert.True(t, sess.Expired(start.Add(46*time.Minute)))
}
