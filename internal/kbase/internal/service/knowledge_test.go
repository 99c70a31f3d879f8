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

package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	svc, err := NewFileService("testdata")
	require.NoError(t, err)
	return svc
}

func TestFileService_Sections(t *testing.T) {
	svc := newTestService(t)
	secs := svc.Sections("robotics")
	// 文档开头 + 四个二级标题
	require.Len(t, secs, 5)
	assert.Equal(t, "", secs[0].Name)
	assert.Equal(t, "Perception and Sensing", secs[1].Name)
	assert.Equal(t, "Embedded Platforms", secs[4].Name)
	assert.True(t, strings.HasPrefix(secs[1].Content, "Domain: robotics\nSection: Perception and Sensing\n"))
}

func TestFileService_SectionNames(t *testing.T) {
	svc := newTestService(t)
	assert.Equal(t, []string{
		"Perception and Sensing",
		"Control Systems",
		"Kinematics",
		"Embedded Platforms",
	}, svc.SectionNames("robotics"))
	assert.Empty(t, svc.SectionNames("philosophy"))
}

func TestFileService_Relevant(t *testing.T) {
	svc := newTestService(t)
	testCases := []struct {
		name  string
		query string
		dom   string
		limit int
		// 每个结果必须包含的子串，按相关度降序
		wantContains []string
	}{
		{
			// 所有小节都带 Domain: robotics 前缀，区分度来自 interview 和 topics
			name:  "按命中词元数降序_同分保持文档顺序",
			query: "robotics interview topics",
			dom:   "robotics",
			limit: 3,
			wantContains: []string{
				"# Robotics Interview Topics",
				"Perception and Sensing",
				"Control Systems",
			},
		},
		{
			name:         "limit截断",
			query:        "robotics",
			dom:          "robotics",
			limit:        2,
			wantContains: []string{"# Robotics Interview Topics", "Perception and Sensing"},
		},
		{
			name:         "查询词元大小写无关且去重",
			query:        "Kinematics KINEMATICS kinematics",
			dom:          "robotics",
			limit:        5,
			wantContains: []string{"inverse kinematics"},
		},
		{
			name:         "未知领域兜底",
			query:        "whatever",
			dom:          "philosophy",
			limit:        3,
			wantContains: []string{"General philosophy interview topics"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.Relevant(tc.query, tc.dom, tc.limit)
			require.Len(t, res, len(tc.wantContains))
			for i, want := range tc.wantContains {
				assert.Contains(t, res[i], want)
			}
		})
	}
}

func TestFileService_Relevant_NoMatch(t *testing.T) {
	svc := newTestService(t)
	// 领域已知但一个词元都没命中时返回空，而不是兜底
	assert.Empty(t, svc.Relevant("zzzz qqqq", "data_science", 3))
}

func TestFileService_Domains(t *testing.T) {
	svc := newTestService(t)
	assert.ElementsMatch(t, []string{"robotics", "data_science"}, svc.Domains())
}
