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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ecodeclub/ai-interviewer/internal/kbase/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

// Service 面试知识库
//
// 这不是语义检索。Relevant 只做最朴素的词元命中计数，
// 作为嵌入检索的廉价替代品，升级成向量检索属于行为变更，不要顺手做。
//
//go:generate mockgen -source=./knowledge.go -destination=../../mocks/kbase.mock.go -package=kbasemocks -typed=true Service
type Service interface {
	// Sections 返回某个领域的全部小节，按文档原始顺序
	Sections(dom string) []domain.Section
	// SectionNames 返回某个领域的全部小节标题，给 topics 接口用
	SectionNames(dom string) []string
	// Relevant 返回与 query 最相关的至多 limit 个小节正文，相关度降序。
	// 领域未知或文档缺失时返回一个兜底元素
	Relevant(query string, dom string, limit int) []string
	// Domains 已加载的领域
	Domains() []string
}

type fileService struct {
	// domain slug -> 小节列表，加载之后只读
	base   map[string][]domain.Section
	order  []string
	logger *elog.Component
}

// NewFileService 从 dataDir/<domain>/topics.md 加载全部领域文档
func NewFileService(dataDir string) (Service, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("读取知识库目录失败: %w", err)
	}
	svc := &fileService{
		base:   make(map[string][]domain.Section),
		logger: elog.DefaultLogger,
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dom := entry.Name()
		content, err := os.ReadFile(filepath.Join(dataDir, dom, "topics.md"))
		if err != nil {
			// 某个领域缺文档不影响其它领域
			svc.logger.Warn("加载领域文档失败",
				elog.String("domain", dom), elog.FieldErr(err))
			continue
		}
		svc.base[dom] = splitMarkdown(string(content), dom)
		svc.order = append(svc.order, dom)
	}
	svc.logger.Info("知识库加载完成", elog.Int("domains", len(svc.base)))
	return svc, nil
}

func (s *fileService) Sections(dom string) []domain.Section {
	return s.base[dom]
}

func (s *fileService) SectionNames(dom string) []string {
	secs := s.base[dom]
	res := make([]string, 0, len(secs))
	for _, sec := range secs {
		if sec.Name != "" {
			res = append(res, sec.Name)
		}
	}
	return res
}

func (s *fileService) Domains() []string {
	return s.order
}

func (s *fileService) Relevant(query string, dom string, limit int) []string {
	secs, ok := s.base[dom]
	if !ok {
		return []string{fmt.Sprintf("General %s interview topics", dom)}
	}

	// 去重之后的小写查询词元
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(query)) {
		words[w] = struct{}{}
	}

	type scored struct {
		score   int
		content string
	}
	var matched []scored
	for _, sec := range secs {
		lower := strings.ToLower(sec.Content)
		score := 0
		for w := range words {
			if strings.Contains(lower, w) {
				score++
			}
		}
		if score > 0 {
			matched = append(matched, scored{score: score, content: sec.Content})
		}
	}
	// 稳定排序：同分保持文档原始顺序
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score > matched[j].score
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	res := make([]string, 0, len(matched))
	for _, m := range matched {
		res = append(res, m.content)
	}
	return res
}

// splitMarkdown 按二级标题切分文档
func splitMarkdown(content string, dom string) []domain.Section {
	var sections []domain.Section
	var cur strings.Builder
	heading := ""
	flush := func() {
		body := strings.TrimSpace(cur.String())
		if body == "" {
			return
		}
		sections = append(sections, domain.Section{
			Domain: dom,
			Name:   heading,
			Content: fmt.Sprintf("Domain: %s\nSection: %s\n%s",
				dom, heading, body),
		})
	}
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "## ") {
			flush()
			heading = strings.TrimSpace(line[3:])
			cur.Reset()
		}
		cur.WriteString(line)
		cur.WriteString("\n")
	}
	flush()
	return sections
}
