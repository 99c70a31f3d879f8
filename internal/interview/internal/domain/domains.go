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

import "strings"

// 领域在系统内只用规范 slug 表示，展示名是派生值。
// 入口处统一 Normalize，后面的查表就不用再容忍两种拼法
const (
	DomainSoftwareEngineering = "software_engineering"
	DomainDataScience         = "data_science"
	DomainAIML                = "ai_ml"
	DomainHardwareECE         = "hardware_ece"
	DomainRobotics            = "robotics"
)

var domainLabels = map[string]string{
	DomainSoftwareEngineering: "Software Engineering",
	DomainDataScience:         "Data Science",
	DomainAIML:                "AI/ML",
	DomainHardwareECE:         "Hardware/ECE",
	DomainRobotics:            "Robotics",
}

var domainAliases = map[string]string{
	"software_engineering": DomainSoftwareEngineering,
	"software engineering": DomainSoftwareEngineering,
	"data_science":         DomainDataScience,
	"data science":         DomainDataScience,
	"ai_ml":                DomainAIML,
	"ai/ml":                DomainAIML,
	"hardware_ece":         DomainHardwareECE,
	"hardware/ece":         DomainHardwareECE,
	"robotics":             DomainRobotics,
}

// Domains 全部已知领域的规范 slug，顺序固定
func Domains() []string {
	return []string{
		DomainSoftwareEngineering,
		DomainDataScience,
		DomainAIML,
		DomainHardwareECE,
		DomainRobotics,
	}
}

// NormalizeDomain 把 slug 和展示名都归一成规范 slug。
// 未知领域原样保留，查表的地方自行降级到通用内容
func NormalizeDomain(dom string) string {
	d := strings.TrimSpace(dom)
	if canonical, ok := domainAliases[strings.ToLower(d)]; ok {
		return canonical
	}
	return d
}

// DomainLabel 规范 slug 对应的展示名，未知领域原样返回
func DomainLabel(dom string) string {
	if label, ok := domainLabels[NormalizeDomain(dom)]; ok {
		return label
	}
	return dom
}

// KnownDomain 是否是五个内置领域之一
func KnownDomain(dom string) bool {
	_, ok := domainLabels[NormalizeDomain(dom)]
	return ok
}
