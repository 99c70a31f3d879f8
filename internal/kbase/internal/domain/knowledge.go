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

// Section 知识库中的一个小节，按二级标题切分得到
// 进程启动时加载一次，之后只读共享
type Section struct {
	// 所属领域，规范化之后的 slug，比如 software_engineering
	Domain string
	// 小节标题，即二级标题的内容
	Name string
	// 小节正文，带有 Domain/Section 前缀，方便直接拼进 prompt
	Content string
}
