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

package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const maxNode int64 = 1023

var ErrExceedNode = errors.New("node超出限制")

// Generator 生成退款单号等全局唯一的业务编号
type Generator struct {
	prefix string
	node   *snowflake.Node
}

func NewGenerator(nodeID int64, prefix string) (*Generator, error) {
	if nodeID < 0 || nodeID > maxNode {
		return nil, fmt.Errorf("%w: %d", ErrExceedNode, nodeID)
	}
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}
	return &Generator{prefix: prefix, node: n}, nil
}

func (g *Generator) Generate() string {
	return g.prefix + g.node.Generate().String()
}

// NodeOf 返回编号所在的节点
func (g *Generator) NodeOf(sn string) (int64, error) {
	id, err := snowflake.ParseString(sn[len(g.prefix):])
	if err != nil {
		return 0, err
	}
	return id.Node(), nil
}
