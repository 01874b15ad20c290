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

package sequencenumber

import (
	"errors"
	"fmt"
	"time"

	"github.com/lithammer/shortuuid/v4"
)

// Length 微信支付的商户订单号最长 32 位
const Length = 32

var ErrInvalidUID = errors.New("用户ID非法")

type TimestampGenerateFunc func(time.Time) int64

type ShortUUIDGenerateFunc func() string

// Generator 生成订单号: 毫秒时间戳 + 用户ID后四位 + shortuuid 补齐
type Generator struct {
	now              func() time.Time
	timestampGenFunc TimestampGenerateFunc
	shortUUIDGenFunc ShortUUIDGenerateFunc
}

func NewGeneratorWith(timestampGen TimestampGenerateFunc, uuidGen ShortUUIDGenerateFunc) *Generator {
	return &Generator{
		now:              time.Now,
		timestampGenFunc: timestampGen,
		shortUUIDGenFunc: uuidGen,
	}
}

func NewGenerator() *Generator {
	return NewGeneratorWith(func(t time.Time) int64 { return t.UnixMilli() }, shortuuid.New)
}

func (s *Generator) Generate(uid int64) (string, error) {
	if uid <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidUID, uid)
	}
	sn := fmt.Sprintf("%d%04d%s", s.timestampGenFunc(s.now()), uid%10000, s.shortUUIDGenFunc())
	if len(sn) < Length {
		return "", fmt.Errorf("订单号长度不足: %s", sn)
	}
	return sn[:Length], nil
}
