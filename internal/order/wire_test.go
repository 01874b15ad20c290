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

package order

import (
	"testing"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
)

func TestInitJobConfig(t *testing.T) {
	testCases := []struct {
		name      string
		conf      map[string]any
		wantPanic bool
		wantCfg   jobConfig
	}{
		{
			name: "未配置的字段使用默认值",
			conf: map[string]any{"batchSize": 20},
			wantCfg: jobConfig{
				CloseThreshold:    15 * time.Minute,
				CompleteThreshold: time.Hour,
				BatchSize:         20,
				Timeout:           time.Minute,
			},
		},
		{
			name:      "批次大小为0",
			conf:      map[string]any{"batchSize": 0},
			wantPanic: true,
		},
		{
			name:      "批次大小为负数",
			conf:      map[string]any{"batchSize": -1},
			wantPanic: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			econf.Set("order.job", tc.conf)
			if tc.wantPanic {
				assert.Panics(t, func() { initJobConfig() })
				return
			}
			assert.Equal(t, tc.wantCfg, initJobConfig())
		})
	}
}
