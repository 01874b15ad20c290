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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	sng := NewGeneratorWith(func(_ time.Time) int64 { return 1234554320123 }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name    string
		uid     int64
		want    string
		wantErr error
	}{
		{
			name: "最小用户ID",
			uid:  1,
			want: "12345543201230001nUfojcH2M5j2j3T",
		},
		{
			name: "截取用户ID后四位",
			uid:  123456789,
			want: "12345543201236789nUfojcH2M5j2j3T",
		},
		{
			name: "后四位为零",
			uid:  10000,
			want: "12345543201230000nUfojcH2M5j2j3T",
		},
		{
			name:    "非法用户ID",
			uid:     0,
			wantErr: ErrInvalidUID,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.uid)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, sn)
			assert.Len(t, sn, Length)
		})
	}
}

func TestGenerator_GenerateUnique(t *testing.T) {
	g := NewGenerator()
	a, err := g.Generate(123456789)
	require.NoError(t, err)
	b, err := g.Generate(123456789)
	require.NoError(t, err)
	assert.Len(t, a, Length)
	assert.NotEqual(t, a, b)
	assert.True(t, strings.Contains(a[13:17], "6789"))
}
