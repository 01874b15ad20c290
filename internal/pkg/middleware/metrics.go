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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计 HTTP 接口的响应时间和请求数
type MetricsBuilder struct {
	Namespace string
	Subsystem string
	Help      string
	// 同一个进程内 web 和 admin 两个 server 需要区分开
	Server string
}

func NewMetricsBuilder(namespace, subsystem, server string) *MetricsBuilder {
	return &MetricsBuilder{
		Namespace: namespace,
		Subsystem: subsystem,
		Server:    server,
		Help:      "统计 HTTP 接口",
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	labels := []string{"method", "path", "status_code"}
	summaryVec := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace:   b.Namespace,
		Subsystem:   b.Subsystem,
		Name:        "http_request_duration_seconds",
		Help:        b.Help,
		ConstLabels: prometheus.Labels{"server": b.Server},
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.95: 0.005,
			0.99: 0.001,
		},
	}, labels)
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   b.Namespace,
		Subsystem:   b.Subsystem,
		Name:        "http_requests_total",
		Help:        b.Help,
		ConstLabels: prometheus.Labels{"server": b.Server},
	}, labels)
	prometheus.MustRegister(summaryVec, counterVec)
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		path := ctx.FullPath()
		if path == "" {
			// 没有命中路由的统一归类, 避免 label 爆炸
			path = "unknown"
		}
		lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
		summaryVec.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
		counterVec.WithLabelValues(lvs...).Inc()
	}
}
