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

package job

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/prometheus/client_golang/prometheus"
)

// CronJobBuilder 给定时任务加上日志和执行时间统计
type CronJobBuilder struct {
	l      *elog.Component
	vector *prometheus.SummaryVec
}

func NewCronJobBuilder(namespace, subsystem string) *CronJobBuilder {
	vector := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "cron_job",
		Help:      "统计定时任务的执行情况",
		Objectives: map[float64]float64{
			0.5:  0.01,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, []string{"job", "success"})
	prometheus.MustRegister(vector)
	return &CronJobBuilder{
		l:      elog.DefaultLogger,
		vector: vector,
	}
}

func (b *CronJobBuilder) Build(job ecron.NamedJob) ecron.FuncJob {
	jobName := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		b.l.Debug("开始运行",
			elog.String("job-name", jobName))
		err := job.Run(ctx)
		duration := time.Since(start)
		b.vector.WithLabelValues(jobName, successLabel(err)).Observe(duration.Seconds())
		if err != nil {
			b.l.Error("执行失败",
				elog.FieldErr(err),
				elog.String("job-name", jobName))
			return err
		}
		b.l.Debug("结束运行",
			elog.String("job-name", jobName),
			elog.FieldCost(duration))
		return nil
	}
}

func successLabel(err error) string {
	if err != nil {
		return "false"
	}
	return "true"
}
