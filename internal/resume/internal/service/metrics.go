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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	actionDeleteRecord = "delete_record"
	actionDeleteFile   = "delete_file"
)

var (
	uploadCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobtracker",
		Subsystem: "resume",
		Name:      "upload_total",
		Help:      "简历上传次数，按结果区分",
	}, []string{"result"})

	compensationCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobtracker",
		Subsystem: "resume",
		Name:      "compensation_total",
		Help:      "上传失败之后执行补偿操作的次数",
	}, []string{"action", "result"})
)
