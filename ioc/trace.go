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

package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/zipkin"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

type TraceConfig struct {
	ServiceName string `yaml:"serviceName"`
	// Endpoint 为空的时候不上报，只在进程内传播
	Endpoint string `yaml:"endpoint"`
	// SampleRatio 小于等于 0 或者大于等于 1 的时候全部采样
	SampleRatio float64 `yaml:"sampleRatio"`
}

// InitZipkinTracer 初始化全局的 TracerProvider，调用方负责 Shutdown
func InitZipkinTracer() *trace.TracerProvider {
	var cfg TraceConfig
	if err := econf.UnmarshalKey("trace.zipkin", &cfg); err != nil {
		elog.Panic("读取 trace 配置失败", elog.FieldErr(err))
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "jobtracker"
	}
	res, err := newResource(cfg.ServiceName)
	if err != nil {
		elog.Panic("初始化 resource 失败", elog.FieldErr(err))
	}
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	opts := []trace.TracerProviderOption{
		trace.WithResource(res),
		trace.WithSampler(sampler(cfg.SampleRatio)),
	}
	if cfg.Endpoint != "" {
		exporter, err := zipkin.New(cfg.Endpoint)
		if err != nil {
			elog.Panic("初始化 zipkin exporter 失败", elog.FieldErr(err))
		}
		opts = append(opts, trace.WithBatcher(exporter, trace.WithBatchTimeout(time.Second)))
	}
	tp := trace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	return tp
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion("v0.0.1"),
		),
	)
}

func sampler(ratio float64) trace.Sampler {
	if ratio <= 0 || ratio >= 1 {
		return trace.ParentBased(trace.AlwaysSample())
	}
	return trace.ParentBased(trace.TraceIDRatioBased(ratio))
}
