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

package database

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	instrumentationName = "github.com/ecodeclub/jobtracker/internal/pkg/database"
	spanKey             = "tracing:span"
)

// GormTracingPlugin 给每一条 SQL 创建一个 span
type GormTracingPlugin struct {
	tracer trace.Tracer
}

// NewGormTracingPlugin tp 为 nil 的时候使用全局的 TracerProvider
func NewGormTracingPlugin(tp trace.TracerProvider) *GormTracingPlugin {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &GormTracingPlugin{tracer: tp.Tracer(instrumentationName)}
}

func (p *GormTracingPlugin) Name() string {
	return "GormTracingPlugin"
}

func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	return errors.Join(
		cb.Query().Before("gorm:query").Register("tracing:before_query", p.before("SELECT")),
		cb.Query().After("gorm:query").Register("tracing:after_query", p.after),
		cb.Create().Before("gorm:create").Register("tracing:before_create", p.before("INSERT")),
		cb.Create().After("gorm:create").Register("tracing:after_create", p.after),
		cb.Update().Before("gorm:update").Register("tracing:before_update", p.before("UPDATE")),
		cb.Update().After("gorm:update").Register("tracing:after_update", p.after),
		cb.Delete().Before("gorm:delete").Register("tracing:before_delete", p.before("DELETE")),
		cb.Delete().After("gorm:delete").Register("tracing:after_delete", p.after),
		cb.Row().Before("gorm:row").Register("tracing:before_row", p.before("SELECT")),
		cb.Row().After("gorm:row").Register("tracing:after_row", p.after),
		cb.Raw().Before("gorm:raw").Register("tracing:before_raw", p.before("RAW")),
		cb.Raw().After("gorm:raw").Register("tracing:after_raw", p.after),
	)
}

func (p *GormTracingPlugin) before(op string) func(db *gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		name := op
		if table := tableOf(db); table != "" {
			name = table + " " + op
		}
		ctx, span := p.tracer.Start(db.Statement.Context, name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", "mysql"),
				attribute.String("db.operation", op),
			))
		db.Statement.Context = ctx
		db.InstanceSet(spanKey, span)
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	val, ok := db.InstanceGet(spanKey)
	if !ok {
		return
	}
	span, ok := val.(trace.Span)
	if !ok {
		return
	}
	defer span.End()
	attrs := []attribute.KeyValue{
		attribute.Int64("db.rows_affected", db.Statement.RowsAffected),
	}
	if table := tableOf(db); table != "" {
		attrs = append(attrs, attribute.String("db.table", table))
	}
	if sql := db.Statement.SQL.String(); sql != "" {
		attrs = append(attrs, attribute.String("db.statement", sql))
	}
	span.SetAttributes(attrs...)
	// 找不到数据是正常的业务情况
	if db.Error != nil && !errors.Is(db.Error, gorm.ErrRecordNotFound) {
		span.RecordError(db.Error)
		span.SetStatus(codes.Error, db.Error.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func tableOf(db *gorm.DB) string {
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	if db.Statement.Schema != nil {
		return db.Statement.Schema.Table
	}
	return ""
}
