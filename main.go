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

package main

import (
	"context"

	"github.com/ecodeclub/jobtracker/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/local.yaml
func main() {
	// 先触发初始化
	egoApp := ego.New()
	tp := ioc.InitZipkinTracer()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			elog.Error("关闭 TracerProvider 失败", elog.FieldErr(err))
		}
	}()
	app, err := ioc.InitApp(tp)
	if err != nil {
		panic(err)
	}
	err = egoApp.
		Invoker().
		Serve(
			egovernor.Load("server.governor").Build(),
			app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}
