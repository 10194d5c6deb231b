package classify

import (
	"context"
	"sync"

	einocb "github.com/cloudwego/eino/callbacks"
	einomodel "github.com/cloudwego/eino/components/model"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"

	logx "github.com/vat-advisor-poc/server/pkg/logger"
)

var observerOnce sync.Once

// registerModelObserver installs a global callback handler that traces
// extraction model calls. Registered once regardless of how many provider
// classifiers are constructed.
func registerModelObserver() {
	observerOnce.Do(func() {
		einocb.AppendGlobalHandlers(newModelObserver())
	})
}

// newModelObserver builds a typed model callback handler that logs the
// extraction round-trip at debug level.
func newModelObserver() einocb.Handler {
	h := &callbackHelper.ModelCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *einomodel.CallbackInput) context.Context {
			if info == nil {
				return ctx
			}
			n := 0
			if input != nil {
				n = len(input.Messages)
			}
			logx.Debug().
				Str("component", info.Type).
				Str("name", info.Name).
				Int("messages", n).
				Msg("extraction model start")
			return ctx
		},
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *einomodel.CallbackOutput) context.Context {
			if info == nil {
				return ctx
			}
			size := 0
			if output != nil && output.Message != nil {
				size = len(output.Message.Content)
			}
			logx.Debug().
				Str("component", info.Type).
				Str("name", info.Name).
				Int("output_bytes", size).
				Msg("extraction model end")
			return ctx
		},
		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			if info == nil {
				return ctx
			}
			logx.Warn().Err(err).
				Str("component", info.Type).
				Str("name", info.Name).
				Msg("extraction model error")
			return ctx
		},
	}
	return callbackHelper.NewHandlerHelper().ChatModel(h).Handler()
}
