package apiclient

import "context"

// Invoker sends a call one step further down the chain.
type Invoker func(ctx context.Context, call *Call) (*Response, error)

// Interceptor wraps a call: it may edit the call before invoking the next
// stage and inspect or replace the response afterwards.
type Interceptor func(ctx context.Context, call *Call, next Invoker) (*Response, error)

// chain composes interceptors around final, first element outermost.
func chain(final Invoker, interceptors ...Interceptor) Invoker {
	invoker := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic, next := interceptors[i], invoker
		invoker = func(ctx context.Context, call *Call) (*Response, error) {
			return ic(ctx, call, next)
		}
	}
	return invoker
}
