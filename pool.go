package stext

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Conversions are frequent and short-lived, and every one of them needs a
// Context with a couple of backing arrays. To avoid re-allocating those for
// every string we pool released contexts and recycle their storage.
type contextPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalContextPool *contextPool

func init() {
	globalContextPool = &contextPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &Context{}, nil
		})
	globalContextPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalContextPool.opool = pool.NewObjectPool(globalContextPool.ctx, factory, config)
}

// BorrowContext returns a conversion context for the given lean text, taken
// from a global pool. A nil environment is synonymous with
// DefaultEnvironment(). The context comes fully reset: an empty mark
// ledger, an unpopulated class cache, base direction LTR and no pending
// special case.
//
// Callers hand the context back with Release when the conversion is done.
func BorrowContext(env *Environment, text string) *Context {
	o, _ := globalContextPool.opool.BorrowObject(globalContextPool.ctx)
	ctx := o.(*Context)
	ctx.reset(env, text)
	return ctx
}

// Release clears the context and puts it back into the pool. The context
// must not be used afterwards.
func (ctx *Context) Release() {
	ctx.env = nil
	ctx.input = ""
	ctx.text = ctx.text[:0]
	ctx.offsets = ctx.offsets[:0]
	ctx.pending = 0
	_ = globalContextPool.opool.ReturnObject(globalContextPool.ctx, ctx)
}
