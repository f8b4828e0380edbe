//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/vlivernoche/portfolio/internal/particles"
)

// AnimationFrames schedules callbacks with requestAnimationFrame.
type AnimationFrames struct {
	cb      js.Func
	pending func(float64)
}

var _ particles.Scheduler = (*AnimationFrames)(nil)

func NewAnimationFrames() *AnimationFrames {
	a := &AnimationFrames{}
	a.cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		fn := a.pending
		a.pending = nil
		if fn != nil && len(args) > 0 {
			fn(args[0].Float())
		}
		return nil
	})
	return a
}

func (a *AnimationFrames) RequestFrame(fn func(float64)) {
	a.pending = fn
	window().Call("requestAnimationFrame", a.cb)
}

// Now is performance.now(), the clock frame timestamps are measured on.
func (a *AnimationFrames) Now() float64 {
	return window().Get("performance").Call("now").Float()
}

func (a *AnimationFrames) Release() { a.cb.Release() }
