package fn

import (
	"slices"
	"time"

	"go.uber.org/zap"
)

// Delay calls f(args...) once, no earlier than wait from now, on a separate
// goroutine. It returns immediately; f's result, if any, is discarded and
// the call cannot be cancelled. args are copied before Delay returns.
//
// Delays with different waits carry no ordering guarantee beyond each one
// firing after its own wait. A panic inside f is recovered and logged at
// error level through the package logger.
//
//	fn.Delay(func(names ...string) { log.Println("hello", names) }, time.Second, "ann", "bob")
func Delay[A any](f func(...A), wait time.Duration, args ...A) {
	frozen := slices.Clone(args)
	time.AfterFunc(wait, func() {
		defer func() {
			if r := recover(); r != nil {
				logger().Error("panic in delayed call",
					zap.Any("panic", r),
					zap.Duration("wait", wait),
				)
			}
		}()
		f(frozen...)
	})
}
