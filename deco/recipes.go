package deco

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Timer builds a decorator that measures each call of the function called
// name and logs the run time at info level.
//
// A nil log discards output. A nil clock uses time.Now.
func Timer(name string, log *zap.Logger, clock func() time.Time) Decorator[ArgsFunc] {
	if log == nil {
		log = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}
	return func(fn ArgsFunc) ArgsFunc {
		return func(a Args) any {
			start := clock()
			v := fn(a)
			runTime := clock().Sub(start)
			log.Info(
				fmt.Sprintf("Finished %s in %.4f secs", Repr(name), runTime.Seconds()),
				zap.String("func", name),
				zap.Duration("run_time", runTime),
			)
			return v
		}
	}
}

// SlowDown builds a decorator that waits delay before every call.
//
// A nil sleep uses time.Sleep. A non-positive delay does not sleep at all.
func SlowDown(delay time.Duration, sleep func(time.Duration)) Decorator[ArgsFunc] {
	if sleep == nil {
		sleep = time.Sleep
	}
	return func(fn ArgsFunc) ArgsFunc {
		return func(a Args) any {
			if delay > 0 {
				sleep(delay)
			}
			return fn(a)
		}
	}
}

// Debug builds a decorator that logs the call signature of the function called
// name and the value it returned.
//
// A nil log discards output.
func Debug(name string, log *zap.Logger) Decorator[ArgsFunc] {
	if log == nil {
		log = zap.NewNop()
	}
	return func(fn ArgsFunc) ArgsFunc {
		return func(a Args) any {
			signature := a.Signature()
			log.Info("Calling "+name+"("+signature+")",
				zap.String("func", name),
				zap.String("signature", signature),
			)
			v := fn(a)
			log.Info(Repr(name)+" returned "+Repr(v),
				zap.String("func", name),
				zap.String("result", Repr(v)),
			)
			return v
		}
	}
}
