package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sghaida/deco/config"
	"github.com/sghaida/deco/deco"
	"github.com/sghaida/deco/examples"
	"go.uber.org/zap"
)

// example describes one runnable demonstration.
type example struct {
	// fnName is the undecorated function name reported by Timer and Debug.
	fnName string

	// decorators are applied outermost first unless config overrides them.
	decorators []string

	run func(c *catalog, fnName string, decorators []string) error
}

var catalogExamples = map[string]example{
	"middle": {
		fnName:     "middle",
		decorators: []string{"before-and-after"},
		run: func(c *catalog, fnName string, ds []string) error {
			return c.printText(fnName, examples.Middle, ds)
		},
	},
	"plus-one": {
		fnName:     "function_call",
		decorators: []string{"plus-one"},
		run: func(c *catalog, fnName string, ds []string) error {
			f, err := c.numbers.Build(deco.Wrap(fnName, examples.FunctionCall), ds...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(c.stdout, f.Value()())
			return nil
		},
	},
	"say-hi": {
		fnName:     "say_hi",
		decorators: []string{"uppercase", "before-and-after"},
		run: func(c *catalog, fnName string, ds []string) error {
			return c.printText(fnName, examples.SayHi, ds)
		},
	},
	"args": {
		fnName:     "function_with_no_arguments",
		decorators: []string{"forward-args"},
		run: func(c *catalog, fnName string, ds []string) error {
			fn := examples.FunctionWithNoArguments(c.stdout)
			f, err := c.calls.Build(deco.Wrap(fnName, fn), ds...)
			if err != nil {
				return err
			}
			f.Value()(deco.Positional("Yesyesyesyes").With("keyword_arg", "Nononono"))
			return nil
		},
	},
	"timer": {
		fnName:     "waste_some_time",
		decorators: []string{"timer"},
		run: func(c *catalog, fnName string, ds []string) error {
			f, err := c.calls.Build(deco.Wrap(fnName, deco.ArgsFunc(examples.WasteSomeTime)), ds...)
			if err != nil {
				return err
			}
			f.Value()(deco.Positional(c.cfg.WasteIterations))
			return nil
		},
	},
	"countdown": {
		fnName:     "countdown",
		decorators: []string{"slow-down"},
		run: func(c *catalog, fnName string, ds []string) error {
			var countdown deco.ArgsFunc
			f, err := c.calls.Build(deco.Wrap(fnName, examples.Countdown(c.stdout, &countdown)), ds...)
			if err != nil {
				return err
			}
			countdown = f.Value()
			countdown(deco.Positional(c.cfg.CountdownFrom))
			return nil
		},
	},
	"debug": {
		fnName:     "make_greeting",
		decorators: []string{"debug"},
		run: func(c *catalog, fnName string, ds []string) error {
			f, err := c.calls.Build(deco.Wrap(fnName, deco.ArgsFunc(examples.MakeGreeting)), ds...)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(c.stdout, deco.Str(f.Value()(deco.Positional("Richard").With("age", 112))))
			return nil
		},
	},
}

// exampleNames lists the catalog in a fixed, documented order.
func exampleNames() []string {
	return []string{"middle", "plus-one", "say-hi", "args", "timer", "countdown", "debug"}
}

// catalog binds the examples to the registries of one invocation.
type catalog struct {
	stdout io.Writer
	logger *zap.Logger
	cfg    config.Config

	texts   *deco.Registry[func() string]
	numbers *deco.Registry[func() int]
	calls   *deco.Registry[deco.ArgsFunc]
}

func newCatalog(stdout io.Writer, logger *zap.Logger, cfg config.Config) *catalog {
	c := &catalog{stdout: stdout, logger: logger, cfg: cfg}

	c.texts = deco.NewRegistry[func() string]().
		Provide("before-and-after", deco.Static[func() string](deco.BeforeAndAfter)).
		Provide("uppercase", deco.Static[func() string](deco.Uppercase))

	c.numbers = deco.NewRegistry[func() int]().
		Provide("plus-one", deco.Static[func() int](deco.PlusOne[int]))

	c.calls = deco.NewRegistry[deco.ArgsFunc]().
		Provide("forward-args", deco.Static(deco.ForwardArgs(stdout))).
		Provide("slow-down", deco.Static(deco.SlowDown(cfg.SlowDown(), nil))).
		Provide("timer", func(fnName string) deco.Decorator[deco.ArgsFunc] {
			return deco.Timer(fnName, logger, nil)
		}).
		Provide("debug", func(fnName string) deco.Decorator[deco.ArgsFunc] {
			return deco.Debug(fnName, logger)
		})

	return c
}

// run looks up name, resolves its decorators and runs it.
func (c *catalog) run(name string) error {
	ex, ok := catalogExamples[name]
	if !ok {
		return fmt.Errorf("unknown example %s", strconv.Quote(name))
	}
	ds := ex.decorators
	if override, ok := c.cfg.Decorators[name]; ok {
		ds = override
	}
	c.logger.Debug("example",
		zap.String("name", name),
		zap.String("func", ex.fnName),
		zap.Strings("decorators", ds),
	)
	return ex.run(c, ex.fnName, ds)
}

func (c *catalog) printText(fnName string, fn func() string, ds []string) error {
	f, err := c.texts.Build(deco.Wrap(fnName, fn), ds...)
	if err != nil {
		return err
	}
	c.logger.Debug("decorated", zap.String("func", f.Name), zap.Strings("applied", f.Applied()))
	_, _ = fmt.Fprintln(c.stdout, f.Value()())
	return nil
}
