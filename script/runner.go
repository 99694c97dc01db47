package script

import (
	"context"
	"fmt"
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"

	"github.com/tuannh982/sparsecoll/collection"
)

type coll = collection.Collection[string, any]

// Runner executes scripts against the collections of one registry.
type Runner struct {
	registry *collection.Registry[string, any]
	out      io.Writer
	rng      *rand.Rand
	log      *log.Entry
}

type opFunc func(r *Runner, st Step) (result string, hasResult bool, err error)

var ops = map[string]opFunc{
	"new":         opNew,
	"drop":        opDrop,
	"add":         opAdd,
	"clear":       mutate(func(c *coll, _ Step) error { c.Clear(); return nil }),
	"compact":     mutate(func(c *coll, _ Step) error { c.Compact(); return nil }),
	"reverse":     mutate(func(c *coll, _ Step) error { c.Reverse(); return nil }),
	"concat":      opConcat,
	"del":         mutate(withRange((*coll).Del)),
	"remove":      mutate(withRange((*coll).Remove)),
	"remove-span": mutate(withRange((*coll).RemoveSpan)),
	"slice":       opSlice,
	"first":       opEnd((*coll).First),
	"last":        opEnd((*coll).Last),
	"pop":         opEnd((*coll).Pop),
	"join":        opJoin,
	"search":      opSearch,
	"swap":        mutate(opSwap),
	"unique":      opUnique,
	"fill":        mutate(opFill),
	"rotate":      mutate(opRotate),
	"shuffle":     opShuffle,
	"splice":      opSplice,
	"length":      opLength,
	"string":      opString,
}

// NewRunner writes step output to out. seed drives the shuffle op. A nil
// logger falls back to the logrus standard logger.
func NewRunner(registry *collection.Registry[string, any], out io.Writer, logger *log.Entry, seed uint64) *Runner {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Runner{
		registry: registry,
		out:      out,
		rng:      rand.New(rand.NewSource(seed)),
		log:      logger,
	}
}

func (r *Runner) Run(ctx context.Context, s *Script) error {
	logger := r.log.WithFields(log.Fields{"script": s.Name})
	logger.Info("script started")
	for i, st := range s.Steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if st.Print != "" {
			fmt.Fprintln(r.out, st.Print)
		}
		out, hasResult, err := r.exec(st)
		if err != nil {
			return fmt.Errorf("step %d %s: %w", i+1, st.label(), err)
		}
		logger.WithFields(log.Fields{"step": i + 1, "op": st.Op, "target": st.Target}).Debug("step executed")
		if !hasResult {
			if st.Expect != nil {
				return fmt.Errorf("step %d %s: %w: op has no result", i+1, st.label(), ErrBadArgs)
			}
			continue
		}
		fmt.Fprintf(r.out, "%s: %s\n", st.label(), out)
		if st.Expect != nil && *st.Expect != out {
			return fmt.Errorf("step %d %s: %w: want %q, got %q", i+1, st.label(), ErrExpectation, *st.Expect, out)
		}
	}
	logger.WithFields(log.Fields{"steps": len(s.Steps)}).Info("script completed")
	return nil
}

func (r *Runner) exec(st Step) (string, bool, error) {
	op, ok := ops[st.Op]
	if !ok {
		return "", false, fmt.Errorf("%w: %s", ErrUnknownOp, st.Op)
	}
	return op(r, st)
}

// with runs fn holding the target collection.
func (r *Runner) with(st Step, fn func(c *coll) error) error {
	l, err := r.registry.Get(st.Target)
	if err != nil {
		return err
	}
	l.Do(func(c *coll) {
		err = fn(c)
	})
	return err
}

func mutate(fn func(c *coll, st Step) error) opFunc {
	return func(r *Runner, st Step) (string, bool, error) {
		return "", false, r.with(st, func(c *coll) error {
			return fn(c, st)
		})
	}
}

func result(fn func(c *coll, st Step) (string, error)) opFunc {
	return func(r *Runner, st Step) (string, bool, error) {
		var out string
		err := r.with(st, func(c *coll) error {
			var err error
			out, err = fn(c, st)
			return err
		})
		return out, err == nil, err
	}
}

func withRange(fn func(c *coll, rg collection.Range[string])) func(c *coll, st Step) error {
	return func(c *coll, st Step) error {
		rg, err := st.rangeArgs()
		if err != nil {
			return err
		}
		fn(c, rg)
		return nil
	}
}

func opNew(r *Runner, st Step) (string, bool, error) {
	flags := []bool{false, false, true}
	for i := range flags {
		if i >= len(st.Args) {
			break
		}
		b, err := st.boolArg(i)
		if err != nil {
			return "", false, err
		}
		flags[i] = b
	}
	_, err := r.registry.Create(st.Target, flags[0], flags[1], flags[2])
	return "", false, err
}

func opDrop(r *Runner, st Step) (string, bool, error) {
	return "", false, r.registry.Drop(st.Target)
}

func opAdd(r *Runner, st Step) (string, bool, error) {
	pairs, err := st.pairArgs(0)
	if err != nil {
		return "", false, err
	}
	return "", false, r.with(st, func(c *coll) error {
		c.Add(pairs...)
		return nil
	})
}

func opConcat(r *Runner, st Step) (string, bool, error) {
	name, err := st.stringArg(0)
	if err != nil {
		return "", false, err
	}
	if name == st.Target {
		return "", false, r.with(st, func(c *coll) error {
			c.Concat(c)
			return nil
		})
	}
	src, err := r.registry.Get(name)
	if err != nil {
		return "", false, err
	}
	return "", false, r.with(st, func(c *coll) error {
		src.Do(func(o *coll) {
			c.Concat(o)
		})
		return nil
	})
}

func opSlice(r *Runner, st Step) (string, bool, error) {
	if st.Into == "" {
		return "", false, fmt.Errorf("%w: slice needs into", ErrBadArgs)
	}
	rg, err := st.rangeArgs()
	if err != nil {
		return "", false, err
	}
	var sliced *coll
	if err := r.with(st, func(c *coll) error {
		sliced = c.Slice(rg)
		return nil
	}); err != nil {
		return "", false, err
	}
	r.registry.Store(st.Into, sliced)
	return "", false, nil
}

func opUnique(r *Runner, st Step) (string, bool, error) {
	if st.Into == "" {
		return "", false, fmt.Errorf("%w: unique needs into", ErrBadArgs)
	}
	var unique *coll
	if err := r.with(st, func(c *coll) error {
		unique = c.Unique(nil)
		return nil
	}); err != nil {
		return "", false, err
	}
	r.registry.Store(st.Into, unique)
	return "", false, nil
}

// opEnd reads the value under the first or last key. An empty collection
// yields undefined, a stored null yields null.
func opEnd(fn func(c *coll) (any, bool)) opFunc {
	return result(func(c *coll, _ Step) (string, error) {
		empty := len(c.Keys()) == 0
		v, ok := fn(c)
		switch {
		case empty:
			return "undefined", nil
		case !ok:
			return "null", nil
		}
		return fmt.Sprint(v), nil
	})
}

var opJoin = result(func(c *coll, st Step) (string, error) {
	sep := ","
	if len(st.Args) > 0 {
		s, err := st.stringArg(0)
		if err != nil {
			return "", err
		}
		sep = s
	}
	return c.Join(sep), nil
})

var opSearch = result(func(c *coll, st Step) (string, error) {
	k, err := st.stringArg(0)
	if err != nil {
		return "", err
	}
	switch v, ok := c.Search(k); {
	case ok:
		return fmt.Sprint(v), nil
	case c.IsNull(k):
		return "null", nil
	default:
		return "undefined", nil
	}
})

var opLength = result(func(c *coll, _ Step) (string, error) {
	return strconv.Itoa(c.Len()), nil
})

var opString = result(func(c *coll, _ Step) (string, error) {
	return c.String(), nil
})

func opSwap(c *coll, st Step) error {
	a, err := st.stringArg(0)
	if err != nil {
		return err
	}
	b, err := st.stringArg(1)
	if err != nil {
		return err
	}
	c.Swap(a, b)
	return nil
}

func opFill(c *coll, st Step) error {
	if len(st.Args) != 1 {
		return fmt.Errorf("%w: fill takes one value", ErrBadArgs)
	}
	if st.Args[0] == nil {
		c.FillNull()
		return nil
	}
	c.Fill(st.Args[0])
	return nil
}

func opRotate(c *coll, st Step) error {
	n := 1
	if len(st.Args) > 0 {
		v, err := st.intArg(0)
		if err != nil {
			return err
		}
		n = v
	}
	c.Rotate(n)
	return nil
}

// opShuffle uses the runner's source unless the step gives its own seed.
func opShuffle(r *Runner, st Step) (string, bool, error) {
	rng := r.rng
	if len(st.Args) > 0 {
		seed, err := st.intArg(0)
		if err != nil {
			return "", false, err
		}
		rng = rand.New(rand.NewSource(uint64(seed)))
	}
	return "", false, r.with(st, func(c *coll) error {
		c.Shuffle(rng)
		return nil
	})
}

func opSplice(r *Runner, st Step) (string, bool, error) {
	start, err := st.stringArg(0)
	if err != nil {
		return "", false, err
	}
	count, err := st.intArg(1)
	if err != nil {
		return "", false, err
	}
	pairs, err := st.pairArgs(2)
	if err != nil {
		return "", false, err
	}
	var removed *coll
	if err := r.with(st, func(c *coll) error {
		removed = c.Splice(start, count, pairs...)
		return nil
	}); err != nil {
		return "", false, err
	}
	if st.Into != "" {
		r.registry.Store(st.Into, removed)
	}
	return "", false, nil
}
