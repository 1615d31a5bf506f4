package rules

import (
	"fmt"
	"slices"
	"sync"
)

// Executor runs rules of one type. Kind is the rule kind it implements:
// transforms return a new message, conditions return the message unchanged
// or fail with ErrConditionFailed.
type Executor interface {
	Type() string
	Kind() Kind
	Transform(rc *RuleContext, msg any) (any, error)
}

var (
	mu        sync.RWMutex
	executors = map[string]Executor{}
)

func init() {
	MustRegister(LensExecutor{})
	MustRegister(ExprExecutor{})
}

// Register makes e available under e.Type().
func Register(e Executor) error {
	mu.Lock()
	defer mu.Unlock()
	if _, present := executors[e.Type()]; present {
		return fmt.Errorf("%w: %s", ErrExecutorExists, e.Type())
	}
	executors[e.Type()] = e
	return nil
}

func MustRegister(e Executor) {
	if err := Register(e); err != nil {
		panic(err)
	}
}

// Lookup returns the executor registered for typ, or nil.
func Lookup(typ string) Executor {
	mu.RLock()
	defer mu.RUnlock()
	return executors[typ]
}

// Types returns the registered executor types in sorted order.
func Types() []string {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]string, 0, len(executors))
	for typ := range executors {
		res = append(res, typ)
	}
	slices.Sort(res)
	return res
}
