package assert

import (
	"sync"

	"utest/pkg/utest/core"
)

// FailHandler is called by every failing assertion with the failure message
// and the location of the assertion.
type FailHandler func(message, file string, line int)

// PanicHandler is the default FailHandler. It panics with a *core.Failure,
// which stops the test and is turned into a failed outcome by the runner.
func PanicHandler(message, file string, line int) {
	panic(core.NewFailure(message, file, line))
}

// Recorder is a FailHandler that does not interrupt the test. It keeps
// every failure so the test body can return them:
//
//	rec := &assert.Recorder{}
//	a := assert.New(rec.Handle)
//	a.Eq(1, value)
//	return rec.Err()
type Recorder struct {
	failures []*core.Failure
	lock     sync.Mutex
}

func (r *Recorder) Handle(message, file string, line int) {
	r.lock.Lock()
	r.failures = append(r.failures, core.NewFailure(message, file, line))
	r.lock.Unlock()
}

// Failures returns all recorded failures in order.
func (r *Recorder) Failures() []*core.Failure {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]*core.Failure(nil), r.failures...)
}

// Err returns the first recorded failure, or nil.
func (r *Recorder) Err() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if len(r.failures) == 0 {
		return nil
	}
	return r.failures[0]
}
