package papicollector

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Rouzip/gopapi/pkg/papi"
	"k8s.io/klog/v2"
)

// counterAPI is the part of libpapi a collector drives.
type counterAPI interface {
	Init(multiplex bool, debug int) error
	Shutdown()
	ComponentIndex(name string) (int, error)
	CreateEventSet() (papi.EventSet, error)
	AssignComponent(es papi.EventSet, cidx int) error
	Attach(es papi.EventSet, pid int) error
	SetMultiplex(es papi.EventSet) error
	AddNamedEvent(es papi.EventSet, name string) error
	Start(es papi.EventSet) error
	Read(es papi.EventSet, values []int64) error
	Reset(es papi.EventSet) error
	Stop(es papi.EventSet, values []int64) error
	Cleanup(es papi.EventSet) error
	Destroy(es *papi.EventSet) error
}

type papiAPI struct{}

func (papiAPI) Init(multiplex bool, debug int) error {
	if err := papi.Init(); err != nil {
		return fmt.Errorf("failed to init papi: %w", err)
	}
	if debug != 0 {
		if err := papi.SetDebug(debug); err != nil {
			return fmt.Errorf("failed to set papi debug level %d: %w", debug, err)
		}
	}
	if multiplex {
		if err := papi.MultiplexInit(); err != nil {
			return fmt.Errorf("failed to init multiplexing: %w", err)
		}
	}
	hw := papi.GetHardwareInfo()
	if hw != nil {
		klog.Infof("papi initialized on %s %s, %d cpus", hw.VendorName(), hw.ModelName(), hw.TotalCPUs)
	}
	return nil
}

func (papiAPI) ComponentIndex(name string) (int, error)           { return papi.ComponentIndex(name) }
func (papiAPI) CreateEventSet() (papi.EventSet, error)            { return papi.CreateEventSet() }
func (papiAPI) AssignComponent(es papi.EventSet, cidx int) error  { return es.AssignComponent(cidx) }
func (papiAPI) Attach(es papi.EventSet, pid int) error            { return es.Attach(uint64(pid)) }
func (papiAPI) SetMultiplex(es papi.EventSet) error               { return es.SetMultiplex() }
func (papiAPI) AddNamedEvent(es papi.EventSet, name string) error { return es.AddNamedEvent(name) }
func (papiAPI) Start(es papi.EventSet) error                      { return es.Start() }
func (papiAPI) Read(es papi.EventSet, values []int64) error       { return es.ReadInto(values) }
func (papiAPI) Shutdown()                                          { papi.Shutdown() }
func (papiAPI) Reset(es papi.EventSet) error                      { return es.Reset() }
func (papiAPI) Stop(es papi.EventSet, values []int64) error       { return es.Stop(values) }
func (papiAPI) Cleanup(es papi.EventSet) error                    { return es.Cleanup() }
func (papiAPI) Destroy(es *papi.EventSet) error                   { return es.Destroy() }

// engine owns the process wide PAPI state. Every call runs on one goroutine
// locked to its OS thread, since PAPI keeps per thread bookkeeping.
type engine struct {
	api   counterAPI
	calls chan func()

	start   sync.Once
	once    sync.Once
	initErr error
	ready   bool // owned by the engine thread
}

var shared = newEngine(papiAPI{})

func newEngine(api counterAPI) *engine {
	return &engine{api: api, calls: make(chan func())}
}

func (e *engine) loop() {
	runtime.LockOSThread()
	for f := range e.calls {
		f()
	}
}

// do runs f on the engine thread and waits for it.
func (e *engine) do(f func(api counterAPI) error) error {
	e.start.Do(func() { go e.loop() })
	done := make(chan error, 1)
	e.calls <- func() { done <- f(e.api) }
	return <-done
}

// Initialize sets up libpapi once. Later calls return the first result.
func (e *engine) Initialize(multiplex bool, debug int) error {
	e.once.Do(func() {
		e.initErr = e.do(func(api counterAPI) error {
			err := api.Init(multiplex, debug)
			e.ready = err == nil
			return err
		})
	})
	return e.initErr
}

// Shutdown releases libpapi if Initialize succeeded. It is a no-op
// otherwise and after the first call.
func (e *engine) Shutdown() {
	e.do(func(api counterAPI) error {
		if e.ready {
			api.Shutdown()
			e.ready = false
		}
		return nil
	})
}

// Initialize sets up the shared libpapi instance.
func Initialize(multiplex bool, debug int) error {
	return shared.Initialize(multiplex, debug)
}

// Shutdown releases the shared libpapi state on its thread.
func Shutdown() { shared.Shutdown() }

// Run executes f on the shared PAPI thread.
func Run(f func() error) error {
	return shared.do(func(counterAPI) error { return f() })
}
