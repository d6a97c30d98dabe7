package papicollector

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Rouzip/gopapi/pkg/papi"
	"github.com/Rouzip/gopapi/pkg/utils"
	v1 "k8s.io/api/core/v1"
	"k8s.io/klog/v2"
)

type Options struct {
	CgroupRoot string
	// Component the event sets are bound to. Empty means component 0.
	Component string
	Events    []string
	Multiplex bool
	Debug     int
}

// collector for container, one event set per process
type PAPICollector struct {
	Pod       *v1.Pod
	Container *v1.ContainerStatus
	Events    []string

	eng  *engine
	sets map[int]papi.EventSet
}

func NewPAPICollector(pod *v1.Pod, container *v1.ContainerStatus, opts Options) (*PAPICollector, error) {
	dir, err := utils.CGroupPath(opts.CgroupRoot, pod, container)
	if err != nil {
		return nil, err
	}
	pids, err := utils.CgroupPids(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list processes of %s/%s: %w", pod.Name, container.Name, err)
	}
	return newCollector(shared, pod, container, opts, pids)
}

func newCollector(eng *engine, pod *v1.Pod, container *v1.ContainerStatus, opts Options, pids []int) (*PAPICollector, error) {
	if len(opts.Events) == 0 {
		return nil, fmt.Errorf("no events to collect")
	}
	if err := eng.Initialize(opts.Multiplex, opts.Debug); err != nil {
		return nil, err
	}

	pc := &PAPICollector{
		Pod:       pod,
		Container: container,
		Events:    opts.Events,
		eng:       eng,
		sets:      make(map[int]papi.EventSet),
	}

	err := eng.do(func(api counterAPI) error {
		cidx := 0
		if opts.Component != "" {
			idx, err := api.ComponentIndex(opts.Component)
			if err != nil {
				return fmt.Errorf("unknown component %s: %w", opts.Component, err)
			}
			cidx = idx
		}
		for _, pid := range pids {
			es, err := openSet(api, cidx, pid, opts)
			if err != nil {
				klog.Warningf("skip pid %d of %s/%s: %v", pid, pod.Name, container.Name, err)
				continue
			}
			pc.sets[pid] = es
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pc.sets) == 0 {
		return nil, fmt.Errorf("no process of %s/%s could be attached", pod.Name, container.Name)
	}
	return pc, nil
}

// openSet builds a running event set attached to pid. A set that fails half
// way is torn down before returning.
func openSet(api counterAPI, cidx, pid int, opts Options) (papi.EventSet, error) {
	es, err := api.CreateEventSet()
	if err != nil {
		return es, fmt.Errorf("create event set: %w", err)
	}
	if err = setUp(api, es, cidx, pid, opts); err != nil {
		if cerr := api.Cleanup(es); cerr != nil {
			klog.V(4).Infof("cleanup event set %d: %v", es, cerr)
		}
		if derr := api.Destroy(&es); derr != nil {
			klog.V(4).Infof("destroy event set: %v", derr)
		}
		return papi.EventSet(papi.Null), err
	}
	return es, nil
}

func setUp(api counterAPI, es papi.EventSet, cidx, pid int, opts Options) error {
	if err := api.AssignComponent(es, cidx); err != nil {
		return fmt.Errorf("assign component %d: %w", cidx, err)
	}
	if err := api.Attach(es, pid); err != nil {
		return fmt.Errorf("attach: %w", err)
	}
	if opts.Multiplex {
		if err := api.SetMultiplex(es); err != nil {
			return fmt.Errorf("set multiplex: %w", err)
		}
	}
	for _, event := range opts.Events {
		if err := api.AddNamedEvent(es, event); err != nil {
			return fmt.Errorf("add event %s: %w", event, err)
		}
	}
	if err := api.Start(es); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	return nil
}

// Collect returns the counts summed over every process since the previous
// Collect and restarts the counting window.
func (p *PAPICollector) Collect() (map[string]float64, error) {
	res := make(map[string]float64, len(p.Events))
	for _, event := range p.Events {
		res[event] = 0
	}

	var errs []error
	read := 0
	err := p.eng.do(func(api counterAPI) error {
		values := make([]int64, len(p.Events))
		for _, pid := range p.pids() {
			es := p.sets[pid]
			if err := api.Read(es, values); err != nil {
				errs = append(errs, fmt.Errorf("read pid %d: %w", pid, err))
				continue
			}
			for i, event := range p.Events {
				res[event] += float64(values[i])
			}
			read++
			if err := api.Reset(es); err != nil {
				klog.V(2).Infof("reset event set of pid %d: %v", pid, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	for _, e := range errs {
		klog.V(2).Info(e)
	}
	if read == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

// Close stops and frees every event set.
func (p *PAPICollector) Close() error {
	return p.eng.do(func(api counterAPI) error {
		var errs []error
		values := make([]int64, len(p.Events))
		for _, pid := range p.pids() {
			es := p.sets[pid]
			if err := api.Stop(es, values); err != nil {
				errs = append(errs, fmt.Errorf("stop pid %d: %w", pid, err))
			}
			if err := api.Cleanup(es); err != nil {
				errs = append(errs, fmt.Errorf("cleanup pid %d: %w", pid, err))
			}
			if err := api.Destroy(&es); err != nil {
				errs = append(errs, fmt.Errorf("destroy pid %d: %w", pid, err))
			}
			delete(p.sets, pid)
		}
		return errors.Join(errs...)
	})
}

func (p *PAPICollector) pids() []int {
	pids := make([]int, 0, len(p.sets))
	for pid := range p.sets {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids
}
