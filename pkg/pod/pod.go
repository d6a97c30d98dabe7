package pod

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Rouzip/gopapi/pkg/config"
	gorawcollector "github.com/Rouzip/gopapi/pkg/goRawCollector"
	"github.com/Rouzip/gopapi/pkg/metrics"
	papicollector "github.com/Rouzip/gopapi/pkg/papiCollector"
	"github.com/Rouzip/gopapi/pkg/utils"
	v1 "k8s.io/api/core/v1"
	"k8s.io/klog/v2"
)

// Factory builds the collector of one container.
type Factory func(pod *v1.Pod, container *v1.ContainerStatus) (utils.Collector, error)

func NewFactory(cfg *config.Config) (Factory, error) {
	switch cfg.Backend {
	case config.BackendPAPI:
		opts := papicollector.Options{
			CgroupRoot: cfg.CgroupRoot,
			Component:  cfg.Component,
			Events:     cfg.Events,
			Multiplex:  cfg.Multiplex,
			Debug:      cfg.Debug,
		}
		return func(pod *v1.Pod, container *v1.ContainerStatus) (utils.Collector, error) {
			return papicollector.NewPAPICollector(pod, container, opts)
		}, nil
	case config.BackendPerf:
		if _, err := gorawcollector.ProfilerSet(cfg.Events); err != nil {
			return nil, err
		}
		return func(pod *v1.Pod, container *v1.ContainerStatus) (utils.Collector, error) {
			return gorawcollector.NewGoRawCollector(cfg.CgroupRoot, pod, container, cfg.Events)
		}, nil
	}
	return nil, fmt.Errorf("unknown collector type: %s", cfg.Backend)
}

type unitCollector struct {
	pod       *v1.Pod
	container *v1.ContainerStatus
	collector utils.Collector
}

type PodCollector struct {
	PodCollectorMap sync.Map
	UnitMap         map[utils.Unit]struct{}
	Type            string
}

// GeneratePodCollector starts a collector for every container of pods.
// Containers whose collector cannot be built are logged and left out.
func GeneratePodCollector(t string, factory Factory, pods []*v1.Pod) *PodCollector {
	collector := &PodCollector{
		PodCollectorMap: sync.Map{},
		UnitMap:         make(map[utils.Unit]struct{}),
		Type:            t,
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	for _, pod := range pods {
		for i := range pod.Status.ContainerStatuses {
			container := &pod.Status.ContainerStatuses[i]
			unit := utils.Unit{
				Container: container.Name,
				Pod:       pod.Name,
				Namespace: pod.Namespace,
			}
			wg.Add(1)
			go func(pod *v1.Pod, container *v1.ContainerStatus) {
				defer wg.Done()
				c, err := factory(pod, container)
				if err != nil {
					klog.Errorf("failed to build %s collector for %s/%s: %v", t, pod.Name, container.Name, err)
					metrics.RecordError(t)
					return
				}
				collector.PodCollectorMap.Store(unit, &unitCollector{pod: pod, container: container, collector: c})
				mu.Lock()
				collector.UnitMap[unit] = struct{}{}
				mu.Unlock()
			}(pod, container)
		}
	}
	wg.Wait()

	return collector
}

// Profile collects every container once and publishes the counts.
func (p *PodCollector) Profile() {
	var wg sync.WaitGroup
	wg.Add(len(p.UnitMap))

	for unit := range p.UnitMap {
		go func(unit utils.Unit) {
			defer wg.Done()
			v, ok := p.PodCollectorMap.Load(unit)
			if !ok {
				return
			}
			uc := v.(*unitCollector)
			values, err := uc.collector.Collect()
			if err != nil {
				klog.Errorf("failed to collect %s/%s: %v", unit.Pod, unit.Container, err)
				metrics.RecordError(p.Type)
				return
			}
			klog.V(3).Info("values: ", values)
			metrics.RecordCounts(uc.container, uc.pod, values)
		}(unit)
	}

	wg.Wait()
}

func (p *PodCollector) Close() error {
	var errs []error
	for unit := range p.UnitMap {
		if v, ok := p.PodCollectorMap.LoadAndDelete(unit); ok {
			if err := v.(*unitCollector).collector.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s/%s: %w", unit.Pod, unit.Container, err))
			}
		}
		delete(p.UnitMap, unit)
	}
	return errors.Join(errs...)
}
