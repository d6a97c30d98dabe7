package gorawcollector

import (
	"errors"
	"fmt"
	"os"

	"github.com/Rouzip/gopapi/pkg/utils"
	"github.com/hodgesds/perf-utils"
	"golang.org/x/sys/unix"
	v1 "k8s.io/api/core/v1"
	"k8s.io/klog/v2"
)

// PAPI presets with a generic perf hardware event behind them
var profilers = map[string]perf.HardwareProfilerType{
	"PAPI_TOT_CYC": perf.CpuCyclesProfiler,
	"PAPI_TOT_INS": perf.CpuInstrProfiler,
	"PAPI_REF_CYC": perf.RefCpuCyclesProfiler,
	"PAPI_BR_INS":  perf.BranchInstrProfiler,
	"PAPI_BR_MSP":  perf.BranchMissesProfiler,
	"PAPI_L3_TCA":  perf.CacheRefProfiler,
	"PAPI_L3_TCM":  perf.CacheMissesProfiler,
}

// ProfilerSet returns the perf profilers counting events.
func ProfilerSet(events []string) (perf.HardwareProfilerType, error) {
	if len(events) == 0 {
		return 0, fmt.Errorf("no events to collect")
	}
	var set perf.HardwareProfilerType
	for _, event := range events {
		p, ok := profilers[event]
		if !ok {
			return 0, fmt.Errorf("event %s has no perf equivalent", event)
		}
		set |= p
	}
	return set, nil
}

func profileValue(profile *perf.HardwareProfile, event string) *uint64 {
	switch event {
	case "PAPI_TOT_CYC":
		return profile.CPUCycles
	case "PAPI_TOT_INS":
		return profile.Instructions
	case "PAPI_REF_CYC":
		return profile.RefCPUCycles
	case "PAPI_BR_INS":
		return profile.BranchInstr
	case "PAPI_BR_MSP":
		return profile.BranchMisses
	case "PAPI_L3_TCA":
		return profile.CacheRefs
	case "PAPI_L3_TCM":
		return profile.CacheMisses
	}
	return nil
}

// accumulate adds the counts of profile to res.
func accumulate(res map[string]float64, profile *perf.HardwareProfile, events []string) {
	for _, event := range events {
		if v := profileValue(profile, event); v != nil {
			res[event] += float64(*v)
		}
	}
}

// collector for container
type GoRawCollector struct {
	CGroupFd     *os.File
	CPUCollector map[int]perf.HardwareProfiler
	Events       []string
	Pod          *v1.Pod
	Container    *v1.ContainerStatus
}

func NewGoRawCollector(cgroupRoot string, pod *v1.Pod, container *v1.ContainerStatus, events []string) (*GoRawCollector, error) {
	set, err := ProfilerSet(events)
	if err != nil {
		return nil, err
	}
	grc := &GoRawCollector{
		CPUCollector: make(map[int]perf.HardwareProfiler),
		Events:       events,
		Pod:          pod,
		Container:    container,
	}
	fd, err := utils.CGroupFd(cgroupRoot, pod, container)
	if err != nil {
		return nil, err
	}
	grc.CGroupFd = fd

	for i := 0; i < utils.CPUNUM; i++ {
		hp, err := perf.NewHardwareProfiler(int(grc.CGroupFd.Fd()), i, set, unix.PERF_FLAG_PID_CGROUP)
		if err != nil {
			grc.Close()
			return nil, fmt.Errorf("failed to open profiler on cpu %d: %w", i, err)
		}
		grc.CPUCollector[i] = hp
	}

	for i := 0; i < utils.CPUNUM; i++ {
		if err := grc.CPUCollector[i].Start(); err != nil {
			grc.Close()
			return nil, fmt.Errorf("failed to start profiler on cpu %d: %w", i, err)
		}
	}

	return grc, nil
}

// Collect sums the counters of every CPU and resets them. It fails only
// when no CPU could be read.
func (r *GoRawCollector) Collect() (map[string]float64, error) {
	res := make(map[string]float64, len(r.Events))
	for _, event := range r.Events {
		res[event] = 0
	}
	var errs []error
	read := 0
	for cpu, collector := range r.CPUCollector {
		profile := &perf.HardwareProfile{}
		if err := collector.Profile(profile); err != nil {
			klog.V(2).Infof("profile cpu %d of %s/%s: %v", cpu, r.Pod.Name, r.Container.Name, err)
			errs = append(errs, fmt.Errorf("profile cpu %d: %w", cpu, err))
			continue
		}
		accumulate(res, profile, r.Events)
		read++
		if err := collector.Reset(); err != nil {
			klog.V(2).Infof("reset cpu %d: %v", cpu, err)
		}
	}
	if read == 0 && len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return res, nil
}

func (r *GoRawCollector) Close() error {
	var errs []error
	for cpu, collector := range r.CPUCollector {
		if err := collector.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop cpu %d: %w", cpu, err))
		}
		if err := collector.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cpu %d: %w", cpu, err))
		}
		delete(r.CPUCollector, cpu)
	}
	if r.CGroupFd != nil {
		errs = append(errs, r.CGroupFd.Close())
		r.CGroupFd = nil
	}
	return errors.Join(errs...)
}
