package metrics

import (
	"github.com/Rouzip/gopapi/pkg/papi"
	"github.com/prometheus/client_golang/prometheus"
	v1 "k8s.io/api/core/v1"
)

const (
	Namespace   = "namespace"
	Pod         = "pod"
	Container   = "container"
	ContainerID = "containerid"
	Event       = "event"
	Vendor      = "vendor"
	Model       = "model"
	Component   = "component"
	Backend     = "backend"
)

var (
	ContainerEvents = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "papi_container_event_count",
		Help: "Hardware event counts of a container over the last collection window.",
	}, []string{Namespace, Pod, Container, ContainerID, Event})
	HardwareInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "papi_hardware_info",
		Help: "CPUs reported by PAPI for the node.",
	}, []string{Vendor, Model})
	ComponentCounters = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "papi_component_counters",
		Help: "Hardware counters available in a PAPI component.",
	}, []string{Component})
	CollectErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "papi_collect_errors_total",
		Help: "Failed container collections.",
	}, []string{Backend})
	PAPICollectors = []prometheus.Collector{ContainerEvents, HardwareInfo, ComponentCounters, CollectErrors}
)

func init() {
	prometheus.MustRegister(PAPICollectors...)
}

func RecordCounts(container *v1.ContainerStatus, pod *v1.Pod, values map[string]float64) {
	labels := prometheus.Labels{}
	labels[Namespace] = pod.Namespace
	labels[Pod] = pod.Name
	labels[Container] = container.Name
	labels[ContainerID] = container.ContainerID
	for event, value := range values {
		labels[Event] = event
		ContainerEvents.With(labels).Set(value)
	}
}

// ResetCounts drops the series of containers that are gone.
func ResetCounts() {
	ContainerEvents.Reset()
}

func RecordHardware(hw *papi.HwInfo) {
	if hw == nil {
		return
	}
	HardwareInfo.WithLabelValues(hw.VendorName(), hw.ModelName()).Set(float64(hw.TotalCPUs))
}

func RecordComponent(ci *papi.ComponentInfo) {
	if ci == nil {
		return
	}
	ComponentCounters.WithLabelValues(ci.NameString()).Set(float64(ci.NumCntrs))
}

func RecordError(backend string) {
	CollectErrors.WithLabelValues(backend).Inc()
}
