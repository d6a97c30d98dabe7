package main

import (
	"context"
	goflag "flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Rouzip/gopapi/pkg/config"
	"github.com/Rouzip/gopapi/pkg/metrics"
	"github.com/Rouzip/gopapi/pkg/papi"
	papicollector "github.com/Rouzip/gopapi/pkg/papiCollector"
	"github.com/Rouzip/gopapi/pkg/pod"
	"github.com/Rouzip/gopapi/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/klog/v2"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "papi-exporter",
		Short: "Export per container hardware counters read through PAPI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.Kubeconfig, "kubeconfig", cfg.Kubeconfig, "path to kubeconfig, in-cluster config when empty")
	flags.StringVar(&cfg.NodeName, "node", cfg.NodeName, "node whose pods are profiled")
	flags.StringVar(&cfg.Namespace, "namespace", cfg.Namespace, "namespace of the pods, all namespaces when empty")
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "collector backend, papi or perf")
	flags.StringSliceVar(&cfg.Events, "events", cfg.Events, "events to count")
	flags.DurationVar(&cfg.Window, "window", cfg.Window, "how long counters run each interval")
	flags.DurationVar(&cfg.Interval, "interval", cfg.Interval, "time between collections")
	flags.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "address serving /metrics")
	flags.StringVar(&cfg.CgroupRoot, "cgroup-root", cfg.CgroupRoot, "kubepods cgroup directory")
	flags.StringVar(&cfg.Component, "component", cfg.Component, "PAPI component event sets are bound to")
	flags.BoolVar(&cfg.Multiplex, "multiplex", cfg.Multiplex, "multiplex PAPI event sets")
	flags.IntVar(&cfg.Debug, "papi-debug", cfg.Debug, "PAPI debug level")

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)
	return cmd
}

func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.ExportHighLevel(); err != nil {
		return err
	}
	factory, err := pod.NewFactory(cfg)
	if err != nil {
		return err
	}
	client, err := utils.NewClient(cfg.Kubeconfig)
	if err != nil {
		return err
	}

	if cfg.Backend == config.BackendPAPI {
		if err := papicollector.Initialize(cfg.Multiplex, cfg.Debug); err != nil {
			return err
		}
		papicollector.Run(func() error {
			publishPAPIInfo()
			return nil
		})
	}

	ctx := utils.SetUpContext(context.Background())
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		wait.Until(func() {
			pods, err := utils.GetPods(ctx, client, cfg.Namespace, cfg.NodeName)
			if err != nil {
				klog.Error(err)
				return
			}
			collector := pod.GeneratePodCollector(cfg.Backend, factory, pods)
			defer func() {
				if err := collector.Close(); err != nil {
					klog.Error(err)
				}
			}()
			select {
			case <-time.After(cfg.Window):
			case <-ctx.Done():
				return
			}
			metrics.ResetCounts()
			collector.Profile()
		}, cfg.Interval, ctx.Done())
	}()

	http.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: cfg.ListenAddr}
	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	klog.Infof("serving metrics on %s", cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-loopDone
	papicollector.Shutdown()
	return nil
}

// publishPAPIInfo exports what the linked PAPI reports about the node.
func publishPAPIInfo() {
	metrics.RecordHardware(papi.GetHardwareInfo())
	for i := 0; i < papi.NumComponents(); i++ {
		ci := papi.GetComponentInfo(i)
		if ci == nil || ci.Disabled != 0 {
			continue
		}
		metrics.RecordComponent(ci)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		klog.Fatal(err)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
