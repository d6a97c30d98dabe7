package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/Rouzip/gopapi/pkg/papi"
	"github.com/spf13/cobra"
)

func init() {
	// PAPI state is per thread
	runtime.LockOSThread()
}

var rootCmd = &cobra.Command{
	Use:   "papi-avail",
	Short: "Show the events and hardware the linked PAPI reports",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !papi.Linked() {
			return fmt.Errorf("built without libpapi, rebuild with -tags papi")
		}
		return papi.Init()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		papi.Shutdown()
	},
	SilenceUsage: true,
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the preset events available on this machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := papi.Presets()
		if err != nil {
			return fmt.Errorf("failed to enumerate presets: %w", err)
		}
		return printEvents(cmd.OutOrStdout(), codes)
	},
}

var nativeComponent int

var nativeCmd = &cobra.Command{
	Use:   "native",
	Short: "List the native events of a component",
	RunE: func(cmd *cobra.Command, args []string) error {
		codes, err := papi.NativeEvents(nativeComponent)
		if err != nil {
			return fmt.Errorf("failed to enumerate native events of component %d: %w", nativeComponent, err)
		}
		return printEvents(cmd.OutOrStdout(), codes)
	},
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "List the compiled in components",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "IDX\tNAME\tCOUNTERS\tNATIVE\tSTATUS")
		for i := 0; i < papi.NumComponents(); i++ {
			ci := papi.GetComponentInfo(i)
			if ci == nil {
				continue
			}
			status := "enabled"
			if ci.Disabled != 0 {
				status = "disabled: " + ci.DisabledReasonString()
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n", i, ci.NameString(), ci.NumCntrs, ci.NumNativeEvents, status)
		}
		return w.Flush()
	},
}

var hardwareCmd = &cobra.Command{
	Use:   "hardware",
	Short: "Show the hardware PAPI runs on",
	RunE: func(cmd *cobra.Command, args []string) error {
		hw := papi.GetHardwareInfo()
		if hw == nil {
			return fmt.Errorf("no hardware information")
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Vendor:\t%s (%d)\n", hw.VendorName(), hw.Vendor)
		fmt.Fprintf(w, "Model:\t%s (%d)\n", hw.ModelName(), hw.Model)
		fmt.Fprintf(w, "CPUID:\tfamily %d, model %d, stepping %d\n", hw.CPUIDFamily, hw.CPUIDModel, hw.CPUIDStepping)
		fmt.Fprintf(w, "CPU MHz:\t%d-%d\n", hw.CPUMinMhz, hw.CPUMaxMhz)
		fmt.Fprintf(w, "Topology:\t%d sockets, %d cores per socket, %d threads per core\n", hw.Sockets, hw.Cores, hw.Threads)
		fmt.Fprintf(w, "Total CPUs:\t%d\n", hw.TotalCPUs)
		fmt.Fprintf(w, "NUMA nodes:\t%d\n", hw.NNodes)
		fmt.Fprintf(w, "Hardware counters:\t%d\n", papi.NumCmpHwctrs(0))
		for i := 0; i < int(hw.MemHierarchy.Levels) && i < papi.MaxMemHierarchyLevels; i++ {
			for _, c := range hw.MemHierarchy.Level[i].Cache {
				if c.Size == 0 {
					continue
				}
				fmt.Fprintf(w, "L%d cache:\t%d bytes, %d byte lines, %d-way\n", i+1, c.Size, c.LineSize, c.Associativity)
			}
		}
		return w.Flush()
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events <name>...",
	Short: "Describe events by name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range args {
			code, err := papi.EventNameToCode(name)
			if err != nil {
				return fmt.Errorf("unknown event %s: %w", name, err)
			}
			info, err := papi.GetEventInfo(code)
			if err != nil {
				return fmt.Errorf("failed to query %s: %w", name, err)
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Event name:\t%s\n", info.SymbolString())
			fmt.Fprintf(w, "Event code:\t%#x\n", info.EventCode)
			fmt.Fprintf(w, "Component:\t%d\n", info.ComponentIndex)
			fmt.Fprintf(w, "Short description:\t%s\n", info.ShortDescrString())
			fmt.Fprintf(w, "Long description:\t%s\n", info.LongDescrString())
			if units := info.UnitsString(); units != "" {
				fmt.Fprintf(w, "Units:\t%s\n", units)
			}
			if derived := info.DerivedString(); derived != "" {
				fmt.Fprintf(w, "Derived:\t%s %s\n", derived, info.PostfixString())
			}
			codes, names := info.Terms()
			for i := range codes {
				fmt.Fprintf(w, " term %d:\t%#x %s\n", i, uint32(codes[i]), names[i])
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func printEvents(out io.Writer, codes []papi.EventCode) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCODE\tDERIVED\tDESCRIPTION")
	for _, code := range codes {
		info, err := papi.GetEventInfo(code)
		if err != nil {
			return fmt.Errorf("failed to query %s: %w", code, err)
		}
		derived := "No"
		if d := info.DerivedString(); d != "" && d != "NOT_DERIVED" {
			derived = "Yes"
		}
		fmt.Fprintf(w, "%s\t%#x\t%s\t%s\n", info.SymbolString(), uint32(code), derived, strings.TrimSpace(info.ShortDescrString()))
	}
	fmt.Fprintf(w, "\n%d events\n", len(codes))
	return w.Flush()
}

func main() {
	nativeCmd.Flags().IntVarP(&nativeComponent, "component", "c", 0, "component index")
	rootCmd.AddCommand(presetsCmd, nativeCmd, componentsCmd, hardwareCmd, eventsCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
