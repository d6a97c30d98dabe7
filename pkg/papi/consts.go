package papi

// VersionNumber packs a PAPI version the way the PAPI_VERSION_NUMBER macro does.
func VersionNumber(major, minor, rev, inc int) int {
	return major<<24 | minor<<16 | rev<<8 | inc
}

const (
	// Version is the PAPI release these declarations were written against.
	Version = 5<<24 | 5<<16 | 1<<8 | 0
	// VerCurrent is Version without the revision and increment parts.
	VerCurrent = Version & 0xffff0000
)

// InitState is the value returned by IsInitialized.
type InitState int32

const (
	NotInited         InitState = 0
	LowLevelInited    InitState = 1 // low level has called library init
	HighLevelInited   InitState = 2 // high level has called library init
	ThreadLevelInited InitState = 4 // threads have been inited
)

// State is the bitmask returned by (EventSet).State.
type State int32

const (
	Stopped      State = 0x01  // EventSet stopped
	Running      State = 0x02  // EventSet running
	Paused       State = 0x04  // EventSet temp. disabled by the library
	NotInit      State = 0x08  // EventSet defined, but not initialized
	Overflowing  State = 0x10  // EventSet has overflowing enabled
	Profiling    State = 0x20  // EventSet has profiling enabled
	Multiplexing State = 0x40  // EventSet has multiplexing enabled
	Attached     State = 0x80  // EventSet is attached to another thread/process
	CPUAttached  State = 0x100 // EventSet is attached to a specific cpu
)

// Has reports whether all bits of flag are set in s.
func (s State) Has(flag State) bool {
	return s&flag == flag
}

// Null is the placeholder for a nonexistent event or event set (PAPI_NULL).
const Null = -1

const (
	NativeMask = 0x40000000
	PresetMask = 0x80000000
)

// Buffer and table bounds used by the descriptor records.
const (
	MinStrLen  = 64   // small strings, like names
	MaxStrLen  = 128  // average strings
	Max2StrLen = 256  // somewhat longer strings
	HugeStrLen = 1024 // paths and long descriptions

	PMUMax       = 40 // pmu's supported by one component
	MaxInfoTerms = 12

	MHMaxLevels           = 6 // descriptors for each TLB or cache level
	MaxMemHierarchyLevels = 4
)

// Debug levels for SetDebug.
const (
	Quiet     = 0 // no automatic reporting of return codes < 0
	VerbEcont = 1 // report return codes < 0 to stderr and continue
	VerbEstop = 2 // report return codes < 0 to stderr and exit
)

// Domain selects the execution contexts that are counted.
type Domain int32

const (
	DomUser       Domain = 0x1 // user context counted
	DomKernel     Domain = 0x2 // kernel/OS context counted
	DomOther      Domain = 0x4 // exception/transient mode (like user TLB misses)
	DomSupervisor Domain = 0x8 // supervisor/hypervisor context counted
	// DomHWSpec marks a domain whose lower 31 bits are component specific.
	DomHWSpec Domain = -0x80000000
)

// Granularity selects what a counter is attributed to.
type Granularity int32

const (
	GrnThr    Granularity = 0x1  // each individual thread
	GrnProc   Granularity = 0x2  // each individual process
	GrnProcG  Granularity = 0x4  // each individual process group
	GrnSys    Granularity = 0x8  // the current CPU
	GrnSysCPU Granularity = 0x10 // all CPUs individually
)

// Lock names one of the user mutexes managed by PAPI.
type Lock int32

const (
	USR1Lock Lock = 0x0
	USR2Lock Lock = 0x1
	NumLock  Lock = 0x2
)

// Preset table indexes of the events accepted by the rate calls, carried
// under the names the header declares (PAPI_FP_INS and friends). Pass the
// matching preset EventCode, e.g. FPIns == PresetMask|FPInsIdx.
const (
	FPInsIdx = 52  // floating point instructions executed
	VecSPIdx = 105 // single precision vector/SIMD instructions
	VecDPIdx = 106 // double precision vector/SIMD instructions
	FPOpsIdx = 102 // floating point operations executed
	SPOpsIdx = 103 // scaled single precision vector operations
	DPOpsIdx = 104 // scaled double precision vector operations
)
