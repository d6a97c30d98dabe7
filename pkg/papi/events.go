package papi

import "strconv"

// EventCode identifies a preset (PresetMask set) or native (NativeMask set) event.
type EventCode uint32

func (c EventCode) IsPreset() bool { return c&PresetMask != 0 }

func (c EventCode) IsNative() bool { return c&PresetMask == 0 && c&NativeMask != 0 }

// Index strips the preset or native mask.
func (c EventCode) Index() int { return int(c &^ (PresetMask | NativeMask)) }

// Preset events. The low bits index the library's preset table.
const (
	L1DCM EventCode = PresetMask + iota // level 1 data cache misses
	L1ICM                               // level 1 instruction cache misses
	L2DCM                               // level 2 data cache misses
	L2ICM                               // level 2 instruction cache misses
	L3DCM                               // level 3 data cache misses
	L3ICM                               // level 3 instruction cache misses
	L1TCM                               // level 1 cache misses
	L2TCM                               // level 2 cache misses
	L3TCM                               // level 3 cache misses
	CASnp                               // requests for a snoop
	CAShr                               // requests for exclusive access to shared cache line
	CACln                               // requests for exclusive access to clean cache line
	CAInv                               // requests for cache line invalidation
	CAItv                               // requests for cache line intervention
	L3LDM                               // level 3 load misses
	L3STM                               // level 3 store misses
	BruIdl                              // cycles branch units are idle
	FxuIdl                              // cycles integer units are idle
	FpuIdl                              // cycles floating point units are idle
	LsuIdl                              // cycles load/store units are idle
	TLBDM                               // data translation lookaside buffer misses
	TLBIM                               // instruction translation lookaside buffer misses
	TLBTL                               // total translation lookaside buffer misses
	L1LDM                               // level 1 load misses
	L1STM                               // level 1 store misses
	L2LDM                               // level 2 load misses
	L2STM                               // level 2 store misses
	BTACM                               // branch target address cache misses
	PrfDM                               // data prefetch cache misses
	L3DCH                               // level 3 data cache hits
	TLBSD                               // translation lookaside buffer shootdowns
	CSRFal                              // failed store conditional instructions
	CSRSuc                              // successful store conditional instructions
	CSRTot                              // total store conditional instructions
	MemScy                              // cycles stalled waiting for memory accesses
	MemRcy                              // cycles stalled waiting for memory reads
	MemWcy                              // cycles stalled waiting for memory writes
	StlIcy                              // cycles with no instruction issue
	FulIcy                              // cycles with maximum instruction issue
	StlCcy                              // cycles with no instructions completed
	FulCcy                              // cycles with maximum instructions completed
	HWInt                               // hardware interrupts
	BrUcn                               // unconditional branch instructions
	BrCn                                // conditional branch instructions
	BrTkn                               // conditional branch instructions taken
	BrNtk                               // conditional branch instructions not taken
	BrMsp                               // conditional branch instructions mispredicted
	BrPrc                               // conditional branch instructions correctly predicted
	FmaIns                              // FMA instructions completed
	TotIis                              // instructions issued
	TotIns                              // instructions completed
	IntIns                              // integer instructions
	FPIns                               // floating point instructions
	LdIns                               // load instructions
	SrIns                               // store instructions
	BrIns                               // branch instructions
	VecIns                              // vector/SIMD instructions (could include integer)
	ResStl                              // cycles stalled on any resource
	FPStal                              // cycles the FP unit(s) are stalled
	TotCyc                              // total cycles
	LstIns                              // load/store instructions completed
	SycIns                              // synchronization instructions completed
	L1DCH                               // level 1 data cache hits
	L2DCH                               // level 2 data cache hits
	L1DCA                               // level 1 data cache accesses
	L2DCA                               // level 2 data cache accesses
	L3DCA                               // level 3 data cache accesses
	L1DCR                               // level 1 data cache reads
	L2DCR                               // level 2 data cache reads
	L3DCR                               // level 3 data cache reads
	L1DCW                               // level 1 data cache writes
	L2DCW                               // level 2 data cache writes
	L3DCW                               // level 3 data cache writes
	L1ICH                               // level 1 instruction cache hits
	L2ICH                               // level 2 instruction cache hits
	L3ICH                               // level 3 instruction cache hits
	L1ICA                               // level 1 instruction cache accesses
	L2ICA                               // level 2 instruction cache accesses
	L3ICA                               // level 3 instruction cache accesses
	L1ICR                               // level 1 instruction cache reads
	L2ICR                               // level 2 instruction cache reads
	L3ICR                               // level 3 instruction cache reads
	L1ICW                               // level 1 instruction cache writes
	L2ICW                               // level 2 instruction cache writes
	L3ICW                               // level 3 instruction cache writes
	L1TCH                               // level 1 total cache hits
	L2TCH                               // level 2 total cache hits
	L3TCH                               // level 3 total cache hits
	L1TCA                               // level 1 total cache accesses
	L2TCA                               // level 2 total cache accesses
	L3TCA                               // level 3 total cache accesses
	L1TCR                               // level 1 total cache reads
	L2TCR                               // level 2 total cache reads
	L3TCR                               // level 3 total cache reads
	L1TCW                               // level 1 total cache writes
	L2TCW                               // level 2 total cache writes
	L3TCW                               // level 3 total cache writes
	FmlIns                              // floating point multiply instructions
	FadIns                              // floating point add instructions
	FdvIns                              // floating point divide instructions
	FsqIns                              // floating point square root instructions
	FnvIns                              // floating point inverse instructions
	FPOps                               // floating point operations
	SPOps                               // single precision floating point operations
	DPOps                               // double precision floating point operations
	VecSP                               // single precision vector/SIMD instructions
	VecDP                               // double precision vector/SIMD instructions
	RefCyc                              // reference clock cycles
)

var presetNames = [...]string{
	"PAPI_L1_DCM",
	"PAPI_L1_ICM",
	"PAPI_L2_DCM",
	"PAPI_L2_ICM",
	"PAPI_L3_DCM",
	"PAPI_L3_ICM",
	"PAPI_L1_TCM",
	"PAPI_L2_TCM",
	"PAPI_L3_TCM",
	"PAPI_CA_SNP",
	"PAPI_CA_SHR",
	"PAPI_CA_CLN",
	"PAPI_CA_INV",
	"PAPI_CA_ITV",
	"PAPI_L3_LDM",
	"PAPI_L3_STM",
	"PAPI_BRU_IDL",
	"PAPI_FXU_IDL",
	"PAPI_FPU_IDL",
	"PAPI_LSU_IDL",
	"PAPI_TLB_DM",
	"PAPI_TLB_IM",
	"PAPI_TLB_TL",
	"PAPI_L1_LDM",
	"PAPI_L1_STM",
	"PAPI_L2_LDM",
	"PAPI_L2_STM",
	"PAPI_BTAC_M",
	"PAPI_PRF_DM",
	"PAPI_L3_DCH",
	"PAPI_TLB_SD",
	"PAPI_CSR_FAL",
	"PAPI_CSR_SUC",
	"PAPI_CSR_TOT",
	"PAPI_MEM_SCY",
	"PAPI_MEM_RCY",
	"PAPI_MEM_WCY",
	"PAPI_STL_ICY",
	"PAPI_FUL_ICY",
	"PAPI_STL_CCY",
	"PAPI_FUL_CCY",
	"PAPI_HW_INT",
	"PAPI_BR_UCN",
	"PAPI_BR_CN",
	"PAPI_BR_TKN",
	"PAPI_BR_NTK",
	"PAPI_BR_MSP",
	"PAPI_BR_PRC",
	"PAPI_FMA_INS",
	"PAPI_TOT_IIS",
	"PAPI_TOT_INS",
	"PAPI_INT_INS",
	"PAPI_FP_INS",
	"PAPI_LD_INS",
	"PAPI_SR_INS",
	"PAPI_BR_INS",
	"PAPI_VEC_INS",
	"PAPI_RES_STL",
	"PAPI_FP_STAL",
	"PAPI_TOT_CYC",
	"PAPI_LST_INS",
	"PAPI_SYC_INS",
	"PAPI_L1_DCH",
	"PAPI_L2_DCH",
	"PAPI_L1_DCA",
	"PAPI_L2_DCA",
	"PAPI_L3_DCA",
	"PAPI_L1_DCR",
	"PAPI_L2_DCR",
	"PAPI_L3_DCR",
	"PAPI_L1_DCW",
	"PAPI_L2_DCW",
	"PAPI_L3_DCW",
	"PAPI_L1_ICH",
	"PAPI_L2_ICH",
	"PAPI_L3_ICH",
	"PAPI_L1_ICA",
	"PAPI_L2_ICA",
	"PAPI_L3_ICA",
	"PAPI_L1_ICR",
	"PAPI_L2_ICR",
	"PAPI_L3_ICR",
	"PAPI_L1_ICW",
	"PAPI_L2_ICW",
	"PAPI_L3_ICW",
	"PAPI_L1_TCH",
	"PAPI_L2_TCH",
	"PAPI_L3_TCH",
	"PAPI_L1_TCA",
	"PAPI_L2_TCA",
	"PAPI_L3_TCA",
	"PAPI_L1_TCR",
	"PAPI_L2_TCR",
	"PAPI_L3_TCR",
	"PAPI_L1_TCW",
	"PAPI_L2_TCW",
	"PAPI_L3_TCW",
	"PAPI_FML_INS",
	"PAPI_FAD_INS",
	"PAPI_FDV_INS",
	"PAPI_FSQ_INS",
	"PAPI_FNV_INS",
	"PAPI_FP_OPS",
	"PAPI_SP_OPS",
	"PAPI_DP_OPS",
	"PAPI_VEC_SP",
	"PAPI_VEC_DP",
	"PAPI_REF_CYC",
}

// String returns the symbolic name of a preset. Native codes have no
// static name; use EventCodeToName for those.
func (c EventCode) String() string {
	if c.IsPreset() && c.Index() < len(presetNames) {
		return presetNames[c.Index()]
	}
	return "0x" + strconv.FormatUint(uint64(c), 16)
}

// PresetByName returns the preset named name, for example "PAPI_TOT_CYC".
func PresetByName(name string) (EventCode, bool) {
	for i, n := range presetNames {
		if n == name {
			return PresetMask + EventCode(i), true
		}
	}
	return 0, false
}

// EnumModifier steers EnumEvent and EnumCmpEvent.
type EnumModifier int32

const (
	EnumEvents         EnumModifier = iota // always enumerate all events
	EnumFirst                              // enumerate first event
	PresetEnumAvail                        // presets with a mapping on this platform
	PresetEnumMsc                          // miscellaneous
	PresetEnumIns                          // instruction related
	PresetEnumIdl                          // stalled or idle
	PresetEnumBr                           // branch related
	PresetEnumCnd                          // conditional
	PresetEnumMem                          // memory related
	PresetEnumCach                         // cache related
	PresetEnumL1                           // L1 cache related
	PresetEnumL2                           // L2 cache related
	PresetEnumL3                           // L3 cache related
	PresetEnumTLB                          // translation lookaside buffer
	PresetEnumFP                           // floating point
	NtvEnumUmasks                          // all individual bits for given group
	NtvEnumUmaskCombos                     // all combinations of mask bits
	NtvEnumIarr                            // events that support IARR
	NtvEnumDarr                            // events that support DARR
	NtvEnumOpcm                            // events that support OPC matching
	NtvEnumIear                            // events that support IEAR
	NtvEnumDear                            // events that support DEAR
	NtvEnumGroups                          // event group information
)
