package papi

import "unsafe"

// The records below mirror the PAPI descriptor structs byte for byte.
// They are filled in by the native library; field semantics follow the
// upstream PAPI documentation.

// AddressMap mirrors PAPI_address_map_t.
type AddressMap struct {
	Name      [HugeStrLen]byte
	TextStart uintptr // start address of program text segment
	TextEnd   uintptr // end address of program text segment
	DataStart uintptr // start address of program data segment
	DataEnd   uintptr // end address of program data segment
	BssStart  uintptr // start address of program bss segment
	BssEnd    uintptr // end address of program bss segment
}

func (m *AddressMap) NameString() string { return cstr(m.Name[:]) }

// ExeInfo mirrors PAPI_exe_info_t.
type ExeInfo struct {
	Fullname    [HugeStrLen]byte // path + name
	AddressInfo AddressMap       // executable's address space info
}

func (e *ExeInfo) FullnameString() string { return cstr(e.Fullname[:]) }

// DmemInfo mirrors PAPI_dmem_info_t.
type DmemInfo struct {
	Peak          int64
	Size          int64
	Resident      int64
	HighWaterMark int64
	Shared        int64
	Text          int64
	Library       int64
	Heap          int64
	Locked        int64
	Stack         int64
	Pagesize      int64
	Pte           int64
}

// EventInfo mirrors PAPI_event_info_t.
type EventInfo struct {
	EventCode      uint32 // preset (0x8xxxxxxx) or native (0x4xxxxxxx) event code
	Symbol         [HugeStrLen]byte
	ShortDescr     [MinStrLen]byte
	LongDescr      [HugeStrLen]byte
	ComponentIndex int32
	Units          [MinStrLen]byte
	Location       int32
	DataType       int32
	ValueType      int32
	Timescope      int32
	UpdateType     int32
	UpdateFreq     int32

	// preset specific fields
	Count     uint32 // number of terms in Code and Name
	EventType uint32
	Derived   [MinStrLen]byte
	Postfix   [Max2StrLen]byte
	Code      [MaxInfoTerms]uint32
	Name      [MaxInfoTerms][Max2StrLen]byte
	Note      [HugeStrLen]byte
}

func (e *EventInfo) SymbolString() string     { return cstr(e.Symbol[:]) }
func (e *EventInfo) ShortDescrString() string { return cstr(e.ShortDescr[:]) }
func (e *EventInfo) LongDescrString() string  { return cstr(e.LongDescr[:]) }
func (e *EventInfo) UnitsString() string      { return cstr(e.Units[:]) }
func (e *EventInfo) DerivedString() string    { return cstr(e.Derived[:]) }
func (e *EventInfo) PostfixString() string    { return cstr(e.Postfix[:]) }
func (e *EventInfo) NoteString() string       { return cstr(e.Note[:]) }

// Terms returns the Count native terms of a preset: their codes and names.
func (e *EventInfo) Terms() ([]EventCode, []string) {
	n := int(e.Count)
	if n > MaxInfoTerms {
		n = MaxInfoTerms
	}
	codes := make([]EventCode, n)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		codes[i] = EventCode(e.Code[i])
		names[i] = cstr(e.Name[i][:])
	}
	return codes, names
}

// MHTLBInfo mirrors PAPI_mh_tlb_info_t.
type MHTLBInfo struct {
	Type          int32 // empty, instr, data, vector, unified
	NumEntries    int32
	PageSize      int32
	Associativity int32
}

// MHCacheInfo mirrors PAPI_mh_cache_info_t.
type MHCacheInfo struct {
	Type          int32 // empty, instr, data, vector, trace, unified
	Size          int32
	LineSize      int32
	NumLines      int32
	Associativity int32
}

// MHLevel mirrors PAPI_mh_level_t.
type MHLevel struct {
	TLB   [MHMaxLevels]MHTLBInfo
	Cache [MHMaxLevels]MHCacheInfo
}

// MHInfo mirrors PAPI_mh_info_t.
type MHInfo struct {
	Levels int32
	Level  [MaxMemHierarchyLevels]MHLevel
}

// HwInfo mirrors PAPI_hw_info_t.
type HwInfo struct {
	NCPU          int32 // CPUs per NUMA node
	Threads       int32 // hardware threads per core
	Cores         int32 // cores per socket
	Sockets       int32
	NNodes        int32 // total NUMA nodes
	TotalCPUs     int32 // CPUs in the entire system
	Vendor        int32
	VendorString  [MaxStrLen]byte
	Model         int32
	ModelString   [MaxStrLen]byte
	Revision      float32
	CPUIDFamily   int32
	CPUIDModel    int32
	CPUIDStepping int32

	CPUMaxMhz int32
	CPUMinMhz int32

	MemHierarchy         MHInfo
	Virtualized          int32
	VirtualVendorString  [MaxStrLen]byte
	VirtualVendorVersion [MaxStrLen]byte

	// legacy, do not use
	Mhz      float32
	ClockMhz int32

	Reserved [8]int32
}

func (h *HwInfo) VendorName() string { return cstr(h.VendorString[:]) }
func (h *HwInfo) ModelName() string  { return cstr(h.ModelString[:]) }

// ComponentInfo mirrors PAPI_component_info_t. The trailing C bitfields
// are packed into Flags; use the accessor methods to read them.
type ComponentInfo struct {
	Name                   [MaxStrLen]byte
	ShortName              [MinStrLen]byte // prepended to event names
	Description            [MaxStrLen]byte
	Version                [MinStrLen]byte
	SupportVersion         [MinStrLen]byte // version of the support library
	KernelVersion          [MinStrLen]byte // version of the kernel PMC support driver
	DisabledReason         [MaxStrLen]byte
	Disabled               int32 // 0 if enabled, otherwise error code from initialization
	CmpIdx                 int32
	NumCntrs               int32
	NumMpxCntrs            int32
	NumPresetEvents        int32
	NumNativeEvents        int32
	DefaultDomain          int32
	AvailableDomains       int32
	DefaultGranularity     int32
	AvailableGranularities int32
	HardwareIntrSig        int32 // signal used by hardware to deliver PMC events
	ComponentType          int32
	PMUNamesPtr            [PMUMax]*byte
	Reserved               [8]int32
	Flags                  uint32
	_                      uint32 // tail padding of the C struct
}

const (
	hardwareIntrBit = iota
	preciseIntrBit
	posix1bTimersBit
	kernelProfileBit
	kernelMultiplexBit
	fastCounterReadBit
	fastRealTimerBit
	fastVirtualTimerBit
	attachBit
	attachMustPtraceBit
	cntrUmasksBit
	cpuBit
	inheritBit
	reservedBitsShift
)

func (c *ComponentInfo) bit(n uint) bool { return c.Flags>>n&1 == 1 }

func (c *ComponentInfo) HardwareIntr() bool     { return c.bit(hardwareIntrBit) }
func (c *ComponentInfo) PreciseIntr() bool      { return c.bit(preciseIntrBit) }
func (c *ComponentInfo) Posix1bTimers() bool    { return c.bit(posix1bTimersBit) }
func (c *ComponentInfo) KernelProfile() bool    { return c.bit(kernelProfileBit) }
func (c *ComponentInfo) KernelMultiplex() bool  { return c.bit(kernelMultiplexBit) }
func (c *ComponentInfo) FastCounterRead() bool  { return c.bit(fastCounterReadBit) }
func (c *ComponentInfo) FastRealTimer() bool    { return c.bit(fastRealTimerBit) }
func (c *ComponentInfo) FastVirtualTimer() bool { return c.bit(fastVirtualTimerBit) }
func (c *ComponentInfo) Attach() bool           { return c.bit(attachBit) }
func (c *ComponentInfo) AttachMustPtrace() bool { return c.bit(attachMustPtraceBit) }
func (c *ComponentInfo) CntrUmasks() bool       { return c.bit(cntrUmasksBit) }
func (c *ComponentInfo) CPU() bool              { return c.bit(cpuBit) }
func (c *ComponentInfo) Inherit() bool          { return c.bit(inheritBit) }

// ReservedBits returns the 12 reserved bitfield bits.
func (c *ComponentInfo) ReservedBits() uint32 { return c.Flags >> reservedBitsShift & 0xfff }

func (c *ComponentInfo) NameString() string           { return cstr(c.Name[:]) }
func (c *ComponentInfo) ShortNameString() string      { return cstr(c.ShortName[:]) }
func (c *ComponentInfo) DescriptionString() string    { return cstr(c.Description[:]) }
func (c *ComponentInfo) VersionString() string        { return cstr(c.Version[:]) }
func (c *ComponentInfo) DisabledReasonString() string { return cstr(c.DisabledReason[:]) }

// PMUNames returns the non-NULL pmu names of the component.
func (c *ComponentInfo) PMUNames() []string {
	var names []string
	for _, p := range c.PMUNamesPtr {
		if p == nil {
			continue
		}
		names = append(names, gostring(p))
	}
	return names
}

// ShlibInfo mirrors PAPI_shlib_info_t.
type ShlibInfo struct {
	Map   *AddressMap
	Count int32
}

// Maps returns the Count address maps Map points to. The slice aliases
// library memory.
func (s *ShlibInfo) Maps() []AddressMap {
	if s.Map == nil || s.Count <= 0 {
		return nil
	}
	return unsafe.Slice(s.Map, int(s.Count))
}

// cstr returns the bytes of b up to the first NUL.
func cstr(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// gostring copies a NUL terminated string owned by the library.
func gostring(p *byte) string {
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
