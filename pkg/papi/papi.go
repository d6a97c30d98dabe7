package papi

import "fmt"

// LibraryInit initializes the library. PAPI checks version against the
// PAPI_VER_CURRENT it was compiled with and returns it on success.
func LibraryInit(version int) (int, error) {
	rc := lib.libraryInit(int32(version))
	if rc < 0 {
		return 0, Errno(rc)
	}
	return int(rc), nil
}

// Init runs LibraryInit with the version of the header the backend was
// built against.
func Init() error {
	want := lib.verCurrent()
	got, err := LibraryInit(int(want))
	if err != nil {
		return err
	}
	if got != int(want) {
		return fmt.Errorf("papi: library version %#x does not match header %#x", got, want)
	}
	return nil
}

// IsInitialized returns the initialization state of the library.
func IsInitialized() InitState { return InitState(lib.isInitialized()) }

// Shutdown finishes using PAPI and frees all related resources.
func Shutdown() { lib.shutdown() }

// MultiplexInit initializes multiplex support in the library.
func MultiplexInit() error { return errnoErr(lib.multiplexInit()) }

// SetDebug sets the current debug level (Quiet, VerbEcont or VerbEstop).
func SetDebug(level int) error { return errnoErr(lib.setDebug(int32(level))) }

// SetDomain sets the default counting domain for new event sets.
func SetDomain(domain Domain) error { return errnoErr(lib.setDomain(int32(domain))) }

// SetCmpDomain sets the default counting domain of component cidx.
func SetCmpDomain(domain Domain, cidx int) error {
	return errnoErr(lib.setCmpDomain(int32(domain), int32(cidx)))
}

// SetGranularity sets the default granularity for new event sets.
func SetGranularity(granularity Granularity) error {
	return errnoErr(lib.setGranularity(int32(granularity)))
}

// SetCmpGranularity sets the default granularity of component cidx.
func SetCmpGranularity(granularity Granularity, cidx int) error {
	return errnoErr(lib.setCmpGranularity(int32(granularity), int32(cidx)))
}

// Perror prints msg followed by the last PAPI error to stderr.
func Perror(msg string) { lib.perror(msg) }

// Strerror returns the library's message for code.
func Strerror(code Errno) string { return lib.strerror(int32(code)) }

// EnumEvent returns the event after code according to modifier.
func EnumEvent(code EventCode, modifier EnumModifier) (EventCode, error) {
	c := int32(code)
	if rc := lib.enumEvent(&c, int32(modifier)); rc < 0 {
		return code, Errno(rc)
	}
	return EventCode(c), nil
}

// EnumCmpEvent returns the event of component cidx after code according to modifier.
func EnumCmpEvent(code EventCode, modifier EnumModifier, cidx int) (EventCode, error) {
	c := int32(code)
	if rc := lib.enumCmpEvent(&c, int32(modifier), int32(cidx)); rc < 0 {
		return code, Errno(rc)
	}
	return EventCode(c), nil
}

// Presets returns the preset events the platform can count.
func Presets() ([]EventCode, error) {
	code, err := EnumEvent(PresetMask, EnumFirst)
	if err != nil {
		return nil, err
	}
	var codes []EventCode
	// EnumFirst yields the first preset whether or not it is available.
	if info, err := GetEventInfo(code); err == nil && info.Count != 0 {
		codes = append(codes, code)
	}
	for {
		if code, err = EnumEvent(code, PresetEnumAvail); err != nil {
			break
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// NativeEvents returns the native events of component cidx.
func NativeEvents(cidx int) ([]EventCode, error) {
	code, err := EnumCmpEvent(NativeMask, EnumFirst, cidx)
	if err != nil {
		return nil, err
	}
	var codes []EventCode
	for {
		codes = append(codes, code)
		if code, err = EnumCmpEvent(code, EnumEvents, cidx); err != nil {
			break
		}
	}
	return codes, nil
}

// EventCodeToName translates an event code into its preset or native name.
func EventCodeToName(code EventCode) (string, error) {
	buf := make([]byte, MaxStrLen)
	if rc := lib.eventCodeToName(int32(code), buf); rc < 0 {
		return "", Errno(rc)
	}
	return cstr(buf), nil
}

// EventNameToCode translates a preset or native name into an event code.
func EventNameToCode(name string) (EventCode, error) {
	var c int32
	if rc := lib.eventNameToCode(name, &c); rc < 0 {
		return 0, Errno(rc)
	}
	return EventCode(c), nil
}

// QueryEvent returns nil if code exists.
func QueryEvent(code EventCode) error { return errnoErr(lib.queryEvent(int32(code))) }

// QueryNamedEvent returns nil if the event called name exists.
func QueryNamedEvent(name string) error { return errnoErr(lib.queryNamedEvent(name)) }

// GetEventInfo returns the name and descriptions of code.
func GetEventInfo(code EventCode) (*EventInfo, error) {
	info := &EventInfo{}
	if rc := lib.getEventInfo(int32(code), info); rc < 0 {
		return nil, Errno(rc)
	}
	return info, nil
}

// EventComponent returns the component index code belongs to.
func EventComponent(code EventCode) (int, error) {
	return intResult(lib.getEventComponent(int32(code)))
}

// GetDmemInfo returns dynamic memory usage information of the process.
func GetDmemInfo() (*DmemInfo, error) {
	info := &DmemInfo{}
	if rc := lib.getDmemInfo(info); rc < 0 {
		return nil, Errno(rc)
	}
	return info, nil
}

// GetExecutableInfo returns the executable's address space information,
// or nil. The record is owned by the library.
func GetExecutableInfo() *ExeInfo { return lib.getExecutableInfo() }

// GetHardwareInfo returns information about the system hardware, or nil.
// The record is owned by the library.
func GetHardwareInfo() *HwInfo { return lib.getHardwareInfo() }

// GetComponentInfo returns information about component cidx, or nil.
// The record is owned by the library.
func GetComponentInfo(cidx int) *ComponentInfo { return lib.getComponentInfo(int32(cidx)) }

// GetSharedLibInfo returns the shared libraries used by the process, or nil.
func GetSharedLibInfo() *ShlibInfo { return lib.getSharedLibInfo() }

// NumComponents returns the number of components available on the system.
func NumComponents() int { return int(lib.numComponents()) }

// NumCmpHwctrs returns the number of hardware counters of component cidx.
func NumCmpHwctrs(cidx int) int { return int(lib.numCmpHwctrs(int32(cidx))) }

// ComponentIndex returns the index of the component called name.
func ComponentIndex(name string) (int, error) { return intResult(lib.getComponentIndex(name)) }

// DisableComponent disables component cidx. It must be called before init.
func DisableComponent(cidx int) error { return errnoErr(lib.disableComponent(int32(cidx))) }

// DisableComponentByName disables the component called name before init.
func DisableComponentByName(name string) error {
	return errnoErr(lib.disableComponentByName(name))
}

// Timers, counted from some arbitrary starting point.

func RealCyc() int64  { return lib.getRealCyc() }
func RealNsec() int64 { return lib.getRealNsec() }
func RealUsec() int64 { return lib.getRealUsec() }
func VirtCyc() int64  { return lib.getVirtCyc() }
func VirtNsec() int64 { return lib.getVirtNsec() }
func VirtUsec() int64 { return lib.getVirtUsec() }

// RegisterThread informs PAPI of the calling OS thread.
func RegisterThread() error { return errnoErr(lib.registerThread()) }

// UnregisterThread informs PAPI that the calling OS thread is going away.
func UnregisterThread() error { return errnoErr(lib.unregisterThread()) }

// ThreadID returns the identifier PAPI uses for the calling thread.
func ThreadID() uint64 { return lib.threadID() }

// ListThreads returns the thread ids currently known to PAPI.
func ListThreads() ([]uint64, error) {
	var n int32
	if rc := lib.listThreads(nil, &n); rc < 0 {
		return nil, Errno(rc)
	}
	tids := make([]uint64, n)
	if n == 0 {
		return tids, nil
	}
	if rc := lib.listThreads(tids, &n); rc < 0 {
		return nil, Errno(rc)
	}
	return tids[:n], nil
}

// Lock locks one of the two user mutexes.
func (l Lock) Lock() error { return errnoErr(lib.lock(int32(l))) }

// Unlock unlocks one of the two user mutexes.
func (l Lock) Unlock() error { return errnoErr(lib.unlock(int32(l))) }

func intResult(rc int32) (int, error) {
	if rc < 0 {
		return 0, Errno(rc)
	}
	return int(rc), nil
}
