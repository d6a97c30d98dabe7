//go:build papi && cgo
// +build papi,cgo

package papi

// #cgo LDFLAGS: -lpapi
// #include <papi.h>
// #include <stdlib.h>
import "C"

import "unsafe"

// The Go mirrors must keep the size of the C records they alias.
var (
	_ [unsafe.Sizeof(C.PAPI_address_map_t{}) - unsafe.Sizeof(AddressMap{})]struct{}
	_ [unsafe.Sizeof(AddressMap{}) - unsafe.Sizeof(C.PAPI_address_map_t{})]struct{}
	_ [unsafe.Sizeof(C.PAPI_exe_info_t{}) - unsafe.Sizeof(ExeInfo{})]struct{}
	_ [unsafe.Sizeof(ExeInfo{}) - unsafe.Sizeof(C.PAPI_exe_info_t{})]struct{}
	_ [unsafe.Sizeof(C.PAPI_dmem_info_t{}) - unsafe.Sizeof(DmemInfo{})]struct{}
	_ [unsafe.Sizeof(DmemInfo{}) - unsafe.Sizeof(C.PAPI_dmem_info_t{})]struct{}
	_ [unsafe.Sizeof(C.PAPI_event_info_t{}) - unsafe.Sizeof(EventInfo{})]struct{}
	_ [unsafe.Sizeof(EventInfo{}) - unsafe.Sizeof(C.PAPI_event_info_t{})]struct{}
	_ [unsafe.Sizeof(C.PAPI_mh_info_t{}) - unsafe.Sizeof(MHInfo{})]struct{}
	_ [unsafe.Sizeof(MHInfo{}) - unsafe.Sizeof(C.PAPI_mh_info_t{})]struct{}
	_ [unsafe.Sizeof(C.PAPI_hw_info_t{}) - unsafe.Sizeof(HwInfo{})]struct{}
	_ [unsafe.Sizeof(HwInfo{}) - unsafe.Sizeof(C.PAPI_hw_info_t{})]struct{}
	_ [unsafe.Sizeof(C.PAPI_component_info_t{}) - unsafe.Sizeof(ComponentInfo{})]struct{}
	_ [unsafe.Sizeof(ComponentInfo{}) - unsafe.Sizeof(C.PAPI_component_info_t{})]struct{}
	_ [unsafe.Sizeof(C.PAPI_shlib_info_t{}) - unsafe.Sizeof(ShlibInfo{})]struct{}
	_ [unsafe.Sizeof(ShlibInfo{}) - unsafe.Sizeof(C.PAPI_shlib_info_t{})]struct{}
)

func init() {
	lib = cgoLib{}
}

type cgoLib struct{}

func cIntPtr(p *int32) *C.int { return (*C.int)(unsafe.Pointer(p)) }

func cLongLongs(v []int64) *C.longlong {
	if len(v) == 0 {
		return nil
	}
	return (*C.longlong)(unsafe.Pointer(&v[0]))
}

func cInts(v []int32) *C.int {
	if len(v) == 0 {
		return nil
	}
	return (*C.int)(unsafe.Pointer(&v[0]))
}

func withCString(s string, fn func(*C.char) C.int) int32 {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return int32(fn(cs))
}

func (cgoLib) verCurrent() int32 { return int32(C.PAPI_VER_CURRENT) }

func (cgoLib) hlRegionBegin(region string) int32 {
	return withCString(region, func(cs *C.char) C.int { return C.PAPI_hl_region_begin(cs) })
}

func (cgoLib) hlRead(region string) int32 {
	return withCString(region, func(cs *C.char) C.int { return C.PAPI_hl_read(cs) })
}

func (cgoLib) hlRegionEnd(region string) int32 {
	return withCString(region, func(cs *C.char) C.int { return C.PAPI_hl_region_end(cs) })
}

func (cgoLib) hlStop() int32 { return int32(C.PAPI_hl_stop()) }

func (cgoLib) accum(eventSet int32, values []int64) int32 {
	return int32(C.PAPI_accum(C.int(eventSet), cLongLongs(values)))
}

func (cgoLib) addEvent(eventSet, event int32) int32 {
	return int32(C.PAPI_add_event(C.int(eventSet), C.int(event)))
}

func (cgoLib) addNamedEvent(eventSet int32, name string) int32 {
	return withCString(name, func(cs *C.char) C.int { return C.PAPI_add_named_event(C.int(eventSet), cs) })
}

func (cgoLib) addEvents(eventSet int32, events []int32) int32 {
	return int32(C.PAPI_add_events(C.int(eventSet), cInts(events), C.int(len(events))))
}

func (cgoLib) assignEventSetComponent(eventSet, cidx int32) int32 {
	return int32(C.PAPI_assign_eventset_component(C.int(eventSet), C.int(cidx)))
}

func (cgoLib) attach(eventSet int32, tid uint64) int32 {
	return int32(C.PAPI_attach(C.int(eventSet), C.ulong(tid)))
}

func (cgoLib) cleanupEventSet(eventSet int32) int32 {
	return int32(C.PAPI_cleanup_eventset(C.int(eventSet)))
}

func (cgoLib) createEventSet(eventSet *int32) int32 {
	return int32(C.PAPI_create_eventset(cIntPtr(eventSet)))
}

func (cgoLib) detach(eventSet int32) int32 { return int32(C.PAPI_detach(C.int(eventSet))) }

func (cgoLib) destroyEventSet(eventSet *int32) int32 {
	return int32(C.PAPI_destroy_eventset(cIntPtr(eventSet)))
}

func (cgoLib) enumEvent(code *int32, modifier int32) int32 {
	return int32(C.PAPI_enum_event(cIntPtr(code), C.int(modifier)))
}

func (cgoLib) enumCmpEvent(code *int32, modifier, cidx int32) int32 {
	return int32(C.PAPI_enum_cmp_event(cIntPtr(code), C.int(modifier), C.int(cidx)))
}

func (cgoLib) eventCodeToName(code int32, out []byte) int32 {
	return int32(C.PAPI_event_code_to_name(C.int(code), (*C.char)(unsafe.Pointer(&out[0]))))
}

func (cgoLib) eventNameToCode(name string, out *int32) int32 {
	return withCString(name, func(cs *C.char) C.int { return C.PAPI_event_name_to_code(cs, cIntPtr(out)) })
}

func (cgoLib) getDmemInfo(dest *DmemInfo) int32 {
	return int32(C.PAPI_get_dmem_info((*C.PAPI_dmem_info_t)(unsafe.Pointer(dest))))
}

func (cgoLib) getEventInfo(code int32, info *EventInfo) int32 {
	return int32(C.PAPI_get_event_info(C.int(code), (*C.PAPI_event_info_t)(unsafe.Pointer(info))))
}

func (cgoLib) getExecutableInfo() *ExeInfo {
	return (*ExeInfo)(unsafe.Pointer(C.PAPI_get_executable_info()))
}

func (cgoLib) getHardwareInfo() *HwInfo {
	return (*HwInfo)(unsafe.Pointer(C.PAPI_get_hardware_info()))
}

func (cgoLib) getComponentInfo(cidx int32) *ComponentInfo {
	return (*ComponentInfo)(unsafe.Pointer(C.PAPI_get_component_info(C.int(cidx))))
}

func (cgoLib) getMultiplex(eventSet int32) int32 {
	return int32(C.PAPI_get_multiplex(C.int(eventSet)))
}

func (cgoLib) getRealCyc() int64  { return int64(C.PAPI_get_real_cyc()) }
func (cgoLib) getRealNsec() int64 { return int64(C.PAPI_get_real_nsec()) }
func (cgoLib) getRealUsec() int64 { return int64(C.PAPI_get_real_usec()) }

func (cgoLib) getSharedLibInfo() *ShlibInfo {
	return (*ShlibInfo)(unsafe.Pointer(C.PAPI_get_shared_lib_info()))
}

func (cgoLib) getVirtCyc() int64  { return int64(C.PAPI_get_virt_cyc()) }
func (cgoLib) getVirtNsec() int64 { return int64(C.PAPI_get_virt_nsec()) }
func (cgoLib) getVirtUsec() int64 { return int64(C.PAPI_get_virt_usec()) }

func (cgoLib) isInitialized() int32 { return int32(C.PAPI_is_initialized()) }

func (cgoLib) libraryInit(version int32) int32 {
	return int32(C.PAPI_library_init(C.int(version)))
}

func (cgoLib) listEvents(eventSet int32, events []int32, number *int32) int32 {
	return int32(C.PAPI_list_events(C.int(eventSet), cInts(events), cIntPtr(number)))
}

func (cgoLib) listThreads(tids []uint64, number *int32) int32 {
	var p *C.ulong
	if len(tids) > 0 {
		p = (*C.ulong)(unsafe.Pointer(&tids[0]))
	}
	return int32(C.PAPI_list_threads(p, cIntPtr(number)))
}

func (cgoLib) lock(lck int32) int32   { return int32(C.PAPI_lock(C.int(lck))) }
func (cgoLib) unlock(lck int32) int32 { return int32(C.PAPI_unlock(C.int(lck))) }

func (cgoLib) multiplexInit() int32 { return int32(C.PAPI_multiplex_init()) }

func (cgoLib) numCmpHwctrs(cidx int32) int32 { return int32(C.PAPI_num_cmp_hwctrs(C.int(cidx))) }

func (cgoLib) numEvents(eventSet int32) int32 { return int32(C.PAPI_num_events(C.int(eventSet))) }

func (cgoLib) perror(msg string) {
	cs := C.CString(msg)
	defer C.free(unsafe.Pointer(cs))
	C.PAPI_perror(cs)
}

func (cgoLib) queryEvent(code int32) int32 { return int32(C.PAPI_query_event(C.int(code))) }

func (cgoLib) queryNamedEvent(name string) int32 {
	return withCString(name, func(cs *C.char) C.int { return C.PAPI_query_named_event(cs) })
}

func (cgoLib) read(eventSet int32, values []int64) int32 {
	return int32(C.PAPI_read(C.int(eventSet), cLongLongs(values)))
}

func (cgoLib) readTs(eventSet int32, values []int64, cyc *int64) int32 {
	return int32(C.PAPI_read_ts(C.int(eventSet), cLongLongs(values), (*C.longlong)(unsafe.Pointer(cyc))))
}

func (cgoLib) registerThread() int32   { return int32(C.PAPI_register_thread()) }
func (cgoLib) unregisterThread() int32 { return int32(C.PAPI_unregister_thread()) }

func (cgoLib) removeEvent(eventSet, code int32) int32 {
	return int32(C.PAPI_remove_event(C.int(eventSet), C.int(code)))
}

func (cgoLib) removeNamedEvent(eventSet int32, name string) int32 {
	return withCString(name, func(cs *C.char) C.int { return C.PAPI_remove_named_event(C.int(eventSet), cs) })
}

func (cgoLib) removeEvents(eventSet int32, events []int32) int32 {
	return int32(C.PAPI_remove_events(C.int(eventSet), cInts(events), C.int(len(events))))
}

func (cgoLib) reset(eventSet int32) int32 { return int32(C.PAPI_reset(C.int(eventSet))) }

func (cgoLib) setDebug(level int32) int32 { return int32(C.PAPI_set_debug(C.int(level))) }

func (cgoLib) setCmpDomain(domain, cidx int32) int32 {
	return int32(C.PAPI_set_cmp_domain(C.int(domain), C.int(cidx)))
}

func (cgoLib) setDomain(domain int32) int32 { return int32(C.PAPI_set_domain(C.int(domain))) }

func (cgoLib) setCmpGranularity(granularity, cidx int32) int32 {
	return int32(C.PAPI_set_cmp_granularity(C.int(granularity), C.int(cidx)))
}

func (cgoLib) setGranularity(granularity int32) int32 {
	return int32(C.PAPI_set_granularity(C.int(granularity)))
}

func (cgoLib) setMultiplex(eventSet int32) int32 {
	return int32(C.PAPI_set_multiplex(C.int(eventSet)))
}

func (cgoLib) shutdown() { C.PAPI_shutdown() }

func (cgoLib) start(eventSet int32) int32 { return int32(C.PAPI_start(C.int(eventSet))) }

func (cgoLib) state(eventSet int32, status *int32) int32 {
	return int32(C.PAPI_state(C.int(eventSet), cIntPtr(status)))
}

func (cgoLib) stop(eventSet int32, values []int64) int32 {
	return int32(C.PAPI_stop(C.int(eventSet), cLongLongs(values)))
}

func (cgoLib) strerror(code int32) string { return C.GoString(C.PAPI_strerror(C.int(code))) }

func (cgoLib) threadID() uint64 { return uint64(C.PAPI_thread_id()) }

func (cgoLib) write(eventSet int32, values []int64) int32 {
	return int32(C.PAPI_write(C.int(eventSet), cLongLongs(values)))
}

func (cgoLib) getEventComponent(code int32) int32 {
	return int32(C.PAPI_get_event_component(C.int(code)))
}

func (cgoLib) getEventSetComponent(eventSet int32) int32 {
	return int32(C.PAPI_get_eventset_component(C.int(eventSet)))
}

func (cgoLib) getComponentIndex(name string) int32 {
	return withCString(name, func(cs *C.char) C.int { return C.PAPI_get_component_index(cs) })
}

func (cgoLib) disableComponent(cidx int32) int32 {
	return int32(C.PAPI_disable_component(C.int(cidx)))
}

func (cgoLib) disableComponentByName(name string) int32 {
	return withCString(name, func(cs *C.char) C.int { return C.PAPI_disable_component_by_name(cs) })
}

func (cgoLib) numComponents() int32 { return int32(C.PAPI_num_components()) }

func (cgoLib) flipsRate(event int32, rtime, ptime *float32, flpins *int64, mflips *float32) int32 {
	return int32(C.PAPI_flips_rate(C.int(event),
		(*C.float)(unsafe.Pointer(rtime)), (*C.float)(unsafe.Pointer(ptime)),
		(*C.longlong)(unsafe.Pointer(flpins)), (*C.float)(unsafe.Pointer(mflips))))
}

func (cgoLib) flopsRate(event int32, rtime, ptime *float32, flpops *int64, mflops *float32) int32 {
	return int32(C.PAPI_flops_rate(C.int(event),
		(*C.float)(unsafe.Pointer(rtime)), (*C.float)(unsafe.Pointer(ptime)),
		(*C.longlong)(unsafe.Pointer(flpops)), (*C.float)(unsafe.Pointer(mflops))))
}

func (cgoLib) ipc(rtime, ptime *float32, ins *int64, ipc *float32) int32 {
	return int32(C.PAPI_ipc((*C.float)(unsafe.Pointer(rtime)), (*C.float)(unsafe.Pointer(ptime)),
		(*C.longlong)(unsafe.Pointer(ins)), (*C.float)(unsafe.Pointer(ipc))))
}

func (cgoLib) epc(event int32, rtime, ptime *float32, ref, core, evt *int64, epc *float32) int32 {
	return int32(C.PAPI_epc(C.int(event),
		(*C.float)(unsafe.Pointer(rtime)), (*C.float)(unsafe.Pointer(ptime)),
		(*C.longlong)(unsafe.Pointer(ref)), (*C.longlong)(unsafe.Pointer(core)),
		(*C.longlong)(unsafe.Pointer(evt)), (*C.float)(unsafe.Pointer(epc))))
}

func (cgoLib) rateStop() int32 { return int32(C.PAPI_rate_stop()) }
