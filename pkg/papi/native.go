package papi

// native is the C entry points of libpapi, one method per prototype, with
// C-ABI-equivalent Go types. Slices stand in for a pointer and, where the C
// call takes one, its element count.
type native interface {
	// header facts of the linked library
	verCurrent() int32

	hlRegionBegin(region string) int32
	hlRead(region string) int32
	hlRegionEnd(region string) int32
	hlStop() int32

	accum(eventSet int32, values []int64) int32
	addEvent(eventSet, event int32) int32
	addNamedEvent(eventSet int32, name string) int32
	addEvents(eventSet int32, events []int32) int32
	assignEventSetComponent(eventSet, cidx int32) int32
	attach(eventSet int32, tid uint64) int32
	cleanupEventSet(eventSet int32) int32
	createEventSet(eventSet *int32) int32
	detach(eventSet int32) int32
	destroyEventSet(eventSet *int32) int32
	enumEvent(code *int32, modifier int32) int32
	enumCmpEvent(code *int32, modifier, cidx int32) int32
	eventCodeToName(code int32, out []byte) int32
	eventNameToCode(name string, out *int32) int32
	getDmemInfo(dest *DmemInfo) int32
	getEventInfo(code int32, info *EventInfo) int32
	getExecutableInfo() *ExeInfo
	getHardwareInfo() *HwInfo
	getComponentInfo(cidx int32) *ComponentInfo
	getMultiplex(eventSet int32) int32
	getRealCyc() int64
	getRealNsec() int64
	getRealUsec() int64
	getSharedLibInfo() *ShlibInfo
	getVirtCyc() int64
	getVirtNsec() int64
	getVirtUsec() int64
	isInitialized() int32
	libraryInit(version int32) int32
	listEvents(eventSet int32, events []int32, number *int32) int32
	listThreads(tids []uint64, number *int32) int32
	lock(lck int32) int32
	multiplexInit() int32
	numCmpHwctrs(cidx int32) int32
	numEvents(eventSet int32) int32
	perror(msg string)
	queryEvent(code int32) int32
	queryNamedEvent(name string) int32
	read(eventSet int32, values []int64) int32
	readTs(eventSet int32, values []int64, cyc *int64) int32
	registerThread() int32
	removeEvent(eventSet, code int32) int32
	removeNamedEvent(eventSet int32, name string) int32
	removeEvents(eventSet int32, events []int32) int32
	reset(eventSet int32) int32
	setDebug(level int32) int32
	setCmpDomain(domain, cidx int32) int32
	setDomain(domain int32) int32
	setCmpGranularity(granularity, cidx int32) int32
	setGranularity(granularity int32) int32
	setMultiplex(eventSet int32) int32
	shutdown()
	start(eventSet int32) int32
	state(eventSet int32, status *int32) int32
	stop(eventSet int32, values []int64) int32
	strerror(code int32) string
	threadID() uint64
	unlock(lck int32) int32
	unregisterThread() int32
	write(eventSet int32, values []int64) int32
	getEventComponent(code int32) int32
	getEventSetComponent(eventSet int32) int32
	getComponentIndex(name string) int32
	disableComponent(cidx int32) int32
	disableComponentByName(name string) int32
	numComponents() int32

	flipsRate(event int32, rtime, ptime *float32, flpins *int64, mflips *float32) int32
	flopsRate(event int32, rtime, ptime *float32, flpops *int64, mflops *float32) int32
	ipc(rtime, ptime *float32, ins *int64, ipc *float32) int32
	epc(event int32, rtime, ptime *float32, ref, core, evt *int64, epc *float32) int32
	rateStop() int32
}

// lib is the backend every exported call goes through.
var lib native = unlinked{}

// Linked reports whether the package was built against libpapi.
func Linked() bool {
	_, ok := lib.(unlinked)
	return !ok
}
