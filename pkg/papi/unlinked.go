package papi

// unlinked answers every call with ENOIMPL. It is the backend of builds
// without the papi tag, so dependents build and test without libpapi.
type unlinked struct{}

const notImplemented = int32(ENOIMPL)

func (unlinked) verCurrent() int32 { return VerCurrent }

func (unlinked) hlRegionBegin(string) int32 { return notImplemented }
func (unlinked) hlRead(string) int32        { return notImplemented }
func (unlinked) hlRegionEnd(string) int32   { return notImplemented }
func (unlinked) hlStop() int32              { return notImplemented }

func (unlinked) accum(int32, []int64) int32                 { return notImplemented }
func (unlinked) addEvent(int32, int32) int32                { return notImplemented }
func (unlinked) addNamedEvent(int32, string) int32          { return notImplemented }
func (unlinked) addEvents(int32, []int32) int32             { return notImplemented }
func (unlinked) assignEventSetComponent(int32, int32) int32 { return notImplemented }
func (unlinked) attach(int32, uint64) int32                 { return notImplemented }
func (unlinked) cleanupEventSet(int32) int32                { return notImplemented }
func (unlinked) createEventSet(*int32) int32                { return notImplemented }
func (unlinked) detach(int32) int32                         { return notImplemented }
func (unlinked) destroyEventSet(*int32) int32               { return notImplemented }
func (unlinked) enumEvent(*int32, int32) int32              { return notImplemented }
func (unlinked) enumCmpEvent(*int32, int32, int32) int32    { return notImplemented }
func (unlinked) eventCodeToName(int32, []byte) int32        { return notImplemented }
func (unlinked) eventNameToCode(string, *int32) int32       { return notImplemented }
func (unlinked) getDmemInfo(*DmemInfo) int32                { return notImplemented }
func (unlinked) getEventInfo(int32, *EventInfo) int32       { return notImplemented }
func (unlinked) getExecutableInfo() *ExeInfo                { return nil }
func (unlinked) getHardwareInfo() *HwInfo                   { return nil }
func (unlinked) getComponentInfo(int32) *ComponentInfo      { return nil }
func (unlinked) getMultiplex(int32) int32                   { return notImplemented }
func (unlinked) getRealCyc() int64                          { return int64(ENOIMPL) }
func (unlinked) getRealNsec() int64                         { return int64(ENOIMPL) }
func (unlinked) getRealUsec() int64                         { return int64(ENOIMPL) }
func (unlinked) getSharedLibInfo() *ShlibInfo               { return nil }
func (unlinked) getVirtCyc() int64                          { return int64(ENOIMPL) }
func (unlinked) getVirtNsec() int64                         { return int64(ENOIMPL) }
func (unlinked) getVirtUsec() int64                         { return int64(ENOIMPL) }
func (unlinked) isInitialized() int32                       { return int32(NotInited) }
func (unlinked) libraryInit(int32) int32                    { return notImplemented }
func (unlinked) listEvents(int32, []int32, *int32) int32    { return notImplemented }
func (unlinked) listThreads([]uint64, *int32) int32         { return notImplemented }
func (unlinked) lock(int32) int32                           { return notImplemented }
func (unlinked) multiplexInit() int32                       { return notImplemented }
func (unlinked) numCmpHwctrs(int32) int32                   { return 0 }
func (unlinked) numEvents(int32) int32                      { return notImplemented }
func (unlinked) perror(string)                              {}
func (unlinked) queryEvent(int32) int32                     { return notImplemented }
func (unlinked) queryNamedEvent(string) int32               { return notImplemented }
func (unlinked) read(int32, []int64) int32                  { return notImplemented }
func (unlinked) readTs(int32, []int64, *int64) int32        { return notImplemented }
func (unlinked) registerThread() int32                      { return notImplemented }
func (unlinked) removeEvent(int32, int32) int32             { return notImplemented }
func (unlinked) removeNamedEvent(int32, string) int32       { return notImplemented }
func (unlinked) removeEvents(int32, []int32) int32          { return notImplemented }
func (unlinked) reset(int32) int32                          { return notImplemented }
func (unlinked) setDebug(int32) int32                       { return notImplemented }
func (unlinked) setCmpDomain(int32, int32) int32            { return notImplemented }
func (unlinked) setDomain(int32) int32                      { return notImplemented }
func (unlinked) setCmpGranularity(int32, int32) int32       { return notImplemented }
func (unlinked) setGranularity(int32) int32                 { return notImplemented }
func (unlinked) setMultiplex(int32) int32                   { return notImplemented }
func (unlinked) shutdown()                                  {}
func (unlinked) start(int32) int32                          { return notImplemented }
func (unlinked) state(int32, *int32) int32                  { return notImplemented }
func (unlinked) stop(int32, []int64) int32                  { return notImplemented }
func (unlinked) strerror(code int32) string                 { return Errno(code).Error() }
func (unlinked) threadID() uint64                           { return 0 }
func (unlinked) unlock(int32) int32                         { return notImplemented }
func (unlinked) unregisterThread() int32                    { return notImplemented }
func (unlinked) write(int32, []int64) int32                 { return notImplemented }
func (unlinked) getEventComponent(int32) int32              { return notImplemented }
func (unlinked) getEventSetComponent(int32) int32           { return notImplemented }
func (unlinked) getComponentIndex(string) int32             { return notImplemented }
func (unlinked) disableComponent(int32) int32               { return notImplemented }
func (unlinked) disableComponentByName(string) int32        { return notImplemented }
func (unlinked) numComponents() int32                       { return 0 }

func (unlinked) flipsRate(int32, *float32, *float32, *int64, *float32) int32 {
	return notImplemented
}

func (unlinked) flopsRate(int32, *float32, *float32, *int64, *float32) int32 {
	return notImplemented
}

func (unlinked) ipc(*float32, *float32, *int64, *float32) int32 { return notImplemented }

func (unlinked) epc(int32, *float32, *float32, *int64, *int64, *int64, *float32) int32 {
	return notImplemented
}

func (unlinked) rateStop() int32 { return notImplemented }
