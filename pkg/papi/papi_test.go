package papi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder answers like a tiny PAPI and logs every call it receives.
type recorder struct {
	unlinked
	calls []string
	rc    int32 // returned by calls that only report status

	counts  []int64
	events  []int32
	enum    []int32
	unavail []int32 // presets get_event_info reports with no terms
	tids    []uint64
	hw      *HwInfo
}

func (r *recorder) logf(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// code32 reinterprets a code the way the C int parameter sees it.
func code32(c EventCode) int32 { return int32(c) }

func useLib(t *testing.T, n native) {
	old := lib
	lib = n
	t.Cleanup(func() { lib = old })
}

func (r *recorder) verCurrent() int32 { return 0x07010000 }

func (r *recorder) libraryInit(version int32) int32 {
	r.logf("library_init(%#x)", version)
	if r.rc < 0 {
		return r.rc
	}
	return version
}

func (r *recorder) createEventSet(es *int32) int32 {
	r.logf("create_eventset(%d)", *es)
	*es = 7
	return r.rc
}

func (r *recorder) destroyEventSet(es *int32) int32 {
	r.logf("destroy_eventset(%d)", *es)
	if r.rc == 0 {
		*es = Null
	}
	return r.rc
}

func (r *recorder) addEvent(es, ev int32) int32 {
	r.logf("add_event(%d, %#x)", es, uint32(ev))
	return r.rc
}

func (r *recorder) addNamedEvent(es int32, name string) int32 {
	r.logf("add_named_event(%d, %s)", es, name)
	return r.rc
}

func (r *recorder) addEvents(es int32, events []int32) int32 {
	r.logf("add_events(%d, %d)", es, len(events))
	r.events = append(r.events, events...)
	return r.rc
}

func (r *recorder) numEvents(es int32) int32 {
	r.logf("num_events(%d)", es)
	return int32(len(r.counts))
}

func (r *recorder) read(es int32, values []int64) int32 {
	r.logf("read(%d, %d)", es, len(values))
	copy(values, r.counts)
	return r.rc
}

func (r *recorder) readTs(es int32, values []int64, cyc *int64) int32 {
	r.logf("read_ts(%d, %d)", es, len(values))
	copy(values, r.counts)
	*cyc = 123456
	return r.rc
}

func (r *recorder) accum(es int32, values []int64) int32 {
	r.logf("accum(%d, %v)", es, values)
	for i := range values {
		values[i] += r.counts[i]
	}
	return r.rc
}

func (r *recorder) stop(es int32, values []int64) int32 {
	r.logf("stop(%d, %d)", es, len(values))
	copy(values, r.counts)
	return r.rc
}

func (r *recorder) write(es int32, values []int64) int32 {
	r.logf("write(%d, %v)", es, values)
	return r.rc
}

func (r *recorder) state(es int32, status *int32) int32 {
	r.logf("state(%d)", es)
	*status = int32(Running | Attached)
	return r.rc
}

func (r *recorder) listEvents(es int32, events []int32, number *int32) int32 {
	r.logf("list_events(%d, %d)", es, *number)
	*number = int32(copy(events, r.events))
	return r.rc
}

func (r *recorder) attach(es int32, tid uint64) int32 {
	r.logf("attach(%d, %d)", es, tid)
	return r.rc
}

func (r *recorder) getMultiplex(es int32) int32 {
	r.logf("get_multiplex(%d)", es)
	return 1
}

func (r *recorder) enumEvent(code *int32, modifier int32) int32 {
	r.logf("enum_event(%#x, %d)", uint32(*code), modifier)
	return r.step(code, modifier)
}

// step walks r.enum the way the library walks its event table.
func (r *recorder) step(code *int32, modifier int32) int32 {
	if modifier == int32(EnumFirst) {
		*code = r.enum[0]
		return 0
	}
	for i, c := range r.enum {
		if c == *code && i+1 < len(r.enum) {
			*code = r.enum[i+1]
			return 0
		}
	}
	return int32(ENOEVNT)
}

func (r *recorder) eventCodeToName(code int32, out []byte) int32 {
	r.logf("event_code_to_name(%#x, %d)", uint32(code), len(out))
	copy(out, "PAPI_TOT_CYC")
	return r.rc
}

func (r *recorder) eventNameToCode(name string, out *int32) int32 {
	r.logf("event_name_to_code(%s)", name)
	*out = int32(NativeMask | 5)
	return r.rc
}

func (r *recorder) getEventInfo(code int32, info *EventInfo) int32 {
	r.logf("get_event_info(%#x)", uint32(code))
	info.EventCode = uint32(code)
	copy(info.Symbol[:], "PAPI_TOT_INS")
	info.Count = 1
	for _, c := range r.unavail {
		if c == code {
			info.Count = 0
		}
	}
	return r.rc
}

func (r *recorder) getHardwareInfo() *HwInfo { return r.hw }

func (r *recorder) getComponentIndex(name string) int32 {
	r.logf("get_component_index(%s)", name)
	return 2
}

func (r *recorder) listThreads(tids []uint64, number *int32) int32 {
	r.logf("list_threads(%d, %d)", len(tids), *number)
	if tids == nil {
		*number = int32(len(r.tids))
		return r.rc
	}
	*number = int32(copy(tids, r.tids))
	return r.rc
}

func (r *recorder) lock(l int32) int32 {
	r.logf("lock(%d)", l)
	return r.rc
}

func (r *recorder) setDomain(d int32) int32 {
	r.logf("set_domain(%#x)", uint32(d))
	return r.rc
}

func (r *recorder) hlRegionBegin(region string) int32 {
	r.logf("hl_region_begin(%s)", region)
	return r.rc
}

func (r *recorder) flipsRate(event int32, rtime, ptime *float32, flpins *int64, mflips *float32) int32 {
	r.logf("flips_rate(%#x)", uint32(event))
	*rtime, *ptime, *flpins, *mflips = 1.5, 1.25, 4000, 2.5
	return r.rc
}

func (r *recorder) epc(event int32, rtime, ptime *float32, ref, core, evt *int64, epc *float32) int32 {
	r.logf("epc(%#x)", uint32(event))
	*rtime, *ptime, *ref, *core, *evt, *epc = 2, 1, 10, 20, 30, 1.5
	return r.rc
}

func (r *recorder) getRealNsec() int64 { return 42 }

func TestInit(t *testing.T) {
	r := &recorder{}
	useLib(t, r)

	require.NoError(t, Init())
	assert.Equal(t, []string{"library_init(0x7010000)"}, r.calls)

	r.rc = int32(EINVAL)
	assert.Equal(t, EINVAL, Init())
}

func TestEventSetLifecycle(t *testing.T) {
	r := &recorder{counts: []int64{100, 200}}
	useLib(t, r)

	es, err := CreateEventSet()
	require.NoError(t, err)
	assert.Equal(t, EventSet(7), es)

	require.NoError(t, es.AddEvent(TotCyc))
	require.NoError(t, es.AddNamedEvent("PAPI_TOT_INS"))
	require.NoError(t, es.Attach(4242))

	values, err := es.Read()
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 200}, values)

	acc := []int64{1, 2}
	require.NoError(t, es.Accum(acc))
	assert.Equal(t, []int64{101, 202}, acc)

	final := make([]int64, 2)
	require.NoError(t, es.Stop(final))
	assert.Equal(t, []int64{100, 200}, final)

	require.NoError(t, es.Destroy())
	assert.Equal(t, EventSet(Null), es)

	assert.Equal(t, []string{
		"create_eventset(-1)",
		"add_event(7, 0x8000003b)",
		"add_named_event(7, PAPI_TOT_INS)",
		"attach(7, 4242)",
		"num_events(7)",
		"read(7, 2)",
		"accum(7, [1 2])",
		"stop(7, 2)",
		"destroy_eventset(7)",
	}, r.calls)
}

func TestErrorsPassThrough(t *testing.T) {
	for _, code := range []Errno{EINVAL, ENOEVST, EISRUN, ECNFLCT, ECMP_DISABLED} {
		r := &recorder{rc: int32(code)}
		useLib(t, r)

		es := EventSet(3)
		assert.Equal(t, code, es.AddEvent(L1DCM))
		assert.Equal(t, code, es.Write([]int64{1}))
		assert.Equal(t, code, RegionBegin("loop"))
		assert.Equal(t, code, USR2Lock.Lock())

		_, err := CreateEventSet()
		assert.Equal(t, code, err)

		err = es.Destroy()
		assert.Equal(t, code, err)
		assert.Equal(t, EventSet(3), es, "handle untouched on failure")
	}
}

func TestAddEventsPartial(t *testing.T) {
	r := &recorder{rc: 1}
	useLib(t, r)

	n, err := EventSet(2).AddEvents([]EventCode{TotCyc, TotIns})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []int32{code32(TotCyc), code32(TotIns)}, r.events)
}

func TestReadTsAndState(t *testing.T) {
	r := &recorder{counts: []int64{9}}
	useLib(t, r)
	es := EventSet(1)

	values := make([]int64, 1)
	cyc, err := es.ReadTs(values)
	require.NoError(t, err)
	assert.Equal(t, int64(123456), cyc)
	assert.Equal(t, []int64{9}, values)

	st, err := es.State()
	require.NoError(t, err)
	assert.True(t, st.Has(Running))
	assert.True(t, st.Has(Attached))

	mpx, err := es.Multiplexed()
	require.NoError(t, err)
	assert.True(t, mpx)
}

func TestListEvents(t *testing.T) {
	r := &recorder{counts: []int64{0, 0}, events: []int32{code32(TotCyc), int32(NativeMask | 3)}}
	useLib(t, r)

	codes, err := EventSet(5).ListEvents()
	require.NoError(t, err)
	assert.Equal(t, []EventCode{TotCyc, NativeMask | 3}, codes)
	assert.Equal(t, "list_events(5, 2)", r.calls[1])
}

func TestPresetsEnumeration(t *testing.T) {
	r := &recorder{enum: []int32{code32(L1DCM), code32(TotIns), code32(TotCyc)}}
	useLib(t, r)

	codes, err := Presets()
	require.NoError(t, err)
	assert.Equal(t, []EventCode{L1DCM, TotIns, TotCyc}, codes)
	assert.Equal(t, []string{
		"enum_event(0x80000000, 1)",
		"get_event_info(0x80000000)",
		"enum_event(0x80000000, 2)",
		"enum_event(0x80000032, 2)",
		"enum_event(0x8000003b, 2)",
	}, r.calls)
}

func TestPresetsSkipUnavailableFirst(t *testing.T) {
	r := &recorder{
		enum:    []int32{code32(L1DCM), code32(TotCyc)},
		unavail: []int32{code32(L1DCM)},
	}
	useLib(t, r)

	codes, err := Presets()
	require.NoError(t, err)
	assert.Equal(t, []EventCode{TotCyc}, codes)

	r.enum = []int32{code32(L1DCM)}
	codes, err = Presets()
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestNativeEventsEnumeration(t *testing.T) {
	r := &recorder{enum: []int32{int32(NativeMask | 1), int32(NativeMask | 2)}}
	useLib(t, r)

	codes, err := NativeEvents(3)
	require.NoError(t, err)
	assert.Equal(t, []EventCode{NativeMask | 1, NativeMask | 2}, codes)
	assert.Equal(t, []string{
		"enum_cmp_event(0x40000000, 1, 3)",
		"enum_cmp_event(0x40000001, 0, 3)",
		"enum_cmp_event(0x40000002, 0, 3)",
	}, r.calls)

	next, err := EnumCmpEvent(NativeMask|1, EnumEvents, 3)
	require.NoError(t, err)
	assert.Equal(t, EventCode(NativeMask|2), next)

	last, err := EnumCmpEvent(NativeMask|2, EnumEvents, 3)
	assert.Equal(t, ENOEVNT, err)
	assert.Equal(t, EventCode(NativeMask|2), last, "code untouched on failure")
}

func TestNameTranslation(t *testing.T) {
	r := &recorder{}
	useLib(t, r)

	name, err := EventCodeToName(TotCyc)
	require.NoError(t, err)
	assert.Equal(t, "PAPI_TOT_CYC", name)

	code, err := EventNameToCode("perf::CYCLES")
	require.NoError(t, err)
	assert.Equal(t, EventCode(NativeMask|5), code)

	info, err := GetEventInfo(TotIns)
	require.NoError(t, err)
	assert.Equal(t, "PAPI_TOT_INS", info.SymbolString())
	assert.Equal(t, uint32(TotIns), info.EventCode)

	idx, err := ComponentIndex("perf_event")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	assert.Equal(t, []string{
		"event_code_to_name(0x8000003b, 128)",
		"event_name_to_code(perf::CYCLES)",
		"get_event_info(0x80000032)",
		"get_component_index(perf_event)",
	}, r.calls)
}

func TestListThreads(t *testing.T) {
	r := &recorder{tids: []uint64{11, 12, 13}}
	useLib(t, r)

	tids, err := ListThreads()
	require.NoError(t, err)
	assert.Equal(t, []uint64{11, 12, 13}, tids)
	assert.Equal(t, []string{"list_threads(0, 0)", "list_threads(3, 3)"}, r.calls)
}

func TestRates(t *testing.T) {
	r := &recorder{}
	useLib(t, r)

	f, err := FlipsRate(FPIns)
	require.NoError(t, err)
	assert.Equal(t, Flips{RealTime: 1.5, ProcTime: 1.25, FlpIns: 4000, MFlips: 2.5}, f)

	e, err := EPC(0)
	require.NoError(t, err)
	assert.Equal(t, EPCRate{RealTime: 2, ProcTime: 1, Ref: 10, Core: 20, Evt: 30, EPC: 1.5}, e)

	assert.Equal(t, []string{"flips_rate(0x80000034)", "epc(0x0)"}, r.calls)
}

func TestPassThroughValues(t *testing.T) {
	hw := &HwInfo{TotalCPUs: 16}
	r := &recorder{hw: hw}
	useLib(t, r)

	assert.Same(t, hw, GetHardwareInfo())
	assert.Equal(t, int64(42), RealNsec())
	require.NoError(t, SetDomain(DomUser|DomKernel))
	require.NoError(t, SetDomain(DomHWSpec))
	assert.Equal(t, []string{"set_domain(0x3)", "set_domain(0x80000000)"}, r.calls)
}

func TestUnlinked(t *testing.T) {
	useLib(t, unlinked{})

	assert.False(t, Linked())
	assert.Equal(t, ENOIMPL, Init())
	_, err := CreateEventSet()
	assert.Equal(t, ENOIMPL, err)
	assert.Nil(t, GetHardwareInfo())
	assert.Equal(t, 0, NumComponents())
	assert.Equal(t, NotInited, IsInitialized())
}
