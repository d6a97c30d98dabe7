package papi

// Flips is the result of FlipsRate.
type Flips struct {
	RealTime float32 // seconds since the first call
	ProcTime float32 // process seconds since the first call
	FlpIns   int64   // floating point instructions since the first call
	MFlips   float32 // Mflips/s since the previous call
}

// Flops is the result of FlopsRate.
type Flops struct {
	RealTime float32
	ProcTime float32
	FlpOps   int64
	MFlops   float32
}

// IPCRate is the result of IPC.
type IPCRate struct {
	RealTime float32
	ProcTime float32
	Ins      int64
	IPC      float32
}

// EPCRate is the result of EPC.
type EPCRate struct {
	RealTime float32
	ProcTime float32
	Ref      int64 // reference cycles
	Core     int64 // core cycles
	Evt      int64 // event count
	EPC      float32
}

// FlipsRate returns the floating point instruction rate. event is one of
// FPIns, VecSP or VecDP.
func FlipsRate(event EventCode) (Flips, error) {
	var f Flips
	rc := lib.flipsRate(int32(event), &f.RealTime, &f.ProcTime, &f.FlpIns, &f.MFlips)
	return f, errnoErr(rc)
}

// FlopsRate returns the floating point operation rate. event is one of
// FPOps, SPOps or DPOps.
func FlopsRate(event EventCode) (Flops, error) {
	var f Flops
	rc := lib.flopsRate(int32(event), &f.RealTime, &f.ProcTime, &f.FlpOps, &f.MFlops)
	return f, errnoErr(rc)
}

// IPC returns instructions per cycle along with real and processor time.
func IPC() (IPCRate, error) {
	var r IPCRate
	rc := lib.ipc(&r.RealTime, &r.ProcTime, &r.Ins, &r.IPC)
	return r, errnoErr(rc)
}

// EPC returns event per cycle for event, or for PAPI_TOT_INS when event
// is 0.
func EPC(event EventCode) (EPCRate, error) {
	var r EPCRate
	rc := lib.epc(int32(event), &r.RealTime, &r.ProcTime, &r.Ref, &r.Core, &r.Evt, &r.EPC)
	return r, errnoErr(rc)
}

// RateStop stops the event set started by one of the rate calls.
func RateStop() error { return errnoErr(lib.rateStop()) }
