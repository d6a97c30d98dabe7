// Package papi binds the PAPI hardware performance counter library.
//
// Every function forwards to the native entry point of the same name and
// hands back its results untouched; a negative return code comes back as
// an Errno carrying that exact value. The descriptor records (EventInfo,
// HwInfo, ComponentInfo and friends) are byte-exact mirrors of the C
// structs.
//
// The native backend is built with the papi tag and cgo:
//
//	go build -tags papi ./...
//
// Without it every call reports ENOIMPL, which keeps dependents buildable
// on hosts without libpapi.
//
// The package adds no locking. The library keeps per-thread state, so
// callers sharing it between goroutines serialize access and pin the
// calling goroutine with runtime.LockOSThread.
package papi
