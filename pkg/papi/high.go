package papi

// High level API. Which events are recorded and where the results go is
// configured through the PAPI_EVENTS and PAPI_OUTPUT_DIRECTORY environment
// variables, read by the library on the first region call.

const (
	EnvEvents          = "PAPI_EVENTS"
	EnvOutputDirectory = "PAPI_OUTPUT_DIRECTORY"
)

// RegionBegin reads the performance events at the beginning of region.
func RegionBegin(region string) error { return errnoErr(lib.hlRegionBegin(region)) }

// RegionRead stores the difference to the beginning of region without
// ending it.
func RegionRead(region string) error { return errnoErr(lib.hlRead(region)) }

// RegionEnd reads the events at the end of region and stores the
// difference to its beginning.
func RegionEnd(region string) error { return errnoErr(lib.hlRegionEnd(region)) }

// HLStop stops the running high level event set.
func HLStop() error { return errnoErr(lib.hlStop()) }
