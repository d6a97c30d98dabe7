package papi

import "strconv"

// Errno is a PAPI return code. Values below zero are errors.
type Errno int32

const (
	OK            Errno = 0
	EINVAL        Errno = -1
	ENOMEM        Errno = -2
	ESYS          Errno = -3
	ECMP          Errno = -4
	ESBSTR        Errno = -4 // backwards compatibility alias of ECMP
	ECLOST        Errno = -5
	EBUG          Errno = -6
	ENOEVNT       Errno = -7
	ECNFLCT       Errno = -8
	ENOTRUN       Errno = -9
	EISRUN        Errno = -10
	ENOEVST       Errno = -11
	ENOTPRESET    Errno = -12
	ENOCNTR       Errno = -13
	EMISC         Errno = -14
	EPERM         Errno = -15
	ENOINIT       Errno = -16
	ENOCMP        Errno = -17
	ENOSUPP       Errno = -18
	ENOIMPL       Errno = -19
	EBUF          Errno = -20
	EINVAL_DOM    Errno = -21
	EATTR         Errno = -22
	ECOUNT        Errno = -23
	ECOMBO        Errno = -24
	ECMP_DISABLED Errno = -25
)

// NumErrors is the number of error messages defined by the API.
const NumErrors = 26

var errlist = [NumErrors]string{
	"no error",
	"invalid argument",
	"insufficient memory",
	"a system/C library call failed",
	"not supported by component",
	"access to the counters was lost or interrupted",
	"internal error, please send mail to the developers",
	"event does not exist",
	"event exists, but cannot be counted due to counter resource limitations",
	"EventSet is currently not running",
	"EventSet is currently counting",
	"no such EventSet available",
	"event in argument is not a valid preset",
	"hardware does not support performance counters",
	"unknown error code",
	"permission level does not permit operation",
	"PAPI hasn't been initialized yet",
	"component index isn't set",
	"not supported",
	"not implemented",
	"buffer size exceeded",
	"EventSet domain is not supported for the operation",
	"invalid or missing event attributes",
	"too many events or attributes",
	"bad combination of features",
	"component containing event is disabled",
}

func (e Errno) Error() string {
	if n := -int64(e); n >= 0 && n < NumErrors {
		return "papi: " + errlist[n]
	}
	return "papi: errno " + strconv.Itoa(int(e))
}

// errnoErr turns a native return code into an error, nil when rc is not negative.
func errnoErr(rc int32) error {
	if rc < 0 {
		return Errno(rc)
	}
	return nil
}
