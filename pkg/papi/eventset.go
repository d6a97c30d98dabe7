package papi

// EventSet is a handle to a group of events counted together. The zero
// handle is valid once returned by CreateEventSet; Null is not.
type EventSet int32

// CreateEventSet creates a new empty event set.
func CreateEventSet() (EventSet, error) {
	es := int32(Null)
	if rc := lib.createEventSet(&es); rc < 0 {
		return EventSet(Null), Errno(rc)
	}
	return EventSet(es), nil
}

// Destroy deallocates an empty event set. On success *es becomes Null.
func (es *EventSet) Destroy() error {
	h := int32(*es)
	rc := lib.destroyEventSet(&h)
	*es = EventSet(h)
	return errnoErr(rc)
}

// Cleanup removes all events and turns off profiling and overflow. The set
// must be stopped.
func (es EventSet) Cleanup() error { return errnoErr(lib.cleanupEventSet(int32(es))) }

func (es EventSet) AddEvent(code EventCode) error {
	return errnoErr(lib.addEvent(int32(es), int32(code)))
}

func (es EventSet) AddNamedEvent(name string) error {
	return errnoErr(lib.addNamedEvent(int32(es), name))
}

// AddEvents adds codes in order. A positive return from the library is
// the index of the first event that failed, reported as the int result.
func (es EventSet) AddEvents(codes []EventCode) (int, error) {
	return intResult(lib.addEvents(int32(es), toInt32s(codes)))
}

func (es EventSet) RemoveEvent(code EventCode) error {
	return errnoErr(lib.removeEvent(int32(es), int32(code)))
}

func (es EventSet) RemoveNamedEvent(name string) error {
	return errnoErr(lib.removeNamedEvent(int32(es), name))
}

// RemoveEvents removes codes in order, reporting like AddEvents.
func (es EventSet) RemoveEvents(codes []EventCode) (int, error) {
	return intResult(lib.removeEvents(int32(es), toInt32s(codes)))
}

// NumEvents returns the number of events in the set.
func (es EventSet) NumEvents() (int, error) { return intResult(lib.numEvents(int32(es))) }

// ListEvents returns the events that are members of the set.
func (es EventSet) ListEvents() ([]EventCode, error) {
	n, err := es.NumEvents()
	if err != nil {
		return nil, err
	}
	events := make([]int32, n)
	number := int32(n)
	if rc := lib.listEvents(int32(es), events, &number); rc < 0 {
		return nil, Errno(rc)
	}
	if int(number) < n {
		events = events[:number]
	}
	codes := make([]EventCode, len(events))
	for i, e := range events {
		codes[i] = EventCode(e)
	}
	return codes, nil
}

// AssignComponent binds an empty set to component cidx.
func (es EventSet) AssignComponent(cidx int) error {
	return errnoErr(lib.assignEventSetComponent(int32(es), int32(cidx)))
}

// Component returns the component the set is bound to.
func (es EventSet) Component() (int, error) {
	return intResult(lib.getEventSetComponent(int32(es)))
}

// Attach binds the set to the process or thread tid.
func (es EventSet) Attach(tid uint64) error { return errnoErr(lib.attach(int32(es), tid)) }

// Detach undoes Attach.
func (es EventSet) Detach() error { return errnoErr(lib.detach(int32(es))) }

// SetMultiplex converts a standard set into a multiplexed one.
func (es EventSet) SetMultiplex() error { return errnoErr(lib.setMultiplex(int32(es))) }

// Multiplexed reports whether the set is multiplexed.
func (es EventSet) Multiplexed() (bool, error) {
	rc := lib.getMultiplex(int32(es))
	if rc < 0 {
		return false, Errno(rc)
	}
	return rc != 0, nil
}

func (es EventSet) Start() error { return errnoErr(lib.start(int32(es))) }

// Stop stops counting and stores the final counts in values, which must
// hold NumEvents entries. values may be nil to discard them.
func (es EventSet) Stop(values []int64) error {
	return errnoErr(lib.stop(int32(es), values))
}

// ReadInto reads the counters into values without resetting them. values
// must hold NumEvents entries.
func (es EventSet) ReadInto(values []int64) error {
	return errnoErr(lib.read(int32(es), values))
}

// Read allocates a buffer of NumEvents entries and reads into it.
func (es EventSet) Read() ([]int64, error) {
	n, err := es.NumEvents()
	if err != nil {
		return nil, err
	}
	values := make([]int64, n)
	if err := es.ReadInto(values); err != nil {
		return nil, err
	}
	return values, nil
}

// ReadTs reads the counters into values and returns the real-time cycle
// timestamp of the read.
func (es EventSet) ReadTs(values []int64) (int64, error) {
	var cyc int64
	if rc := lib.readTs(int32(es), values, &cyc); rc < 0 {
		return 0, Errno(rc)
	}
	return cyc, nil
}

// Accum adds the counters to values and resets them.
func (es EventSet) Accum(values []int64) error {
	return errnoErr(lib.accum(int32(es), values))
}

// Write writes values into the counters.
func (es EventSet) Write(values []int64) error {
	return errnoErr(lib.write(int32(es), values))
}

// Reset zeroes the counters of the set.
func (es EventSet) Reset() error { return errnoErr(lib.reset(int32(es))) }

// State returns the counting state of the set.
func (es EventSet) State() (State, error) {
	var st int32
	if rc := lib.state(int32(es), &st); rc < 0 {
		return 0, Errno(rc)
	}
	return State(st), nil
}

func toInt32s(codes []EventCode) []int32 {
	out := make([]int32, len(codes))
	for i, c := range codes {
		out[i] = int32(c)
	}
	return out
}
