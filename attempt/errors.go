package attempt

import "errors"

// ErrWorkerFault marks a bin whose worker failed unexpectedly (spec §7,
// WorkerFault class). The attempt treats the bin as "no cycle" and
// continues with the rest. Run neither returns nor logs this sentinel; a
// faulted bin is counted in metrics.Counters.WorkerFaults.
var ErrWorkerFault = errors.New("attempt: worker fault")
