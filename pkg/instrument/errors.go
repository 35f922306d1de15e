package instrument

import "errors"

var ErrRegisterMetrics = errors.New("instrument: failed to register metrics")
