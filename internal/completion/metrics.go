package completion

import "expvar"

var (
	rotationsTotal = expvar.NewInt("completion_credential_rotations_total")
	exhaustedTotal = expvar.NewInt("completion_credentials_exhausted_total")
)
