package recommend

import "expvar"

var (
	aiTotal             = expvar.NewInt("recommend_ai_batches_total")
	fallbackTotal       = expvar.NewInt("recommend_fallback_batches_total")
	statsAttemptsFailed = expvar.NewInt("recommend_stats_credential_failures_total")
)
