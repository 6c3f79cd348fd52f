package httptransport

import "expvar"

var (
	metricProfileTotal  = expvar.NewInt("player_profile_total")
	metricProfileErrors = expvar.NewInt("player_profile_errors_total")

	metricRecommendTotal    = expvar.NewInt("deck_recommend_requests_total")
	metricRecommendErrors   = expvar.NewInt("deck_recommend_errors_total")
	metricRecommendFallback = expvar.NewInt("deck_recommend_fallback_responses_total")

	metricDeckSaveTotal   = expvar.NewInt("deck_save_total")
	metricDeckSaveErrors  = expvar.NewInt("deck_save_errors_total")
	metricDeckExportTotal = expvar.NewInt("deck_export_total")
)
