package metrics

import (
	"go.opencensus.io/stats"
	"go.opencensus.io/stats/view"
	"go.opencensus.io/tag"
)

// Global Tags
var (
	Method, _ = tag.NewKey("method")
)

// Distribution
var defaultMillisecondsDistribution = view.Distribution(1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000)

var (
	GuardedCallTotal    = stats.Int64("guarded_call_total", "Number of fee-guarded calls", stats.UnitDimensionless)
	GuardedCallFailed   = stats.Int64("guarded_call_failed", "Number of fee-guarded calls rolled back", stats.UnitDimensionless)
	GuardedCallDuration = stats.Int64("guarded_call_dur_ms", "Duration of fee-guarded calls", stats.UnitMilliseconds)
	FeeCollected        = stats.Float64("fee_collected_wei", "Value forwarded to the fee contract", stats.UnitDimensionless)
	RefundIssued        = stats.Float64("refund_issued_wei", "Value refunded to callers", stats.UnitDimensionless)
	DepositReceived     = stats.Float64("deposit_received_wei", "Value deposited to app balances", stats.UnitDimensionless)

	QuoteTotal         = stats.Int64("quote_total", "Number of price quotes served", stats.UnitDimensionless)
	RateAnswer         = stats.Float64("rate_answer", "Latest answer read from the rate feed", stats.UnitDimensionless)
	RateRefreshFailure = stats.Int64("rate_refresh_failed", "Number of failed rate feed refreshes", stats.UnitDimensionless)

	ApiState = stats.Int64("api/state", "api service state. 0: down, 1: up", stats.UnitDimensionless)
)

var (
	GuardedCallTotalView = &view.View{
		Measure:     GuardedCallTotal,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Method},
	}
	GuardedCallFailedView = &view.View{
		Measure:     GuardedCallFailed,
		Aggregation: view.Count(),
		TagKeys:     []tag.Key{Method},
	}
	GuardedCallDurationView = &view.View{
		Measure:     GuardedCallDuration,
		Aggregation: defaultMillisecondsDistribution,
		TagKeys:     []tag.Key{Method},
	}
	FeeCollectedView = &view.View{
		Measure:     FeeCollected,
		Aggregation: view.Sum(),
		TagKeys:     []tag.Key{Method},
	}
	RefundIssuedView = &view.View{
		Measure:     RefundIssued,
		Aggregation: view.Sum(),
	}
	DepositReceivedView = &view.View{
		Measure:     DepositReceived,
		Aggregation: view.Sum(),
	}

	QuoteTotalView = &view.View{
		Measure:     QuoteTotal,
		Aggregation: view.Count(),
	}
	RateAnswerView = &view.View{
		Measure:     RateAnswer,
		Aggregation: view.LastValue(),
	}
	RateRefreshFailureView = &view.View{
		Measure:     RateRefreshFailure,
		Aggregation: view.Count(),
	}

	ApiStateView = &view.View{
		Measure:     ApiState,
		Aggregation: view.LastValue(),
	}
)

var PricerNodeViews = []*view.View{
	GuardedCallTotalView,
	GuardedCallFailedView,
	GuardedCallDurationView,
	FeeCollectedView,
	RefundIssuedView,
	DepositReceivedView,

	QuoteTotalView,
	RateAnswerView,
	RateRefreshFailureView,

	ApiStateView,
}
