package service

import (
	"context"
	"reflect"

	"go.uber.org/fx"

	"github.com/haven1-network/pricer/config"
	"github.com/haven1-network/pricer/feecontract"
	"github.com/haven1-network/pricer/log"
	"github.com/haven1-network/pricer/pricing"
)

type ServiceMap map[reflect.Type]interface{}

func MakeServiceMap(recordService *RecordService,
	quoteService *QuoteService,
	rateService *RateService) ServiceMap {
	sMap := make(ServiceMap)
	sMap[reflect.TypeOf(recordService)] = recordService
	sMap[reflect.TypeOf(quoteService)] = quoteService
	sMap[reflect.TypeOf(rateService)] = rateService
	return sMap
}

func NewStableOracle(cfg *config.PricingConfig, rateService *RateService, contract *feecontract.Ref, logger *log.Logger) (*pricing.StableOracle, error) {
	return pricing.NewStableOracle(cfg, rateService, contract, logger)
}

func LogRegisteredServices(logger *log.Logger, services ServiceMap) {
	for t := range services {
		logger.Infof("service registered: %s", t)
	}
}

func PricerService() fx.Option {
	return fx.Options(
		fx.Provide(NewRecordService),
		fx.Provide(NewRateService),
		fx.Provide(NewStableOracle),
		fx.Provide(NewQuoteService),
		fx.Provide(MakeServiceMap),
	)
}

// StartRateRefresh spins the background rate poller once the app is up.
func StartRateRefresh(lc fx.Lifecycle, rateService *RateService) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := rateService.RefreshRate(ctx); err != nil {
				rateService.log.Warnf("initial rate refresh %v", err)
			}
			rateService.refreshRateLoop()
			return nil
		},
	})
}
