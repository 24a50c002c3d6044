package repository

import (
	"reflect"
	"time"

	"github.com/viant/gmetric"
	gprovider "github.com/viant/gmetric/provider"
	"github.com/viant/wirely/logger"
)

type metricsLocation struct {
}

func metricLocation() string {
	return reflect.TypeOf(metricsLocation{}).PkgPath()
}

// constructorCounter registers the constructor build operation counter,
// classifying builds as success, error or fallback
func constructorCounter(metrics *gmetric.Service) logger.Counter {
	if metrics == nil {
		return nil
	}
	name := "constructor.build"
	if cnt := metrics.LookupOperation(name); cnt != nil {
		return cnt
	}
	return metrics.MultiOperationCounter(metricLocation(), name, "constructor model build", time.Millisecond, time.Minute, 2, gprovider.NewBasic())
}
