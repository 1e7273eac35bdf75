package cmd

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathanmweiss/go-cpoly/common/errors"
)

const (
	cfgMetricsAddr = "metrics.address"

	metricsJob = "cpoly"
)

var (
	metricsFlags = flag.NewFlagSet("", flag.ContinueOnError)

	operationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cpoly_operations_total",
			Help: "Number of polynomial operations run.",
		},
		[]string{"operation"},
	)
	failuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cpoly_operation_failures_total",
			Help: "Number of failed polynomial operations by error code.",
		},
		[]string{"operation", "module", "code"},
	)

	metricsOnce sync.Once
)

func initMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(operationsTotal, failuresTotal)
	})
}

func observe(operation string, err error) {
	initMetrics()

	operationsTotal.WithLabelValues(operation).Inc()
	if err != nil {
		module, code := errors.Code(err)
		failuresTotal.WithLabelValues(operation, module, strconv.FormatUint(uint64(code), 10)).Inc()
	}
}

func pushMetrics() error {
	addr := viper.GetString(cfgMetricsAddr)
	if addr == "" {
		return nil
	}

	return push.New(addr, metricsJob).Gatherer(prometheus.DefaultGatherer).Push()
}

// runOperation runs fn, records the outcome and pushes the metrics when a
// Pushgateway is configured.
func runOperation(operation string, fn func() error) error {
	err := fn()
	observe(operation, err)

	if pushErr := pushMetrics(); pushErr != nil {
		logger.Warn("failed to push metrics",
			"err", pushErr,
			"operation", operation,
		)
	}

	if err != nil {
		logger.Debug("operation failed",
			"err", err,
			"operation", operation,
		)
	}

	return err
}

func init() {
	metricsFlags.String(cfgMetricsAddr, "", "Pushgateway address, empty to disable pushing")

	_ = viper.BindPFlags(metricsFlags)
}
