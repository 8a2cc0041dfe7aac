package output

import (
	"fmt"
	"sync"

	"github.com/cen-ngc5139/runqlen/internal/metadata"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	RunqOccupancy = "runq_occupancy"
	RunqSamples   = "runq_samples"
	RunqQueued    = "runq_queued"
)

// RunqMetrics 上一个上报周期的占用率指标
type RunqMetrics struct {
	Occupancy     *prometheus.GaugeVec // 运行队列占用率(百分比)
	Samples       *prometheus.GaugeVec // 周期内采样总数
	Queued        *prometheus.GaugeVec // 周期内队列非空的采样次数
	RunqSampleMap *sync.Map
}

func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

func NewRunqMetrics(runqSampleMap *sync.Map) *RunqMetrics {
	return &RunqMetrics{
		Occupancy:     createGaugeVec(RunqOccupancy, "run queue occupancy percentage", []string{"cpu", "node"}),
		Samples:       createGaugeVec(RunqSamples, "run queue samples per interval", []string{"cpu", "node"}),
		Queued:        createGaugeVec(RunqQueued, "nonzero run queue samples per interval", []string{"cpu", "node"}),
		RunqSampleMap: runqSampleMap,
	}
}

func (m *RunqMetrics) UpdateMetricsFromCache() {
	m.RunqSampleMap.Range(func(key, value interface{}) bool {
		sample := value.(metadata.RunqSample)
		cpu := fmt.Sprintf("%d", sample.CPU)
		m.Occupancy.WithLabelValues(cpu, sample.Node).Set(sample.Occupancy)
		m.Samples.WithLabelValues(cpu, sample.Node).Set(float64(sample.Samples))
		m.Queued.WithLabelValues(cpu, sample.Node).Set(float64(sample.Queued))
		return true
	})
}

func (m *RunqMetrics) MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()

	return func(c *gin.Context) {
		m.UpdateMetricsFromCache()
		h.ServeHTTP(c.Writer, c.Request)
	}
}
