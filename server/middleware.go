package server

import (
	"github.com/cen-ngc5139/runqlen/internal/cache"
	"github.com/cen-ngc5139/runqlen/internal/output"
	"github.com/gin-gonic/gin"
)

func InitPrometheusMetrics(r *gin.Engine) {
	runqMetrics := output.NewRunqMetrics(cache.RunqSampleMap)
	r.GET("/metrics", runqMetrics.MetricsHandler())
}
