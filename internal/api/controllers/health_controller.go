package controllers

import (
	"sync"

	"github.com/gin-gonic/gin"

	"dreamtrip/internal/providers"
	"dreamtrip/pkg/utils"
)

type HealthController struct {
	gateway providers.Gateway
}

func NewHealthController(gateway providers.Gateway) *HealthController {
	return &HealthController{gateway: gateway}
}

// Health godoc
// @Summary Gateway liveness
// @Tags Health
// @Produce json
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"service": "gateway"}, "ok")
}

// ServicesHealth godoc
// @Summary Health of all downstream providers
// @Description Checks the route, weather, POI and AI services concurrently
// @Tags Health
// @Produce json
// @Router /health/services [get]
func (h *HealthController) ServicesHealth(c *gin.Context) {
	categories := []providers.Category{
		providers.CategoryRoute,
		providers.CategoryWeather,
		providers.CategoryPOI,
		providers.CategoryAI,
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	statuses := make(map[string]string, len(categories))

	wg.Add(len(categories))
	for _, category := range categories {
		go func(category providers.Category) {
			defer wg.Done()
			status := h.gateway.CheckHealth(c.Request.Context(), category)
			mu.Lock()
			statuses[string(category)] = status
			mu.Unlock()
		}(category)
	}
	wg.Wait()

	utils.RespondSuccess(c, gin.H{"services": statuses}, "Service health fetched")
}
