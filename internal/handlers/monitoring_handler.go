package handlers

import (
	"net/http"

	"kaidan-backend/internal/monitoring"
	"kaidan-backend/pkg/utils"
)

type MonitoringHandler struct {
	Sampler *monitoring.Sampler
}

func NewMonitoringHandler(s *monitoring.Sampler) *MonitoringHandler {
	return &MonitoringHandler{Sampler: s}
}

func (h *MonitoringHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, h.Sampler.Sample(r.Context()))
}
