package handlers

import (
	"encoding/json"
	"net/http"

	"kaidan-backend/internal/services"
	"kaidan-backend/pkg/utils"
)

type SettingHandler struct {
	Service *services.SettingService
}

func NewSettingHandler(s *services.SettingService) *SettingHandler {
	return &SettingHandler{Service: s}
}

func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Service.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, settings)
}

func (h *SettingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Key == "" {
		utils.Error(w, http.StatusBadRequest, "Setting key is required")
		return
	}
	if err := h.Service.Update(r.Context(), req.Key, req.Value); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// NextInvoiceNo suggests the number for a fresh slip.
func (h *SettingHandler) NextInvoiceNo(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]int{"invoice_no": h.Service.NextInvoiceNo(r.Context())})
}
