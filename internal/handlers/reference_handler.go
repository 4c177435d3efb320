package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"kaidan-backend/internal/models"
	"kaidan-backend/internal/services"
	"kaidan-backend/pkg/utils"
)

type ReferenceHandler struct {
	Service *services.ReferenceService
}

func NewReferenceHandler(s *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{Service: s}
}

func (h *ReferenceHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Service.Customers(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, customers)
}

func (h *ReferenceHandler) SaveCustomer(w http.ResponseWriter, r *http.Request) {
	var req models.SaveCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Service.SaveCustomer(r.Context(), &req); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *ReferenceHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.Service.DeleteCustomer)
}

func (h *ReferenceHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Service.Products(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, products)
}

func (h *ReferenceHandler) SaveProduct(w http.ResponseWriter, r *http.Request) {
	var req models.SaveProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Service.SaveProduct(r.Context(), &req); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *ReferenceHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.Service.DeleteProduct)
}

func (h *ReferenceHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.Vehicles(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, vehicles)
}

func (h *ReferenceHandler) SaveVehicle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Service.SaveVehicle(r.Context(), &req); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (h *ReferenceHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.Service.DeleteVehicle)
}

// Autofill completes a partial slip from the reference tables.
func (h *ReferenceHandler) Autofill(w http.ResponseWriter, r *http.Request) {
	var req models.AutofillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	resp, err := h.Service.Autofill(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, resp)
}

func (h *ReferenceHandler) delete(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, id int) error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := fn(r.Context(), id); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
