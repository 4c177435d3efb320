package handlers

import (
	"net/http"
	"strconv"

	"kaidan-backend/internal/services"
	"kaidan-backend/pkg/utils"
)

type StatsHandler struct {
	Service *services.StatsService
	Export  *services.ExportService
}

func NewStatsHandler(s *services.StatsService, e *services.ExportService) *StatsHandler {
	return &StatsHandler{Service: s, Export: e}
}

func (h *StatsHandler) ByInvoice(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.ByInvoice(r.Context(), statsQuery(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

func (h *StatsHandler) ByCustomer(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.ByCustomer(r.Context(), statsQuery(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

func (h *StatsHandler) ByRegion(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.ByRegion(r.Context(), statsQuery(r), byProvince(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, report)
}

func (h *StatsHandler) ExportInvoices(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.ByInvoice(r.Context(), statsQuery(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	data, err := h.Export.InvoiceStatsXLSX(report)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeXLSX(w, "invoice_stats.xlsx", data)
}

func (h *StatsHandler) ExportCustomers(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.ByCustomer(r.Context(), statsQuery(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	data, err := h.Export.CustomerStatsXLSX(report)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeXLSX(w, "customer_stats.xlsx", data)
}

func (h *StatsHandler) ExportRegions(w http.ResponseWriter, r *http.Request) {
	report, err := h.Service.ByRegion(r.Context(), statsQuery(r), byProvince(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	data, err := h.Export.RegionStatsXLSX(report)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeXLSX(w, "region_stats.xlsx", data)
}

func statsQuery(r *http.Request) services.StatsQuery {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))
	quarter, _ := strconv.Atoi(q.Get("quarter"))
	return services.StatsQuery{
		Mode:     q.Get("mode"),
		Year:     year,
		Month:    month,
		Quarter:  quarter,
		Keyword:  q.Get("keyword"),
		Customer: q.Get("customer"),
		Location: q.Get("location"),
		Province: q.Get("province"),
	}
}

func byProvince(r *http.Request) bool {
	return r.URL.Query().Get("group") == "province"
}

func writeXLSX(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
