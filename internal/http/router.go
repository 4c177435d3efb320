package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kaidan-backend/internal/handlers"
)

func NewRouter(
	invoiceHandler *handlers.InvoiceHandler,
	referenceHandler *handlers.ReferenceHandler,
	statsHandler *handlers.StatsHandler,
	settingHandler *handlers.SettingHandler,
	recognitionHandler *handlers.RecognitionHandler,
	backupHandler *handlers.BackupHandler,
	healthHandler *handlers.HealthHandler,
	monitoringHandler *handlers.MonitoringHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Invoices
	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.HandleFunc("", invoiceHandler.Finalize).Methods("POST")
	invoicesAPI.HandleFunc("", invoiceHandler.List).Methods("GET")
	invoicesAPI.HandleFunc("/audit", invoiceHandler.Audit).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.Get).Methods("GET")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.Update).Methods("PUT")
	invoicesAPI.HandleFunc("/{id}", invoiceHandler.Delete).Methods("DELETE")
	invoicesAPI.HandleFunc("/{id}/pdf", invoiceHandler.PDF).Methods("GET")

	// Reference tables
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.HandleFunc("", referenceHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", referenceHandler.SaveCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", referenceHandler.DeleteCustomer).Methods("DELETE")

	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.HandleFunc("", referenceHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", referenceHandler.SaveProduct).Methods("POST")
	productsAPI.HandleFunc("/{id}", referenceHandler.DeleteProduct).Methods("DELETE")

	vehiclesAPI := r.PathPrefix("/api/vehicles").Subrouter()
	vehiclesAPI.HandleFunc("", referenceHandler.ListVehicles).Methods("GET")
	vehiclesAPI.HandleFunc("", referenceHandler.SaveVehicle).Methods("POST")
	vehiclesAPI.HandleFunc("/{id}", referenceHandler.DeleteVehicle).Methods("DELETE")

	r.HandleFunc("/api/autofill", referenceHandler.Autofill).Methods("POST")

	// Statistics
	statsAPI := r.PathPrefix("/api/stats").Subrouter()
	statsAPI.HandleFunc("/invoices", statsHandler.ByInvoice).Methods("GET")
	statsAPI.HandleFunc("/invoices/export", statsHandler.ExportInvoices).Methods("GET")
	statsAPI.HandleFunc("/customers", statsHandler.ByCustomer).Methods("GET")
	statsAPI.HandleFunc("/customers/export", statsHandler.ExportCustomers).Methods("GET")
	statsAPI.HandleFunc("/regions", statsHandler.ByRegion).Methods("GET")
	statsAPI.HandleFunc("/regions/export", statsHandler.ExportRegions).Methods("GET")

	// Settings
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.HandleFunc("", settingHandler.List).Methods("GET")
	settingsAPI.HandleFunc("", settingHandler.Update).Methods("PUT")
	settingsAPI.HandleFunc("/next-invoice-no", settingHandler.NextInvoiceNo).Methods("GET")

	// Photo recognition
	r.HandleFunc("/api/recognize", recognitionHandler.Recognize).Methods("POST")
	r.HandleFunc("/api/recognize/import", recognitionHandler.Import).Methods("POST")

	// Backup
	backupAPI := r.PathPrefix("/api/backup").Subrouter()
	backupAPI.HandleFunc("/export", backupHandler.Export).Methods("GET")
	backupAPI.HandleFunc("/import", backupHandler.Import).Methods("POST")

	// Operations
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.HandleFunc("/api/monitoring", monitoringHandler.Snapshot).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
