package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"kaidan-backend/internal/services"
	"kaidan-backend/pkg/utils"
)

type BackupHandler struct {
	Service *services.BackupService
}

func NewBackupHandler(s *services.BackupService) *BackupHandler {
	return &BackupHandler{Service: s}
}

// Export streams a full JSON snapshot of the database as a download.
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Service.Export(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	filename := "kaidan-" + time.Now().Format("20060102-150405") + ".json"
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(snap)
}

// Import restores a snapshot. Mode "replace" wipes current data first,
// the default "merge" keeps existing rows and skips duplicates.
func (h *BackupHandler) Import(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = services.ImportModeMerge
	}
	if mode != services.ImportModeMerge && mode != services.ImportModeReplace {
		utils.Error(w, http.StatusBadRequest, "Unknown import mode")
		return
	}

	var snap services.Snapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid snapshot JSON")
		return
	}
	if err := h.Service.Import(r.Context(), &snap, mode); err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "imported", "mode": mode})
}
