package handlers

import (
	"errors"
	"io"
	"net/http"

	"kaidan-backend/internal/models"
	"kaidan-backend/internal/services"
	"kaidan-backend/pkg/utils"
)

// maxImageSize caps slip photo uploads at 10 MB.
const maxImageSize = 10 << 20

type RecognitionHandler struct {
	Service   *services.RecognitionService
	Reference *services.ReferenceService
}

func NewRecognitionHandler(s *services.RecognitionService, ref *services.ReferenceService) *RecognitionHandler {
	return &RecognitionHandler{Service: s, Reference: ref}
}

// Recognize accepts a multipart slip photo under the "image" field and
// returns the vision model's structured guess.
func (h *RecognitionHandler) Recognize(w http.ResponseWriter, r *http.Request) {
	result, ok := h.recognizeUpload(w, r)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, result)
}

// Import recognizes a slip photo and runs the guess through the same
// auto-fill path as manual typing, returning reconciled form content.
func (h *RecognitionHandler) Import(w http.ResponseWriter, r *http.Request) {
	result, ok := h.recognizeUpload(w, r)
	if !ok {
		return
	}

	req := &models.AutofillRequest{
		Customer: result.Customer,
		Location: result.Destination,
		Plate1:   result.Plate,
		Driver:   result.Driver,
	}
	for _, it := range result.Items {
		req.Items = append(req.Items, models.SlipItem{
			Name:  it.Product,
			Spec:  it.SpecJin,
			Count: it.Count,
			Price: it.PricePerTon,
		})
	}

	resp, err := h.Reference.Autofill(r.Context(), req)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{
		"recognition": result,
		"form":        resp,
	})
}

func (h *RecognitionHandler) recognizeUpload(w http.ResponseWriter, r *http.Request) (*models.RecognitionResult, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize)
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return nil, false
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Missing image file")
		return nil, false
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Failed to read image")
		return nil, false
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result, err := h.Service.Recognize(r.Context(), image, mimeType)
	if err != nil {
		if errors.Is(err, services.ErrNoAPIKey) {
			utils.Error(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return result, true
}
