package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	apperrors "okbike/internal/errors"
	"okbike/internal/service"
)

type DocumentHandler struct {
	Service *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{Service: svc}
}

// VerifyDocuments approves or rejects one document of one customer. The
// document and the decision come as query params, matching the dashboard's
// per-button calls.
func (h *DocumentHandler) VerifyDocuments(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	status := r.URL.Query().Get("status")
	docType := r.URL.Query().Get("docType")
	if status == "" || docType == "" {
		http.Error(w, "status and docType are required", http.StatusBadRequest)
		return
	}

	err = h.Service.VerifyDocument(userID, docType, status)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUnknownDocumentType),
		errors.Is(err, apperrors.ErrUnknownDocumentState):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	default:
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": fmt.Sprintf("Document %s %s successfully", docType, status),
	})
}

func (h *DocumentHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}
	user, err := h.Service.GetUser(userID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
