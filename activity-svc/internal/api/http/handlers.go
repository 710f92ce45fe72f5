package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hotel-portal/activity-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Activity service.ActivityServiceInterface
}

func NewHandler(activity service.ActivityServiceInterface) *Handler {
	return &Handler{Activity: activity}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/activity", h.getActivity).Methods("GET")
	r.HandleFunc("/api/activity/summary", h.getSummary).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "activity-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) getActivity(w http.ResponseWriter, r *http.Request) {
	hotel := r.URL.Query().Get("hotel")
	if hotel == "" {
		http.Error(w, "hotel is required", http.StatusBadRequest)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	activities, err := h.Activity.Recent(r.Context(), hotel, limit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(activities)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	hotel := r.URL.Query().Get("hotel")
	if hotel == "" {
		http.Error(w, "hotel is required", http.StatusBadRequest)
		return
	}
	day := r.URL.Query().Get("date")
	if day == "" {
		day = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", day); err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	summary, err := h.Activity.Summary(r.Context(), hotel, day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
