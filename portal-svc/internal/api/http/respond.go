package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-portal/portal-svc/internal/client"
	"hotel-portal/portal-svc/internal/service"
	"hotel-portal/portal-svc/internal/session"
)

const (
	RedirectHeader      = "X-Redirect"
	RedirectAfterHeader = "X-Redirect-After-Ms"
)

type errorResponse struct {
	Error    string `json:"error"`
	Code     string `json:"code,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[portal-svc] encode response: %v", err)
	}
}

// respond writes payload and passes along any navigation requested while serving r.
func respond(w http.ResponseWriter, r *http.Request, status int, payload any) {
	setRedirect(w, r)
	writeJSON(w, status, payload)
}

func setRedirect(w http.ResponseWriter, r *http.Request) *service.Redirect {
	recorder := service.RedirectsFrom(r.Context())
	if recorder == nil {
		return nil
	}
	redirect := recorder.Take()
	if redirect == nil {
		return nil
	}
	w.Header().Set(RedirectHeader, redirect.Path)
	if redirect.AfterMS > 0 {
		w.Header().Set(RedirectAfterHeader, strconv.FormatInt(redirect.AfterMS, 10))
	}
	return redirect
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	redirect := setRedirect(w, r)
	body := errorResponse{Error: err.Error()}
	if redirect != nil {
		body.Redirect = redirect.Path
	}

	var validation *service.ValidationError
	var apiErr *client.APIError
	status := http.StatusBadGateway

	switch {
	case errors.Is(err, client.ErrAuthExpired):
		status = http.StatusUnauthorized
		body.Redirect = session.LoginPath
	case errors.As(err, &validation):
		status = http.StatusUnprocessableEntity
		body.Code = validation.Code
	case errors.Is(err, service.ErrBillNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrBillNotFinalized):
		status = http.StatusConflict
	case errors.Is(err, service.ErrReorderFailed), errors.Is(err, service.ErrNothingToReorder):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &apiErr):
		status = apiErr.Status
		if status < 400 || status >= 500 {
			status = http.StatusBadGateway
		}
	}

	if status >= 500 {
		log.Printf("[portal-svc] ERROR: %v", err)
	}
	writeJSON(w, status, body)
}
