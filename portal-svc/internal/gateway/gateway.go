package gateway

import (
	"io"
	"log"
	"net/http"
	"strings"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	ActivitySvcURL string
	FrontendDir    string
}

// Gateway forwards the read-only activity feed to activity-svc and serves the dashboard's
// static frontend.
type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

// ProxyActivity forwards to activity-svc, pinning the hotel filter to the caller's own hotel.
func (g *Gateway) ProxyActivity(w http.ResponseWriter, r *http.Request, hotel string) {
	query := r.URL.Query()
	query.Set("hotel", hotel)

	path := "/api" + strings.TrimPrefix(r.URL.Path, "/api/portal")
	target := strings.TrimRight(g.config.ActivitySvcURL, "/") + path + "?" + query.Encode()
	log.Printf("[portal-svc] PROXY: %s %s -> %s", r.Method, r.URL.Path, target)

	g.proxy(w, r, target)
}

func (g *Gateway) proxy(w http.ResponseWriter, r *http.Request, target string) {
	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, nil)
	if err != nil {
		log.Printf("[portal-svc] ERROR: failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[portal-svc] ERROR: failed to proxy to %s: %v", target, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[portal-svc] ERROR: failed to copy response: %v", err)
	}
}

func (g *Gateway) Frontend() http.Handler {
	dir := g.config.FrontendDir
	if dir == "" {
		dir = "./frontend"
	}
	files := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.Error(w, "API route not found", http.StatusNotFound)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/static/") {
			http.StripPrefix("/static/", files).ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, dir+"/index.html")
	})
}
