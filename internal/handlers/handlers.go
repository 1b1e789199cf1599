package handlers

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/antigravity/golfshots/internal/charts"
	"github.com/antigravity/golfshots/internal/db"
)

//go:embed templates/index.html
var templateFS embed.FS

// Handler serves the chart pages and the small JSON API over a snapshot
// built at startup. The snapshot is never mutated, so concurrent requests
// need no coordination.
type Handler struct {
	snap   *db.Snapshot
	logger *zap.Logger
	index  *template.Template
}

func New(snap *db.Snapshot, logger *zap.Logger) *Handler {
	return &Handler{
		snap:   snap,
		logger: logger,
		index:  template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

// Routes wires every endpoint onto a fresh mux, with no-cache headers on the
// pages and request logging on everything.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", noCache(http.HandlerFunc(h.IndexHandler)))
	mux.Handle("/chart/", noCache(http.HandlerFunc(h.ChartHandler)))
	mux.HandleFunc("/api/charts", h.ListChartsHandler)
	mux.HandleFunc("/api/courses", h.CoursesHandler)
	return h.requestLog(mux)
}

type chartInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

func chartList() []chartInfo {
	var list []chartInfo
	for _, v := range charts.Views() {
		list = append(list, chartInfo{Name: v.Name, Title: v.Title, URL: "/chart/" + v.Name})
	}
	return list
}

// IndexHandler renders the homepage listing available charts.
func (h *Handler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.index.Execute(w, chartList()); err != nil {
		h.logger.Error("rendering index failed", zap.Error(err))
	}
}

// ChartHandler renders a specific chart page. Unknown names and views with
// no underlying data both answer 404.
func (h *Handler) ChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/chart/")
	view, ok := charts.Lookup(name)
	if !ok {
		http.Error(w, "Chart not found or data not available.", http.StatusNotFound)
		return
	}
	chart, ok := view.Build(h.snap)
	if !ok {
		http.Error(w, "Chart not found or data not available.", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(w); err != nil {
		h.logger.Error("rendering chart failed", zap.String("chart", name), zap.Error(err))
	}
}

// ListChartsHandler enumerates the available views as JSON.
func (h *Handler) ListChartsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chartList())
}

// CoursesHandler lists the loaded courses as JSON.
func (h *Handler) CoursesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.snap.Courses)
}
