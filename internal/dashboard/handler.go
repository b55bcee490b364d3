package dashboard

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/shubham2057mishra-png/twitter-sentimental-analysis-1/internal/charts"
)

// Handler serves the dashboard pages, flow fragments and chart images.
type Handler struct {
	controller *Controller
	renderer   charts.Renderer
	mux        *http.ServeMux
}

// NewHandler builds the dashboard HTTP surface around a controller.
func NewHandler(controller *Controller, renderer charts.Renderer) *Handler {
	h := &Handler{
		controller: controller,
		renderer:   renderer,
		mux:        http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.handlePage)
	h.mux.HandleFunc("POST /dashboard/{flow}", h.handleFlow)
	h.mux.HandleFunc("GET /charts/{canvas}", h.handleChart)
	h.mux.HandleFunc("GET /diagnostics", h.handleDiagnostics)
	h.mux.HandleFunc("GET /static/dashboard.css", h.handleStylesheet)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if tab := r.URL.Query().Get("tab"); tab != "" {
		h.controller.SwitchTab(tab)
	}

	data := struct {
		Tabs    []string
		Active  string
		TweetID string
		Body    template.HTML
	}{
		Tabs:    h.controller.Tabs().Tabs(),
		Active:  h.controller.Tabs().Active(),
		TweetID: r.URL.Query().Get("tweet_id"),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, "page", data); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

// handleFlow runs one flow from form input and answers with an HTML
// fragment. A superseded run answers 204 so the page keeps the newer result.
func (h *Handler) handleFlow(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	form := r.PostForm
	var view *View

	switch r.PathValue("flow") {
	case FlowUserInfo:
		view = h.controller.LookupUser(ctx, form.Get("username"))
	case FlowUserTweets:
		view = h.controller.AnalyzeUserTweets(ctx, form.Get("username"), formInt(form.Get("max_results")))
	case FlowTweetReplies:
		view = h.controller.AnalyzeReplies(ctx, form.Get("tweet_id"))
	case FlowCompareUsers:
		view = h.controller.CompareUsers(ctx, form.Get("username1"), form.Get("username2"))
	case FlowCompareTweets:
		view = h.controller.CompareTweets(ctx, form.Get("tweet_id1"), form.Get("tweet_id2"))
	case FlowSearch:
		view = h.controller.SearchAndAnalyze(ctx, form.Get("query"), formInt(form.Get("max_results")))
	case FlowSentimentTest:
		view = h.controller.TestSentiment(ctx, form.Get("text"))
	default:
		http.NotFound(w, r)
		return
	}

	if view == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if view.Err != "" {
		if err := templates.ExecuteTemplate(w, "error", view.Err); err != nil {
			http.Error(w, "render failed", http.StatusInternalServerError)
		}
		return
	}
	w.Write([]byte(view.HTML))
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	canvas := strings.TrimSuffix(r.PathValue("canvas"), ".png")
	handle, ok := h.controller.Registry().Get(canvas)
	if !ok {
		http.NotFound(w, r)
		return
	}
	kind, series, live := handle.Spec()
	if !live {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.renderer.Render(w, kind, series); err != nil {
		http.Error(w, "chart render failed", http.StatusInternalServerError)
	}
}

func (h *Handler) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	frag, err := h.controller.Diagnostics()
	if err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(frag))
}

func (h *Handler) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(stylesheet))
}

func formInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

const stylesheet = `
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #f7fafc; color: #2d3748; }
header { background: linear-gradient(135deg, #667eea, #764ba2); color: #fff; padding: 1.5rem 2rem; }
.tabs { display: flex; gap: 0.5rem; padding: 0.75rem 2rem; background: #fff; border-bottom: 1px solid #e2e8f0; }
.tab { padding: 0.4rem 0.9rem; border-radius: 6px; text-decoration: none; color: #4a5568; }
.tab.active { background: #667eea; color: #fff; }
main { padding: 2rem; max-width: 960px; margin: 0 auto; }
.error-message { background: #fff5f5; color: #c53030; border: 1px solid #fc8181; border-radius: 6px; padding: 0.75rem 1rem; }
.stat-row { display: flex; gap: 1.25rem; list-style: none; padding: 0; }
.stat-row .positive { color: #48bb78; }
.stat-row .neutral { color: #4299e1; }
.stat-row .negative { color: #f56565; }
.chart-box img { max-width: 100%; border: 1px solid #e2e8f0; border-radius: 6px; }
.tweet-list { list-style: none; padding: 0; }
.tweet { background: #fff; border-radius: 6px; padding: 0.75rem 1rem; margin-bottom: 0.5rem; border-left: 4px solid #4299e1; }
.tweet.Positive { border-left-color: #48bb78; }
.tweet.Negative { border-left-color: #f56565; }
.meta { color: #718096; font-size: 0.85rem; }
.compare-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; }
.compare-card { background: #fff; border-radius: 6px; padding: 1rem; }
.console { list-style: none; padding: 0; font-family: monospace; font-size: 0.85rem; }
.console .error { color: #c53030; }
`
