package toasthttp

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// DefaultSignalName is the frontend signal the stream endpoint patches.
const DefaultSignalName = "toasts"

// Handler exposes a toast manager over HTTP: an SSE stream of state
// snapshots plus mutation endpoints for the rendering layer.
type Handler struct {
	manager    *toast.Manager
	signalName string
	logger     *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithSignalName overrides the frontend signal name patched on each update.
func WithSignalName(name string) Option {
	return func(h *Handler) {
		if name != "" {
			h.signalName = name
		}
	}
}

// WithLogger sets the logger for the Handler.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.logger = log
		}
	}
}

// NewHandler creates an HTTP adapter for the given manager.
func NewHandler(manager *toast.Manager, opts ...Option) *Handler {
	h := &Handler{
		manager:    manager,
		signalName: DefaultSignalName,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router mounts the toast endpoints on a fresh chi router:
//
//	GET  /stream       SSE stream patching the toasts signal on every change
//	POST /             show a toast from a JSON body, returns its id
//	POST /{id}/dismiss dismiss one toast
//	POST /clear        dismiss everything
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Get("/stream", h.handleStream)
	r.Post("/", h.handleShow)
	r.Post("/{id}/dismiss", h.handleDismiss)
	r.Post("/clear", h.handleClear)
	return r
}

// toastSignal is the wire shape of one toast inside the patched signal.
// Durations cross the wire in milliseconds; browser timers speak ms.
type toastSignal struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Title      string `json:"title,omitempty"`
	Message    string `json:"message"`
	Sticky     bool   `json:"sticky"`
	DurationMS int64  `json:"durationMs"`
}

func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)
	sub := h.manager.Subscribe(r.Context())
	defer sub.Close()

	for {
		select {
		case <-r.Context().Done():
			return
		case snap, ok := <-sub.Updates():
			if !ok {
				return
			}
			if err := h.patchSignal(sse, snap); err != nil {
				h.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed to patch toast signal",
					logger.Component("toasthttp"),
					logger.Error(err),
				)
				return
			}
		}
	}
}

func (h *Handler) patchSignal(sse *datastar.ServerSentEventGenerator, snap []toast.Toast) error {
	signals := make([]toastSignal, len(snap))
	for i, t := range snap {
		signals[i] = toastSignal{
			ID:         t.ID,
			Kind:       string(t.Kind),
			Title:      t.Title,
			Message:    t.Message,
			Sticky:     t.Sticky,
			DurationMS: t.Duration.Milliseconds(),
		}
	}

	data, err := json.Marshal(map[string]any{h.signalName: signals})
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}

// showRequest is the JSON body accepted by the show endpoint.
type showRequest struct {
	Kind       string `json:"kind"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	Sticky     bool   `json:"sticky"`
	DurationMS int64  `json:"durationMs"`
}

func (h *Handler) handleShow(w http.ResponseWriter, r *http.Request) {
	var req showRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	id, err := h.manager.Show(toast.Options{
		Kind:     toast.Kind(req.Kind),
		Title:    req.Title,
		Message:  req.Message,
		Sticky:   req.Sticky,
		Duration: time.Duration(req.DurationMS) * time.Millisecond,
	})
	switch {
	case errors.Is(err, toast.ErrEmptyMessage):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case errors.Is(err, toast.ErrManagerClosed):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	case err != nil:
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(map[string]string{"id": id}); err != nil {
		h.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed to encode response",
			logger.Component("toasthttp"),
			logger.Error(err),
		)
	}
}

func (h *Handler) handleDismiss(w http.ResponseWriter, r *http.Request) {
	h.manager.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	h.manager.Clear()
	w.WriteHeader(http.StatusNoContent)
}
