// Package toasthttp bridges a toast.Manager to the browser using the
// DataStar server-driven UI pattern: a Server-Sent Events endpoint patches
// the frontend toasts signal with the current active set on every change,
// and small mutation endpoints let the rendering layer dismiss entries
// without touching manager state directly.
//
// Mount the router wherever the host application keeps its UI endpoints:
//
//	m := toast.NewManager()
//	h := toasthttp.NewHandler(m)
//	r.Mount("/toasts", h.Router())
//
// The adapter ships state, not markup: rendering the signal into DOM nodes
// stays on the frontend.
package toasthttp
