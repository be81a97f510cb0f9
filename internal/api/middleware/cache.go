package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	gocache "github.com/patrickmn/go-cache"
)

// cachedResponse a stored successful response
type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

// responseRecorder buffers the response so it can be stored
type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// ResponseCache caches successful GET responses by request URL for the
// given TTL. Used on the monthly occupancy route: the TTL is the accepted
// staleness window after an order's status flips to or from cancelled,
// since status updates never purge this cache — only the next reload past
// the TTL sees the change.
func ResponseCache(ttl time.Duration) mux.MiddlewareFunc {
	store := gocache.New(ttl, 2*ttl)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.RequestURI()
			if entry, ok := store.Get(key); ok {
				cached := entry.(cachedResponse)
				w.Header().Set("Content-Type", cached.contentType)
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(cached.status)
				_, _ = w.Write(cached.body)
				return
			}

			recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			if recorder.status == http.StatusOK {
				store.Set(key, cachedResponse{
					status:      recorder.status,
					contentType: recorder.Header().Get("Content-Type"),
					body:        recorder.body.Bytes(),
				}, ttl)
			}
		})
	}
}
