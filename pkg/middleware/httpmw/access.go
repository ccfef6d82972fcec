package httpmw

import (
	"net/http"
	"time"

	"github.com/hyp3rd/flaglog"
)

// statusRecorder captures the status code and body size written by a handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 0 {
		r.status = code
	}

	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}

	n, err := r.ResponseWriter.Write(p)
	r.bytes += n

	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// AccessLog logs one record per request once the handler returns. Server errors are
// logged under Error, everything else under Info. A nil logger disables logging.
func AccessLog(logger flaglog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = flaglog.NewNoop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}

			next.ServeHTTP(recorder, r)

			status := recorder.status
			if status == 0 {
				status = http.StatusOK
			}

			flag := flaglog.Info
			if status >= http.StatusInternalServerError {
				flag = flaglog.Error
			}

			logger.Emitf(flag, true, "%s %s %d %dB %s request=%s",
				r.Method, r.URL.Path, status, recorder.bytes,
				time.Since(start).Round(time.Microsecond), requestID(r.Context()))
		})
	}
}
