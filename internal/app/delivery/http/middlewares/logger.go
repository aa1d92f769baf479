package middlewares

import (
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// RequestLogger writes one access log line per request.
func (m *Middlewares) RequestLogger(log *logrus.Logger) func(next http.Handler) http.Handler {
	tz, err := time.LoadLocation(m.InternalConfig.App.Timezone)
	if err != nil {
		log.Warnf("Invalid time zone %q, access log uses UTC: %v", m.InternalConfig.App.Timezone, err)
		tz = time.UTC
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			log.WithFields(logrus.Fields{
				constvars.LoggingRequestIDKey:  utils.GetRequestID(r.Context()),
				constvars.LoggingRemoteAddrKey: r.RemoteAddr,
				constvars.LoggingMethodKey:     r.Method,
				constvars.LoggingEndpointKey:   r.RequestURI,
				constvars.LoggingStatusCodeKey: rec.statusCode,
				constvars.LoggingDurationKey:   time.Since(start).String(),
			}).Info(start.In(tz).Format(time.RFC850))
		})
	}
}
