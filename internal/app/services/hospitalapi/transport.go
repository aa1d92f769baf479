package hospitalapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/responses"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Transport is the single HTTP path to the hospital REST API shared by all resource clients.
type Transport struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// NewTransport builds a transport. maxPerSecond <= 0 disables outbound rate limiting.
func NewTransport(baseUrl string, timeout time.Duration, maxPerSecond int, logger *zap.Logger) *Transport {
	var limiter *rate.Limiter
	if maxPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(maxPerSecond), maxPerSecond)
	}
	return &Transport{
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		Limiter:    limiter,
		Log:        logger,
	}
}

type call struct {
	method         string
	path           string
	body           io.Reader
	contentType    string
	resource       string
	clientFallback string
}

func (t *Transport) doJSON(ctx context.Context, session *models.Session, method, path string, payload interface{}, resource, clientFallback string, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(encoded)
		contentType = constvars.MIMEApplicationJSON
	}

	return t.do(ctx, session, call{
		method:         method,
		path:           path,
		body:           body,
		contentType:    contentType,
		resource:       resource,
		clientFallback: clientFallback,
	}, out)
}

func (t *Transport) do(ctx context.Context, session *models.Session, c call, out interface{}) error {
	requestID := utils.GetRequestID(ctx)

	if t.Limiter != nil {
		err := t.Limiter.Wait(ctx)
		if err != nil {
			return exceptions.ErrRateLimitWait(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, c.method, t.BaseUrl+c.path, c.body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	if c.contentType != "" {
		req.Header.Set(constvars.HeaderContentType, c.contentType)
	}
	if session != nil && session.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.HeaderBearerPrefix+session.Token)
	}
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	start := time.Now()
	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		t.Log.Error("hospitalapi.Transport.do request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, c.method),
			zap.String(constvars.LoggingEndpointKey, c.path),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	t.Log.Debug("hospitalapi.Transport.do response received",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, c.method),
		zap.String(constvars.LoggingEndpointKey, c.path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, c.resource)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return exceptions.ErrUpstreamResponse(resp.StatusCode, extractDetail(bodyBytes), c.clientFallback, c.resource)
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, c.resource)
	}
	return nil
}

// extractDetail pulls a readable message out of an API error body. Validation
// errors arrive as a list of {msg} entries.
func extractDetail(body []byte) string {
	var apiErr responses.APIError
	err := json.Unmarshal(body, &apiErr)
	if err != nil {
		return ""
	}

	switch detail := apiErr.Detail.(type) {
	case string:
		return detail
	case []interface{}:
		messages := make([]string, 0, len(detail))
		for _, entry := range detail {
			if m, ok := entry.(map[string]interface{}); ok {
				if msg, ok := m["msg"].(string); ok {
					messages = append(messages, msg)
				}
			}
		}
		return strings.Join(messages, "; ")
	case nil:
		return apiErr.Message
	default:
		return fmt.Sprint(detail)
	}
}
