package storage

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/utils"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RecordLinker turns stored medical record references into links a browser
// can open. Absolute URLs are returned unchanged; bare object keys are
// presigned against the records bucket.
type RecordLinker struct {
	Storage    contracts.Storage
	BucketName string
	Expiry     time.Duration
	Log        *zap.Logger
}

func NewRecordLinker(storage contracts.Storage, bucketName string, expiry time.Duration, logger *zap.Logger) *RecordLinker {
	return &RecordLinker{
		Storage:    storage,
		BucketName: bucketName,
		Expiry:     expiry,
		Log:        logger,
	}
}

func (l *RecordLinker) Resolve(ctx context.Context, records []models.MedicalRecord) []models.MedicalRecord {
	linked := make([]models.MedicalRecord, len(records))
	for i, record := range records {
		linked[i] = record
		if l == nil || l.Storage == nil || l.BucketName == "" || isAbsoluteURL(record.URL) || record.URL == "" {
			continue
		}

		presigned, err := l.Storage.GetObjectUrlWithExpiryTime(ctx, l.BucketName, strings.TrimPrefix(record.URL, "/"), l.Expiry)
		if err != nil {
			l.Log.Warn("RecordLinker.Resolve cannot presign record, keeping stored reference",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String("object", record.URL),
				zap.Error(err),
			)
			continue
		}
		linked[i].URL = presigned
	}
	return linked
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
