package cli

import (
	"context"
	"errors"
	"io"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/app/services/core/appointments"
	"mediconnect-portal/internal/app/services/core/auth"
	"mediconnect-portal/internal/app/services/core/slot"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// App carries what every command needs. Commands never keep state between
// runs other than the session id in Sessions.
type App struct {
	Log                *zap.Logger
	Out                io.Writer
	Sessions           *SessionFile
	Timeout            time.Duration
	AuthUsecase        auth.AuthUsecase
	SlotUsecase        slot.SlotUsecase
	AppointmentUsecase appointments.AppointmentUsecase
}

func (a *App) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx := context.WithValue(parent, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
	if a.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.Timeout)
}

func (a *App) session(ctx context.Context) (*models.Session, error) {
	sessionID, err := a.Sessions.Load()
	if err != nil {
		return nil, err
	}
	if sessionID == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	return a.AuthUsecase.ResolveSession(ctx, sessionID)
}

// UserMessage is what the CLI prints for err.
func UserMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return constvars.ErrClientServerLongRespond
	}
	return err.Error()
}
