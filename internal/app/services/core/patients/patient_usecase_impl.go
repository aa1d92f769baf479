package patients

import (
	"context"
	"mediconnect-portal/internal/app/contracts"
	"mediconnect-portal/internal/app/models"
	"mediconnect-portal/internal/pkg/constvars"
	"mediconnect-portal/internal/pkg/dto/requests"
	"mediconnect-portal/internal/pkg/exceptions"
	"mediconnect-portal/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientClient contracts.PatientClient
	Demographics  DemographicsReader
	RecordLinker  RecordLinker
	Log           *zap.Logger
}

var (
	patientUsecaseInstance PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientClient contracts.PatientClient,
	demographics DemographicsReader,
	recordLinker RecordLinker,
	logger *zap.Logger,
) PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientClient: patientClient,
			Demographics:  demographics,
			RecordLinker:  recordLinker,
			Log:           logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) GetProfile(ctx context.Context, session *models.Session) (*ProfileView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, session.Email),
	)

	demographics, err := uc.Demographics.GetDemographics(ctx, session, session.Email)
	if err != nil {
		uc.Log.Error("patientUsecase.GetProfile error fetching demographics",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return uc.buildView(ctx, demographics), nil
}

// SaveProfile sends the profile and any new record files in one multipart
// call. The email always comes from the session.
func (uc *patientUsecase) SaveProfile(ctx context.Context, session *models.Session, request *requests.UpsertPatient) (*ProfileView, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.SaveProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, session.Email),
		zap.Int("files", len(request.Files)),
	)

	request.EmailAddress = session.Email
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	saved, err := uc.PatientClient.Upsert(ctx, session, request)
	if err != nil {
		uc.Log.Error("patientUsecase.SaveProfile error saving profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Demographics.Invalidate(ctx, session.Email)

	if saved == nil {
		saved, err = uc.Demographics.GetDemographics(ctx, session, session.Email)
		if err != nil {
			return nil, err
		}
	}

	uc.Log.Info("patientUsecase.SaveProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.buildView(ctx, saved), nil
}

func (uc *patientUsecase) buildView(ctx context.Context, demographics *models.PatientDemographics) *ProfileView {
	if demographics == nil {
		return &ProfileView{}
	}

	linked := *demographics
	if uc.RecordLinker != nil {
		linked.MedicalRecords = uc.RecordLinker.Resolve(ctx, demographics.MedicalRecords)
	}
	return &ProfileView{
		Demographics:      &linked,
		CompletionPercent: CompletionPercent(&linked),
		IsProfileFilled:   true,
	}
}
