// Package importer ingests webhook batches of youth profile records.
// Each batch runs as one detached job: records are processed strictly
// in order, the progress counter is persisted after every record, and
// a single failure never aborts the loop.
package importer

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/service/notification"
)

var validate = validator.New()

type Service interface {
	// Start initializes the counter and launches the batch job in the
	// background, returning the initial snapshot for the 202 response.
	Start(ctx context.Context, userID uuid.UUID, request domain.ImportRequest) (*domain.ImportProgress, error)
	GetProgress(ctx context.Context, userID uuid.UUID) (*domain.ImportProgress, error)
}

type service struct {
	profileRepo repository.YouthProfileRepository
	progress    ProgressStore
	notifSvc    notification.Service
	log         zerolog.Logger
}

func NewService(
	profileRepo repository.YouthProfileRepository,
	progress ProgressStore,
	notifSvc notification.Service,
	log zerolog.Logger,
) Service {
	return &service{
		profileRepo: profileRepo,
		progress:    progress,
		notifSvc:    notifSvc,
		log:         log.With().Str("service", "importer").Logger(),
	}
}

func (s *service) Start(ctx context.Context, userID uuid.UUID, request domain.ImportRequest) (*domain.ImportProgress, error) {
	total := int64(len(request.Records))
	if err := s.progress.Init(ctx, userID, total); err != nil {
		return nil, err
	}

	go s.run(userID, request.Records, total)

	return &domain.ImportProgress{UserID: userID, Total: total}, nil
}

func (s *service) GetProgress(ctx context.Context, userID uuid.UUID) (*domain.ImportProgress, error) {
	return s.progress.Get(ctx, userID)
}

// run is the batch job. Job success means reaching the end of the
// input: invalid records, duplicates and persistence failures are
// counted, logged, and skipped, never retried.
func (s *service) run(userID uuid.UUID, records []domain.ImportRecord, total int64) {
	ctx := context.Background()

	tally := domain.ImportProgress{UserID: userID, Total: total}

	for i, record := range records {
		if err := validate.Struct(record); err != nil {
			tally.Errors++
			s.log.Error().Err(err).
				Int("record_index", i).
				Str("full_name", record.FullName).
				Msg("Invalid import record")
		} else if exists, err := s.profileRepo.ExistsPendingByNameAndBirthdate(ctx, record.FullName, record.Birthdate); err != nil {
			tally.Errors++
			s.log.Error().Err(err).
				Int("record_index", i).
				Str("full_name", record.FullName).
				Msg("Duplicate check failed for import record")
		} else if exists {
			tally.Duplicates++
		} else {
			profile := profileFromRecord(record)
			if err := s.profileRepo.Create(ctx, profile); err != nil {
				tally.Errors++
				s.log.Error().Err(err).
					Int("record_index", i).
					Str("full_name", record.FullName).
					Str("birthdate", record.Birthdate).
					Msg("Failed to persist import record")
			}
		}

		tally.Processed++
		if err := s.progress.Set(ctx, tally); err != nil {
			s.log.Error().Err(err).
				Str("user_id", userID.String()).
				Msg("Failed to persist import progress")
		}
	}

	s.log.Info().
		Str("user_id", userID.String()).
		Int64("total", tally.Total).
		Int64("duplicates", tally.Duplicates).
		Int64("errors", tally.Errors).
		Msg("Import batch completed")

	s.notifSvc.NotifyImportCompleted(ctx, userID, tally)
}

// profileFromRecord maps an external record onto a pending profile.
// Imported rows have no owning account and skip the draft stage.
func profileFromRecord(record domain.ImportRecord) *domain.YouthProfile {
	return &domain.YouthProfile{
		ID:     uuid.New(),
		Status: domain.StatusPending,
		Source: domain.ProfileSourceImport,

		FullName:      record.FullName,
		Birthdate:     record.Birthdate,
		Gender:        record.Gender,
		CivilStatus:   record.CivilStatus,
		ContactNumber: record.ContactNumber,
		Email:         record.Email,
		Barangay:      record.Barangay,
		Purok:         record.Purok,

		FatherName:    record.FatherName,
		MotherName:    record.MotherName,
		HouseholdSize: record.HouseholdSize,
		MonthlyIncome: record.MonthlyIncome,

		EducationAttainment:     record.EducationAttainment,
		WorkStatus:              record.WorkStatus,
		RegisteredSKVoter:       record.RegisteredSKVoter,
		RegisteredNationalVoter: record.RegisteredNationalVoter,
		AttendedAssembly:        record.AttendedAssembly,
	}
}
