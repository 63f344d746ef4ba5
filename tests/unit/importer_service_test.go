package unit_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/service/importer"
	"kabataan-backend/tests/mocks"
)

func importRecord(name, birthdate string) domain.ImportRecord {
	return domain.ImportRecord{
		FullName:    name,
		Birthdate:   birthdate,
		Gender:      "male",
		CivilStatus: "single",
		Barangay:    "Poblacion",
	}
}

// waitForCompletion blocks until the batch goroutine fires the final
// notification or the deadline passes.
func waitForCompletion(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("import job did not complete")
	}
}

func TestImporterService_Run(t *testing.T) {
	userID := uuid.New()

	t.Run("counts created, duplicates and errors", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		progressStore := new(mocks.ProgressStore)
		notifSvc := new(mocks.NotificationService)
		svc := importer.NewService(profileRepo, progressStore, notifSvc, zerolog.Nop())

		records := []domain.ImportRecord{
			importRecord("Juan Dela Cruz", "2003-04-15"),
			importRecord("Juan Dela Cruz", "2003-04-15"),
			importRecord("Maria Santos", "2004-08-01"),
		}

		progressStore.On("Init", mock.Anything, userID, int64(3)).Return(nil).Once()

		// First occurrence is new, second is a duplicate, third fails to persist.
		profileRepo.On("ExistsPendingByNameAndBirthdate", mock.Anything, "Juan Dela Cruz", "2003-04-15").Return(false, nil).Once()
		profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.YouthProfile) bool {
			return p.FullName == "Juan Dela Cruz" && p.Status == domain.StatusPending && p.Source == domain.ProfileSourceImport && p.UserID == nil
		})).Return(nil).Once()
		profileRepo.On("ExistsPendingByNameAndBirthdate", mock.Anything, "Juan Dela Cruz", "2003-04-15").Return(true, nil).Once()
		profileRepo.On("ExistsPendingByNameAndBirthdate", mock.Anything, "Maria Santos", "2004-08-01").Return(false, nil).Once()
		profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.YouthProfile) bool {
			return p.FullName == "Maria Santos"
		})).Return(errors.New("db error")).Once()

		// Counter is persisted after every record.
		progressStore.On("Set", mock.Anything, domain.ImportProgress{UserID: userID, Total: 3, Processed: 1}).Return(nil).Once()
		progressStore.On("Set", mock.Anything, domain.ImportProgress{UserID: userID, Total: 3, Processed: 2, Duplicates: 1}).Return(nil).Once()
		progressStore.On("Set", mock.Anything, domain.ImportProgress{UserID: userID, Total: 3, Processed: 3, Duplicates: 1, Errors: 1}).Return(nil).Once()

		done := make(chan struct{})
		notifSvc.On("NotifyImportCompleted", mock.Anything, userID, domain.ImportProgress{
			UserID: userID, Total: 3, Processed: 3, Duplicates: 1, Errors: 1,
		}).Run(func(args mock.Arguments) { close(done) }).Once()

		progress, err := svc.Start(context.Background(), userID, domain.ImportRequest{Format: "json", Records: records})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), progress.Total)
		assert.Equal(t, int64(0), progress.Processed)

		waitForCompletion(t, done)
		profileRepo.AssertExpectations(t)
		progressStore.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("invalid record is counted as error, not rejected", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		progressStore := new(mocks.ProgressStore)
		notifSvc := new(mocks.NotificationService)
		svc := importer.NewService(profileRepo, progressStore, notifSvc, zerolog.Nop())

		invalid := importRecord("Pedro Ramos", "2002-11-02")
		invalid.Barangay = ""

		records := []domain.ImportRecord{
			importRecord("Juan Dela Cruz", "2003-04-15"),
			importRecord("Juan Dela Cruz", "2003-04-15"),
			invalid,
		}

		progressStore.On("Init", mock.Anything, userID, int64(3)).Return(nil).Once()

		// The bad record never reaches the duplicate check or the store.
		profileRepo.On("ExistsPendingByNameAndBirthdate", mock.Anything, "Juan Dela Cruz", "2003-04-15").Return(false, nil).Once()
		profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.YouthProfile) bool {
			return p.FullName == "Juan Dela Cruz"
		})).Return(nil).Once()
		profileRepo.On("ExistsPendingByNameAndBirthdate", mock.Anything, "Juan Dela Cruz", "2003-04-15").Return(true, nil).Once()

		progressStore.On("Set", mock.Anything, domain.ImportProgress{UserID: userID, Total: 3, Processed: 1}).Return(nil).Once()
		progressStore.On("Set", mock.Anything, domain.ImportProgress{UserID: userID, Total: 3, Processed: 2, Duplicates: 1}).Return(nil).Once()
		progressStore.On("Set", mock.Anything, domain.ImportProgress{UserID: userID, Total: 3, Processed: 3, Duplicates: 1, Errors: 1}).Return(nil).Once()

		done := make(chan struct{})
		notifSvc.On("NotifyImportCompleted", mock.Anything, userID, domain.ImportProgress{
			UserID: userID, Total: 3, Processed: 3, Duplicates: 1, Errors: 1,
		}).Run(func(args mock.Arguments) { close(done) }).Once()

		_, err := svc.Start(context.Background(), userID, domain.ImportRequest{Format: "json", Records: records})

		assert.NoError(t, err)
		waitForCompletion(t, done)
		profileRepo.AssertExpectations(t)
		profileRepo.AssertNotCalled(t, "ExistsPendingByNameAndBirthdate", mock.Anything, "Pedro Ramos", "2002-11-02")
		progressStore.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("duplicate check failure counts as error and loop continues", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		progressStore := new(mocks.ProgressStore)
		notifSvc := new(mocks.NotificationService)
		svc := importer.NewService(profileRepo, progressStore, notifSvc, zerolog.Nop())

		records := []domain.ImportRecord{
			importRecord("Ana Reyes", "2005-01-20"),
			importRecord("Pedro Ramos", "2002-11-02"),
		}

		progressStore.On("Init", mock.Anything, userID, int64(2)).Return(nil).Once()
		progressStore.On("Set", mock.Anything, mock.Anything).Return(nil)

		profileRepo.On("ExistsPendingByNameAndBirthdate", mock.Anything, "Ana Reyes", "2005-01-20").Return(false, errors.New("connection reset")).Once()
		profileRepo.On("ExistsPendingByNameAndBirthdate", mock.Anything, "Pedro Ramos", "2002-11-02").Return(false, nil).Once()
		profileRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		done := make(chan struct{})
		notifSvc.On("NotifyImportCompleted", mock.Anything, userID, domain.ImportProgress{
			UserID: userID, Total: 2, Processed: 2, Errors: 1,
		}).Run(func(args mock.Arguments) { close(done) }).Once()

		_, err := svc.Start(context.Background(), userID, domain.ImportRequest{Format: "csv", Records: records})

		assert.NoError(t, err)
		waitForCompletion(t, done)
		profileRepo.AssertExpectations(t)
		notifSvc.AssertExpectations(t)
	})

	t.Run("init failure aborts before starting the job", func(t *testing.T) {
		profileRepo := new(mocks.YouthProfileRepository)
		progressStore := new(mocks.ProgressStore)
		notifSvc := new(mocks.NotificationService)
		svc := importer.NewService(profileRepo, progressStore, notifSvc, zerolog.Nop())

		progressStore.On("Init", mock.Anything, userID, int64(1)).Return(errors.New("redis down")).Once()

		progress, err := svc.Start(context.Background(), userID, domain.ImportRequest{
			Format:  "json",
			Records: []domain.ImportRecord{importRecord("Ana Reyes", "2005-01-20")},
		})

		assert.Error(t, err)
		assert.Nil(t, progress)
		profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

// A batch with a bad row must still be accepted at the boundary; the
// row is counted as an error during the run instead.
func TestImportRequest_EnvelopeValidation(t *testing.T) {
	v := validator.New()

	invalid := importRecord("Pedro Ramos", "2002-11-02")
	invalid.Barangay = ""

	request := domain.ImportRequest{
		Format:  "json",
		Records: []domain.ImportRecord{importRecord("Juan Dela Cruz", "2003-04-15"), invalid},
	}
	assert.NoError(t, v.Struct(request))

	assert.Error(t, v.Struct(domain.ImportRequest{Format: "json"}))
	assert.Error(t, v.Struct(domain.ImportRequest{Format: "pdf", Records: request.Records}))
	assert.Error(t, v.Struct(invalid))
}

func TestImporterService_GetProgress(t *testing.T) {
	userID := uuid.New()
	profileRepo := new(mocks.YouthProfileRepository)
	progressStore := new(mocks.ProgressStore)
	svc := importer.NewService(profileRepo, progressStore, new(mocks.NotificationService), zerolog.Nop())

	expected := &domain.ImportProgress{UserID: userID, Total: 10, Processed: 4, Duplicates: 1}
	progressStore.On("Get", mock.Anything, userID).Return(expected, nil).Once()

	progress, err := svc.GetProgress(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, expected, progress)
}
