// Package backup snapshots the primary tables to object storage. A
// snapshot is one JSON document per run, superadmin-triggered.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"kabataan-backend/internal/config"
	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
)

type Snapshot struct {
	CreatedAt  time.Time                 `json:"created_at"`
	Users      []domain.User             `json:"users"`
	Profiles   []domain.YouthProfile     `json:"youth_profiles"`
	Proposals  []domain.Proposal         `json:"proposals"`
	Categories []domain.ProposalCategory `json:"proposal_categories"`
}

type BackupInfo struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

type Service interface {
	Create(ctx context.Context) (*BackupInfo, error)
	List(ctx context.Context) ([]BackupInfo, error)
}

type service struct {
	userRepo     repository.UserRepository
	profileRepo  repository.YouthProfileRepository
	proposalRepo repository.ProposalRepository
	categoryRepo repository.ProposalCategoryRepository
	minioClient  *minio.Client
	cfg          *config.Config
}

func NewService(
	userRepo repository.UserRepository,
	profileRepo repository.YouthProfileRepository,
	proposalRepo repository.ProposalRepository,
	categoryRepo repository.ProposalCategoryRepository,
	minioClient *minio.Client,
	cfg *config.Config,
) Service {
	return &service{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		proposalRepo: proposalRepo,
		categoryRepo: categoryRepo,
		minioClient:  minioClient,
		cfg:          cfg,
	}
}

func (s *service) Create(ctx context.Context) (*BackupInfo, error) {
	snapshot := Snapshot{CreatedAt: time.Now().UTC()}

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.Users = users

	if snapshot.Profiles, err = s.profileRepo.ListAll(ctx); err != nil {
		return nil, err
	}
	if snapshot.Proposals, err = s.proposalRepo.ListAll(ctx); err != nil {
		return nil, err
	}
	if snapshot.Categories, err = s.categoryRepo.List(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("backups/%s.json", snapshot.CreatedAt.Format("20060102-150405"))
	_, err = s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload backup: %w", err)
	}

	return &BackupInfo{
		Key:       key,
		Size:      int64(len(payload)),
		CreatedAt: snapshot.CreatedAt,
	}, nil
}

func (s *service) List(ctx context.Context) ([]BackupInfo, error) {
	backups := []BackupInfo{}

	objects := s.minioClient.ListObjects(ctx, s.cfg.MinIOBucket, minio.ListObjectsOptions{
		Prefix:    "backups/",
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, object.Err
		}
		backups = append(backups, BackupInfo{
			Key:       object.Key,
			Size:      object.Size,
			CreatedAt: object.LastModified,
		})
	}

	return backups, nil
}
