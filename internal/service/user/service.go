package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/service/audit"
	"kabataan-backend/internal/service/notification"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidRole         = errors.New("invalid role")
	ErrSuperAdminProtected = errors.New("superadmin accounts cannot be deleted")
	ErrCannotChangeSelf    = errors.New("cannot change your own role or status")
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error)
	SetActive(ctx context.Context, actor *domain.User, targetID uuid.UUID, active bool, meta audit.Meta) error
	SetRole(ctx context.Context, actor *domain.User, targetID uuid.UUID, role domain.UserRole, meta audit.Meta) error
	Delete(ctx context.Context, actor *domain.User, targetID uuid.UUID, meta audit.Meta) error
}

type service struct {
	userRepo repository.UserRepository
	auditSvc audit.Service
	notifSvc notification.Service
}

func NewService(userRepo repository.UserRepository, auditSvc audit.Service, notifSvc notification.Service) Service {
	return &service{
		userRepo: userRepo,
		auditSvc: auditSvc,
		notifSvc: notifSvc,
	}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (domain.PaginatedResponse[domain.User], error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return domain.PaginatedResponse[domain.User]{}, err
	}
	return domain.NewPaginatedResponse(users, params.Page, params.PageSize, total), nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, input domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if input.Email != nil && *input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailExists
		}
		user.Email = *input.Email
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive toggles account access. Activation unlocks login and is
// announced to the account holder.
func (s *service) SetActive(ctx context.Context, actor *domain.User, targetID uuid.UUID, active bool, meta audit.Meta) error {
	if actor.ID == targetID {
		return ErrCannotChangeSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	// Only a superadmin may deactivate another superadmin.
	if target.Role == string(domain.RoleSuperAdmin) && !actor.HasRole("superadmin") {
		return ErrSuperAdminProtected
	}

	if target.IsActive == active {
		return nil
	}

	if err := s.userRepo.SetActive(ctx, targetID, active); err != nil {
		return err
	}

	action := "DEACTIVATE"
	if active {
		action = "ACTIVATE"
	}
	s.auditSvc.Record(ctx, audit.Entry{
		ActorID:    actor.ID,
		Action:     action,
		EntityType: domain.EntityUser,
		EntityID:   targetID,
		OldValue:   map[string]bool{"is_active": target.IsActive},
		NewValue:   map[string]bool{"is_active": active},
		Meta:       meta,
	})

	if active {
		s.notifSvc.NotifyAccountActivated(ctx, targetID)
	}
	return nil
}

// SetRole promotes or demotes an account. The promoting superadmin is
// recorded on the row.
func (s *service) SetRole(ctx context.Context, actor *domain.User, targetID uuid.UUID, role domain.UserRole, meta audit.Meta) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	if actor.ID == targetID {
		return ErrCannotChangeSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}

	if target.Role == string(role) {
		return nil
	}

	if err := s.userRepo.SetRole(ctx, targetID, string(role), actor.ID); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, audit.Entry{
		ActorID:    actor.ID,
		Action:     "CHANGE_ROLE",
		EntityType: domain.EntityUser,
		EntityID:   targetID,
		OldValue:   map[string]string{"role": target.Role},
		NewValue:   map[string]string{"role": string(role)},
		Meta:       meta,
	})

	s.notifSvc.NotifyRoleChanged(ctx, targetID, role)
	return nil
}

// Delete soft-deletes an account. Superadmin accounts are never
// deletable, including by other superadmins.
func (s *service) Delete(ctx context.Context, actor *domain.User, targetID uuid.UUID, meta audit.Meta) error {
	if actor.ID == targetID {
		return ErrCannotChangeSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrUserNotFound
	}
	if target.Role == string(domain.RoleSuperAdmin) {
		return ErrSuperAdminProtected
	}

	if err := s.userRepo.Delete(ctx, targetID); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, audit.Entry{
		ActorID:    actor.ID,
		Action:     "DELETE",
		EntityType: domain.EntityUser,
		EntityID:   targetID,
		OldValue:   target,
		Meta:       meta,
	})
	return nil
}
