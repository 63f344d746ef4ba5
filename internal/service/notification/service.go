// Package notification fans out workflow events to their configured
// delivery channels. The database channel is the source of truth for
// the in-app inbox; email and SMS are fired asynchronously and their
// failures never propagate to the caller.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"kabataan-backend/internal/domain"
	"kabataan-backend/internal/repository"
	"kabataan-backend/internal/service/email"
	"kabataan-backend/internal/service/sms"
)

// channelRoutes maps each event type to its delivery channels.
// Rejections stay in-app only so applicants read the reviewer note in
// context rather than in a bare text message.
var channelRoutes = map[domain.NotificationType][]domain.Channel{
	domain.NotifProfileSubmitted:  {domain.ChannelDatabase},
	domain.NotifProfileApproved:   {domain.ChannelDatabase, domain.ChannelEmail, domain.ChannelSMS},
	domain.NotifProfileRejected:   {domain.ChannelDatabase},
	domain.NotifProposalSubmitted: {domain.ChannelDatabase},
	domain.NotifProposalApproved:  {domain.ChannelDatabase, domain.ChannelEmail, domain.ChannelSMS},
	domain.NotifProposalRejected:  {domain.ChannelDatabase},
	domain.NotifImportCompleted:   {domain.ChannelDatabase, domain.ChannelEmail},
	domain.NotifRoleChanged:       {domain.ChannelDatabase, domain.ChannelEmail},
	domain.NotifAccountActivated:  {domain.ChannelDatabase, domain.ChannelEmail},
}

type Service interface {
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	ClearAll(ctx context.Context, userID uuid.UUID) error

	NotifyProfileSubmitted(ctx context.Context, profile *domain.YouthProfile, submitterName string)
	NotifyProfileReviewed(ctx context.Context, profile *domain.YouthProfile, approved bool, note *string)
	NotifyProposalSubmitted(ctx context.Context, proposal *domain.Proposal, submitterName string)
	NotifyProposalReviewed(ctx context.Context, proposal *domain.Proposal, approved bool, reason *string)
	NotifyImportCompleted(ctx context.Context, userID uuid.UUID, progress domain.ImportProgress)
	NotifyRoleChanged(ctx context.Context, userID uuid.UUID, newRole domain.UserRole)
	NotifyAccountActivated(ctx context.Context, userID uuid.UUID)
}

type service struct {
	notifRepo repository.NotificationRepository
	userRepo  repository.UserRepository
	emailSvc  email.Service
	smsSvc    sms.Service
	log       zerolog.Logger
}

func NewService(
	notifRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	emailSvc email.Service,
	smsSvc sms.Service,
	log zerolog.Logger,
) Service {
	return &service{
		notifRepo: notifRepo,
		userRepo:  userRepo,
		emailSvc:  emailSvc,
		smsSvc:    smsSvc,
		log:       log.With().Str("service", "notification").Logger(),
	}
}

func (s *service) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	notifs, total, err := s.notifRepo.ListByUser(ctx, userID, unreadOnly, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Notification]{}, err
	}
	return domain.NewPaginatedResponse(notifs, params.Page, params.PageSize, total), nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}

func (s *service) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, userID)
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.notifRepo.Delete(ctx, id, userID)
}

func (s *service) ClearAll(ctx context.Context, userID uuid.UUID) error {
	return s.notifRepo.DeleteAllByUser(ctx, userID)
}

// dispatch persists the in-app row and fires the side channels in the
// background. The recipient may be nil when the target row has no
// linked account (imported profiles); in that case only reviewers get
// notified by the caller and dispatch is a no-op.
func (s *service) dispatch(ctx context.Context, recipient *domain.User, notifType domain.NotificationType, title, message string, data interface{}, sideChannels func(u *domain.User)) {
	if recipient == nil {
		return
	}

	channels := channelRoutes[notifType]

	for _, ch := range channels {
		if ch != domain.ChannelDatabase {
			continue
		}

		var payload json.RawMessage
		if data != nil {
			payload, _ = json.Marshal(data)
		}

		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  recipient.ID,
			Type:    notifType,
			Title:   title,
			Message: message,
			Data:    payload,
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			s.log.Error().Err(err).
				Str("type", string(notifType)).
				Str("user_id", recipient.ID.String()).
				Msg("Failed to store notification")
		}
	}

	if sideChannels != nil && hasSideChannel(channels) {
		u := *recipient
		go sideChannels(&u)
	}
}

func hasSideChannel(channels []domain.Channel) bool {
	for _, ch := range channels {
		if ch == domain.ChannelEmail || ch == domain.ChannelSMS {
			return true
		}
	}
	return false
}

func routedTo(notifType domain.NotificationType, ch domain.Channel) bool {
	for _, c := range channelRoutes[notifType] {
		if c == ch {
			return true
		}
	}
	return false
}

func (s *service) sendEmail(notifType domain.NotificationType, do func() error) {
	if err := do(); err != nil {
		s.log.Error().Err(err).Str("type", string(notifType)).Msg("Failed to send notification email")
	}
}

func (s *service) sendSMS(notifType domain.NotificationType, u *domain.User, message string) {
	if u.Phone == nil || *u.Phone == "" {
		return
	}
	if err := s.smsSvc.Send(context.Background(), *u.Phone, message); err != nil {
		s.log.Error().Err(err).Str("type", string(notifType)).Msg("Failed to send notification SMS")
	}
}

// notifyReviewers stores an in-app entry for every admin and superadmin.
func (s *service) notifyReviewers(ctx context.Context, notifType domain.NotificationType, title, message string, data interface{}) {
	reviewers, err := s.userRepo.GetByRoles(ctx, []domain.UserRole{domain.RoleAdmin, domain.RoleSuperAdmin})
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load reviewers for notification")
		return
	}

	var payload json.RawMessage
	if data != nil {
		payload, _ = json.Marshal(data)
	}

	for _, reviewer := range reviewers {
		notif := &domain.Notification{
			ID:      uuid.New(),
			UserID:  reviewer.ID,
			Type:    notifType,
			Title:   title,
			Message: message,
			Data:    payload,
		}
		if err := s.notifRepo.Create(ctx, notif); err != nil {
			s.log.Error().Err(err).
				Str("user_id", reviewer.ID.String()).
				Msg("Failed to store reviewer notification")
		}
	}
}

func (s *service) NotifyProfileSubmitted(ctx context.Context, profile *domain.YouthProfile, submitterName string) {
	s.notifyReviewers(ctx, domain.NotifProfileSubmitted,
		"Youth profile pending review",
		fmt.Sprintf("%s submitted a youth profile for review.", submitterName),
		map[string]string{"profile_id": profile.ID.String()},
	)
}

func (s *service) NotifyProfileReviewed(ctx context.Context, profile *domain.YouthProfile, approved bool, note *string) {
	recipient := s.ownerOf(ctx, profile.UserID)

	if approved {
		s.dispatch(ctx, recipient, domain.NotifProfileApproved,
			"Youth profile approved",
			"Your youth profile has been approved.",
			map[string]string{"profile_id": profile.ID.String()},
			func(u *domain.User) {
				if routedTo(domain.NotifProfileApproved, domain.ChannelEmail) {
					s.sendEmail(domain.NotifProfileApproved, func() error {
						return s.emailSvc.SendReviewOutcomeEmail(context.Background(), u.Email, u.FullName, "youth profile", "approved", note)
					})
				}
				if routedTo(domain.NotifProfileApproved, domain.ChannelSMS) {
					s.sendSMS(domain.NotifProfileApproved, u, "Kabataan Records: your youth profile has been APPROVED.")
				}
			},
		)
		return
	}

	message := "Your youth profile was rejected."
	if note != nil && *note != "" {
		message = fmt.Sprintf("Your youth profile was rejected: %s", *note)
	}
	s.dispatch(ctx, recipient, domain.NotifProfileRejected,
		"Youth profile rejected",
		message,
		map[string]string{"profile_id": profile.ID.String()},
		nil,
	)
}

func (s *service) NotifyProposalSubmitted(ctx context.Context, proposal *domain.Proposal, submitterName string) {
	s.notifyReviewers(ctx, domain.NotifProposalSubmitted,
		"Proposal pending review",
		fmt.Sprintf("%s submitted the proposal %q for review.", submitterName, proposal.Title),
		map[string]string{"proposal_id": proposal.ID.String()},
	)
}

func (s *service) NotifyProposalReviewed(ctx context.Context, proposal *domain.Proposal, approved bool, reason *string) {
	recipient := s.ownerOf(ctx, &proposal.SubmittedBy)

	if approved {
		s.dispatch(ctx, recipient, domain.NotifProposalApproved,
			"Proposal approved",
			fmt.Sprintf("Your proposal %q has been approved.", proposal.Title),
			map[string]string{"proposal_id": proposal.ID.String()},
			func(u *domain.User) {
				if routedTo(domain.NotifProposalApproved, domain.ChannelEmail) {
					s.sendEmail(domain.NotifProposalApproved, func() error {
						return s.emailSvc.SendReviewOutcomeEmail(context.Background(), u.Email, u.FullName, "proposal", "approved", nil)
					})
				}
				if routedTo(domain.NotifProposalApproved, domain.ChannelSMS) {
					s.sendSMS(domain.NotifProposalApproved, u,
						fmt.Sprintf("Kabataan Records: your proposal %q has been APPROVED.", proposal.Title))
				}
			},
		)
		return
	}

	message := fmt.Sprintf("Your proposal %q was rejected.", proposal.Title)
	if reason != nil && *reason != "" {
		message = fmt.Sprintf("Your proposal %q was rejected: %s", proposal.Title, *reason)
	}
	s.dispatch(ctx, recipient, domain.NotifProposalRejected,
		"Proposal rejected",
		message,
		map[string]string{"proposal_id": proposal.ID.String()},
		nil,
	)
}

func (s *service) NotifyImportCompleted(ctx context.Context, userID uuid.UUID, progress domain.ImportProgress) {
	recipient := s.ownerOf(ctx, &userID)

	created := progress.Processed - progress.Duplicates - progress.Errors
	s.dispatch(ctx, recipient, domain.NotifImportCompleted,
		"Import completed",
		fmt.Sprintf("Your import finished: %d created, %d duplicates skipped, %d errors out of %d records.",
			created, progress.Duplicates, progress.Errors, progress.Total),
		progress,
		func(u *domain.User) {
			s.sendEmail(domain.NotifImportCompleted, func() error {
				return s.emailSvc.SendImportSummaryEmail(context.Background(), u.Email, u.FullName,
					progress.Total, created, progress.Duplicates, progress.Errors)
			})
		},
	)
}

func (s *service) NotifyRoleChanged(ctx context.Context, userID uuid.UUID, newRole domain.UserRole) {
	recipient := s.ownerOf(ctx, &userID)

	message := fmt.Sprintf("Your account role is now %s.", newRole)
	s.dispatch(ctx, recipient, domain.NotifRoleChanged,
		"Role updated",
		message,
		map[string]string{"role": string(newRole)},
		func(u *domain.User) {
			s.sendEmail(domain.NotifRoleChanged, func() error {
				return s.emailSvc.SendReviewOutcomeEmail(context.Background(), u.Email, u.FullName, "account role", string(newRole), nil)
			})
		},
	)
}

func (s *service) NotifyAccountActivated(ctx context.Context, userID uuid.UUID) {
	recipient := s.ownerOf(ctx, &userID)

	s.dispatch(ctx, recipient, domain.NotifAccountActivated,
		"Account activated",
		"Your account has been activated. You can now sign in.",
		nil,
		func(u *domain.User) {
			s.sendEmail(domain.NotifAccountActivated, func() error {
				return s.emailSvc.SendAccountActivatedEmail(context.Background(), u.Email, u.FullName)
			})
		},
	)
}

func (s *service) ownerOf(ctx context.Context, userID *uuid.UUID) *domain.User {
	if userID == nil {
		return nil
	}
	user, err := s.userRepo.GetByID(ctx, *userID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID.String()).Msg("Failed to load notification recipient")
		return nil
	}
	return user
}
