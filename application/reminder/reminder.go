package reminder

import (
	"context"
	"time"

	"go.uber.org/zap"

	contactapp "github.com/oleksandr-romashko/contacts-api/application/contact"
	"github.com/oleksandr-romashko/contacts-api/constant"
	"github.com/oleksandr-romashko/contacts-api/model"
	userrepo "github.com/oleksandr-romashko/contacts-api/repository/user"
	"github.com/oleksandr-romashko/contacts-api/thirdparty/rabbitmq"
	"github.com/oleksandr-romashko/contacts-api/utils/errors"
	"github.com/oleksandr-romashko/contacts-api/utils/logger"
)

// deliveryHour is the local hour at which scheduled reminders fire.
const deliveryHour = 9

// Publisher is the messaging side-door the dispatcher publishes through.
type Publisher interface {
	PublishBirthdayReminder(msg rabbitmq.BirthdayReminderMessage, deliverAt time.Time) error
}

type ReminderApp interface {
	Dispatch(ctx context.Context, today model.Date) (int, error)
}

type reminderAppImpl struct {
	userRepo         userrepo.UserRepository
	contactApp       contactapp.ContactApp
	publisher        Publisher
	windowDays       int
	moveFeb29ToFeb28 bool
}

func NewReminderApp(userRepo userrepo.UserRepository, contactApp contactapp.ContactApp, publisher Publisher, windowDays int, moveFeb29ToFeb28 bool) ReminderApp {
	return &reminderAppImpl{
		userRepo:         userRepo,
		contactApp:       contactApp,
		publisher:        publisher,
		windowDays:       windowDays,
		moveFeb29ToFeb28: moveFeb29ToFeb28,
	}
}

// Dispatch fans out over all users, queries each owner's upcoming
// celebrations and schedules a reminder per record. A failure for one owner
// is logged and does not stop the others.
func (s *reminderAppImpl) Dispatch(ctx context.Context, today model.Date) (int, error) {
	userIDs, err := s.userRepo.ListIDs(ctx)
	if err != nil {
		logger.Error("[Dispatch] err userRepo.ListIDs", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	page := &model.Pagination{Skip: 0, Limit: model.PaginationMaxLimit}
	published := 0
	for _, userID := range userIDs {
		resp, err := s.contactApp.UpcomingCelebrations(ctx, userID, page, today, s.windowDays, s.moveFeb29ToFeb28)
		if err != nil {
			logger.Error("[Dispatch] err UpcomingCelebrations",
				zap.Uint64("user_id", userID), zap.String("error", err.Error()))
			continue
		}

		for _, record := range resp.Data {
			deliverAt := time.Date(
				record.CelebrationDate.Year(), record.CelebrationDate.Month(), record.CelebrationDate.Day(),
				deliveryHour, 0, 0, 0, time.Local)
			msg := rabbitmq.BirthdayReminderMessage{
				UserID:          userID,
				ContactID:       record.ID,
				FirstName:       record.FirstName,
				LastName:        record.LastName,
				Birthdate:       record.Birthdate,
				CelebrationDate: record.CelebrationDate,
				Info:            record.Info,
			}
			if err := s.publisher.PublishBirthdayReminder(msg, deliverAt); err != nil {
				logger.Error("[Dispatch] err PublishBirthdayReminder",
					zap.Uint64("user_id", userID), zap.Uint64("contact_id", record.ID),
					zap.String("error", err.Error()))
				continue
			}
			published++
		}
	}

	logger.Info("dispatched birthday reminders",
		zap.Int("published", published), zap.Int("users", len(userIDs)))
	return published, nil
}
