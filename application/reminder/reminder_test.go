package reminder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	appcontact "github.com/oleksandr-romashko/contacts-api/application/contact"
	appreminder "github.com/oleksandr-romashko/contacts-api/application/reminder"
	"github.com/oleksandr-romashko/contacts-api/constant"
	remindermocks "github.com/oleksandr-romashko/contacts-api/mocks/application/reminder"
	contactmocks "github.com/oleksandr-romashko/contacts-api/mocks/repository/contact"
	usermocks "github.com/oleksandr-romashko/contacts-api/mocks/repository/user"
	"github.com/oleksandr-romashko/contacts-api/model"
	"github.com/oleksandr-romashko/contacts-api/thirdparty/rabbitmq"
	cerr "github.com/oleksandr-romashko/contacts-api/utils/errors"
)

func TestReminderApp_Dispatch(t *testing.T) {
	// 2026-06-08 is a Monday.
	monday := model.NewDate(2026, time.June, 8)
	window := monday.AddDays(7)

	tina := model.ContactEntity{
		ID: 1, UserID: 1, FirstName: "tina", LastName: "brook",
		Birthdate: model.NewDate(1990, time.June, 9),
	}
	sam := model.ContactEntity{
		ID: 2, UserID: 1, FirstName: "sam", LastName: "field",
		Birthdate: model.NewDate(1985, time.June, 13), // Saturday, observed Monday Jun 15
	}

	type fields struct {
		userRepo    *usermocks.UserRepository
		contactRepo *contactmocks.ContactRepository
		publisher   *remindermocks.Publisher
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: one reminder per upcoming celebration, scheduled at 9am",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				contactRepo: contactmocks.NewContactRepository(t),
				publisher:   remindermocks.NewPublisher(t),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ListIDs", mock.Anything).
					Return([]uint64{1}, nil).
					Once()
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, window).
					Return([]model.ContactEntity{tina, sam}, nil).
					Once()
				f.publisher.
					On("PublishBirthdayReminder",
						mock.MatchedBy(func(msg rabbitmq.BirthdayReminderMessage) bool {
							return msg.UserID == 1 && msg.ContactID == 1 &&
								msg.CelebrationDate.Equal(model.NewDate(2026, time.June, 9))
						}),
						time.Date(2026, time.June, 9, 9, 0, 0, 0, time.Local)).
					Return(nil).
					Once()
				f.publisher.
					On("PublishBirthdayReminder",
						mock.MatchedBy(func(msg rabbitmq.BirthdayReminderMessage) bool {
							return msg.UserID == 1 && msg.ContactID == 2 &&
								msg.CelebrationDate.Equal(model.NewDate(2026, time.June, 15))
						}),
						time.Date(2026, time.June, 15, 9, 0, 0, 0, time.Local)).
					Return(nil).
					Once()
			},
			want: 2,
		},
		{
			name: "success: failing owner is skipped, others still dispatch",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				contactRepo: contactmocks.NewContactRepository(t),
				publisher:   remindermocks.NewPublisher(t),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ListIDs", mock.Anything).
					Return([]uint64{1, 2}, nil).
					Once()
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, window).
					Return(nil, errors.New("connection refused")).
					Once()
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(2), monday, window).
					Return([]model.ContactEntity{tina}, nil).
					Once()
				f.publisher.
					On("PublishBirthdayReminder", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			want: 1,
		},
		{
			name: "success: publish failure skips the record only",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				contactRepo: contactmocks.NewContactRepository(t),
				publisher:   remindermocks.NewPublisher(t),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ListIDs", mock.Anything).
					Return([]uint64{1}, nil).
					Once()
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, window).
					Return([]model.ContactEntity{tina, sam}, nil).
					Once()
				f.publisher.
					On("PublishBirthdayReminder", mock.Anything, mock.Anything).
					Return(errors.New("channel closed")).
					Once()
				f.publisher.
					On("PublishBirthdayReminder", mock.Anything, mock.Anything).
					Return(nil).
					Once()
			},
			want: 1,
		},
		{
			name: "error: listing users fails",
			fields: fields{
				userRepo:    usermocks.NewUserRepository(t),
				contactRepo: contactmocks.NewContactRepository(t),
				publisher:   remindermocks.NewPublisher(t),
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ListIDs", mock.Anything).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			contactApp := appcontact.NewContactApp(tt.fields.contactRepo)
			app := appreminder.NewReminderApp(tt.fields.userRepo, contactApp, tt.fields.publisher, 7, true)

			got, err := app.Dispatch(context.Background(), monday)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Dispatch() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got != tt.want {
				t.Fatalf("Dispatch() = %d, want %d", got, tt.want)
			}
		})
	}
}
