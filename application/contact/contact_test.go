package contact_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	appcontact "github.com/oleksandr-romashko/contacts-api/application/contact"
	"github.com/oleksandr-romashko/contacts-api/constant"
	contactmocks "github.com/oleksandr-romashko/contacts-api/mocks/repository/contact"
	"github.com/oleksandr-romashko/contacts-api/model"
	cerr "github.com/oleksandr-romashko/contacts-api/utils/errors"
)

func newContact(id uint64, firstName, lastName string, birthdate model.Date) model.ContactEntity {
	return model.ContactEntity{
		ID:          id,
		UserID:      1,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       firstName + "@example.com",
		PhoneNumber: "+380501112233",
		Birthdate:   birthdate,
	}
}

func TestContactApp_ListContacts(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		filter *model.ContactFilter
		page   *model.Pagination
	}

	alice := newContact(1, "alice", "walker", model.NewDate(1990, time.May, 5))
	bob := newContact(2, "bob", "stone", model.NewDate(1988, time.March, 3))

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.ContactListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: default pagination when none given",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				filter: &model.ContactFilter{},
				page:   nil,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("CountByOwner", mock.Anything, uint64(1)).
					Return(int64(2), nil).
					Once()
				f.contactRepo.
					On("List", mock.Anything, uint64(1), &model.ContactFilter{}, 0, model.PaginationDefaultLimit).
					Return([]model.ContactEntity{alice, bob}, nil).
					Once()
			},
			want: &model.ContactListResponse{
				Total: 2,
				Skip:  0,
				Limit: model.PaginationDefaultLimit,
				Data:  []model.ContactEntity{alice, bob},
			},
		},
		{
			name:   "success: filter passed through to repository",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				filter: &model.ContactFilter{FirstName: "LI", Email: "example"},
				page:   &model.Pagination{Skip: 0, Limit: 10},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("CountByOwner", mock.Anything, uint64(1)).
					Return(int64(2), nil).
					Once()
				f.contactRepo.
					On("List", mock.Anything, uint64(1), &model.ContactFilter{FirstName: "LI", Email: "example"}, 0, 10).
					Return([]model.ContactEntity{alice}, nil).
					Once()
			},
			want: &model.ContactListResponse{
				Total: 2,
				Skip:  0,
				Limit: 10,
				Data:  []model.ContactEntity{alice},
			},
		},
		{
			name:   "success: empty collection skips the list query",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				filter: &model.ContactFilter{},
				page:   &model.Pagination{Skip: 0, Limit: 50},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("CountByOwner", mock.Anything, uint64(7)).
					Return(int64(0), nil).
					Once()
			},
			want: &model.ContactListResponse{
				Total: 0,
				Skip:  0,
				Limit: 50,
				Data:  []model.ContactEntity{},
			},
		},
		{
			name:   "error: zero limit rejected",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				filter: &model.ContactFilter{},
				page:   &model.Pagination{Skip: 0, Limit: 0},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: limit above maximum rejected, not clamped",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				filter: &model.ContactFilter{},
				page:   &model.Pagination{Skip: 0, Limit: model.PaginationMaxLimit + 1},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: negative skip rejected",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				filter: &model.ContactFilter{},
				page:   &model.Pagination{Skip: -1, Limit: 10},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: count query fails",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				filter: &model.ContactFilter{},
				page:   &model.Pagination{Skip: 0, Limit: 10},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("CountByOwner", mock.Anything, uint64(1)).
					Return(int64(0), errors.New("connection refused")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name:   "error: list query fails",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				filter: &model.ContactFilter{},
				page:   &model.Pagination{Skip: 0, Limit: 10},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("CountByOwner", mock.Anything, uint64(1)).
					Return(int64(2), nil).
					Once()
				f.contactRepo.
					On("List", mock.Anything, uint64(1), &model.ContactFilter{}, 0, 10).
					Return(nil, errors.New("connection refused")).
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
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.ListContacts(tt.args.ctx, tt.args.userID, tt.args.filter, tt.args.page)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListContacts() error = %v, wantErr %v", err, tt.wantErr)
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

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListContacts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_UpcomingCelebrations(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}
	type args struct {
		ctx              context.Context
		userID           uint64
		page             *model.Pagination
		today            model.Date
		windowDays       int
		moveFeb29ToFeb28 bool
	}

	// 2026-06-08 is a Monday.
	monday := model.NewDate(2026, time.June, 8)

	tuesday := newContact(1, "tina", "brook", model.NewDate(1990, time.June, 9))
	saturday := newContact(2, "sam", "field", model.NewDate(1985, time.June, 13))
	sunday := newContact(3, "sunny", "hill", model.NewDate(2000, time.June, 14))
	wednesday := newContact(4, "wade", "moss", model.NewDate(1979, time.June, 10))
	newYear := newContact(6, "jan", "frost", model.NewDate(1995, time.January, 2))

	record := func(c model.ContactEntity, d model.Date) model.CelebrationRecord {
		return model.CelebrationRecord{ContactEntity: c, CelebrationDate: d}
	}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.CelebrationListResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: weekend birthdays collapse onto monday and sort by celebration date",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:              context.Background(),
				userID:           1,
				page:             &model.Pagination{Skip: 0, Limit: 50},
				today:            monday,
				windowDays:       7,
				moveFeb29ToFeb28: true,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, monday.AddDays(7)).
					Return([]model.ContactEntity{tuesday, wednesday, saturday, sunday}, nil).
					Once()
			},
			want: &model.CelebrationListResponse{
				Total: 4,
				Skip:  0,
				Limit: 50,
				Data: []model.CelebrationRecord{
					record(tuesday, model.NewDate(2026, time.June, 9)),
					record(wednesday, model.NewDate(2026, time.June, 10)),
					// Both weekend birthdays land on Monday Jun 15; the
					// earlier raw birthdate wins the tie.
					record(saturday, model.NewDate(2026, time.June, 15)),
					record(sunday, model.NewDate(2026, time.June, 15)),
				},
			},
		},
		{
			name:   "success: birthday on the window end is kept even when its celebration shifts past it",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				page:   &model.Pagination{Skip: 0, Limit: 50},
				// 2026-06-06 (today+7) is a Saturday.
				today:            model.NewDate(2026, time.May, 30),
				windowDays:       7,
				moveFeb29ToFeb28: true,
			},
			mockCall: func(f fields) {
				edge := newContact(7, "edna", "stone", model.NewDate(1988, time.June, 6))
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), model.NewDate(2026, time.May, 30), model.NewDate(2026, time.June, 6)).
					Return([]model.ContactEntity{edge}, nil).
					Once()
			},
			want: &model.CelebrationListResponse{
				Total: 1,
				Skip:  0,
				Limit: 50,
				Data: []model.CelebrationRecord{
					// Inclusion follows the raw birthdate; the shifted
					// celebration lands two days after the window end.
					record(newContact(7, "edna", "stone", model.NewDate(1988, time.June, 6)), model.NewDate(2026, time.June, 8)),
				},
			},
		},
		{
			name:   "success: shared celebration date ties broken by name",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:              context.Background(),
				userID:           1,
				page:             &model.Pagination{Skip: 0, Limit: 50},
				today:            monday,
				windowDays:       7,
				moveFeb29ToFeb28: true,
			},
			mockCall: func(f fields) {
				zed := newContact(5, "Zed", "Field", model.NewDate(1985, time.June, 13))
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, monday.AddDays(7)).
					Return([]model.ContactEntity{zed, saturday}, nil).
					Once()
			},
			want: &model.CelebrationListResponse{
				Total: 2,
				Skip:  0,
				Limit: 50,
				Data: []model.CelebrationRecord{
					record(saturday, model.NewDate(2026, time.June, 15)),
					record(newContact(5, "Zed", "Field", model.NewDate(1985, time.June, 13)), model.NewDate(2026, time.June, 15)),
				},
			},
		},
		{
			name:   "success: pagination slices the sorted records, total stays unsliced",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:              context.Background(),
				userID:           1,
				page:             &model.Pagination{Skip: 1, Limit: 2},
				today:            monday,
				windowDays:       7,
				moveFeb29ToFeb28: true,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, monday.AddDays(7)).
					Return([]model.ContactEntity{tuesday, wednesday, saturday, sunday}, nil).
					Once()
			},
			want: &model.CelebrationListResponse{
				Total: 4,
				Skip:  1,
				Limit: 2,
				Data: []model.CelebrationRecord{
					record(wednesday, model.NewDate(2026, time.June, 10)),
					record(saturday, model.NewDate(2026, time.June, 15)),
				},
			},
		},
		{
			name:   "success: skip beyond result set yields empty page",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:              context.Background(),
				userID:           1,
				page:             &model.Pagination{Skip: 10, Limit: 5},
				today:            monday,
				windowDays:       7,
				moveFeb29ToFeb28: true,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, monday.AddDays(7)).
					Return([]model.ContactEntity{tuesday}, nil).
					Once()
			},
			want: &model.CelebrationListResponse{
				Total: 1,
				Skip:  10,
				Limit: 5,
				Data:  []model.CelebrationRecord{},
			},
		},
		{
			name:   "success: december window computes celebrations against the current year",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:    context.Background(),
				userID: 1,
				page:   &model.Pagination{Skip: 0, Limit: 50},
				// 2026-12-30 is a Wednesday; the window wraps into January.
				today:            model.NewDate(2026, time.December, 30),
				windowDays:       7,
				moveFeb29ToFeb28: true,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), model.NewDate(2026, time.December, 30), model.NewDate(2027, time.January, 6)).
					Return([]model.ContactEntity{newYear}, nil).
					Once()
			},
			want: &model.CelebrationListResponse{
				Total: 1,
				Skip:  0,
				Limit: 50,
				Data: []model.CelebrationRecord{
					// Celebration dates always use today's year, so a January
					// birthday in a wrapping window observes in the current
					// year. 2026-01-02 is a Friday, no shift.
					record(newYear, model.NewDate(2026, time.January, 2)),
				},
			},
		},
		{
			name:   "error: invalid pagination rejected before the repository is hit",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:        context.Background(),
				userID:     1,
				page:       &model.Pagination{Skip: -5, Limit: 10},
				today:      monday,
				windowDays: 7,
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: range query fails",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			args: args{
				ctx:        context.Background(),
				userID:     1,
				page:       &model.Pagination{Skip: 0, Limit: 50},
				today:      monday,
				windowDays: 7,
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("ListBirthdayRange", mock.Anything, uint64(1), monday, monday.AddDays(7)).
					Return(nil, errors.New("connection refused")).
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
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.UpcomingCelebrations(tt.args.ctx, tt.args.userID, tt.args.page, tt.args.today, tt.args.windowDays, tt.args.moveFeb29ToFeb28)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpcomingCelebrations() error = %v, wantErr %v", err, tt.wantErr)
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

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("UpcomingCelebrations() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_PatchContact(t *testing.T) {
	type fields struct {
		contactRepo *contactmocks.ContactRepository
	}

	firstName := "updated"
	updated := newContact(3, "updated", "hill", model.NewDate(2000, time.June, 14))

	tests := []struct {
		name     string
		fields   fields
		req      *model.ContactPatchRequest
		mockCall func(f fields)
		want     *model.ContactEntity
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:   "success: single field update",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			req:    &model.ContactPatchRequest{FirstName: &firstName},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Update", mock.Anything, uint64(1), uint64(3), map[string]interface{}{"first_name": "updated"}).
					Return(&updated, nil).
					Once()
			},
			want: &updated,
		},
		{
			name:    "error: empty patch rejected",
			fields:  fields{contactRepo: contactmocks.NewContactRepository(t)},
			req:     &model.ContactPatchRequest{},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:   "error: contact not found",
			fields: fields{contactRepo: contactmocks.NewContactRepository(t)},
			req:    &model.ContactPatchRequest{FirstName: &firstName},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Update", mock.Anything, uint64(1), uint64(3), map[string]interface{}{"first_name": "updated"}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appcontact.NewContactApp(tt.fields.contactRepo)

			got, err := app.PatchContact(context.Background(), 1, 3, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PatchContact() error = %v, wantErr %v", err, tt.wantErr)
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

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("PatchContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
