package contact

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/oleksandr-romashko/contacts-api/constant"
	"github.com/oleksandr-romashko/contacts-api/model"
	contactrepo "github.com/oleksandr-romashko/contacts-api/repository/contact"
	"github.com/oleksandr-romashko/contacts-api/utils/errors"
	"github.com/oleksandr-romashko/contacts-api/utils/logger"
	validatorx "github.com/oleksandr-romashko/contacts-api/utils/validator"
)

type ContactApp interface {
	CreateContact(ctx context.Context, userID uint64, req *model.ContactRequest) (*model.ContactEntity, error)
	ListContacts(ctx context.Context, userID uint64, filter *model.ContactFilter, page *model.Pagination) (*model.ContactListResponse, error)
	CountContacts(ctx context.Context, userID uint64) (int64, error)
	UpcomingCelebrations(ctx context.Context, userID uint64, page *model.Pagination, today model.Date, windowDays int, moveFeb29ToFeb28 bool) (*model.CelebrationListResponse, error)
	GetContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
	ReplaceContact(ctx context.Context, userID, contactID uint64, req *model.ContactRequest) (*model.ContactEntity, error)
	PatchContact(ctx context.Context, userID, contactID uint64, req *model.ContactPatchRequest) (*model.ContactEntity, error)
	DeleteContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
}

type contactAppImpl struct {
	contactRepo contactrepo.ContactRepository
}

func NewContactApp(contactRepo contactrepo.ContactRepository) ContactApp {
	return &contactAppImpl{contactRepo: contactRepo}
}

// resolvePagination fills in defaults for a missing pagination spec and
// rejects out-of-range values instead of clamping them.
func resolvePagination(page *model.Pagination) (*model.Pagination, error) {
	if page == nil {
		return &model.Pagination{Skip: 0, Limit: model.PaginationDefaultLimit}, nil
	}
	if err := validatorx.ValidateStruct(page); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return page, nil
}

func (s *contactAppImpl) CreateContact(ctx context.Context, userID uint64, req *model.ContactRequest) (*model.ContactEntity, error) {
	entity := &model.ContactEntity{
		UserID:      userID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Birthdate:   req.Birthdate,
	}
	if req.Info != nil {
		entity.Info = *req.Info
	}

	created, err := s.contactRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateContact] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return created, nil
}

func (s *contactAppImpl) ListContacts(ctx context.Context, userID uint64, filter *model.ContactFilter, page *model.Pagination) (*model.ContactListResponse, error) {
	page, err := resolvePagination(page)
	if err != nil {
		return nil, err
	}

	total, err := s.contactRepo.CountByOwner(ctx, userID)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.CountByOwner", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.ContactListResponse{
		Total: total,
		Skip:  page.Skip,
		Limit: page.Limit,
		Data:  []model.ContactEntity{},
	}
	if total == 0 {
		return resp, nil
	}

	items, err := s.contactRepo.List(ctx, userID, filter, page.Skip, page.Limit)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	resp.Data = items

	return resp, nil
}

func (s *contactAppImpl) CountContacts(ctx context.Context, userID uint64) (int64, error) {
	total, err := s.contactRepo.CountByOwner(ctx, userID)
	if err != nil {
		logger.Error("[CountContacts] err contactRepo.CountByOwner", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return total, nil
}

// UpcomingCelebrations returns contacts whose birthday falls inside
// [today, today+windowDays], each carrying its effective celebration date.
//
// Inclusion is decided on the raw birthdate: a weekend birthday near the end
// of the window stays in even when its shifted celebration date lands past
// the window. Celebration dates are computed against today's year, also for
// windows that wrap into January.
func (s *contactAppImpl) UpcomingCelebrations(ctx context.Context, userID uint64, page *model.Pagination, today model.Date, windowDays int, moveFeb29ToFeb28 bool) (*model.CelebrationListResponse, error) {
	page, err := resolvePagination(page)
	if err != nil {
		return nil, err
	}

	end := today.AddDays(windowDays)
	candidates, err := s.contactRepo.ListBirthdayRange(ctx, userID, today, end)
	if err != nil {
		logger.Error("[UpcomingCelebrations] err contactRepo.ListBirthdayRange", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	records := make([]model.CelebrationRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, model.CelebrationRecord{
			ContactEntity:   c,
			CelebrationDate: CelebrationDate(c.Birthdate, today.Year(), moveFeb29ToFeb28),
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.CelebrationDate.Equal(b.CelebrationDate) {
			return a.CelebrationDate.Before(b.CelebrationDate)
		}
		if !a.Birthdate.Equal(b.Birthdate) {
			return a.Birthdate.Before(b.Birthdate)
		}
		if fa, fb := strings.ToLower(a.FirstName), strings.ToLower(b.FirstName); fa != fb {
			return fa < fb
		}
		return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
	})

	total := int64(len(records))
	resp := &model.CelebrationListResponse{
		Total: total,
		Skip:  page.Skip,
		Limit: page.Limit,
		Data:  []model.CelebrationRecord{},
	}

	// Pagination applies after the celebration-date sort, so pages stay
	// consistent with the displayed order.
	if page.Skip < len(records) {
		upper := page.Skip + page.Limit
		if upper > len(records) {
			upper = len(records)
		}
		resp.Data = records[page.Skip:upper]
	}

	return resp, nil
}

func (s *contactAppImpl) GetContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	entity, err := s.contactRepo.GetByID(ctx, userID, contactID)
	if err != nil {
		logger.Error("[GetContact] err contactRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *contactAppImpl) ReplaceContact(ctx context.Context, userID, contactID uint64, req *model.ContactRequest) (*model.ContactEntity, error) {
	info := ""
	if req.Info != nil {
		info = *req.Info
	}
	fields := map[string]interface{}{
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"email":        req.Email,
		"phone_number": req.PhoneNumber,
		"birthdate":    req.Birthdate,
		"info":         info,
	}

	entity, err := s.contactRepo.Update(ctx, userID, contactID, fields)
	if err != nil {
		logger.Error("[ReplaceContact] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *contactAppImpl) PatchContact(ctx context.Context, userID, contactID uint64, req *model.ContactPatchRequest) (*model.ContactEntity, error) {
	if req.IsEmpty() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Birthdate != nil {
		fields["birthdate"] = *req.Birthdate
	}
	if req.Info != nil {
		fields["info"] = *req.Info
	}

	entity, err := s.contactRepo.Update(ctx, userID, contactID, fields)
	if err != nil {
		logger.Error("[PatchContact] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *contactAppImpl) DeleteContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	entity, err := s.contactRepo.Delete(ctx, userID, contactID)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}
