package contact

import (
	"context"

	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
	contactrepo "github.com/muhammadheryan/contact-book/repository/contact"
	"github.com/muhammadheryan/contact-book/utils/errors"
	"github.com/muhammadheryan/contact-book/utils/logger"
	"go.uber.org/zap"
)

type ContactApp interface {
	Create(ctx context.Context, username string, req *model.CreateContactRequest) (*model.ContactResponse, error)
	Get(ctx context.Context, username string, contactID uint64) (*model.ContactResponse, error)
	Update(ctx context.Context, username string, contactID uint64, req *model.UpdateContactRequest) (*model.ContactResponse, error)
	Delete(ctx context.Context, username string, contactID uint64) (*model.ContactResponse, error)
	Search(ctx context.Context, username string, req *model.SearchContactRequest) (*model.ContactSearchResult, error)
}

type contactAppImpl struct {
	contactRepo contactrepo.ContactRepository
}

func NewContactApp(contactRepo contactrepo.ContactRepository) ContactApp {
	return &contactAppImpl{contactRepo: contactRepo}
}

func (s *contactAppImpl) Create(ctx context.Context, username string, req *model.CreateContactRequest) (*model.ContactResponse, error) {
	entity := &model.ContactEntity{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Username:  username,
	}

	entity, err := s.contactRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.ToContactResponse(entity), nil
}

// resolve returns the contact only when it exists AND belongs to username.
// A contact owned by someone else yields the same not-found as a missing id.
func (s *contactAppImpl) resolve(ctx context.Context, username string, contactID uint64) (*model.ContactEntity, error) {
	entity, err := s.contactRepo.Get(ctx, username, contactID)
	if err != nil {
		logger.Error("[resolve] err contactRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *contactAppImpl) Get(ctx context.Context, username string, contactID uint64) (*model.ContactResponse, error) {
	entity, err := s.resolve(ctx, username, contactID)
	if err != nil {
		return nil, err
	}
	return model.ToContactResponse(entity), nil
}

func (s *contactAppImpl) Update(ctx context.Context, username string, contactID uint64, req *model.UpdateContactRequest) (*model.ContactResponse, error) {
	entity, err := s.resolve(ctx, username, contactID)
	if err != nil {
		return nil, err
	}

	// full-field replace, still keyed by (id, owner)
	entity.FirstName = req.FirstName
	entity.LastName = req.LastName
	entity.Email = req.Email
	entity.Phone = req.Phone

	if err := s.contactRepo.Update(ctx, entity); err != nil {
		logger.Error("[Update] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.ToContactResponse(entity), nil
}

func (s *contactAppImpl) Delete(ctx context.Context, username string, contactID uint64) (*model.ContactResponse, error) {
	entity, err := s.resolve(ctx, username, contactID)
	if err != nil {
		return nil, err
	}

	if err := s.contactRepo.Delete(ctx, username, contactID); err != nil {
		logger.Error("[Delete] err contactRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.ToContactResponse(entity), nil
}

func (s *contactAppImpl) Search(ctx context.Context, username string, req *model.SearchContactRequest) (*model.ContactSearchResult, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Size <= 0 {
		req.Size = 10
	}

	items, total, err := s.contactRepo.Search(ctx, username, req)
	if err != nil {
		logger.Error("[Search] err contactRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	responses := make([]model.ContactResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *model.ToContactResponse(&items[i]))
	}

	totalPage := (total + int64(req.Size) - 1) / int64(req.Size)

	return &model.ContactSearchResult{
		Items: responses,
		Paging: model.Paging{
			CurrentPage: req.Page,
			TotalPage:   totalPage,
			Size:        req.Size,
		},
	}, nil
}
