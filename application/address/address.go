package address

import (
	"context"

	"github.com/muhammadheryan/contact-book/constant"
	"github.com/muhammadheryan/contact-book/model"
	addressrepo "github.com/muhammadheryan/contact-book/repository/address"
	contactrepo "github.com/muhammadheryan/contact-book/repository/contact"
	"github.com/muhammadheryan/contact-book/utils/errors"
	"github.com/muhammadheryan/contact-book/utils/logger"
	"go.uber.org/zap"
)

type AddressApp interface {
	Create(ctx context.Context, username string, contactID uint64, req *model.CreateAddressRequest) (*model.AddressResponse, error)
	Get(ctx context.Context, username string, contactID, addressID uint64) (*model.AddressResponse, error)
	List(ctx context.Context, username string, contactID uint64) ([]model.AddressResponse, error)
	Update(ctx context.Context, username string, contactID, addressID uint64, req *model.UpdateAddressRequest) (*model.AddressResponse, error)
	Delete(ctx context.Context, username string, contactID, addressID uint64) (*model.AddressResponse, error)
}

type addressAppImpl struct {
	contactRepo contactrepo.ContactRepository
	addressRepo addressrepo.AddressRepository
}

func NewAddressApp(contactRepo contactrepo.ContactRepository, addressRepo addressrepo.AddressRepository) AddressApp {
	return &addressAppImpl{contactRepo: contactRepo, addressRepo: addressRepo}
}

// resolveContact walks the first link of the ownership chain: the parent
// contact must exist and belong to the caller before any address is
// touched. Without this, an address id under someone else's contact
// would be reachable.
func (s *addressAppImpl) resolveContact(ctx context.Context, username string, contactID uint64) error {
	entity, err := s.contactRepo.Get(ctx, username, contactID)
	if err != nil {
		logger.Error("[resolveContact] err contactRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// resolveAddress walks the second link: the address must belong to the
// already-resolved contact.
func (s *addressAppImpl) resolveAddress(ctx context.Context, contactID, addressID uint64) (*model.AddressEntity, error) {
	entity, err := s.addressRepo.Get(ctx, contactID, addressID)
	if err != nil {
		logger.Error("[resolveAddress] err addressRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *addressAppImpl) Create(ctx context.Context, username string, contactID uint64, req *model.CreateAddressRequest) (*model.AddressResponse, error) {
	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return nil, err
	}

	entity := &model.AddressEntity{
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
		ContactID:  contactID,
	}

	entity, err := s.addressRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Create] err addressRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.ToAddressResponse(entity), nil
}

func (s *addressAppImpl) Get(ctx context.Context, username string, contactID, addressID uint64) (*model.AddressResponse, error) {
	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return nil, err
	}

	entity, err := s.resolveAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}

	return model.ToAddressResponse(entity), nil
}

func (s *addressAppImpl) List(ctx context.Context, username string, contactID uint64) ([]model.AddressResponse, error) {
	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return nil, err
	}

	items, err := s.addressRepo.ListByContact(ctx, contactID)
	if err != nil {
		logger.Error("[List] err addressRepo.ListByContact", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	responses := make([]model.AddressResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *model.ToAddressResponse(&items[i]))
	}
	return responses, nil
}

func (s *addressAppImpl) Update(ctx context.Context, username string, contactID, addressID uint64, req *model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return nil, err
	}

	entity, err := s.resolveAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}

	// full-field replace, still keyed by (id, contact_id)
	entity.Street = req.Street
	entity.City = req.City
	entity.Province = req.Province
	entity.Country = req.Country
	entity.PostalCode = req.PostalCode

	if err := s.addressRepo.Update(ctx, entity); err != nil {
		logger.Error("[Update] err addressRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.ToAddressResponse(entity), nil
}

func (s *addressAppImpl) Delete(ctx context.Context, username string, contactID, addressID uint64) (*model.AddressResponse, error) {
	if err := s.resolveContact(ctx, username, contactID); err != nil {
		return nil, err
	}

	entity, err := s.resolveAddress(ctx, contactID, addressID)
	if err != nil {
		return nil, err
	}

	if err := s.addressRepo.Delete(ctx, contactID, addressID); err != nil {
		logger.Error("[Delete] err addressRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return model.ToAddressResponse(entity), nil
}
