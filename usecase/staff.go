package usecase

import (
	"context"

	domainStaff "github.com/alien2112/menu-rwad-sub005/domains/staff"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

// Staff records are admin-only; nothing here touches the cache.
type staffService struct {
	repo domainStaff.IStaffRepository
}

func NewStaffService(repo domainStaff.IStaffRepository) domainStaff.IStaffUsecase {
	return &staffService{repo: repo}
}

func (s *staffService) List(ctx context.Context) ([]domainStaff.Member, error) {
	return s.repo.List(ctx)
}

func (s *staffService) Create(ctx context.Context, req domainStaff.CreateRequest) (*domainStaff.Member, error) {
	if err := validations.ValidateCreateStaff(ctx, req); err != nil {
		return nil, err
	}

	m := &domainStaff.Member{
		Name:   req.Name,
		Role:   req.Role,
		Phone:  req.Phone,
		Email:  req.Email,
		Active: boolOrDefault(req.Active, true),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *staffService) Update(ctx context.Context, id string, req domainStaff.UpdateRequest) (*domainStaff.Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&m.Name, req.Name)
	if req.Role != nil {
		m.Role = *req.Role
	}
	applyString(&m.Phone, req.Phone)
	applyString(&m.Email, req.Email)
	applyBool(&m.Active, req.Active)

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *staffService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
