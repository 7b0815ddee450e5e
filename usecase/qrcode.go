package usecase

import (
	"context"

	domainQRCode "github.com/alien2112/menu-rwad-sub005/domains/qrcode"
	"github.com/alien2112/menu-rwad-sub005/validations"
)

type qrCodeService struct {
	repo domainQRCode.IQRCodeRepository
}

func NewQRCodeService(repo domainQRCode.IQRCodeRepository) domainQRCode.IQRCodeUsecase {
	return &qrCodeService{repo: repo}
}

func (s *qrCodeService) List(ctx context.Context) ([]domainQRCode.Code, error) {
	return s.repo.List(ctx)
}

func (s *qrCodeService) Create(ctx context.Context, req domainQRCode.CreateRequest) (*domainQRCode.Code, error) {
	if err := validations.ValidateCreateQRCode(ctx, req); err != nil {
		return nil, err
	}

	c := &domainQRCode.Code{
		Label:     req.Label,
		TargetURL: req.TargetURL,
		Token:     req.Token,
		Active:    boolOrDefault(req.Active, true),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *qrCodeService) Update(ctx context.Context, id string, req domainQRCode.UpdateRequest) (*domainQRCode.Code, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyString(&c.Label, req.Label)
	applyString(&c.TargetURL, req.TargetURL)
	applyString(&c.Token, req.Token)
	applyBool(&c.Active, req.Active)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *qrCodeService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
