package service

import (
	"github.com/rs/zerolog/log"

	"github.com/sanket-kogekar/uniblox-server/internal/config"
	"github.com/sanket-kogekar/uniblox-server/internal/domain"
	"github.com/sanket-kogekar/uniblox-server/internal/store"
)

// DiscountService exposes the code registry to admin callers. Admin
// minting is unconditional; the order cadence only gates the codes the
// checkout flow mints on its own.
type DiscountService struct {
	codes store.DiscountCodes
	cfg   config.Discount
}

func NewDiscountService(codes store.DiscountCodes, cfg config.Discount) *DiscountService {
	return &DiscountService{codes: codes, cfg: cfg}
}

func (s *DiscountService) GenerateCode() (*domain.DiscountCode, error) {
	code, err := s.codes.Generate(s.cfg.Percentage, s.cfg.ExpiryDays)
	if err != nil {
		return nil, err
	}

	log.Info().Str("code", code.Code).Str("percentage", code.DiscountPercentage.String()).Msg("discount code generated by admin")
	return code, nil
}

func (s *DiscountService) ListCodes() []*domain.DiscountCode {
	return s.codes.ListAll()
}

func (s *DiscountService) CountValid() int {
	return s.codes.CountValid()
}
