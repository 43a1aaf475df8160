package closing

import (
	"context"
	"errors"

	"github.com/vfg2006/clinic-insights-api/infrastructure/repository"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"github.com/vfg2006/clinic-insights-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrMonthRequired = errors.New("month is required")
	ErrInvalidMonth  = errors.New("month must be mm-yyyy")
)

type ClosingReader interface {
	GetClosings(ctx context.Context, month string) (*domain.MonthlyClosingResponse, error)
}

type Service struct {
	ClosingRepository repository.ClosingRepository
}

func NewService(closingRepository repository.ClosingRepository) ClosingReader {
	return &Service{
		ClosingRepository: closingRepository,
	}
}

// GetClosings retorna os fechamentos congelados do mês (mm-yyyy) e a data da última atualização
func (s *Service) GetClosings(ctx context.Context, month string) (*domain.MonthlyClosingResponse, error) {
	if month == "" {
		return nil, ErrMonthRequired
	}

	if _, err := utils.ParseMonth(month, nil); err != nil {
		return nil, errors.Join(ErrInvalidMonth, err)
	}

	closings, err := s.ClosingRepository.GetClosingsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	response := &domain.MonthlyClosingResponse{
		Closings: make([]domain.MonthlyClosing, 0, len(closings)),
	}

	for _, closing := range closings {
		if closing.UpdatedAt.After(response.LastUpdate) {
			response.LastUpdate = closing.UpdatedAt
		}
		response.Closings = append(response.Closings, closing)
	}

	return response, nil
}
