package closing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/clinic-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/clinic-insights-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetClosings(t *testing.T) {
	january := time.Date(2024, 2, 1, 5, 0, 0, 0, time.UTC)
	rerun := time.Date(2024, 2, 3, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		month    string
		setup    func(repo *mocks.MockClosingRepository)
		wantErr  error
		validate func(t *testing.T, response *domain.MonthlyClosingResponse)
	}{
		{
			name:    "Mês obrigatório",
			wantErr: ErrMonthRequired,
		},
		{
			name:    "Mês fora do formato mm-yyyy",
			month:   "2024-01",
			wantErr: ErrInvalidMonth,
		},
		{
			name:    "Mês inexistente",
			month:   "13-2024",
			wantErr: ErrInvalidMonth,
		},
		{
			name:  "Última atualização é a mais recente",
			month: "01-2024",
			setup: func(repo *mocks.MockClosingRepository) {
				repo.EXPECT().GetClosingsByMonth(gomock.Any(), "01-2024").Return([]domain.MonthlyClosing{
					{UnitID: "unit-1", Month: "01-2024", UpdatedAt: january},
					{UnitID: "unit-2", Month: "01-2024", UpdatedAt: rerun},
				}, nil)
			},
			validate: func(t *testing.T, response *domain.MonthlyClosingResponse) {
				assert.Len(t, response.Closings, 2)
				assert.True(t, response.LastUpdate.Equal(rerun))
			},
		},
		{
			name:  "Mês sem fechamento",
			month: "02-2024",
			setup: func(repo *mocks.MockClosingRepository) {
				repo.EXPECT().GetClosingsByMonth(gomock.Any(), "02-2024").Return(nil, nil)
			},
			validate: func(t *testing.T, response *domain.MonthlyClosingResponse) {
				assert.Empty(t, response.Closings)
				assert.NotNil(t, response.Closings)
				assert.True(t, response.LastUpdate.IsZero())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockClosingRepository(ctrl)
			if tt.setup != nil {
				tt.setup(repo)
			}

			response, err := NewService(repo).GetClosings(context.Background(), tt.month)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			tt.validate(t, response)
		})
	}
}
