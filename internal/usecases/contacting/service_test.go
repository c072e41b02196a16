package contacting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/E-man85/portfolio-api/infrastructure/integrator/formrelay/mocks"
	"github.com/E-man85/portfolio-api/internal/config"
	"github.com/E-man85/portfolio-api/internal/domain"
)

func validMessage() *domain.ContactMessage {
	return &domain.ContactMessage{
		Name:    "Maria Silva",
		Email:   "maria@example.com",
		Message: "Olá, gostaria de conversar sobre uma oportunidade.",
	}
}

func TestService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		message *domain.ContactMessage
		setup   func(relayer *mocks.MockRelayer)
		wantErr error
	}{
		{
			name:    "Mensagem válida é encaminhada e gera recibo",
			message: validMessage(),
			setup: func(relayer *mocks.MockRelayer) {
				relayer.EXPECT().
					Forward(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "Email inválido é rejeitado sem acionar o relay",
			message: &domain.ContactMessage{
				Name:    "Maria Silva",
				Email:   "not-an-email",
				Message: "Olá, gostaria de conversar sobre uma oportunidade.",
			},
			setup:   func(relayer *mocks.MockRelayer) {},
			wantErr: ErrInvalidMessage,
		},
		{
			name: "Mensagem curta demais é rejeitada",
			message: &domain.ContactMessage{
				Name:    "Maria Silva",
				Email:   "maria@example.com",
				Message: "oi",
			},
			setup:   func(relayer *mocks.MockRelayer) {},
			wantErr: ErrInvalidMessage,
		},
		{
			name:    "Mensagem nula é rejeitada",
			message: nil,
			setup:   func(relayer *mocks.MockRelayer) {},
			wantErr: ErrInvalidMessage,
		},
		{
			name:    "Falha no relay é propagada como indisponibilidade",
			message: validMessage(),
			setup: func(relayer *mocks.MockRelayer) {
				relayer.EXPECT().
					Forward(gomock.Any(), gomock.Any()).
					Return(assert.AnError)
			},
			wantErr: ErrRelayUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relayer := mocks.NewMockRelayer(ctrl)
			tt.setup(relayer)

			service := NewService(relayer, &config.Config{})

			receipt, err := service.Submit(context.Background(), tt.message)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, receipt)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, receipt)
			assert.Len(t, receipt.ID, 6)
			assert.False(t, receipt.SentAt.IsZero())
		})
	}
}
