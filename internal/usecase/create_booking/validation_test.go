package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendavip/booking-service/internal/domain"
	"github.com/agendavip/booking-service/pkg/types"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"mobile with formatting", "(11) 98765-4321", "11987654321", false},
		{"landline with formatting", "(11) 3456-7890", "1134567890", false},
		{"plus prefix dropped", "+11 98765-4321", "11987654321", false},
		{"already normalized", "11987654321", "11987654321", false},
		{"too short", "987654321", "", true},
		{"too long with country code", "5511987654321", "", true},
		{"empty", "", "", true},
		{"letters only", "telefone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPhone)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsStartTimeAvailable_GridAlignment(t *testing.T) {
	negocio := newTestEnv().negocioRepo.negocio
	professional := newTestEnv().professionalRepo.professional

	tests := []struct {
		startTime string
		want      bool
	}{
		{"09:00", true},
		{"09:15", true},
		{"10:30", true},
		{"09:05", false}, // мимо сетки 15 минут
		{"09:10", false},
		{"08:45", false}, // до открытия
	}

	for _, tt := range tests {
		t.Run(tt.startTime, func(t *testing.T) {
			got := isStartTimeAvailable(
				types.TimeString(tt.startTime),
				negocio, professional,
				30, testDate, testNow,
				nil, nil,
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsStartTimeAvailable_PartialOverrideInheritsBusinessHours(t *testing.T) {
	negocio := newTestEnv().negocioRepo.negocio
	professional := newTestEnv().professionalRepo.professional

	// Вторник не перечислен в расписании профессионала и десериализуется
	// из JSONB в нулевой DayHours - день живёт по часам негосио
	professional.WorkingHours = &domain.OperatingHours{
		Saturday: domain.DayHours{Closed: true},
	}

	assert.True(t, isStartTimeAvailable(
		types.TimeString("09:00"),
		negocio, professional,
		30, testDate, testNow,
		nil, nil,
	))
}
