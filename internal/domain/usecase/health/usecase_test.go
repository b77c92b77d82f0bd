package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecoscope/internal/domain/model"
)

type mockComponent struct {
	mock.Mock
}

func (m *mockComponent) Health() model.ComponentHealthStatus {
	args := m.Called()
	return args.Get(0).(model.ComponentHealthStatus)
}

func component(status model.HealthStatus) *mockComponent {
	c := new(mockComponent)
	c.On("Health").Return(model.ComponentHealthStatus{Status: status, Details: map[string]string{}})
	return c
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name  string
		db    model.HealthStatus
		cache model.HealthStatus
		want  model.HealthStatus
	}{
		{"all up", model.StatusUp, model.StatusUp, model.StatusUp},
		{"cache not configured", model.StatusUp, model.StatusUnknown, model.StatusUp},
		{"cache down", model.StatusUp, model.StatusDown, model.StatusDown},
		{"database down", model.StatusDown, model.StatusUp, model.StatusDown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewHealthUseCase(component(tt.db), component(tt.cache)).CheckHealth()

			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, tt.db, resp.Database.Status)
			assert.Equal(t, tt.cache, resp.Cache.Status)
		})
	}
}
