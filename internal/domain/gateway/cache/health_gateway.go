package cache

import "ecoscope/internal/domain/model"

type HealthGateway interface {
	Health() model.ComponentHealthStatus
}
