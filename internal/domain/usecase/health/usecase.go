package health

import "ecoscope/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
