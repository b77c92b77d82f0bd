package cache

import (
	"context"

	"ecoscope/internal/domain/model"
	"ecoscope/pkg/redis"
)

type RedisHealthGateway struct {
	checker *redis.HealthChecker
}

var _ HealthGateway = (*RedisHealthGateway)(nil)

// NewRedisHealthGateway reports UNKNOWN when client is nil, which is how the
// API runs without a cache.
func NewRedisHealthGateway(client *redis.Client) *RedisHealthGateway {
	if client == nil {
		return &RedisHealthGateway{}
	}
	return &RedisHealthGateway{checker: redis.NewHealthChecker(client)}
}

func (gateway *RedisHealthGateway) Health() model.ComponentHealthStatus {
	if gateway.checker == nil {
		return model.ComponentHealthStatus{
			Status: model.StatusUnknown,
			Details: map[string]string{
				"message": "cache not configured",
			},
		}
	}

	check := gateway.checker.HealthCheck(context.Background())

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: check.Details,
	}
}
