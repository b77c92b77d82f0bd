package db

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"ecoscope/internal/domain/model"
)

const healthTimeout = 2 * time.Second

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}

// pingStatus pings the pool and reports its latency and connection stats.
func pingStatus(db *sql.DB, engine string) model.ComponentHealthStatus {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	details := map[string]string{"engine": engine}

	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		details["message"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}

	stats := db.Stats()
	details["ping_latency"] = time.Since(start).String()
	details["open_connections"] = strconv.Itoa(stats.OpenConnections)
	details["in_use"] = strconv.Itoa(stats.InUse)
	details["idle"] = strconv.Itoa(stats.Idle)

	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}

type combinedHealthDBGateway struct {
	gateways map[string]HealthDBGateway
}

// CombineHealthDBGateways reports UP only when every named store is UP.
// Details are prefixed with the store name.
func CombineHealthDBGateways(gateways map[string]HealthDBGateway) HealthDBGateway {
	return &combinedHealthDBGateway{gateways: gateways}
}

func (c *combinedHealthDBGateway) Health() model.ComponentHealthStatus {
	combined := model.ComponentHealthStatus{Status: model.StatusUp, Details: map[string]string{}}
	for name, gateway := range c.gateways {
		status := gateway.Health()
		if status.Status != model.StatusUp {
			combined.Status = model.StatusDown
		}
		combined.Details[name+".status"] = string(status.Status)
		for key, value := range status.Details {
			combined.Details[name+"."+key] = value
		}
	}
	return combined
}
