package api

import (
	"context"

	"ecoscope/internal/domain/model/external"
)

// WilayahGateway reads the Disdukcapil Wonosobo region list.
type WilayahGateway interface {
	List(ctx context.Context) ([]external.WilayahEntry, error)
}
