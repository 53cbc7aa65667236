// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/tamzrod/js8-monitor/internal/config"
	"github.com/tamzrod/js8-monitor/internal/writer/ingest"
	wmodbus "github.com/tamzrod/js8-monitor/internal/writer/modbus"
)

// BuildPlan converts the status config into a plan.
// Assumes config has already passed Validate and Normalize.
// A nil config means status publishing is disabled.
func BuildPlan(sc *cfg.StatusConfig) (*StatusPlan, error) {
	if sc == nil {
		return nil, nil
	}
	if sc.Endpoint == "" {
		return nil, errors.New("writer: status.endpoint required")
	}

	return &StatusPlan{
		Transport:   sc.Transport,
		Endpoint:    sc.Endpoint,
		UnitID:      sc.UnitID,
		BaseSlot:    sc.Slot,
		StationName: sc.StationName,
		Timeout:     time.Duration(sc.TimeoutMs) * time.Millisecond,
	}, nil
}

// BuildEndpointClient creates the transport client for the plan.
func BuildEndpointClient(plan *StatusPlan) (endpointClient, func() error, error) {
	if plan == nil {
		return nil, nil, errors.New("writer: status plan required")
	}

	switch plan.Transport {
	case cfg.TransportModbus, "":
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	case cfg.TransportIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: plan.Endpoint,
			Timeout:  plan.Timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return c, c.Close, nil

	default:
		return nil, nil, fmt.Errorf("writer: unknown transport %q", plan.Transport)
	}
}

// Build wires plan, client and status writer in one step.
// enabled=false (with a nil error) means status publishing is off.
func Build(sc *cfg.StatusConfig) (sw StatusWriter, closeFn func() error, enabled bool, err error) {
	plan, err := BuildPlan(sc)
	if err != nil || plan == nil {
		return nil, nil, false, err
	}

	cli, closeFn, err := BuildEndpointClient(plan)
	if err != nil {
		return nil, nil, false, err
	}

	w, enabled := NewStationStatusWriter(plan, cli)
	return w, closeFn, enabled, nil
}
