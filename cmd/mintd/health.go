// health.go - Health monitoring for the proving service
package main

import (
	"sync"
	"time"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// ComponentHealth represents the health of a specific component
type ComponentHealth struct {
	Name      string       `json:"name"`
	Status    HealthStatus `json:"status"`
	Message   string       `json:"message"`
	LastCheck time.Time    `json:"last_check"`
}

// SystemHealth represents the overall system health
type SystemHealth struct {
	OverallStatus HealthStatus      `json:"overall_status"`
	Timestamp     time.Time         `json:"timestamp"`
	Components    []ComponentHealth `json:"components"`
	Uptime        time.Duration     `json:"uptime"`
	Version       string            `json:"version"`
}

// HealthChecker manages health checks for the proving service
type HealthChecker struct {
	mu        sync.Mutex
	checkers  map[string]func() error
	startTime time.Time
	version   string
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(version string) *HealthChecker {
	return &HealthChecker{
		checkers:  make(map[string]func() error),
		startTime: time.Now(),
		version:   version,
	}
}

// RegisterComponent registers a health check for a component
func (hc *HealthChecker) RegisterComponent(name string, checker func() error) {
	hc.mu.Lock()
	defer hc.mu.Unlock()
	hc.checkers[name] = checker
}

// CheckHealth performs health checks for all registered components
func (hc *HealthChecker) CheckHealth() *SystemHealth {
	hc.mu.Lock()
	defer hc.mu.Unlock()

	overall := Healthy
	components := make([]ComponentHealth, 0, len(hc.checkers))
	for name, checker := range hc.checkers {
		component := ComponentHealth{
			Name:      name,
			Status:    Healthy,
			Message:   "OK",
			LastCheck: time.Now(),
		}
		if err := checker(); err != nil {
			component.Status = Unhealthy
			component.Message = err.Error()
			overall = Unhealthy
		}
		components = append(components, component)
	}

	return &SystemHealth{
		OverallStatus: overall,
		Timestamp:     time.Now(),
		Components:    components,
		Uptime:        time.Since(hc.startTime),
		Version:       hc.version,
	}
}
