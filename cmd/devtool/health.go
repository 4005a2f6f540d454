package main

import (
	"fmt"
	"net/http"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check application health and readiness"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := getEnv("API_URL", "http://localhost:8080")
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	client := &http.Client{Timeout: 5 * time.Second}

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		resp, err := client.Get(baseURL + path)
		if err != nil {
			return fmt.Errorf("%s unreachable: %w", path, err)
		}
		resp.Body.Close()
		duration := time.Since(start)

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s returned %d", path, resp.StatusCode)
		}
		if duration > time.Second {
			PrintWarning("%s passed but slow (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (%v)", path, duration)
		}
	}

	return nil
}
