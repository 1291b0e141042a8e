package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validSortOrders = map[string]bool{
	"airdate": true, "dvd": true, "absolute": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Matching.Concurrency < 0 {
		errs = append(errs, fmt.Sprintf("matching.concurrency: must be >= 0, got %d", c.Matching.Concurrency))
	}
	if t := c.Matching.AcceptThreshold; t < 0 || t > 1 {
		errs = append(errs, fmt.Sprintf("matching.accept_threshold: must be in [0, 1], got %g", t))
	}
	if !validSortOrders[c.Matching.SortOrder] {
		errs = append(errs, fmt.Sprintf("matching.sort_order: must be one of airdate, dvd, absolute; got %q", c.Matching.SortOrder))
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Database.Path == "" {
		errs = append(errs, "database.path: required")
	}

	return errs
}
