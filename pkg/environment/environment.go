package environment

import "strings"

// Environment represents the deployment environment of a process.
type Environment string

const (
	// Development for local runs.
	Development Environment = "development"
	// Staging for pre-production deployments.
	Staging Environment = "staging"
	// Production for live deployments.
	Production Environment = "production"
)

// Parse normalizes an environment name. Short aliases (dev, stage, prod) are
// accepted case-insensitively; anything unrecognized maps to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

func (e Environment) String() string {
	return string(e)
}

func (e Environment) IsProduction() bool {
	return e == Production
}

func (e Environment) IsStaging() bool {
	return e == Staging
}

func (e Environment) IsDevelopment() bool {
	return e == Development
}
