// Package environment names the deployment environment of a process:
// development, staging or production.
//
// Parse accepts the full names and the short aliases dev, stage and prod:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // production-specific behaviour
//	}
//
// The logger package uses it to pick its presets.
package environment
