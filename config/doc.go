// Package config loads the converter configuration from a YAML file with
// environment overrides for secrets.
//
// Configuration is deliberately optional: every field has a safe default so
// the converter can run with nothing but METLINK_API_KEY in the environment.
// An empty API key is allowed too; the upstream call will fail
// authentication and the run degrades to an empty submission.
package config
