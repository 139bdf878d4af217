package config

// Config is the top-level configuration structure for gcpctl.
type Config struct {
	// GcloudBinary is the gcloud executable to invoke; defaults to
	// "gcloud" on PATH.
	GcloudBinary string `yaml:"gcloudBinary,omitempty"`

	// VerifyCluster probes node readiness after fetching cluster
	// credentials.
	VerifyCluster bool `yaml:"verifyCluster,omitempty"`

	Output OutputSettings `yaml:"output,omitempty"`
}

// OutputSettings controls non-interactive listing output.
type OutputSettings struct {
	// Format is "table" or "json".
	Format string `yaml:"format,omitempty"`
	// NoColor disables colored table output.
	NoColor bool `yaml:"noColor,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		GcloudBinary: "gcloud",
		Output: OutputSettings{
			Format: "table",
		},
	}
}
