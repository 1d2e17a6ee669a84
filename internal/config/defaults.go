package config

const (
	defaultDataDir       = "~/.local/share/docuvid/data"
	defaultLogDir        = "~/.local/share/docuvid/logs"
	defaultOutputDir     = "~/videos/docuvid"
	defaultAssetsDir     = "~/.local/share/docuvid/assets"
	defaultPlanReviewDir = "~/.local/share/docuvid/plans"

	defaultPollIntervalSeconds   = 5
	defaultMaxConcurrentProjects = 2
	defaultRequirePlanApproval   = true

	defaultVisualStyle    = "minimal dark, high-contrast accents"
	defaultTargetAudience = "curious non-specialists"

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:       defaultDataDir,
			LogDir:        defaultLogDir,
			OutputDir:     defaultOutputDir,
			AssetsDir:     defaultAssetsDir,
			PlanReviewDir: defaultPlanReviewDir,
		},
		Pipeline: Pipeline{
			PollIntervalSeconds:   defaultPollIntervalSeconds,
			MaxConcurrentProjects: defaultMaxConcurrentProjects,
			RequirePlanApproval:   defaultRequirePlanApproval,
		},
		Video: Video{
			VisualStyle:    defaultVisualStyle,
			TargetAudience: defaultTargetAudience,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
