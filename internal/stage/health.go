package stage

// Health summarizes the readiness of a pipeline stage.
type Health struct {
	Name   string
	Ready  bool
	Detail string
}

// Healthy constructs a ready Health record.
func Healthy(name string) Health {
	return Health{Name: name, Ready: true}
}

// Unhealthy constructs an unhealthy Health record with context detail.
func Unhealthy(name, detail string) Health {
	return Health{Name: name, Ready: false, Detail: detail}
}

// HealthChecker is implemented by stages that can probe their external
// dependencies (LLM endpoints, TTS engines, render toolchains).
type HealthChecker interface {
	HealthCheck() Health
}

// CheckAll probes every registered stage that exposes a health check.
func (s Set) CheckAll() []Health {
	var checks []Health
	for _, entry := range []struct {
		name string
		impl any
	}{
		{"parse", s.Parser},
		{"analyze", s.Analyzer},
		{"plan", s.Planner},
		{"script", s.Scripter},
		{"storyboard", s.Storyboarder},
		{"render", s.Renderer},
	} {
		if entry.impl == nil {
			continue
		}
		if checker, ok := entry.impl.(HealthChecker); ok {
			checks = append(checks, checker.HealthCheck())
			continue
		}
		checks = append(checks, Healthy(entry.name))
	}
	return checks
}
