package scoring

import "fmt"

// ConfigurationError reports an invalid scoring formula on a job position.
// It is raised when the formula is loaded, never silently clamped inside a
// scoring run.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("scoring configuration error: %s", e.Message)
}
