package runner

const (
	DefaultWarmupRuns = 1
	DefaultRuns       = 20
	DefaultWorkers    = 1
)

type Config struct {
	// WarmupRuns are executed per case before measurement starts.
	WarmupRuns int
	// Runs is the number of measured iterations per case. Every iteration
	// compiles the expression from scratch, the way a host recompiles on
	// each settled keystroke.
	Runs int
	// Workers is the number of cases measured concurrently. Iterations
	// within a case always run serially so its latency samples stay clean.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
		Workers:    DefaultWorkers,
	}
}

// normalized clamps nonsense values instead of failing; a benchmark asked to
// run zero times still runs once.
func (c Config) normalized() Config {
	if c.WarmupRuns < 0 {
		c.WarmupRuns = 0
	}
	if c.Runs < 1 {
		c.Runs = 1
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return c
}
