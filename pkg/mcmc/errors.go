package mcmc

// ConfigError reports a search configuration rejected before any iteration
// ran: the engine never starts partially configured.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return "mcmc: " + e.Reason + ": " + e.Err.Error()
	}
	return "mcmc: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(reason string) error {
	return &ConfigError{Reason: reason}
}
