package service

// Service is a background subsystem owned by the Hub: the audio speaker or
// the toss history database. The Hub calls Init once with the arguments
// registered under Name, then Start, and finally Stop on shutdown or when a
// later service fails to come up.
type Service interface {
	Name() string

	// Dependencies lists services that must be initialized and started first
	Dependencies() []string

	Init(args ...any) error
	Start() error

	// Stop releases resources; it may be called more than once
	Stop() error
}
