package core

// Filter selects the tests a runner executes.
type Filter func(*Descriptor) bool

// Observer receives the outcome of every executed test, in execution order.
type Observer func(Outcome)

// AcceptAll is a Filter selecting every test.
func AcceptAll(*Descriptor) bool {
	return true
}

type SuiteContext interface {
	Named

	LoggerProvider

	// Returns all registered tests, in registration order.
	Tests() []*Descriptor

	// Returns whether the suite has Azure DevOps integration enabled
	AzureDevops() bool
}
