package platform

// SimulationCapability reports whether input simulation is expected to work
// on this machine and what the user can do about it if not.
type SimulationCapability struct {
	// CanSimulate indicates whether activity simulation will work on this system
	CanSimulate bool

	// ErrorMessage is a user-friendly error message if simulation won't work
	ErrorMessage string

	// Instructions provides step-by-step instructions to fix the issue
	Instructions string
}

// CheckActivitySimulationCapability inspects the session before the first
// cycle. Each platform implements checkCapability.
func CheckActivitySimulationCapability() SimulationCapability {
	return checkCapability()
}
