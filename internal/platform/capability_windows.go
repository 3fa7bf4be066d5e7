//go:build windows

package platform

func checkCapability() SimulationCapability {
	return SimulationCapability{CanSimulate: true}
}
