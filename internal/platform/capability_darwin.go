//go:build darwin

package platform

func checkCapability() SimulationCapability {
	return SimulationCapability{
		CanSimulate: true,
		Instructions: "If the pointer does not move, grant Accessibility access to your terminal:\n" +
			"  System Settings > Privacy & Security > Accessibility",
	}
}
