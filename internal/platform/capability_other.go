//go:build !darwin && !linux && !windows

package platform

func checkCapability() SimulationCapability {
	return SimulationCapability{
		CanSimulate:  false,
		ErrorMessage: ErrUnsupportedPlatform.Error(),
		Instructions: "Use --dry-run to exercise a profile without a native input driver.",
	}
}
