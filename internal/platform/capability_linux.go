//go:build linux

package platform

import "github.com/stigoleg/keep-busy/internal/platform/linux"

func checkCapability() SimulationCapability {
	session := linux.DetectSession()
	if session.Display == linux.UnknownDisplay {
		return SimulationCapability{
			CanSimulate:  false,
			ErrorMessage: "no graphical session detected (DISPLAY and WAYLAND_DISPLAY are unset)",
			Instructions: "Run keepbusy from inside your desktop session.",
		}
	}

	capability := SimulationCapability{CanSimulate: true}
	if session.Display == linux.Wayland {
		capability.Instructions = "Wayland compositors may ignore synthetic input; an X11 session is the most reliable.\n"
	}
	capability.Instructions += linux.MissingToolsMessage()
	return capability
}
