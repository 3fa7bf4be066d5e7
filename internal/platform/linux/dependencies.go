//go:build linux

package linux

import (
	"fmt"
	"strings"

	"github.com/stigoleg/keep-busy/internal/platform/command"
)

// MissingTool is a helper binary that would improve the current session.
type MissingTool struct {
	Name    string
	Purpose string
	Install string
	Note    string
}

// packageFor returns the distro package shipping tool, or "".
func packageFor(tool string, d Distro) string {
	switch tool {
	case "xprintidle":
		return "xprintidle"
	case "gdbus":
		if d.PkgManager == "apt" {
			return "libglib2.0-bin"
		}
		return "glib2"
	case "xdg-open":
		return "xdg-utils"
	default:
		return ""
	}
}

// InstallCommand returns the command that installs tool on d. note is set
// when no exact command can be given.
func InstallCommand(tool string, d Distro) (cmd, note string) {
	pkg := packageFor(strings.ToLower(tool), d)
	if pkg == "" {
		return "", fmt.Sprintf("no known package provides %q", tool)
	}

	switch d.PkgManager {
	case "apt":
		return "sudo apt update && sudo apt install " + pkg, ""
	case "dnf", "yum", "zypper":
		return fmt.Sprintf("sudo %s install %s", d.PkgManager, pkg), ""
	case "pacman":
		return "sudo pacman -S " + pkg, ""
	case "apk":
		return "sudo apk add " + pkg, ""
	default:
		return "install " + pkg + " with your package manager",
			"look for " + pkg + " in your distribution's repositories"
	}
}

// MissingTools lists the helpers s needs for idle sensing and URL opening
// that are not installed.
func MissingTools(s Session, hasXdgOpen bool, d Distro) []MissingTool {
	var missing []MissingTool
	add := func(name, purpose string) {
		cmd, note := InstallCommand(name, d)
		missing = append(missing, MissingTool{Name: name, Purpose: purpose, Install: cmd, Note: note})
	}

	if s.Display == X11 && !s.HasXprintidle {
		add("xprintidle", "reads X11 idle time so simulation pauses while you work")
	}
	if s.Display == Wayland && s.Desktop == GNOME && !s.HasGdbus {
		add("gdbus", "queries Mutter's idle monitor on GNOME Wayland")
	}
	if !hasXdgOpen {
		add("xdg-open", "opens pages in the default browser for the reading profile")
	}
	return missing
}

// FormatMissingTools renders missing as an indented list, or "" when
// nothing is missing.
func FormatMissingTools(missing []MissingTool) string {
	if len(missing) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Missing optional tools:\n")
	for i, t := range missing {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, t.Name, t.Purpose)
		fmt.Fprintf(&b, "   Install with: %s\n", t.Install)
		if t.Note != "" {
			fmt.Fprintf(&b, "   Note: %s\n", t.Note)
		}
	}
	b.WriteString("Without an idle probe the user is treated as away and the simulation never pauses.\n")
	return b.String()
}

// MissingToolsMessage detects the session and reports what is missing.
func MissingToolsMessage() string {
	return FormatMissingTools(MissingTools(DetectSession(), command.Exists("xdg-open"), DetectDistro()))
}
