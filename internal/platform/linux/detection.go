//go:build linux

// Package linux detects the Linux desktop session and reads its idle time.
package linux

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/stigoleg/keep-busy/internal/platform/command"
)

// DisplayServer is the kind of graphical session.
type DisplayServer string

const (
	Wayland        DisplayServer = "wayland"
	X11            DisplayServer = "x11"
	UnknownDisplay DisplayServer = "unknown"
)

// Desktop is the desktop environment running the session.
type Desktop string

const (
	Cosmic         Desktop = "cosmic"
	GNOME          Desktop = "gnome"
	KDE            Desktop = "kde"
	XFCE           Desktop = "xfce"
	MATE           Desktop = "mate"
	UnknownDesktop Desktop = "unknown"
)

// IdleMethod names a way of reading the session idle time.
type IdleMethod string

const (
	IdleXprintidle IdleMethod = "xprintidle"
	IdleMutter     IdleMethod = "mutter"
	IdleNone       IdleMethod = ""
)

// desktopHints maps substrings of XDG_CURRENT_DESKTOP or DESKTOP_SESSION to
// a desktop, checked in order. Pop!_OS reports "pop" for COSMIC.
var desktopHints = []struct {
	desktop Desktop
	hints   []string
}{
	{Cosmic, []string{"cosmic", "pop"}},
	{GNOME, []string{"gnome", "ubuntu"}},
	{KDE, []string{"kde", "plasma"}},
	{XFCE, []string{"xfce"}},
	{MATE, []string{"mate"}},
}

// Session describes the graphical session and the idle tools on PATH.
type Session struct {
	Display       DisplayServer
	Desktop       Desktop
	HasXprintidle bool
	HasGdbus      bool
}

// DetectSession inspects the environment and PATH.
func DetectSession() Session {
	return Session{
		Display:       detectDisplay(os.Getenv),
		Desktop:       detectDesktop(os.Getenv),
		HasXprintidle: command.Exists("xprintidle"),
		HasGdbus:      command.Exists("gdbus"),
	}
}

// IdleMethod picks the probe GetIdleTime will use.
func (s Session) IdleMethod() IdleMethod {
	switch {
	case s.Display == X11 && s.HasXprintidle:
		return IdleXprintidle
	case s.Display == Wayland && s.Desktop == GNOME && s.HasGdbus:
		return IdleMutter
	default:
		return IdleNone
	}
}

func detectDisplay(getenv func(string) string) DisplayServer {
	sessionType := strings.ToLower(getenv("XDG_SESSION_TYPE"))
	switch {
	case getenv("WAYLAND_DISPLAY") != "", sessionType == string(Wayland):
		return Wayland
	case getenv("DISPLAY") != "", sessionType == string(X11):
		return X11
	default:
		return UnknownDisplay
	}
}

func detectDesktop(getenv func(string) string) Desktop {
	names := strings.ToLower(getenv("XDG_CURRENT_DESKTOP") + ":" + getenv("DESKTOP_SESSION"))
	for _, d := range desktopHints {
		for _, h := range d.hints {
			if strings.Contains(names, h) {
				return d.desktop
			}
		}
	}
	return UnknownDesktop
}

// Distro is the running distribution and its package manager.
type Distro struct {
	ID         string
	PkgManager string
}

// packageManagers maps os-release IDs (and ID_LIKE entries) to their
// package manager.
var packageManagers = map[string]string{
	"debian":              "apt",
	"ubuntu":              "apt",
	"pop":                 "apt",
	"linuxmint":           "apt",
	"fedora":              "dnf",
	"rhel":                "dnf",
	"centos":              "dnf",
	"arch":                "pacman",
	"manjaro":             "pacman",
	"opensuse":            "zypper",
	"opensuse-leap":       "zypper",
	"opensuse-tumbleweed": "zypper",
	"suse":                "zypper",
	"alpine":              "apk",
}

// DetectDistro reads /etc/os-release, falling back to whichever package
// manager is on PATH.
func DetectDistro() Distro {
	f, err := os.Open("/etc/os-release")
	if err != nil {
		return Distro{ID: "unknown", PkgManager: pkgManagerOnPath()}
	}
	defer f.Close()

	d := parseOSRelease(f)
	if d.PkgManager == "" {
		d.PkgManager = pkgManagerOnPath()
	}
	if d.PkgManager == "dnf" && !command.Exists("dnf") && command.Exists("yum") {
		d.PkgManager = "yum"
	}
	return d
}

// parseOSRelease resolves the package manager from ID first, then from each
// ID_LIKE entry. PkgManager is empty when nothing matches.
func parseOSRelease(r io.Reader) Distro {
	fields := map[string]string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		k, v, ok := strings.Cut(sc.Text(), "=")
		if ok {
			fields[k] = strings.ToLower(strings.Trim(v, `"'`))
		}
	}

	d := Distro{ID: fields["ID"]}
	if d.ID == "" {
		d.ID = "unknown"
	}
	for _, id := range append([]string{d.ID}, strings.Fields(fields["ID_LIKE"])...) {
		if pm, ok := packageManagers[id]; ok {
			d.PkgManager = pm
			break
		}
	}
	return d
}

func pkgManagerOnPath() string {
	for _, m := range []string{"apt", "dnf", "yum", "pacman", "zypper", "apk"} {
		if command.Exists(m) {
			return m
		}
	}
	return "unknown"
}
