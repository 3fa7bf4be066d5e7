package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/stigoleg/keep-busy/internal/config"
	"github.com/stigoleg/keep-busy/internal/keepalive"
	"github.com/stigoleg/keep-busy/internal/platform"
	"github.com/stigoleg/keep-busy/internal/profile"
)

// progressWidth matches the width of the help line below the bar.
const progressWidth = 20

// gradientColors runs from purple to green across the progress bar.
var gradientColors = []string{
	"#7D56F4", "#7857F4", "#7359F5", "#6E5AF5", "#695CF6",
	"#645DF6", "#5F5FF7", "#5A60F7", "#5562F8", "#5063F8",
	"#4B65F9", "#4666F9", "#4168FA", "#3C69FA", "#376BFB",
	"#326CFB", "#2D6EFC", "#286FFC", "#2371FD", "#1E72FD",
	"#1974FE", "#1475FE", "#0F77FF", "#0A78FF", "#057AFF",
	"#007BFF", "#007DFA", "#007FF5", "#0081F0", "#0083EB",
	"#0085E6", "#0087E1", "#0089DC", "#008BD7", "#008DD2",
	"#008FCD", "#0091C8", "#0093C3", "#0095BE", "#0097B9",
	"#0099B4", "#009BAF", "#009DAA", "#009FA5", "#00A1A0",
	"#00A39B", "#00A596", "#00A791", "#00A98C", "#00AB87",
	"#00AD82", "#00AF7D", "#00B178", "#00B373", "#00B56E",
	"#00B769", "#00B964", "#00BB5F", "#00BD5A", "#00BF55",
	"#43BF6D",
}

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView(m)
	}

	switch m.State {
	case stateMenu:
		return menuView(m)
	case stateTimedInput:
		return timedInputView(m)
	case stateRunning:
		return runningView(m)
	}

	return ""
}

func menuView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Keep Busy"))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render("Select an activity:"))
	b.WriteString("\n\n")

	for i, opt := range menuItems() {
		if i == m.Selected {
			b.WriteString(Current.Selected.Render("> " + opt))
		} else {
			b.WriteString(Current.Unselected.Render("  " + opt))
		}
		b.WriteString("\n")
	}

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + Current.Help.Render(m.help.View(m.keys.ForState(m.State))))
	return b.String()
}

func timedInputView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Simulate " + string(m.Profile)))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render("Run for how many minutes? Leave empty to run until stopped."))
	b.WriteString("\n")
	input := m.Input
	if input == "" {
		input = " "
	}
	b.WriteString(Current.InputBox.Render(input))
	b.WriteString("\n\n")

	b.WriteString(Current.Help.Render(m.help.View(m.keys.ForState(m.State))))

	if m.ErrorMessage != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.ErrorMessage))
	}

	return b.String()
}

func runningView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Simulating " + string(m.Profile)))
	b.WriteString("\n\n")

	st, ok := m.Keeper.Status()
	if ok {
		b.WriteString(phaseLine(st, time.Now()))
		b.WriteString("\n\n")
		b.WriteString(healthRow(m.Keeper.GetSimulationHealth()))
		b.WriteString(row("Cycles", fmt.Sprintf("%d", st.Cycles)))
		b.WriteString(row("Failures", fmt.Sprintf("%d", st.Failures)))
		if st.Profile == string(config.ProfileReading) {
			b.WriteString(row("Open tabs", fmt.Sprintf("%d", st.OpenTabs)))
		}
		if st.Action != "" {
			b.WriteString(row("Last step", st.Action))
		}
		b.WriteString(row("User idle", formatIdle(st.LastIdle)))
		if st.Phase == profile.PhaseBackoff && st.LastErr != nil {
			b.WriteString("\n" + Current.Error.Render("Last cycle failed: "+st.LastErr.Error()) + "\n")
		}
	}

	if m.Duration > 0 {
		remaining := m.TimeRemaining()
		b.WriteString("\n")
		b.WriteString(Current.Countdown.Render(formatClock(remaining) + " remaining"))
		b.WriteString("\n")
		b.WriteString(Current.ProgressBarContainer.Render(progressBar(remaining, m.Duration)))
		b.WriteString("\n")
	}

	b.WriteString("\n" + Current.Help.Render(m.help.View(m.keys.ForState(m.State))))

	if m.ErrorMessage != "" {
		b.WriteString("\n\n" + Current.Error.Render(m.ErrorMessage))
	}

	return b.String()
}

func phaseLine(st profile.Status, now time.Time) string {
	text := string(st.Phase)
	if !st.Until.IsZero() && st.Until.After(now) {
		switch st.Phase {
		case profile.PhaseThinking:
			text = "next action in " + formatClock(st.Until.Sub(now))
		case profile.PhasePaused:
			text = "user active, checking again in " + formatClock(st.Until.Sub(now))
		case profile.PhaseBackoff:
			text = "retrying in " + formatClock(st.Until.Sub(now))
		}
	}
	if st.Phase == profile.PhasePaused || st.Phase == profile.PhaseBackoff {
		return Current.Paused.Render(text)
	}
	return Current.Active.Render(text)
}

func row(label, value string) string {
	return Current.Label.Render(label) + Current.Value.Render(value) + "\n"
}

func healthRow(h keepalive.SimulationHealth) string {
	value := Current.Value
	switch h {
	case keepalive.SimulationHealthOK:
		value = Current.Active
	case keepalive.SimulationHealthFailed:
		value = Current.Error
	}
	return Current.Label.Render("Health") + value.Render(h.String()) + "\n"
}

func formatIdle(d time.Duration) string {
	if d >= platform.IdleUnknown {
		return "unknown"
	}
	return d.Truncate(time.Second).String()
}

func formatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func progressBar(remaining, total time.Duration) string {
	progress := 1.0 - float64(remaining)/float64(total)
	filled := int(progress * progressWidth)
	if filled > progressWidth {
		filled = progressWidth
	}

	var bar strings.Builder
	for i := 0; i < progressWidth; i++ {
		if i >= filled {
			bar.WriteString(Current.ProgressBar.Render(" "))
			continue
		}
		colorIndex := i * (len(gradientColors) - 1) / progressWidth
		block := Current.ProgressBar.Background(lipgloss.Color(gradientColors[colorIndex]))
		bar.WriteString(block.Render(" "))
	}
	return bar.String()
}

func helpView(m Model) string {
	text := `Keep-Busy Help

Usage:
  keepbusy [flags]

Flags:
  -p, --profile string    Activity to simulate: reading or coding
  -d, --duration string   How long to run (e.g., "2h30m" or "90")
      --until string      Run until a wall-clock time (e.g., "17:30")
  -u, --urls string       Comma-separated pages for the reading profile
  -c, --clicks            Click as well as move the mouse
  -b, --background        Detach and run without a terminal
      --dry-run           Log input instead of sending it
  -v, --version           Show version information

Examples:
  keepbusy                         # Pick an activity in this interface
  keepbusy -p reading -d 45m       # Browse and scroll for 45 minutes
  keepbusy -p coding -u 17:00 -b   # Type in the background until 17:00

`
	full := m.help
	full.ShowAll = true
	return Current.Help.Render(text + full.View(m.keys.ForState(m.State)) + "\n\nPress 'h' to close help")
}
