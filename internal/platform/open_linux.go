//go:build linux

package platform

func openURLCommand(url string) (string, []string) {
	return "xdg-open", []string{url}
}
