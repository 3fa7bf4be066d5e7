//go:build darwin

package platform

func openURLCommand(url string) (string, []string) {
	return "open", []string{url}
}
