package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// command returns the OS launcher for a URL. Tests replace it.
var command = func(goos, target string) (*exec.Cmd, error) {
	switch goos {
	case "darwin":
		return exec.Command("open", target), nil
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", target), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

// Open opens an http(s) URL, such as a project's repository, in the user's
// default browser. Other schemes are refused since catalog data is untrusted.
func Open(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("browser: parse %q: %w", target, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("browser: refusing to open %q", target)
	}
	cmd, err := command(runtime.GOOS, u.String())
	if err != nil {
		return err
	}
	return cmd.Start()
}
