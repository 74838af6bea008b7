package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/pp-tools/pizza-pulse/pkg/runtime/terminal"
)

func main() {
	var defaultProfilePath string
	if usr, err := user.Current(); err == nil {
		defaultProfilePath = filepath.Join(usr.HomeDir, ".pizzapulse", "profiles.ini")
	}

	cli := terminal.NewCLI(terminal.Options{
		ProfilePath: defaultProfilePath,
		Output:      os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
