package main

import (
	"errors"
	"fmt"
	"os"

	"wiper/cmd"
	"wiper/internal/domain/safety"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, safety.ErrNotAuthorized) {
			fmt.Fprintln(os.Stderr, "Refusing to execute:", err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cmd.ExitCode(err))
	}
}
