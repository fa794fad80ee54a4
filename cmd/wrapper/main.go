package main

import (
	"os"
	"path/filepath"
	"strings"

	"console-wrapper/internal/wrapper"
)

func main() {
	name := strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
	os.Exit(wrapper.New(name, os.Stdout, os.Stderr).Run(os.Args[1:]))
}
