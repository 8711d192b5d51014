// Command fetchimages downloads the demo's page images through a local proxy.
package main

import (
	"os"

	"gemma-demo-webui/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
