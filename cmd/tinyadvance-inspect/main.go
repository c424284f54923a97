// Command tinyadvance-inspect is a terminal debugger for the video and
// backup cores, stepped from a synthetic clock rather than a real one so
// stepping is deterministic and reproducible.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nullrouted/tinyadvance/inspector"
)

var flashSize = flag.Int("flash_size", 128*1024, "Backup flash chip size in bytes: 65536 or 131072.")

func main() {
	flag.Parse()

	if *flashSize != 64*1024 && *flashSize != 128*1024 {
		fmt.Fprintln(os.Stderr, "tinyadvance-inspect: -flash_size must be 65536 or 131072")
		os.Exit(1)
	}

	p := tea.NewProgram(inspector.NewModel(*flashSize))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tinyadvance-inspect: %v\n", err)
		os.Exit(1)
	}
}
