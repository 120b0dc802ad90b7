package chart

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
)

// Display shows a rendered plot and returns once the user dismisses it.
type Display interface {
	Show(path string) error
}

// ViewerDisplay opens plots in an external viewer and waits for it to exit.
// Without a Command it prints the file path and waits for Enter on In.
type ViewerDisplay struct {
	Command string
	Args    []string
	In      *bufio.Reader
	Out     io.Writer

	run func(cmd *exec.Cmd) error
}

// NewViewerDisplay creates a ViewerDisplay.
func NewViewerDisplay(command string, args []string, in *bufio.Reader, out io.Writer) *ViewerDisplay {
	return &ViewerDisplay{Command: command, Args: args, In: in, Out: out}
}

func (d *ViewerDisplay) Show(path string) error {
	if d.Command == "" {
		fmt.Fprintf(d.Out, "Plot saved to %s. Press Enter to continue...", path)
		if _, err := d.In.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("wait for dismissal: %w", err)
		}
		return nil
	}

	args := append(append([]string{}, d.Args...), path)
	cmd := exec.Command(d.Command, args...)
	log.Printf("[INFO] opening %s with %s", path, d.Command)
	run := d.run
	if run == nil {
		run = (*exec.Cmd).Run
	}
	if err := run(cmd); err != nil {
		return fmt.Errorf("viewer %s: %w", d.Command, err)
	}
	return nil
}
