package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"HedgeLens/internal/model"
)

const (
	promptSymbol1 = "Enter first stock ticker: "
	promptSymbol2 = "Enter second stock ticker: "
	promptStart   = "Enter start date (YYYY-MM-DD) or 'full': "
	promptEnd     = "Enter end date (YYYY-MM-DD) or 'full': "
)

// ErrInputClosed is returned when input ends before every prompt is answered.
var ErrInputClosed = errors.New("input closed before all answers were given")

// Prompter asks the interactive questions on Out and reads answers from In.
type Prompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewPrompter creates a Prompter. A *bufio.Reader passed as in is used as-is
// so that later readers of the same stream see no lost bytes.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Prompter{In: br, Out: out}
}

// Ask writes a prompt and returns the answer line without its line ending.
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.Out, prompt); err != nil {
		return "", err
	}
	line, err := p.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Collect asks the four questions in order and normalizes the answers.
func (p *Prompter) Collect() (model.AnalysisRequest, error) {
	prompts := []string{promptSymbol1, promptSymbol2, promptStart, promptEnd}
	answers := make([]string, len(prompts))
	for i, q := range prompts {
		a, err := p.Ask(q)
		if err != nil {
			return model.AnalysisRequest{}, err
		}
		answers[i] = a
	}
	return Normalize(answers[0], answers[1], answers[2], answers[3]), nil
}
