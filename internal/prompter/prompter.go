package prompter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Cancelled is returned by Select when the user declines to choose.
const Cancelled = -1

type Prompter interface {
	Confirm(question string) (bool, error)
	Prompt(question string) (string, error)
	// Select shows numbered options and returns the chosen index, or
	// Cancelled on empty input / EOF.
	Select(question string, options []string) (int, error)
}

type TextPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *TextPrompter {
	return &TextPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *TextPrompter) Confirm(q string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "%s [y/N]: ", q); err != nil {
		return false, err
	}

	resp, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	r := strings.ToLower(strings.TrimSpace(resp))
	return r == "y" || r == "yes", nil
}

func (p *TextPrompter) Prompt(q string) (string, error) {
	if _, err := fmt.Fprint(p.out, q); err != nil {
		return "", err
	}

	resp, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(resp), nil
}

func (p *TextPrompter) Select(q string, options []string) (int, error) {
	if _, err := fmt.Fprintln(p.out, q); err != nil {
		return Cancelled, err
	}
	for i, opt := range options {
		if _, err := fmt.Fprintf(p.out, "  %3d) %s\n", i+1, opt); err != nil {
			return Cancelled, err
		}
	}
	if _, err := fmt.Fprintf(p.out, "Choice (1-%d, empty to cancel): ", len(options)); err != nil {
		return Cancelled, err
	}

	resp, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return Cancelled, err
	}

	trimmed := strings.TrimSpace(resp)
	if trimmed == "" {
		return Cancelled, nil
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > len(options) {
		return Cancelled, fmt.Errorf("invalid choice %q", trimmed)
	}
	return n - 1, nil
}
