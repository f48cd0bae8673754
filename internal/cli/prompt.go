package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// =============================================================================
// Prompter - Line-Oriented Input
// =============================================================================

// prompter reads answers line by line, re-asking until the input is valid.
// It wraps an arbitrary reader/writer pair so the wizard flow is testable
// without a terminal.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

// readLine reads one trimmed input line. io.EOF means the user closed stdin;
// the wizard treats that as cancellation.
func (p *prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// askString prompts for a string. An empty answer returns def; if def is
// empty too, the prompt repeats.
func (p *prompter) askString(prompt, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
		} else {
			fmt.Fprintf(p.out, "%s: ", prompt)
		}
		v, err := p.readLine()
		if err != nil {
			return "", err
		}
		if v == "" {
			if def != "" {
				return def, nil
			}
			p.say("This value is required.")
			continue
		}
		return v, nil
	}
}

// askInt prompts for an integer >= min. If def is non-nil an empty answer
// returns it; otherwise the value is required.
func (p *prompter) askInt(prompt string, def *int, min int) (int, error) {
	for {
		if def != nil {
			fmt.Fprintf(p.out, "%s [%d]: ", prompt, *def)
		} else {
			fmt.Fprintf(p.out, "%s: ", prompt)
		}
		raw, err := p.readLine()
		if err != nil {
			return 0, err
		}
		var val int
		if raw == "" {
			if def == nil {
				p.say("This value is required.")
				continue
			}
			val = *def
		} else {
			val, err = strconv.Atoi(raw)
			if err != nil {
				p.say("Please enter a valid integer.")
				continue
			}
		}
		if val < min {
			p.say("Value must be >= %d.", min)
			continue
		}
		return val, nil
	}
}

// askFloat prompts for a number >= min, accepting a decimal comma as well as
// a decimal point (label sheet data sheets are usually metric and European).
func (p *prompter) askFloat(prompt string, def *float64, min float64) (float64, error) {
	for {
		if def != nil {
			fmt.Fprintf(p.out, "%s [%g]: ", prompt, *def)
		} else {
			fmt.Fprintf(p.out, "%s: ", prompt)
		}
		raw, err := p.readLine()
		if err != nil {
			return 0, err
		}
		var val float64
		if raw == "" {
			if def == nil {
				p.say("This value is required.")
				continue
			}
			val = *def
		} else {
			val, err = strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
			if err != nil {
				p.say("Please enter a valid number (e.g., 13.6).")
				continue
			}
		}
		if val < min {
			p.say("Value must be >= %g.", min)
			continue
		}
		return val, nil
	}
}

// askYesNo prompts for a y/n answer with a default.
func (p *prompter) askYesNo(prompt string, def bool) (bool, error) {
	d := "n"
	if def {
		d = "y"
	}
	fmt.Fprintf(p.out, "%s (y/n) [%s]: ", prompt, d)
	raw, err := p.readLine()
	if err != nil {
		return false, err
	}
	if raw == "" {
		return def, nil
	}
	switch strings.ToLower(raw) {
	case "y", "yes", "true", "1":
		return true, nil
	}
	return false, nil
}

// askChoice prompts until the answer is one of valid. An empty answer
// returns def if non-empty.
func (p *prompter) askChoice(prompt string, valid []string, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "%s [default %s]: ", prompt, def)
		} else {
			fmt.Fprintf(p.out, "%s: ", prompt)
		}
		raw, err := p.readLine()
		if err != nil {
			return "", err
		}
		if raw == "" && def != "" {
			return def, nil
		}
		for _, v := range valid {
			if raw == v {
				return raw, nil
			}
		}
		p.say("Please enter one of: %s", strings.Join(valid, ", "))
	}
}

// intPtr and floatPtr build prompt defaults.
func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
