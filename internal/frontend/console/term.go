package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Term reads line input and writes styled output.
type Term struct {
	in      *bufio.Reader
	out     io.Writer
	Palette Palette
}

// NewTerm wraps in and out. color enables ANSI styling.
//
// Precondition: in and out must be non-nil.
func NewTerm(in io.Reader, out io.Writer, color bool) *Term {
	return &Term{
		in:      bufio.NewReader(in),
		out:     out,
		Palette: Palette{Enabled: color},
	}
}

// ReadLine reads a single line of input without its line terminator.
// Control characters other than tab are dropped.
//
// Postcondition: Returns the next line of text input, or an error (including io.EOF).
func (t *Term) ReadLine() (string, error) {
	var line bytes.Buffer
	for {
		b, err := t.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && line.Len() > 0 {
				return line.String(), nil
			}
			return line.String(), err
		}
		if b == '\n' {
			break
		}
		if b == '\r' {
			next, err := t.in.Peek(1)
			if err == nil && len(next) > 0 && next[0] == '\n' {
				_, _ = t.in.ReadByte()
			}
			break
		}
		if b < 32 && b != '\t' {
			continue
		}
		line.WriteByte(b)
	}
	return line.String(), nil
}

// WriteLine writes text followed by a newline.
func (t *Term) WriteLine(text string) error {
	_, err := io.WriteString(t.out, text+"\n")
	return err
}

// WritePrompt writes text without a trailing newline.
func (t *Term) WritePrompt(text string) error {
	_, err := io.WriteString(t.out, text)
	return err
}

func (t *Term) invalid(msg string) {
	_ = t.WriteLine(t.Palette.Colorize(Red, msg))
}

// Menu prints options as a numbered list and returns the chosen index. The
// answer may be the number or the option text, ignoring case. Invalid answers
// re-prompt.
//
// Precondition: options must be non-empty.
// Postcondition: 0 <= index < len(options) on nil error.
func (t *Term) Menu(prompt string, options []string) (int, error) {
	for {
		if prompt != "" {
			_ = t.WriteLine(t.Palette.Colorize(BrightYellow, prompt))
		}
		for i, o := range options {
			_ = t.WriteLine(fmt.Sprintf("  %s. %s", t.Palette.Colorf(Green, "%d", i+1), o))
		}
		_ = t.WritePrompt(t.Palette.Colorf(BrightWhite, "Select [1-%d]: ", len(options)))
		line, err := t.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("reading menu selection: %w", err)
		}
		line = strings.TrimSpace(line)
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return n - 1, nil
		}
		for i, o := range options {
			if strings.EqualFold(line, o) {
				return i, nil
			}
		}
		t.invalid("Invalid selection.")
	}
}

// YesNo asks a yes/no question. "y", "yes", "n" and "no" are accepted in any
// case; anything else re-prompts.
func (t *Term) YesNo(prompt string) (bool, error) {
	for {
		_ = t.WritePrompt(t.Palette.Colorize(BrightWhite, prompt))
		line, err := t.ReadLine()
		if err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		t.invalid("Please answer yes or no.")
	}
}

// Int reads an integer in [lo, hi], re-prompting until one is given.
func (t *Term) Int(prompt string, lo, hi int) (int, error) {
	for {
		_ = t.WritePrompt(t.Palette.Colorize(BrightWhite, prompt))
		line, err := t.ReadLine()
		if err != nil {
			return 0, fmt.Errorf("reading number: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= lo && n <= hi {
			return n, nil
		}
		t.invalid(fmt.Sprintf("Enter a number from %d to %d.", lo, hi))
	}
}

// Text reads a non-blank line, trimmed.
func (t *Term) Text(prompt string) (string, error) {
	for {
		_ = t.WritePrompt(t.Palette.Colorize(BrightWhite, prompt))
		line, err := t.ReadLine()
		if err != nil {
			return "", fmt.Errorf("reading text: %w", err)
		}
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
		t.invalid("Input must not be blank.")
	}
}

// WaitEnter writes prompt and blocks until a line is read.
func (t *Term) WaitEnter(prompt string) error {
	_ = t.WritePrompt(prompt)
	_, err := t.ReadLine()
	return err
}
