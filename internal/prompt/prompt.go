// Package prompt asks the three fixture questions in order and returns the answers
// as a value.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Question wording shown to the user, in the order asked.
const (
	ConflictQuestion = `Will trajectories conflict? Please only enter "true" or "false": `
	CountQuestion    = "How many trajectories will there be? Enter a number more than 0: "
	NameQuestion     = "Enter a variable name to represent trajectory in %s: "
)

// ErrInvalidCount is returned when the trajectory count is not an integer.
var ErrInvalidCount = errors.New("trajectory count is not an integer")

// Answers holds the user's responses.
type Answers struct {
	Conflict bool
	Count    int
	VarName  string
}

// Given marks answers the caller already has; Collect skips those questions.
type Given struct {
	Conflict bool
	Count    bool
	VarName  bool
}

// Prompter reads answers line by line from in and writes questions to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the next line of input without its line ending.
// A final line without a newline is accepted; an exhausted input is an error.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Conflict asks whether trajectories conflict. Only the exact answer "true" enables it.
func (p *Prompter) Conflict() (bool, error) {
	answer, err := p.Ask(ConflictQuestion)
	if err != nil {
		return false, err
	}
	return ParseConflict(answer), nil
}

// Count asks how many trajectories to generate.
func (p *Prompter) Count() (int, error) {
	answer, err := p.Ask(CountQuestion)
	if err != nil {
		return 0, err
	}
	return ParseCount(answer)
}

// VarName asks for the export name used in fixturePath.
func (p *Prompter) VarName(fixturePath string) (string, error) {
	return p.Ask(fmt.Sprintf(NameQuestion, fixturePath))
}

// Collect asks, in order, each question not marked in given. Answers marked in
// given are taken from preset.
func (p *Prompter) Collect(fixturePath string, preset Answers, given Given) (Answers, error) {
	a := preset
	var err error
	if !given.Conflict {
		if a.Conflict, err = p.Conflict(); err != nil {
			return Answers{}, err
		}
	}
	if !given.Count {
		if a.Count, err = p.Count(); err != nil {
			return Answers{}, err
		}
	}
	if !given.VarName {
		if a.VarName, err = p.VarName(fixturePath); err != nil {
			return Answers{}, err
		}
	}
	return a, nil
}

// ParseConflict reports whether answer is exactly "true".
func ParseConflict(answer string) bool {
	return answer == "true"
}

// ParseCount parses a decimal trajectory count. Surrounding whitespace is ignored.
func ParseCount(answer string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, answer)
	}
	return n, nil
}
