package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// lineReader reads trimmed lines of user input.
type lineReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	return &lineReader{scanner: bufio.NewScanner(in), out: out}
}

// ask prints prompt and returns the next line. ok is false at end of input.
func (r *lineReader) ask(prompt string) (line string, ok bool) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.scanner.Text()), true
}

// confirm asks a yes/no question; anything but y or yes is a no.
func (r *lineReader) confirm(question string) bool {
	answer, ok := r.ask(question + " [y/N]: ")
	if !ok {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
