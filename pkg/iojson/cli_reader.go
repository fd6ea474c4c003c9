package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader opens input named by a --file flag, falling back to stdin when
// stdin is not a terminal.
type FileReader struct {
	fileFlagValue string
	stdin         *os.File
}

// NewFileReader creates a FileReader reading from os.Stdin by default.
func NewFileReader() *FileReader {
	return &FileReader{stdin: os.Stdin}
}

// Flag returns the --file flag bound to the reader.
func (fr *FileReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to input file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// Open returns the input and a name describing its source.
func (fr *FileReader) Open() (io.ReadCloser, string, error) {
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return nil, "", fmt.Errorf("open file: %w", err)
		}
		return f, fr.fileFlagValue, nil
	}

	if term.IsTerminal(int(fr.stdin.Fd())) {
		return nil, "", fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe input")
	}

	return io.NopCloser(fr.stdin), "stdin", nil
}
