// Package tabular parses the tab-separated coverage tables into typed rows,
// validating each value at load time so the downstream joins never see
// untyped or out-of-range data.
package tabular

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// lineReader iterates the lines of a possibly gzipped file, tracking the
// line number for error context.
type lineReader struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	path       string
	lineNumber int
}

func openLineReader(path string) (*lineReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	r := &lineReader{file: file, path: path}

	// Check for gzip magic bytes
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if _, err := file.Seek(0, 0); err != nil {
		file.Close()
		return nil, fmt.Errorf("seek %s: %w", path, err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		r.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		r.reader = bufio.NewReader(r.gzipReader)
	} else {
		r.reader = bufio.NewReader(file)
	}

	return r, nil
}

func newLineReader(r io.Reader, name string) *lineReader {
	return &lineReader{reader: bufio.NewReader(r), path: name}
}

// next returns the next non-empty line. io.EOF signals the end of input.
func (r *lineReader) next() (string, error) {
	for {
		line, err := r.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read %s: %w", r.path, err)
		}
		if line == "" && err == io.EOF {
			return "", io.EOF
		}
		r.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if err == io.EOF {
				return "", io.EOF
			}
			continue
		}
		return line, nil
	}
}

func (r *lineReader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
