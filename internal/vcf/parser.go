package vcf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Parser reads variants from a VCF-like file. Lines beginning with "#" are
// skipped, including the #CHROM header; the first five tab-separated
// columns of each remaining line are taken positionally as chrom, pos, id,
// ref and alt regardless of any declared header.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	gzipReader *gzip.Reader
	path       string
	lineNumber int
}

// NewParser creates a parser for the given file. Plain and gzipped input
// are both supported.
func NewParser(path string) (*Parser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variant file: %w", err)
	}

	p := &Parser{file: file, path: path}

	// Check for gzip magic bytes. An empty file reads io.EOF here and
	// simply yields no variants.
	buf := make([]byte, 2)
	_, err = file.Read(buf)
	if err != nil && err != io.EOF {
		file.Close()
		return nil, fmt.Errorf("read variant file: %w", err)
	}

	_, err = file.Seek(0, 0)
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("seek variant file: %w", err)
	}

	if buf[0] == 0x1f && buf[1] == 0x8b {
		p.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		p.reader = bufio.NewReader(p.gzipReader)
	} else {
		p.reader = bufio.NewReader(file)
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader. name is used in
// error messages.
func NewParserFromReader(r io.Reader, name string) *Parser {
	return &Parser{
		reader: bufio.NewReader(r),
		path:   name,
	}
}

// Next reads the next variant. Returns nil, nil when there are no more
// variants.
func (p *Parser) Next() (*Variant, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read variant line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		return p.parseLine(line)
	}
}

func (p *Parser) parseLine(line string) (*Variant, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 5 {
		return nil, &MalformedVariantInputError{
			File:   p.path,
			Line:   p.lineNumber,
			Reason: fmt.Sprintf("expected at least 5 columns, found %d", len(fields)),
		}
	}

	pos, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, &MalformedVariantInputError{
			File:   p.path,
			Line:   p.lineNumber,
			Reason: fmt.Sprintf("invalid position %q", fields[1]),
		}
	}

	return &Variant{
		Chrom: fields[0],
		Pos:   pos,
		ID:    fields[2],
		Ref:   fields[3],
		Alt:   fields[4],
	}, nil
}

// ReadAll reads every remaining variant from the parser.
func (p *Parser) ReadAll() ([]Variant, error) {
	var variants []Variant
	for {
		v, err := p.Next()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return variants, nil
		}
		variants = append(variants, *v)
	}
}

// LineNumber returns the current line number being processed.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Close closes the parser and underlying file.
func (p *Parser) Close() error {
	if p.gzipReader != nil {
		p.gzipReader.Close()
	}
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// Load reads all variants from one or more files, concatenated in argument
// order.
func Load(paths ...string) ([]Variant, error) {
	var variants []Variant
	for _, path := range paths {
		p, err := NewParser(path)
		if err != nil {
			return nil, err
		}
		vs, err := p.ReadAll()
		p.Close()
		if err != nil {
			return nil, err
		}
		variants = append(variants, vs...)
	}
	return variants, nil
}

// MalformedVariantInputError reports a variant line that could not be
// parsed, with enough context to locate and fix it.
type MalformedVariantInputError struct {
	File   string
	Line   int
	Reason string
}

func (e *MalformedVariantInputError) Error() string {
	return fmt.Sprintf("%s: malformed variant input at line %d: %s", e.File, e.Line, e.Reason)
}
