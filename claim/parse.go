package claim

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse converts one "#<id> @ <x>,<y>: <w>x<h>" line into a claim
// The first occurrence of each delimiter is used; a trailing '\r' is ignored
func Parse(line string) (Claim, error) {
	line = strings.TrimRight(line, "\r")

	// Delimiters must appear in this order
	delims := [...]struct {
		name string
		b    byte
	}{
		{"'#'", '#'},
		{"'@'", '@'},
		{"','", ','},
		{"':'", ':'},
		{"'x'", 'x'},
	}
	var pos [len(delims)]int
	prev := -1
	for i, d := range delims {
		p := strings.IndexByte(line, d.b)
		if p < 0 || p <= prev {
			return Claim{}, &ParseError{Text: line, Field: d.name, Err: ErrMissingDelimiter}
		}
		pos[i] = p
		prev = p
	}
	hash, at, comma, colon, mul := pos[0], pos[1], pos[2], pos[3], pos[4]

	if line[at-1] != ' ' || line[at+1] != ' ' {
		return Claim{}, &ParseError{Text: line, Field: "space around '@'", Err: ErrMissingDelimiter}
	}
	if line[colon+1] != ' ' {
		return Claim{}, &ParseError{Text: line, Field: "space after ':'", Err: ErrMissingDelimiter}
	}

	fields := [...]struct {
		name string
		s    string
	}{
		{"id", line[hash+1 : at-1]},
		{"x", line[at+2 : comma]},
		{"y", line[comma+1 : colon]},
		{"width", line[colon+2 : mul]},
		{"height", line[mul+1:]},
	}
	var vals [len(fields)]uint32
	for i, f := range fields {
		v, err := strconv.ParseUint(f.s, 10, 32)
		if err != nil {
			return Claim{}, &ParseError{
				Text:  line,
				Field: f.name,
				Err:   errors.Wrapf(ErrBadNumber, "%q", f.s),
			}
		}
		vals[i] = uint32(v)
	}

	return New(vals[0], int(vals[1]), int(vals[2]), int(vals[3]), int(vals[4])), nil
}

// ParseAll reads newline-separated claims in input order
// Stops at the first malformed line and returns no claims with its error
func ParseAll(r io.Reader) ([]Claim, error) {
	var claims []Claim
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		c, err := Parse(scanner.Text())
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
			}
			return nil, err
		}
		claims = append(claims, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read claims")
	}
	return claims, nil
}
