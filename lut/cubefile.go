package lut

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Errors returned by ReadCube.
var (
	// ErrMissingSize is returned when a .cube file has no LUT_3D_SIZE line.
	ErrMissingSize = errors.New("lut: missing LUT_3D_SIZE")

	// ErrSizeMismatch is returned when the entry count does not match the size.
	ErrSizeMismatch = errors.New("lut: entry count does not match LUT_3D_SIZE")

	// ErrUnsupported is returned for 1-D tables, non-unit domains and sizes
	// above MaxCubeFileDimension.
	ErrUnsupported = errors.New("lut: unsupported .cube feature")
)

// MaxCubeFileDimension is the largest LUT_3D_SIZE ReadCube accepts.
const MaxCubeFileDimension = 256

// WriteCube writes c in the .cube text format. The format lists entries
// with red changing fastest, which is the cube's own layout.
func (c *Cube) WriteCube(w io.Writer, title string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "TITLE %q\n", title)
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", c.Dimension)
	bw.WriteString("DOMAIN_MIN 0.0 0.0 0.0\n")
	bw.WriteString("DOMAIN_MAX 1.0 1.0 1.0\n")

	for i := 0; i+3 < len(c.Data); i += 4 {
		fmt.Fprintf(bw, "%.6f %.6f %.6f\n", c.Data[i], c.Data[i+1], c.Data[i+2])
	}
	return bw.Flush()
}

// ReadCube parses a 3-D .cube table. Only the unit domain is accepted.
func ReadCube(r io.Reader) (*Cube, error) {
	var (
		dim  int
		data []float32
		line int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		switch fields[0] {
		case "TITLE":
			continue
		case "LUT_1D_SIZE":
			return nil, fmt.Errorf("%w: 1-D table", ErrUnsupported)
		case "LUT_3D_SIZE":
			if len(fields) != 2 {
				return nil, fmt.Errorf("lut: line %d: malformed LUT_3D_SIZE", line)
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < MinDimension {
				return nil, fmt.Errorf("lut: line %d: invalid size %q", line, fields[1])
			}
			if n > MaxCubeFileDimension {
				return nil, fmt.Errorf("%w: LUT_3D_SIZE %d above %d", ErrUnsupported, n, MaxCubeFileDimension)
			}
			dim = n
			continue
		case "DOMAIN_MIN", "DOMAIN_MAX":
			want := "0"
			if fields[0] == "DOMAIN_MAX" {
				want = "1"
			}
			if err := checkDomain(fields[1:], want); err != nil {
				return nil, fmt.Errorf("lut: line %d: %w", line, err)
			}
			continue
		}

		if dim == 0 {
			return nil, fmt.Errorf("lut: line %d: %w", line, ErrMissingSize)
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("lut: line %d: want 3 values, got %d", line, len(fields))
		}
		if len(data) >= dim*dim*dim*4 {
			return nil, fmt.Errorf("%w: more than %d entries", ErrSizeMismatch, dim*dim*dim)
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 32)
			if err != nil {
				return nil, fmt.Errorf("lut: line %d: %w", line, err)
			}
			data = append(data, float32(v))
		}
		data = append(data, 1)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lut: read: %w", err)
	}

	if dim == 0 {
		return nil, ErrMissingSize
	}
	if len(data) != dim*dim*dim*4 {
		return nil, fmt.Errorf("%w: got %d entries, want %d", ErrSizeMismatch, len(data)/4, dim*dim*dim)
	}
	return &Cube{Dimension: dim, Data: data}, nil
}

func checkDomain(fields []string, want string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: malformed domain", ErrUnsupported)
	}
	w, _ := strconv.ParseFloat(want, 64)
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return err
		}
		if v != w {
			return fmt.Errorf("%w: domain %s", ErrUnsupported, strings.Join(fields, " "))
		}
	}
	return nil
}
