package vertexio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/rectigrid"
	"github.com/katalvlaran/rectigrid/lattice"
)

// ErrNoVertices marks input that yielded no vertex at all. Read and ReadFile do
// not return it; callers that need at least one vertex wrap it.
var ErrNoVertices = errors.New("vertexio: no vertices in input")

var linePattern = regexp.MustCompile(`^\s*([0-9]+)\s*,\s*([0-9]+)\s*$`)

// Skipped is an input line that did not parse. Line is 1-based.
type Skipped struct {
	Line int
	Text string
}

func (s Skipped) String() string { return fmt.Sprintf("line %d: %q", s.Line, s.Text) }

// Read parses r line by line and returns the vertices in input order together
// with every malformed line it skipped.
func Read(r io.Reader) ([]lattice.Point, []Skipped, error) {
	var (
		vs      []lattice.Point
		skipped []Skipped
	)
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		p, ok := parse(text)
		if !ok {
			rectigrid.Logger().Warn("vertexio: skipping malformed line", "line", n, "text", text)
			skipped = append(skipped, Skipped{Line: n, Text: text})
			continue
		}
		vs = append(vs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("vertexio: read: %w", err)
	}

	return vs, skipped, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) ([]lattice.Point, []Skipped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("vertexio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

func parse(line string) (lattice.Point, bool) {
	m := linePattern.FindStringSubmatch(line)
	if m == nil {
		return lattice.Point{}, false
	}
	x, err := strconv.Atoi(m[1])
	if err != nil {
		return lattice.Point{}, false
	}
	y, err := strconv.Atoi(m[2])
	if err != nil {
		return lattice.Point{}, false
	}
	return lattice.Pt(x, y), true
}
