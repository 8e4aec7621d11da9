// Package catalog holds the puzzle definitions: which solver each puzzle uses,
// its fixed input, and its known answer. Definitions live in problems.yaml and
// input files under data/, both embedded into the binary.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed problems.yaml
var problemsYAML []byte

//go:embed data
var dataFS embed.FS

var (
	// ErrUnknownProblem indicates a lookup for an id the catalog does not hold.
	ErrUnknownProblem = errors.New("catalog: unknown problem")

	// ErrInvalidCatalog indicates a definition that cannot be solved as written.
	ErrInvalidCatalog = errors.New("catalog: invalid definition")
)

// Kind selects the solver for a problem.
type Kind string

const (
	KindMultiples          Kind = "multiples"
	KindEvenFibonacci      Kind = "even-fibonacci"
	KindLargestPrimeFactor Kind = "largest-prime-factor"
	KindSmallestMultiple   Kind = "smallest-multiple"
	KindMaxPathSum         Kind = "max-path-sum"
)

// Kinds lists every kind the catalog accepts.
var Kinds = []Kind{
	KindMultiples,
	KindEvenFibonacci,
	KindLargestPrimeFactor,
	KindSmallestMultiple,
	KindMaxPathSum,
}

// Params is the union of inputs used by the solver kinds; each kind reads
// only the fields it needs.
type Params struct {
	Limit    int64   `yaml:"limit"`    // multiples, even-fibonacci
	Divisors []int64 `yaml:"divisors"` // multiples
	Number   int64   `yaml:"number"`   // largest-prime-factor
	From     int64   `yaml:"from"`     // smallest-multiple
	To       int64   `yaml:"to"`       // smallest-multiple
	File     string  `yaml:"file"`     // max-path-sum, relative to Data()
}

// Problem is one puzzle definition.
type Problem struct {
	ID     int    `yaml:"id"`
	Slug   string `yaml:"slug"`
	Title  string `yaml:"title"`
	Kind   Kind   `yaml:"kind"`
	Params Params `yaml:"params"`
	Answer int64  `yaml:"answer"` // known answer; 0 when not recorded
}

// Catalog is an immutable, id-ordered set of problems.
type Catalog struct {
	problems []Problem
	byID     map[int]int
}

type document struct {
	Problems []Problem `yaml:"problems"`
}

// Load decodes the embedded problems.yaml.
func Load() (*Catalog, error) {
	return Decode(problemsYAML)
}

// Decode parses and validates a catalog document. Unknown YAML keys are rejected.
func Decode(raw []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	c := &Catalog{
		problems: slices.Clone(doc.Problems),
		byID:     make(map[int]int, len(doc.Problems)),
	}
	slices.SortFunc(c.problems, func(a, b Problem) int { return a.ID - b.ID })

	for i, p := range c.problems {
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("problem %d: duplicate id: %w", p.ID, ErrInvalidCatalog)
		}
		c.byID[p.ID] = i
	}

	return c, nil
}

// Problems returns a copy of every problem, ordered by id.
func (c *Catalog) Problems() []Problem {
	return slices.Clone(c.problems)
}

// Len returns the number of problems.
func (c *Catalog) Len() int { return len(c.problems) }

// Lookup returns the problem with the given id.
func (c *Catalog) Lookup(id int) (Problem, error) {
	i, ok := c.byID[id]
	if !ok {
		return Problem{}, fmt.Errorf("problem %d: %w", id, ErrUnknownProblem)
	}

	return c.problems[i], nil
}

// Data returns the embedded input files, rooted at data/.
func Data() fs.FS {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		// "data" is a fixed, embedded directory; Sub only fails on an invalid name.
		panic(err)
	}

	return sub
}

func validate(p Problem) error {
	fail := func(reason string) error {
		return fmt.Errorf("problem %d: %s: %w", p.ID, reason, ErrInvalidCatalog)
	}

	if p.ID <= 0 {
		return fail("id must be positive")
	}
	if p.Slug == "" {
		return fail("missing slug")
	}

	switch p.Kind {
	case KindMultiples:
		if p.Params.Limit < 0 || len(p.Params.Divisors) == 0 {
			return fail("multiples needs limit ≥ 0 and divisors")
		}
	case KindEvenFibonacci:
		if p.Params.Limit < 0 {
			return fail("even-fibonacci needs limit ≥ 0")
		}
	case KindLargestPrimeFactor:
		if p.Params.Number < 2 {
			return fail("largest-prime-factor needs number ≥ 2")
		}
	case KindSmallestMultiple:
		if p.Params.From < 1 || p.Params.To < p.Params.From {
			return fail("smallest-multiple needs 1 ≤ from ≤ to")
		}
	case KindMaxPathSum:
		if p.Params.File == "" {
			return fail("max-path-sum needs file")
		}
	default:
		return fail(fmt.Sprintf("unknown kind %q", p.Kind))
	}

	return nil
}
