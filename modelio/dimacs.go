package modelio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tubs-alg/samplns-go/feature"
	"github.com/tubs-alg/samplns-go/preprocess"
	"github.com/tubs-alg/samplns-go/samplnserr"
)

// ParseDIMACS decodes a DIMACS CNF feature model from r: `c <int>
// <name>` comment lines name variables, `p cnf <nvars> <nclauses>`
// declares sizes, and each following line is a clause of signed
// integers terminated by 0. The model has no feature tree — every
// clause becomes a rule over variable names.
func ParseDIMACS(r io.Reader) (*preprocess.Instance, error) {
	names := make(map[int]string)
	var order []int
	nvars, nclauses := -1, -1
	var clauses []feature.Formula

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "c"):
			if err := parseDimacsComment(line, names, &order); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "p"):
			n, m, err := parseDimacsHeader(line)
			if err != nil {
				return nil, err
			}
			nvars, nclauses = n, m
		default:
			clause, err := parseDimacsClause(line, names)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, clause)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("modelio: read dimacs: %w", err)
	}

	if nvars < 0 {
		return nil, fmt.Errorf("modelio: dimacs missing 'p cnf' header: %w", samplnserr.ErrMalformedInput)
	}
	if len(order) != nvars {
		return nil, fmt.Errorf("modelio: dimacs declares %d variables but %d are named: %w",
			nvars, len(order), samplnserr.ErrMalformedInput)
	}
	if len(clauses) != nclauses {
		return nil, fmt.Errorf("modelio: dimacs declares %d clauses but %d were read: %w",
			nclauses, len(clauses), samplnserr.ErrMalformedInput)
	}

	features := make([]feature.Label, len(order))
	for i, idx := range order {
		features[i] = names[idx]
	}

	return &preprocess.Instance{
		Name:     "dimacs",
		Features: features,
		Rules:    clauses,
	}, nil
}

func parseDimacsComment(line string, names map[int]string, order *[]int) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil // a plain comment, not a variable naming line
	}
	idx, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil // not a "c <int> <name>" line either
	}
	name := strings.Join(fields[2:], " ")
	for _, existing := range names {
		if existing == name {
			return fmt.Errorf("modelio: dimacs variable name %q used more than once: %w", name, samplnserr.ErrMalformedInput)
		}
	}
	if _, ok := names[idx]; ok {
		return fmt.Errorf("modelio: dimacs variable %d named more than once: %w", idx, samplnserr.ErrMalformedInput)
	}
	names[idx] = name
	*order = append(*order, idx)

	return nil
}

func parseDimacsHeader(line string) (nvars, nclauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[1] != "cnf" {
		return 0, 0, fmt.Errorf("modelio: malformed dimacs header %q: %w", line, samplnserr.ErrMalformedInput)
	}
	nvars, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("modelio: malformed dimacs nvars %q: %w", fields[2], samplnserr.ErrMalformedInput)
	}
	nclauses, err = strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, fmt.Errorf("modelio: malformed dimacs nclauses %q: %w", fields[3], samplnserr.ErrMalformedInput)
	}

	return nvars, nclauses, nil
}

func parseDimacsClause(line string, names map[int]string) (feature.Formula, error) {
	fields := strings.Fields(line)
	var literals []feature.Formula
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("modelio: malformed dimacs clause token %q: %w", f, samplnserr.ErrMalformedInput)
		}
		if n == 0 {
			break
		}
		name, ok := names[abs(n)]
		if !ok {
			return nil, fmt.Errorf("modelio: dimacs clause references unnamed variable %d: %w", abs(n), samplnserr.ErrMalformedInput)
		}
		literals = append(literals, &feature.VarF{Name: name, Negated: n < 0})
	}
	if len(literals) == 0 {
		return nil, fmt.Errorf("modelio: dimacs clause is empty: %w", samplnserr.ErrMalformedInput)
	}
	if len(literals) == 1 {
		return literals[0], nil
	}

	return feature.NewOr(literals...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
