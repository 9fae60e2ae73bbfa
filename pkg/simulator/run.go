package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"regexp"
	"strconv"

	"github.com/beevik/etree"

	"github.com/doodlesbykumbi/drugbank-in-go/pkg/drugbank"
)

const (
	// DefaultTotal is the record count of a simulated export.
	DefaultTotal = 20000
	// DefaultIDPrefix prefixes generated DrugBank IDs.
	DefaultIDPrefix = "DB"
)

// ErrNoRecords is returned when the source export has no drug to learn from.
var ErrNoRecords = errors.New("source document has no drug records")

var numericID = regexp.MustCompile(`^[A-Za-z]*(\d+)$`)

// Options controls a simulation run.
type Options struct {
	// Total is the number of records in the output, originals included.
	Total int
	Seed  int64
	// IDPrefix prefixes generated IDs; DefaultIDPrefix when empty.
	IDPrefix string
	// StartID is the numeric part of the first generated ID. Zero means
	// one above the highest numeric primary ID in the source.
	StartID int
}

// Result summarizes a simulation run.
type Result struct {
	Original  int    `json:"original"`
	Generated int    `json:"generated"`
	FirstID   string `json:"first_id,omitempty"`
	LastID    string `json:"last_id,omitempty"`
}

// Simulate reads an export from src and writes it to dst extended with
// generated records until opts.Total records exist. Generated records get
// consecutive primary IDs. The output is deterministic for a given seed.
func Simulate(ctx context.Context, src io.Reader, dst io.Writer, opts Options) (*Result, error) {
	if opts.Total <= 0 {
		opts.Total = DefaultTotal
	}
	if opts.IDPrefix == "" {
		opts.IDPrefix = DefaultIDPrefix
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(src); err != nil {
		return nil, &drugbank.ParseError{Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, drugbank.ErrEmptyDocument
	}

	var records []*etree.Element
	for _, child := range root.ChildElements() {
		if child.Tag == "drug" {
			records = append(records, child)
		}
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	stats := NewStats()
	next := opts.StartID
	for _, record := range records {
		stats.Aggregate(record)
		if opts.StartID == 0 {
			if n, ok := primaryNumber(record); ok && n >= next {
				next = n + 1
			}
		}
	}
	if next == 0 {
		next = 1
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	result := &Result{Original: len(records)}
	for i := len(records); i < opts.Total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		template := records[rng.Intn(len(records))]
		record := Generate(template, "", stats, rng)

		id := fmt.Sprintf("%s%05d", opts.IDPrefix, next)
		SetPrimaryID(record, id)
		root.AddChild(record)
		next++

		if result.FirstID == "" {
			result.FirstID = id
		}
		result.LastID = id
		result.Generated++
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(dst); err != nil {
		return nil, fmt.Errorf("failed to write simulated document: %w", err)
	}
	return result, nil
}

// SimulateFile runs Simulate from the export at srcPath into dstPath.
func SimulateFile(ctx context.Context, srcPath, dstPath string, opts Options) (*Result, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", srcPath, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dstPath, err)
	}

	result, err := Simulate(ctx, src, dst, opts)
	if closeErr := dst.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", dstPath, closeErr)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func primaryNumber(record *etree.Element) (int, bool) {
	for _, child := range record.ChildElements() {
		if child.Tag != "drugbank-id" || child.SelectAttrValue("primary", "") != "true" {
			continue
		}
		m := numericID.FindStringSubmatch(child.Text())
		if m == nil {
			return 0, false
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
