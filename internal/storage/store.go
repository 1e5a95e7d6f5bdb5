package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/orbitplot/internal/dynamo"
)

// Store is a directory that holds rendered images and trajectory dumps.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.baseDir, name)
}

var csvHeader = []string{"step", "x", "y", "vx", "vy"}

// CSVRecorder writes every observed state as a CSV row. Write errors are
// kept and reported by Close, since observers cannot fail.
type CSVRecorder struct {
	file *os.File
	w    *csv.Writer
	rows int
	err  error
}

func NewCSVRecorder(path string) (*CSVRecorder, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(file)
	if err := w.Write(csvHeader); err != nil {
		file.Close()
		return nil, err
	}
	return &CSVRecorder{file: file, w: w}, nil
}

func (r *CSVRecorder) OnState(s dynamo.State) {
	if r.err != nil {
		return
	}
	row := []string{
		strconv.FormatUint(s.Step, 10),
		strconv.FormatFloat(s.X, 'f', 6, 64),
		strconv.FormatFloat(s.Y, 'f', 6, 64),
		strconv.FormatFloat(s.VX, 'f', 6, 64),
		strconv.FormatFloat(s.VY, 'f', 6, 64),
	}
	if err := r.w.Write(row); err != nil {
		r.err = fmt.Errorf("write step %d: %w", s.Step, err)
		return
	}
	r.rows++
}

func (r *CSVRecorder) Rows() int { return r.rows }

func (r *CSVRecorder) Close() error {
	r.w.Flush()
	if r.err == nil {
		r.err = r.w.Error()
	}
	if err := r.file.Close(); err != nil && r.err == nil {
		r.err = err
	}
	return r.err
}

// LoadStates reads a file written by CSVRecorder.
func LoadStates(path string) ([]dynamo.State, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(csvHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []dynamo.State{}, nil
	}

	states := make([]dynamo.State, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		rec := records[i]

		step, err := strconv.ParseUint(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		var vals [4]float64
		for j := range vals {
			vals[j], err = strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}

		states = append(states, dynamo.State{X: vals[0], Y: vals[1], VX: vals[2], VY: vals[3], Step: step})
	}

	return states, nil
}
