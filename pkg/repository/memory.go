package repository

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/secmon-lab/vaxchart/pkg/domain/model"
)

// Memory implements DataSource and Output in memory
type Memory struct {
	mu          sync.RWMutex
	mortality   []model.RawMortality
	vaccination []model.RawVaccination
	output      []byte
	written     bool
}

// NewMemory creates a memory repository holding the given entries
func NewMemory(mortality []model.RawMortality, vaccination []model.RawVaccination) *Memory {
	return &Memory{
		mortality:   mortality,
		vaccination: vaccination,
	}
}

// Mortality returns a copy of the mortality entries
func (m *Memory) Mortality(ctx context.Context) ([]model.RawMortality, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.RawMortality{}, m.mortality...), nil
}

// Vaccination returns a copy of the vaccination entries
func (m *Memory) Vaccination(ctx context.Context) ([]model.RawVaccination, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.RawVaccination{}, m.vaccination...), nil
}

// Write keeps the rendered content if fn succeeds
func (m *Memory) Write(ctx context.Context, fn func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.output = buf.Bytes()
	m.written = true
	return nil
}

// Output returns the last written content and whether anything was written
func (m *Memory) Output() ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]byte(nil), m.output...), m.written
}
