package portal

import (
	"context"
	"sync"

	"feebank/internal/models"
)

// MemorySource serves portal data held in process memory.
type MemorySource struct {
	mu       sync.RWMutex
	students map[string]*Dataset
}

func NewMemorySource(datasets ...*Dataset) *MemorySource {
	m := &MemorySource{students: make(map[string]*Dataset)}
	for _, ds := range datasets {
		if ds == nil {
			continue
		}
		m.students[ds.Records.Student.StudentID] = ds
	}
	return m
}

func (m *MemorySource) dataset(studentID string) (*Dataset, error) {
	ds, ok := m.students[studentID]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return ds, nil
}

func (m *MemorySource) Records(_ context.Context, studentID string) (*Records, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, err := m.dataset(studentID)
	if err != nil {
		return nil, err
	}
	rec := ds.Records
	return &rec, nil
}

func (m *MemorySource) Feedback(_ context.Context, studentID string) ([]models.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, err := m.dataset(studentID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Feedback, len(ds.Feedback))
	copy(out, ds.Feedback)
	return out, nil
}

func (m *MemorySource) AddFeedback(_ context.Context, studentID string, fb models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ds, err := m.dataset(studentID)
	if err != nil {
		return err
	}
	ds.Feedback = append(ds.Feedback, fb)
	return nil
}

func (m *MemorySource) Undertakings(_ context.Context, studentID string) ([]models.AttendanceUndertaking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ds, err := m.dataset(studentID)
	if err != nil {
		return nil, err
	}
	out := make([]models.AttendanceUndertaking, len(ds.Undertakings))
	copy(out, ds.Undertakings)
	return out, nil
}

func (m *MemorySource) AddUndertaking(_ context.Context, u *models.AttendanceUndertaking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ds, err := m.dataset(u.StudentID)
	if err != nil {
		return err
	}
	nextID := 1
	for _, existing := range ds.Undertakings {
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}
	u.ID = nextID
	ds.Undertakings = append(ds.Undertakings, *u)
	return nil
}

// KnownStudent reports whether a dataset exists for studentID.
func (m *MemorySource) KnownStudent(_ context.Context, studentID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.students[studentID]
	return ok, nil
}
