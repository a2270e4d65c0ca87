package storage

import (
	"context"
	"sync"

	"github.com/grachmannico95/gig-earnings/internal/domain"
)

// MemoryStore keeps parsed study uploads for the life of the process.
// When full, the oldest upload is evicted.
type MemoryStore struct {
	uploads    map[string]*domain.StudyUpload
	order      []string
	maxUploads int
	mu         sync.RWMutex
}

func NewMemoryStore(maxUploads int) *MemoryStore {
	if maxUploads < 1 {
		maxUploads = 100
	}

	return &MemoryStore{
		uploads:    make(map[string]*domain.StudyUpload),
		maxUploads: maxUploads,
	}
}

func (s *MemoryStore) CreateUpload(ctx context.Context, upload *domain.StudyUpload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.uploads[upload.ID]; !exists {
		s.order = append(s.order, upload.ID)
	}
	s.uploads[upload.ID] = cloneUpload(upload)

	for len(s.order) > s.maxUploads {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.uploads, oldest)
	}

	return nil
}

func (s *MemoryStore) GetUpload(ctx context.Context, uploadID string) (*domain.StudyUpload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return nil, domain.ErrUploadNotFound
	}

	return cloneUpload(upload), nil
}

func (s *MemoryStore) DeleteUpload(ctx context.Context, uploadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.uploads[uploadID]; !exists {
		return domain.ErrUploadNotFound
	}

	delete(s.uploads, uploadID)
	for i, id := range s.order {
		if id == uploadID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

func (s *MemoryStore) SaveCalculation(ctx context.Context, uploadID string, calc *domain.StudyCalculation, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, exists := s.uploads[uploadID]
	if !exists {
		return domain.ErrUploadNotFound
	}

	upload.LastCalculation = cloneCalculation(calc)
	upload.LastError = errMsg

	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.uploads)
}

// Callers get copies so stored rows cannot be mutated from outside.
func cloneUpload(u *domain.StudyUpload) *domain.StudyUpload {
	c := *u
	c.Headers = append([]string(nil), u.Headers...)
	c.Rows = append([]domain.StudyRow(nil), u.Rows...)
	c.LastCalculation = cloneCalculation(u.LastCalculation)
	return &c
}

func cloneCalculation(calc *domain.StudyCalculation) *domain.StudyCalculation {
	if calc == nil {
		return nil
	}
	c := *calc
	c.Studies = append([]domain.StudyRow(nil), calc.Studies...)
	return &c
}
