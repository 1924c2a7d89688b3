package services

import (
	"sort"

	"homestay-backend/models"
	"homestay-backend/store"
)

type NoteService struct {
	store *store.Store
}

func NewNoteService(st *store.Store) *NoteService {
	return &NoteService{store: st}
}

// List returns notes most recently updated first.
func (s *NoteService) List() ([]*models.Note, error) {
	notes, err := s.store.Notes.All()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
	return notes, nil
}

func (s *NoteService) Create(n *models.Note) (*models.Note, error) {
	return s.store.Notes.Create(n)
}

// Update merges fields and refreshes the note's update timestamp.
func (s *NoteService) Update(id string, partial map[string]any) (*models.Note, bool, error) {
	return s.store.Notes.Update(id, partial)
}

func (s *NoteService) Delete(id string) (bool, error) {
	return s.store.Notes.Delete(id)
}
