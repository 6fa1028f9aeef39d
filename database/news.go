package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNewsNotFound is returned when a requested news id does not exist.
var ErrNewsNotFound = errors.New("news not found")

// ValidationError reports a required field that was empty on create or
// update. Nothing is committed when one is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %q must not be empty", e.Field)
}

// Store wraps all news persistence.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func validateNews(n *News) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"titulo", n.Title},
		{"tags", n.Tags},
		{"imagem", n.Image},
		{"conteudo", n.Body},
	} {
		if f.value == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// ListNews returns all news, newest first.
func (s *Store) ListNews() ([]News, error) {
	var news []News
	result := s.db.Order("created_at DESC").Find(&news)
	if result.Error != nil {
		return nil, result.Error
	}
	return news, nil
}

// ListNewsOrdered returns all news with an explicit order clause. The
// clause must come from a fixed whitelist, never from user input.
func (s *Store) ListNewsOrdered(order string) ([]News, error) {
	var news []News
	result := s.db.Order(order).Find(&news)
	if result.Error != nil {
		return nil, result.Error
	}
	return news, nil
}

func (s *Store) GetNews(id uint) (*News, error) {
	var n News
	result := s.db.First(&n, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNewsNotFound
		}
		return nil, result.Error
	}
	return &n, nil
}

func (s *Store) CreateNews(n *News) error {
	if err := validateNews(n); err != nil {
		return err
	}
	return s.db.Create(n).Error
}

// UpdateNews replaces the editable fields of the news with the given id.
// CreatedAt is never touched.
func (s *Store) UpdateNews(id uint, fields News) (*News, error) {
	n, err := s.GetNews(id)
	if err != nil {
		return nil, err
	}

	n.Title = fields.Title
	n.Tags = fields.Tags
	n.Image = fields.Image
	n.Body = fields.Body

	if err := validateNews(n); err != nil {
		return nil, err
	}
	if err := s.db.Save(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Store) DeleteNews(id uint) error {
	n, err := s.GetNews(id)
	if err != nil {
		return err
	}
	return s.db.Delete(n).Error
}
