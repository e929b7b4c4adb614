package models

import (
	"errors"
	"fmt"
	"strings"
)

// PageSize фиксированный размер страницы выдачи
const PageSize = 10

type (
	SortField     string
	SortDirection string
)

const (
	SortFieldBreed SortField = "breed"
	SortFieldAge   SortField = "age"

	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type (
	Sort struct {
		Field     SortField
		Direction SortDirection
	}

	// SearchQuery - параметры одного запроса GET /dogs/search
	SearchQuery struct {
		Breeds   []string
		ZipCodes []string
		AgeMin   int
		AgeMax   int
		Size     int
		From     int
		Sort     string
	}

	// SearchResult заменяется целиком на каждый успешный ответ
	SearchResult struct {
		IDs   []string // порядок сортировки сервера
		Total int
	}

	DogRecord struct {
		ID       string
		Name     string
		Breed    string
		Age      *int
		ZipCode  string
		ImageRef string
	}
)

var (
	ErrInvalidData    = errors.New("invalid input data")
	ErrUnfound        = errors.New("unfound data")
	ErrAuthentication = errors.New("authentication failed")
	ErrUnauthorized   = errors.New("session is not authorized")
	ErrNetwork        = errors.New("catalog request failed")
	ErrPrecondition   = errors.New("precondition violated")
)

var DefaultSort = Sort{Field: SortFieldBreed, Direction: SortAsc}

func (s Sort) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

func (s Sort) Validate() error {
	switch s.Field {
	case SortFieldBreed, SortFieldAge:
	default:
		return fmt.Errorf("%w: unknown sort field %q", ErrInvalidData, s.Field)
	}
	switch s.Direction {
	case SortAsc, SortDesc:
	default:
		return fmt.Errorf("%w: unknown sort direction %q", ErrInvalidData, s.Direction)
	}
	return nil
}

// ParseSort разбирает строку вида "breed:asc"
func ParseSort(raw string) (Sort, error) {
	field, dir, ok := strings.Cut(raw, ":")
	if !ok {
		return Sort{}, fmt.Errorf("%w: sort must look like <field>:<asc|desc>, got %q", ErrInvalidData, raw)
	}

	s := Sort{
		Field:     SortField(strings.TrimSpace(field)),
		Direction: SortDirection(strings.TrimSpace(dir)),
	}
	if err := s.Validate(); err != nil {
		return Sort{}, err
	}
	return s, nil
}
