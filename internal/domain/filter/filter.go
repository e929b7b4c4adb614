package filter

import (
	"slices"
	"strings"

	"dogmatch/internal/domain/models"
)

const (
	DefaultAgeMin = 0
	DefaultAgeMax = 10
	FirstPage     = 1
)

// State - снимок фильтров, передается по значению
type State struct {
	Breeds   []string
	ZipCodes []string
	AgeMin   int
	AgeMax   int
	Page     int
	Sort     models.Sort
}

// Filter хранит текущие фильтры поиска. Сам сетевых запросов не делает,
// за изменениями следит владелец (сессия) и передает снимки в поиск.
// Any setter except SetPage resets the page to 1.
type Filter struct {
	state State
}

func New() *Filter {
	return &Filter{
		state: State{
			AgeMin: DefaultAgeMin,
			AgeMax: DefaultAgeMax,
			Page:   FirstPage,
			Sort:   models.DefaultSort,
		},
	}
}

func (f *Filter) SetBreeds(breeds []string) {
	f.state.Breeds = normalizeSet(breeds)
	f.state.Page = FirstPage
}

func (f *Filter) SetZipCodes(zipCodes []string) {
	f.state.ZipCodes = normalizeSet(zipCodes)
	f.state.Page = FirstPage
}

// SetAgeRange swaps an inverted range and clamps negative bounds to zero.
func (f *Filter) SetAgeRange(ageMin, ageMax int) {
	if ageMin > ageMax {
		ageMin, ageMax = ageMax, ageMin
	}
	f.state.AgeMin = max(ageMin, 0)
	f.state.AgeMax = max(ageMax, 0)
	f.state.Page = FirstPage
}

func (f *Filter) SetSort(sort models.Sort) error {
	if err := sort.Validate(); err != nil {
		return err
	}
	f.state.Sort = sort
	f.state.Page = FirstPage
	return nil
}

func (f *Filter) SetPage(page int) {
	f.state.Page = max(page, FirstPage)
}

func (f *Filter) Snapshot() State {
	return f.state.Clone()
}

func (s State) Clone() State {
	s.Breeds = slices.Clone(s.Breeds)
	s.ZipCodes = slices.Clone(s.ZipCodes)
	return s
}

func (s State) Equal(other State) bool {
	return s.AgeMin == other.AgeMin &&
		s.AgeMax == other.AgeMax &&
		s.Page == other.Page &&
		s.Sort == other.Sort &&
		slices.Equal(s.Breeds, other.Breeds) &&
		slices.Equal(s.ZipCodes, other.ZipCodes)
}

// Query строит параметры запроса поиска из снимка: from = (page-1)*size
func (s State) Query(pageSize int) models.SearchQuery {
	page := max(s.Page, FirstPage)
	return models.SearchQuery{
		Breeds:   slices.Clone(s.Breeds),
		ZipCodes: slices.Clone(s.ZipCodes),
		AgeMin:   s.AgeMin,
		AgeMax:   s.AgeMax,
		Size:     pageSize,
		From:     (page - 1) * pageSize,
		Sort:     s.Sort.String(),
	}
}

// ParseZipCodes разбирает ввод вида "10001, 10002,,"
func ParseZipCodes(raw string) []string {
	var zipCodes []string
	for _, part := range strings.Split(raw, ",") {
		if zip := strings.TrimSpace(part); zip != "" {
			zipCodes = append(zipCodes, zip)
		}
	}
	return zipCodes
}

// normalizeSet убирает пустые значения и дубли, сохраняя порядок ввода.
// Пустое множество хранится как nil (= без фильтра).
func normalizeSet(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
