package favorites

import "slices"

// Set - избранные собаки пользователя. Порядок добавления сохраняется для отображения.
// Not safe for concurrent use; the owning session serialises access.
type Set struct {
	ids   []string
	index map[string]struct{}
}

func New() *Set {
	return &Set{index: make(map[string]struct{})}
}

// Toggle удаляет id, если он есть, иначе добавляет. Возвращает новое состояние членства.
func (s *Set) Toggle(id string) bool {
	if _, ok := s.index[id]; ok {
		delete(s.index, id)
		s.ids = slices.DeleteFunc(s.ids, func(v string) bool { return v == id })
		return false
	}

	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *Set) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}

// IDs возвращает копию в порядке добавления
func (s *Set) IDs() []string {
	return slices.Clone(s.ids)
}
