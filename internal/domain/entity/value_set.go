package entity

import "encoding/json"

// ValueSet es un conjunto ordenado de strings sin duplicados.
// Conserva el orden de inserción; se serializa como arreglo JSON.
type ValueSet struct {
	items []string
	index map[string]struct{}
}

// NewValueSet construye un conjunto a partir de values, descartando duplicados
// (se conserva la primera aparición).
func NewValueSet(values ...string) ValueSet {
	var s ValueSet
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add agrega v al final si no existe. Devuelve true si lo agregó.
func (s *ValueSet) Add(v string) bool {
	if s.Contains(v) {
		return false
	}
	if s.index == nil {
		s.index = make(map[string]struct{}, len(s.items)+1)
		for _, it := range s.items {
			s.index[it] = struct{}{}
		}
	}
	s.items = append(s.items, v)
	s.index[v] = struct{}{}
	return true
}

// Remove quita v manteniendo el orden del resto. Devuelve true si existía.
func (s *ValueSet) Remove(v string) bool {
	if !s.Contains(v) {
		return false
	}
	out := s.items[:0:0]
	for _, it := range s.items {
		if it != v {
			out = append(out, it)
		}
	}
	s.items = out
	delete(s.index, v)
	return true
}

// Contains informa si v pertenece al conjunto.
func (s ValueSet) Contains(v string) bool {
	if s.index != nil {
		_, ok := s.index[v]
		return ok
	}
	for _, it := range s.items {
		if it == v {
			return true
		}
	}
	return false
}

// Toggle invierte la pertenencia de v y devuelve si quedó presente.
// Dos llamadas consecutivas con el mismo valor dejan el conjunto como estaba.
func (s *ValueSet) Toggle(v string) bool {
	if s.Remove(v) {
		return false
	}
	s.Add(v)
	return true
}

// Values devuelve una copia de los elementos en orden; nunca nil.
func (s ValueSet) Values() []string {
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// Len cantidad de elementos.
func (s ValueSet) Len() int { return len(s.items) }

// Clone copia profunda.
func (s ValueSet) Clone() ValueSet {
	return NewValueSet(s.items...)
}

// MarshalJSON serializa como arreglo ([] cuando está vacío, nunca null).
func (s ValueSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON acepta un arreglo de strings (o null) y descarta duplicados.
func (s *ValueSet) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewValueSet(values...)
	return nil
}
