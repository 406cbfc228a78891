package budget

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

var ErrNegativeLimit = errors.New("budget limit must be a non-negative number")

// Map holds one spending limit per category. Unlike a plain Go map it
// remembers insertion order, because budget reports enumerate categories
// in the order the user configured them, and that order has to survive
// a JSON round-trip.
type Map struct {
	limits map[string]float64
	order  []string
}

func NewMap() *Map {
	return &Map{limits: make(map[string]float64)}
}

// Set stores a limit for the category, normalizing the name the same way
// expense records do. Setting an existing category overwrites the limit
// but keeps its original position.
func (m *Map) Set(category string, limit float64) error {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 0 {
		return ErrNegativeLimit
	}
	category = expense.NormalizeCategory(category)
	if category == "" {
		return expense.ErrEmptyCategory
	}
	if _, ok := m.limits[category]; !ok {
		m.order = append(m.order, category)
	}
	m.limits[category] = limit
	return nil
}

func (m *Map) Limit(category string) (float64, bool) {
	limit, ok := m.limits[category]
	return limit, ok
}

// Categories returns the configured categories in insertion order.
func (m *Map) Categories() []string {
	res := make([]string, len(m.order))
	copy(res, m.order)
	return res
}

func (m *Map) Len() int {
	return len(m.order)
}

// Clone returns an independent copy with the same limits and order.
func (m *Map) Clone() *Map {
	res := NewMap()
	res.order = make([]string, len(m.order))
	copy(res.order, m.order)
	for category, limit := range m.limits {
		res.limits[category] = limit
	}
	return res
}

func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, errors.Wrap(err, "marshal budgets")
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.limits[category])
		if err != nil {
			return nil, errors.Wrap(err, "marshal budgets")
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON walks the object token by token instead of decoding into
// a map, preserving the key order of the stored file.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "unmarshal budgets")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("unmarshal budgets: expected object")
	}

	m.limits = make(map[string]float64)
	m.order = nil
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errors.Wrap(err, "unmarshal budgets")
		}
		category, ok := tok.(string)
		if !ok {
			return errors.New("unmarshal budgets: expected string key")
		}
		var limit float64
		if err = dec.Decode(&limit); err != nil {
			return errors.Wrap(err, "unmarshal budgets")
		}
		if limit < 0 {
			return ErrNegativeLimit
		}
		if _, seen := m.limits[category]; !seen {
			m.order = append(m.order, category)
		}
		m.limits[category] = limit
	}

	_, err = dec.Token()
	return errors.Wrap(err, "unmarshal budgets")
}
