package stub

import (
	"errors"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/synergos-cli/internal/core/domain"
)

// Store errors map to HTTP statuses in the handlers.
var (
	errNotFound = errors.New("record not found")
	errConflict = errors.New("record already exists")
)

var keyFields = []string{
	domain.FieldCollabID,
	domain.FieldProjectID,
	domain.FieldExptID,
	domain.FieldRunID,
	domain.FieldParticipantID,
}

// document is a stored record. Its key fields are kept in the document
// alongside the payload.
type document map[string]any

func (d document) keys() domain.Keys {
	get := func(f string) string {
		s, _ := d[f].(string)
		return s
	}
	return domain.Keys{
		CollabID:      get(domain.FieldCollabID),
		ProjectID:     get(domain.FieldProjectID),
		ExptID:        get(domain.FieldExptID),
		RunID:         get(domain.FieldRunID),
		ParticipantID: get(domain.FieldParticipantID),
	}
}

// matches reports whether every non-empty key of filter equals the
// document's.
func (d document) matches(filter domain.Keys) bool {
	own := d.keys()
	for _, f := range filter.Present() {
		if own.Get(f) != filter.Get(f) {
			return false
		}
	}
	return true
}

// store holds documents per resource, each identified by its keys.
type store struct {
	mu     sync.RWMutex
	tables map[domain.Resource]map[string]document
}

func newStore() *store {
	return &store{tables: make(map[domain.Resource]map[string]document)}
}

// id renders keys as a stable identifier.
func id(keys domain.Keys) string {
	parts := make([]string, 0, len(keyFields))
	for _, f := range keyFields {
		parts = append(parts, keys.Get(f))
	}
	return strings.Join(parts, "\x00")
}

// withKeys copies payload and stamps the non-empty keys onto it.
func withKeys(payload map[string]any, keys domain.Keys) document {
	doc := make(document, len(payload)+len(keyFields))
	maps.Copy(doc, payload)
	for _, f := range keys.Present() {
		doc[f] = keys.Get(f)
	}
	return doc
}

func (s *store) insert(r domain.Resource, keys domain.Keys, payload map[string]any) (document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[r]
	if !ok {
		table = make(map[string]document)
		s.tables[r] = table
	}
	k := id(keys)
	if _, exists := table[k]; exists {
		return nil, errConflict
	}
	doc := withKeys(payload, keys)
	table[k] = doc
	return maps.Clone(doc), nil
}

func (s *store) get(r domain.Resource, keys domain.Keys) (document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.tables[r][id(keys)]
	if !ok {
		return nil, errNotFound
	}
	return maps.Clone(doc), nil
}

func (s *store) exists(r domain.Resource, keys domain.Keys) bool {
	_, err := s.get(r, keys)
	return err == nil
}

// list returns the documents matching filter, ordered by their keys.
func (s *store) list(r domain.Resource, filter domain.Keys) []document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.tables[r]))
	for k, doc := range s.tables[r] {
		if doc.matches(filter) {
			ids = append(ids, k)
		}
	}
	sort.Strings(ids)

	docs := make([]document, 0, len(ids))
	for _, k := range ids {
		docs = append(docs, maps.Clone(s.tables[r][k]))
	}
	return docs
}

// update merges updates into a document. Key fields cannot change.
func (s *store) update(r domain.Resource, keys domain.Keys, updates map[string]any) (document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.tables[r][id(keys)]
	if !ok {
		return nil, errNotFound
	}
	for k, v := range updates {
		if slices.Contains(keyFields, k) {
			continue
		}
		doc[k] = v
	}
	return maps.Clone(doc), nil
}

// remove deletes a document and every document of the given dependent
// resources that matches its keys.
func (s *store) remove(r domain.Resource, keys domain.Keys, cascade ...domain.Resource) (document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := id(keys)
	doc, ok := s.tables[r][k]
	if !ok {
		return nil, errNotFound
	}
	delete(s.tables[r], k)

	for _, dep := range cascade {
		for dk, d := range s.tables[dep] {
			if d.matches(keys) {
				delete(s.tables[dep], dk)
			}
		}
	}
	return doc, nil
}

// upsert stores a document, replacing any previous one with the same keys.
func (s *store) upsert(r domain.Resource, keys domain.Keys, payload map[string]any) document {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.tables[r]
	if !ok {
		table = make(map[string]document)
		s.tables[r] = table
	}
	doc := withKeys(payload, keys)
	table[id(keys)] = doc
	return maps.Clone(doc)
}

// subset keeps only the listed key fields.
func subset(keys domain.Keys, fields ...string) domain.Keys {
	var out domain.Keys
	for _, f := range fields {
		out = setKey(out, f, keys.Get(f))
	}
	return out
}

// setKey returns keys with one field replaced.
func setKey(keys domain.Keys, field, value string) domain.Keys {
	switch field {
	case domain.FieldCollabID:
		keys.CollabID = value
	case domain.FieldProjectID:
		keys.ProjectID = value
	case domain.FieldExptID:
		keys.ExptID = value
	case domain.FieldRunID:
		keys.RunID = value
	case domain.FieldParticipantID:
		keys.ParticipantID = value
	}
	return keys
}
