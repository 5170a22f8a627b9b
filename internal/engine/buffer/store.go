package buffer

import "github.com/google/uuid"

// Handle is an opaque reference to a buffer owned by a Store.
type Handle string

// Store owns every open buffer.
type Store struct {
	buffers map[Handle]*Buffer
	order   []Handle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{buffers: make(map[Handle]*Buffer)}
}

// Add takes ownership of b and returns its handle.
func (s *Store) Add(b *Buffer) Handle {
	h := Handle(uuid.NewString())
	s.buffers[h] = b
	s.order = append(s.order, h)
	return h
}

// Get resolves a handle. It returns ErrStaleHandle if the buffer was removed.
func (s *Store) Get(h Handle) (*Buffer, error) {
	b, ok := s.buffers[h]
	if !ok {
		return nil, ErrStaleHandle
	}
	return b, nil
}

// Remove drops the buffer behind h. Later lookups of h fail.
func (s *Store) Remove(h Handle) {
	if _, ok := s.buffers[h]; !ok {
		return
	}
	delete(s.buffers, h)
	for i, o := range s.order {
		if o == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Handles returns live handles in insertion order.
func (s *Store) Handles() []Handle {
	out := make([]Handle, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of live buffers.
func (s *Store) Len() int {
	return len(s.buffers)
}

// Lines adapts a handle into a read-only line source that re-resolves the
// buffer on every call. A stale handle reads as an empty buffer.
type Lines struct {
	store  *Store
	handle Handle
}

// Reader returns a Lines source for h.
func (s *Store) Reader(h Handle) Lines {
	return Lines{store: s, handle: h}
}

// LinesCount returns the number of lines in the referenced buffer.
func (l Lines) LinesCount() int {
	b, err := l.store.Get(l.handle)
	if err != nil {
		return 0
	}
	return b.LinesCount()
}

// LineLength returns the rune length of a line in the referenced buffer.
func (l Lines) LineLength(index int) (int, bool) {
	b, err := l.store.Get(l.handle)
	if err != nil {
		return 0, false
	}
	return b.LineLength(index)
}

// Line returns a line of the referenced buffer.
func (l Lines) Line(index int) (string, bool) {
	b, err := l.store.Get(l.handle)
	if err != nil {
		return "", false
	}
	return b.Line(index)
}
