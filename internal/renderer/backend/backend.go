// Package backend abstracts the terminal the renderer draws on.
package backend

import (
	"sync"

	"github.com/dshills/linewise/internal/input/key"
	"github.com/dshills/linewise/internal/renderer/core"
)

// CursorStyle defines how the cursor appears.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt is posted from other goroutines to wake the loop.
	EventInterrupt
)

// Event is one input event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Width and Height are set for EventResize.
	Width, Height int

	// Data is the payload of an EventInterrupt.
	Data any
}

// Backend is a drawing surface plus its input queue.
type Backend interface {
	// Init prepares the backend. It must be called before anything else.
	Init() error

	// Shutdown releases the backend and restores the terminal.
	Shutdown()

	// Size returns the current dimensions.
	Size() (width, height int)

	// SetCell sets one cell. Positions outside the screen are ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a region with a cell.
	Fill(rect core.Rect, cell core.Cell)

	// Clear blanks the whole screen.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostInterrupt queues an EventInterrupt carrying data. It is safe to
	// call from any goroutine.
	PostInterrupt(data any) error
}

// NullBackend is an in-memory backend for tests.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	events        chan Event
	shutdown      bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for y := range b.cells {
		b.cells[y] = make([]core.Cell, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shutdown = true
}

// IsShutdown reports whether Shutdown has been called.
func (b *NullBackend) IsShutdown() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shutdown
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// Cell returns the cell at a position, or an empty cell off screen.
func (b *NullBackend) Cell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

// Row returns the runes of one screen row as a string.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	runes := make([]rune, 0, b.width)
	for _, c := range b.cells[y] {
		if c.Rune != 0 {
			runes = append(runes, c.Rune)
		}
	}
	return string(runes)
}

func (b *NullBackend) Fill(rect core.Rect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for y := max(rect.Y, 0); y < rect.Bottom() && y < b.height; y++ {
		for x := max(rect.X, 0); x < rect.Right() && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allocate()
}

func (b *NullBackend) Show() {}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY = x, y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

func (b *NullBackend) PostInterrupt(data any) error {
	return b.PostEvent(Event{Type: EventInterrupt, Data: data})
}

// PostEvent queues an event for PollEvent.
func (b *NullBackend) PostEvent(ev Event) error {
	select {
	case b.events <- ev:
		return nil
	default:
		return ErrEventQueueFull
	}
}

// PostKeys queues one key event per spec, e.g. "i", "<Esc>", "<C-s>".
func (b *NullBackend) PostKeys(specs ...string) error {
	for _, s := range specs {
		ev, err := key.Parse(s)
		if err != nil {
			return err
		}
		if err := b.PostEvent(Event{Type: EventKey, Key: ev}); err != nil {
			return err
		}
	}
	return nil
}

// CursorPosition returns the cursor position and visibility.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyleValue returns the current cursor style.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

// Resize changes the dimensions, clears the screen and queues an
// EventResize.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.width, b.height = width, height
	b.allocate()
	b.mu.Unlock()
	_ = b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
