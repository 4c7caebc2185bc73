package tuicore

// Widget is the stateless rendering capability every widget satisfies.
// Implementations must not read or write outside area, and
// must clip any content that would exceed it.
type Widget interface {
	Render(area Rect, buf *Buffer)
}

// StatefulWidget is the stateful variant: state is owned by the caller and
// updated in place (scroll offsets, selection indices, animation frame
// counters). A conforming implementation is deterministic given (area, S)
// — identical inputs must produce identical buffers across renders.
type StatefulWidget[S any] interface {
	Render(area Rect, buf *Buffer, state *S)
}

// WidgetFunc adapts a plain function to the Widget interface.
type WidgetFunc func(area Rect, buf *Buffer)

// Render implements Widget.
func (f WidgetFunc) Render(area Rect, buf *Buffer) { f(area, buf) }

// StatefulWidgetFunc adapts a plain function to StatefulWidget.
type StatefulWidgetFunc[S any] func(area Rect, buf *Buffer, state *S)

// Render implements StatefulWidget.
func (f StatefulWidgetFunc[S]) Render(area Rect, buf *Buffer, state *S) { f(area, buf, state) }

// Clear is the one trivial concrete widget the core ships: it writes empty
// cells across its area.
type Clear struct{}

// Render implements Widget.
func (Clear) Render(area Rect, buf *Buffer) {
	buf.Fill(area, EmptyCell)
}
