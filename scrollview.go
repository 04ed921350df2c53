package pixelgrid

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DefaultScrollDuration is the ease time ScrollBy uses, in seconds.
const DefaultScrollDuration = 0.2

// ScrollView shows a vertical window onto a content node taller than the
// screen. The offset is clamped to [0, MaxOffset] and scroll requests ease
// towards their target from the node's OnUpdate.
type ScrollView struct {
	node     *Node
	content  *Node
	viewport float64
	contentH float64

	// Offset is how far the content is scrolled up, in pixels.
	offset float64
	target float64
	tween  *gween.Tween
}

// NewScrollView wraps content in a scroll container. viewport is the visible
// height; contentHeight the full height of content.
func NewScrollView(content *Node, contentHeight, viewport float64) *ScrollView {
	v := &ScrollView{
		node:     NewContainer("scroll"),
		content:  content,
		viewport: viewport,
		contentH: contentHeight,
	}
	v.node.UserData = v
	v.node.OnUpdate = func(dt float64) { v.update(float32(dt)) }
	v.node.AddChild(content)
	return v
}

// Node returns the container to add to a scene.
func (v *ScrollView) Node() *Node { return v.node }

// Offset returns the current scroll offset.
func (v *ScrollView) Offset() float64 { return v.offset }

// Target returns where the running scroll ends, or Offset when idle.
func (v *ScrollView) Target() float64 { return v.target }

// MaxOffset is the largest offset that still fills the viewport.
func (v *ScrollView) MaxOffset() float64 {
	return max(0, v.contentH-v.viewport)
}

// SetContentHeight updates the content height, e.g. after a rebuild, and
// re-clamps the offset.
func (v *ScrollView) SetContentHeight(h float64) {
	v.contentH = h
	v.jump(v.clamp(v.offset))
}

// SetViewport updates the visible height and re-clamps the offset.
func (v *ScrollView) SetViewport(h float64) {
	v.viewport = h
	v.jump(v.clamp(v.offset))
}

// ScrollBy moves the target by dy over DefaultScrollDuration. Repeated calls
// during a scroll accumulate from the pending target.
func (v *ScrollView) ScrollBy(dy float64) {
	v.ScrollTo(v.target+dy, DefaultScrollDuration, ease.OutCubic)
}

// ScrollTo eases the offset to y over duration seconds. A non-positive
// duration jumps immediately.
func (v *ScrollView) ScrollTo(y float64, duration float32, fn ease.TweenFunc) {
	y = v.clamp(y)
	if duration <= 0 || y == v.offset {
		v.jump(y)
		return
	}
	v.target = y
	v.tween = gween.New(float32(v.offset), float32(y), duration, fn)
}

func (v *ScrollView) update(dt float32) {
	if v.tween == nil {
		return
	}
	val, done := v.tween.Update(dt)
	if done {
		v.jump(v.target)
		return
	}
	v.place(float64(val))
}

func (v *ScrollView) jump(y float64) {
	v.tween = nil
	v.target = y
	v.place(y)
}

func (v *ScrollView) place(y float64) {
	v.offset = y
	v.content.SetPosition(v.content.X, -y)
}

func (v *ScrollView) clamp(y float64) float64 {
	return min(max(y, 0), v.MaxOffset())
}
