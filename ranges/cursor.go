package ranges

import "github.com/arloliu/tempo/instant"

// Cursor walks the spans of a Range once, in ascending order.
//
// Mutating the range while a cursor is live is undefined.
type Cursor struct {
	r *Range
	i int
}

// Cursor returns a cursor positioned before the first span.
func (r *Range) Cursor() *Cursor {
	return &Cursor{r: r}
}

// Next returns the next span, or false once the range is exhausted.
func (c *Cursor) Next() (instant.Span, bool) {
	if c.i >= len(c.r.spans) {
		return instant.Span{}, false
	}
	iv := c.r.spans[c.i]
	c.i++

	return c.r.span(iv), true
}
