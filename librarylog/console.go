//go:build !solution

package librarylog

import (
	"fmt"
	"io"
	"sync"

	"gitlab.com/rogov-ks/library/library"
)

// ANSI colour codes.
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[0;33m"
	Blue   = "\033[0;34m"
	Purple = "\033[0;35m"
	Cyan   = "\033[0;36m"
	White  = "\033[0;37m"
	Reset  = "\033[0m"
)

var tagColors = map[library.Tag]string{
	library.TagWaiting:   Yellow,
	library.TagEntered:   Green,
	library.TagLeft:      Red,
	library.TagInfo:      White,
	library.TagCancelled: Purple,
}

// Console prints library messages line by line, coloured by tag.
type Console struct {
	mu      sync.Mutex
	w       io.Writer
	noColor bool
}

// NewConsole creates a sink writing to w.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, noColor: !color}
}

func (c *Console) Log(tag library.Tag, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	color, ok := tagColors[tag]
	if c.noColor || !ok {
		_, _ = fmt.Fprintln(c.w, msg)
		return
	}
	_, _ = fmt.Fprintln(c.w, color+msg+Reset)
}
