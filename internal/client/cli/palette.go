package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophgallery/internal/client/httpclient"
)

const ansiReset = "\033[0m"

// palette maps notice levels to ANSI colors. It is the theme.Applier of the
// CLI: dark terminals get bright variants.
type palette struct {
	mu      sync.RWMutex
	dark    bool
	enabled bool
}

func newPalette(enabled bool) *palette {
	return &palette{enabled: enabled}
}

func (p *palette) Apply(dark bool) {
	p.mu.Lock()
	p.dark = dark
	p.mu.Unlock()
}

func (p *palette) isDark() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dark
}

func (p *palette) color(level httpclient.Level) string {
	dark := p.isDark()
	switch level {
	case httpclient.LevelError:
		if dark {
			return "\033[91m"
		}
		return "\033[31m"
	case httpclient.LevelWarning:
		if dark {
			return "\033[93m"
		}
		return "\033[33m"
	default:
		if dark {
			return "\033[96m"
		}
		return "\033[34m"
	}
}

func (p *palette) paint(level httpclient.Level, s string) string {
	if !p.enabled {
		return s
	}
	return p.color(level) + s + ansiReset
}

// consoleNotifier prints httpclient notices to the REPL output.
type consoleNotifier struct {
	mu      sync.Mutex
	out     io.Writer
	palette *palette
}

func (n *consoleNotifier) Notify(_ context.Context, level httpclient.Level, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, n.palette.paint(level, fmt.Sprintf("[%s] %s", level, msg)))
}
