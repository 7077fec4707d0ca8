package render

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

// A TermRenderer holds parser state between calls, so each goroutine borrows
// its own. Renderers are grouped by the Options that built them; Options is
// comparable and serves directly as the map key.
type rendererPool struct {
	mu    sync.Mutex
	pools map[Options]*sync.Pool
}

var renderers = &rendererPool{pools: map[Options]*sync.Pool{}}

func (p *rendererPool) poolFor(opts Options) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	pool, ok := p.pools[opts]
	if !ok {
		pool = &sync.Pool{}
		p.pools[opts] = pool
	}
	return pool
}

// borrow returns a pooled renderer or builds a new one. Build errors (an
// unknown style, usually) are returned to the caller instead of being
// hidden inside the pool.
func (p *rendererPool) borrow(opts Options) (*glamour.TermRenderer, error) {
	if r, ok := p.poolFor(opts).Get().(*glamour.TermRenderer); ok {
		return r, nil
	}
	return newTermRenderer(opts)
}

func (p *rendererPool) release(opts Options, r *glamour.TermRenderer) {
	if r != nil {
		p.poolFor(opts).Put(r)
	}
}

func (p *rendererPool) reset() {
	p.mu.Lock()
	p.pools = map[Options]*sync.Pool{}
	p.mu.Unlock()
}

func (p *rendererPool) size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.pools)
}

func newTermRenderer(opts Options) (*glamour.TermRenderer, error) {
	ropts := []glamour.TermRendererOption{
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
		glamour.WithTableWrap(opts.TableWrap),
		glamour.WithInlineTableLinks(opts.InlineTableLinks),
	}
	if opts.EnableEmoji {
		ropts = append(ropts, glamour.WithEmoji())
	}
	if opts.PreserveNewLines {
		ropts = append(ropts, glamour.WithPreservedNewLines())
	}
	return glamour.NewTermRenderer(ropts...)
}
