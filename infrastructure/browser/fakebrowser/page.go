// Package fakebrowser is an in-memory page driver. Elements are looked up by
// the exact string form of their locator every time they are used.
package fakebrowser

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"formcheck/domain/entities"
	"formcheck/domain/interfaces"
)

// pngHeader is what Screenshot returns
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Node is one fake DOM element
type Node struct {
	Visible bool
	Checked bool
	Value   string
	Text    string

	// Covered makes non-forced clicks fail with ErrClickIntercepted
	Covered bool

	OnClick func()
	OnFill  func(value string)
}

// Page implements interfaces.Page
type Page struct {
	mu      sync.Mutex
	url     string
	nodes   map[string][]*Node
	keys    map[string]func()
	actions []string

	// LoadErr is returned by WaitForLoad
	LoadErr error
	// Screenshots counts captured screenshots
	Screenshots int
}

// NewPage - creates an empty page at url
func NewPage(url string) *Page {
	return &Page{
		url:   url,
		nodes: make(map[string][]*Node),
		keys:  make(map[string]func()),
	}
}

var _ interfaces.Page = (*Page)(nil)

// Set - replaces whatever key resolves to
func (p *Page) Set(key string, nodes ...*Node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nodes[key] = nodes
}

// Remove - makes key resolve to nothing
func (p *Page) Remove(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.nodes, key)
}

// Node - returns the first node key resolves to, or nil
func (p *Page) Node(key string) *Node {
	nodes := p.resolve(key)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// OnKey - registers a handler for a key press
func (p *Page) OnKey(key string, fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys[key] = fn
}

// SetURL - simulates navigation
func (p *Page) SetURL(url string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.url = url
}

// Actions - returns the recorded driver calls in order
func (p *Page) Actions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.actions...)
}

func (p *Page) record(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = append(p.actions, fmt.Sprintf(format, args...))
}

func (p *Page) resolve(key string) []*Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.nodes[key]
}

func (p *Page) URL() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.url
}

func (p *Page) Locate(loc entities.Locator) interfaces.Element {
	return &element{page: p, key: loc.String()}
}

func (p *Page) Press(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.record("press %s", key)

	p.mu.Lock()
	fn := p.keys[key]
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}

func (p *Page) WaitForLoad(ctx context.Context, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.LoadErr
}

func (p *Page) Screenshot(ctx context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Screenshots++
	return append([]byte(nil), pngHeader...), nil
}

type element struct {
	page  *Page
	key   string
	first bool
}

var _ interfaces.Element = (*element)(nil)

// target resolves the single node an action applies to
func (e *element) target() (*Node, error) {
	nodes := e.page.resolve(e.key)
	switch {
	case len(nodes) == 0:
		return nil, fmt.Errorf("%s: %w", e.key, entities.ErrNoElement)
	case len(nodes) > 1 && !e.first:
		return nil, fmt.Errorf("strict mode violation: %s resolved to %d elements", e.key, len(nodes))
	}
	return nodes[0], nil
}

func (e *element) actionable() (*Node, error) {
	n, err := e.target()
	if err != nil {
		return nil, err
	}
	if !n.Visible {
		return nil, fmt.Errorf("%s: element is not visible", e.key)
	}
	return n, nil
}

func (e *element) Fill(ctx context.Context, value string) error {
	n, err := e.actionable()
	if err != nil {
		return err
	}
	e.page.record("fill %s %q", e.key, value)
	n.Value = value
	if n.OnFill != nil {
		n.OnFill(value)
	}
	return nil
}

func (e *element) Click(ctx context.Context, opts entities.ClickOptions) error {
	n, err := e.actionable()
	if err != nil {
		return err
	}
	if n.Covered && !opts.Force {
		return fmt.Errorf("%s: %w", e.key, entities.ErrClickIntercepted)
	}
	if opts.Force {
		e.page.record("click! %s", e.key)
	} else {
		e.page.record("click %s", e.key)
	}
	if n.OnClick != nil {
		n.OnClick()
	}
	return nil
}

func (e *element) ScrollIntoView(ctx context.Context) error {
	if _, err := e.target(); err != nil {
		return err
	}
	e.page.record("scroll %s", e.key)
	return nil
}

func (e *element) SetInputFiles(ctx context.Context, path string) error {
	n, err := e.target()
	if err != nil {
		return err
	}
	e.page.record("upload %s %s", e.key, path)
	n.Value = `C:\fakepath\` + filepath.Base(path)
	return nil
}

func (e *element) InputValue(ctx context.Context) (string, error) {
	n, err := e.target()
	if err != nil {
		return "", err
	}
	return n.Value, nil
}

func (e *element) IsVisible(ctx context.Context) (bool, error) {
	for _, n := range e.page.resolve(e.key) {
		if n.Visible {
			return true, nil
		}
	}
	return false, nil
}

func (e *element) IsChecked(ctx context.Context) (bool, error) {
	n, err := e.target()
	if err != nil {
		return false, err
	}
	return n.Checked, nil
}

func (e *element) TextContent(ctx context.Context) (string, error) {
	n, err := e.target()
	if err != nil {
		return "", err
	}
	return n.Text, nil
}

func (e *element) AllTextContents(ctx context.Context) ([]string, error) {
	nodes := e.page.resolve(e.key)
	texts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		texts = append(texts, n.Text)
	}
	return texts, nil
}

func (e *element) Count(ctx context.Context) (int, error) {
	return len(e.page.resolve(e.key)), nil
}

func (e *element) First() interfaces.Element {
	return &element{page: e.page, key: e.key, first: true}
}

func (e *element) Within(loc entities.Locator) interfaces.Element {
	return &element{page: e.page, key: e.key + " >> " + loc.String()}
}

func (e *element) String() string {
	return e.key
}
