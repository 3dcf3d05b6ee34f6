package domain

import (
	"fmt"
	"photo-location-service/internal/platform/sentinel"
	"slices"
	"strings"
	"sync"
)

// GameTypePathSeparator joins type names from the root down, e.g.
// "Action/Shooter".
const GameTypePathSeparator = "/"

// GameType is a node in the video game type hierarchy. Types are created
// only through a GameTypes tree and are shared by every game of that type.
type GameType struct {
	name  string
	super *GameType
	tree  *GameTypes
	subs  map[string]*GameType
}

func (t *GameType) Name() string { return t.name }

// SuperType returns the parent type; the root has none.
func (t *GameType) SuperType() (*GameType, bool) {
	return t.super, t.super != nil
}

func (t *GameType) IsRoot() bool { return t.super == nil }

// Path returns the names from below the root down to t. The root's path is
// empty.
func (t *GameType) Path() string {
	var names []string
	for cur := t; cur.super != nil; cur = cur.super {
		names = append(names, cur.name)
	}
	slices.Reverse(names)
	return strings.Join(names, GameTypePathSeparator)
}

// HasSubType reports whether sub is t or lies below t.
func (t *GameType) HasSubType(sub *GameType) bool {
	for cur := sub; cur != nil; cur = cur.super {
		if cur == t {
			return true
		}
	}
	return false
}

func (t *GameType) DirectSubType(name string) (*GameType, bool) {
	t.tree.mu.RLock()
	defer t.tree.mu.RUnlock()

	sub, ok := t.subs[name]
	return sub, ok
}

// DirectSubTypes returns the children of t ordered by name.
func (t *GameType) DirectSubTypes() []*GameType {
	t.tree.mu.RLock()
	defer t.tree.mu.RUnlock()

	out := make([]*GameType, 0, len(t.subs))
	for _, sub := range t.subs {
		out = append(out, sub)
	}
	slices.SortFunc(out, func(a, b *GameType) int { return strings.Compare(a.name, b.name) })
	return out
}

func (t *GameType) String() string { return t.Path() }

// GameTypes owns one type hierarchy. Types are interned by path: asking
// twice for the same path yields the same *GameType, and missing
// intermediate types are created on the way.
type GameTypes struct {
	mu   sync.RWMutex
	root *GameType
}

func NewGameTypes() *GameTypes {
	ts := &GameTypes{}
	ts.root = &GameType{tree: ts, subs: make(map[string]*GameType)}
	return ts
}

var defaultGameTypes = sync.OnceValue(NewGameTypes)

// DefaultGameTypes returns the process-wide type hierarchy.
func DefaultGameTypes() *GameTypes { return defaultGameTypes() }

func (ts *GameTypes) Root() *GameType { return ts.root }

// Type returns the type at path, creating it and any missing ancestors.
func (ts *GameTypes) Type(path string) (*GameType, error) {
	names, err := splitGameTypePath(path)
	if err != nil {
		return nil, err
	}

	if t, ok := ts.lookup(names); ok {
		return t, nil
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	cur := ts.root
	for _, name := range names {
		sub, ok := cur.subs[name]
		if !ok {
			sub = &GameType{name: name, super: cur, tree: ts, subs: make(map[string]*GameType)}
			cur.subs[name] = sub
		}
		cur = sub
	}
	return cur, nil
}

// Lookup returns the type at path without creating anything.
func (ts *GameTypes) Lookup(path string) (*GameType, bool) {
	names, err := splitGameTypePath(path)
	if err != nil {
		return nil, false
	}
	return ts.lookup(names)
}

// Paths lists the path of every type below the root, depth first in name
// order.
func (ts *GameTypes) Paths() []string {
	var out []string
	var walk func(t *GameType)
	walk = func(t *GameType) {
		for _, sub := range t.DirectSubTypes() {
			out = append(out, sub.Path())
			walk(sub)
		}
	}
	walk(ts.root)
	return out
}

func (ts *GameTypes) lookup(names []string) (*GameType, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	cur := ts.root
	for _, name := range names {
		sub, ok := cur.subs[name]
		if !ok {
			return nil, false
		}
		cur = sub
	}
	return cur, true
}

func splitGameTypePath(path string) ([]string, error) {
	names := strings.Split(strings.TrimSpace(path), GameTypePathSeparator)
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("game type path %q: blank type name: %w", path, sentinel.ErrInvalidValue)
		}
		names[i] = name
	}
	return names, nil
}
