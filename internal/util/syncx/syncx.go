// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package syncx contains useful synchronization primitives.
package syncx

import "sync"

// Protected holds a value of type T that is safe to load and store from
// multiple goroutines. The zero value holds the zero T.
type Protected[T any] struct {
	mu  sync.RWMutex
	val T
}

// Load returns the value.
func (p *Protected[T]) Load() T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.val
}

// Store replaces the value.
func (p *Protected[T]) Store(val T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.val = val
}

// Lazy represents a lazily computed value.
type Lazy[T any] struct {
	once sync.Once
	val  T
}

// Get returns T, calling f to compute it on first use.
func (l *Lazy[T]) Get(f func() T) T {
	l.once.Do(func() { l.val = f() })
	return l.val
}

// Group runs functions in goroutines, at most limit at a time.
type Group struct {
	wg  sync.WaitGroup
	sem chan struct{}
}

// NewGroup returns a Group that runs at most limit functions at once.
func NewGroup(limit int) *Group {
	return &Group{sem: make(chan struct{}, limit)}
}

// Go calls f in a new goroutine. It blocks while limit functions are running.
func (g *Group) Go(f func()) {
	g.sem <- struct{}{}
	g.wg.Add(1)
	go func() {
		defer func() {
			<-g.sem
			g.wg.Done()
		}()
		f()
	}()
}

// Wait blocks until all functions started with Go return.
func (g *Group) Wait() { g.wg.Wait() }
