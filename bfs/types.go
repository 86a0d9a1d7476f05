package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for traversal.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNoPath is returned by Result.PathTo for an unreached vertex.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// Result holds the outcome of a traversal.
type Result struct {
	Order  []string          // visit sequence
	Depth  map[string]int    // hops from the start
	Parent map[string]string // predecessor in the BFS tree; absent for the start
}

// PathTo reconstructs the hop path from the start vertex to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%q: %w", dest, ErrNoPath)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
