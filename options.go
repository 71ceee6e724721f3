package ssml

import "fmt"

const defaultMaxDepth = 10000

type options struct {
	maxDepth int
}

// Option configures a call to Parse.
type Option func(*options) error

// MaxDepth returns an Option that caps how deeply tags may nest. This keeps
// hostile inputs from growing the open-tag stack without bound.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("ssml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}
