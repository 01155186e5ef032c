package bst

import "github.com/sirupsen/logrus"

type Option func(*config)

type config struct {
	logger *logrus.Entry
	// use loops instead of recursion for Find, Add and Height
	iterative bool
}

func defaultConfig() config {
	return config{
		logger: logrus.NewEntry(Log),
	}
}

// WithLogger sets the entry used for the tree's debug and warning output.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithIterative selects the loop based forms of Find, Add and Height, which
// keep stack usage constant on heavily skewed trees.
func WithIterative(iterative bool) Option {
	return func(c *config) {
		c.iterative = iterative
	}
}
