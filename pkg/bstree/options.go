package bstree

import "github.com/sirupsen/logrus"

type options struct {
	log *logrus.Entry
}

// Option configures a Map at construction time.
type Option func(*options)

// WithLogger makes the map report structural changes (leaf inserts,
// overwrites, splices and successor promotions) at trace level.
func WithLogger(log *logrus.Entry) Option {
	return func(o *options) {
		o.log = log
	}
}
