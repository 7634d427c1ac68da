package ui

import (
	"github.com/yildizm/heroboard/internal/runtime"
)

// Options configures the hero page
type Options struct {
	Runtime runtime.Options

	// Path is the route the page opens on; empty opens the hero list
	Path string

	Theme string

	// WatchConfig, when set, is a config file reloaded on change
	WatchConfig string
}
