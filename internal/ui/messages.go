package ui

import (
	"github.com/yildizm/heroboard/internal/config"
)

// ConfigReloadedMsg carries a config file reload into the page
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
