package config

import (
	"fmt"
	"os"
)

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(toolTemplate), 0o600)
}

const toolTemplate = `# dtagctl configuration

# trace | debug | info | warn | error | off
# unset: DTAG_LOG_LEVEL or the runtime default (info)
# log_level = "info"

# output format for "dtagctl list": text | toml
format = "text"
`
