package commands

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	keyFormat   = "format"
	keyLogLevel = "log-level"
	keyStrings  = "strings"
	keyAt       = "at"
)

// newConfig flags 优先，其次 JSONWALK_* 环境变量，最后是 flag 默认值。
func newConfig(flags *pflag.FlagSet) (*viper.Viper, error) {
	cfg := viper.New()

	replacer := strings.NewReplacer(".", "_", "-", "_")
	cfg.SetEnvPrefix("JSONWALK")
	cfg.SetEnvKeyReplacer(replacer)
	cfg.AutomaticEnv()

	if err := cfg.BindPFlags(flags); err != nil {
		return nil, err
	}
	return cfg, nil
}
