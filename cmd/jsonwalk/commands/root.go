// Package commands 实现 jsonwalk 命令行：逐个节点打印类型，最后列出所有字符串。
package commands

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/icloudza/jsonwalk"
	"github.com/icloudza/jsonwalk/category"
	"github.com/icloudza/jsonwalk/collect"
	"github.com/icloudza/jsonwalk/pathmeta"
	"github.com/icloudza/jsonwalk/source"
	"github.com/icloudza/jsonwalk/walker"
)

// NewRootCommand jsonwalk [flags] <file>
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jsonwalk <file>",
		Short:        "Walk a JSON or YAML document and log every node",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd, cfg, args[0])
		},
	}

	cmd.Flags().String(keyFormat, "auto", "input format: auto, json or yaml")
	cmd.Flags().String(keyLogLevel, "info", "log level (trace, debug, info, warn, error)")
	cmd.Flags().Bool(keyStrings, true, "print every string value with its path when done")
	cmd.Flags().String(keyAt, "", "walk only the subtree at this gjson path (json only)")
	return cmd
}

func newLogger(cmd *cobra.Command, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.Out = cmd.ErrOrStderr()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l, nil
}

func run(cmd *cobra.Command, cfg *viper.Viper, path string) error {
	log, err := newLogger(cmd, cfg.GetString(keyLogLevel))
	if err != nil {
		return err
	}

	format := strings.ToLower(cfg.GetString(keyFormat))
	if format == "auto" {
		format = "json"
		if source.IsYAML(path) {
			format = "yaml"
		}
	}
	at := cfg.GetString(keyAt)
	if at != "" && format != "json" {
		return fmt.Errorf("--%s is only supported for json input", keyAt)
	}

	var found []collect.Entry
	h := pathmeta.Handlers(func(p string, key walker.Key, value any, parent category.Category) error {
		c := category.Classify(value)
		v := any("N/A")
		if !c.IsContainer() {
			v = value
		}
		log.WithFields(logrus.Fields{
			"key":    key.String(),
			"value":  v,
			"parent": parent.String(),
		}).Info(strings.ToUpper(c.String()))
		if c == category.String {
			found = append(found, collect.Entry{Path: p, Category: c, Value: value})
		}
		return nil
	})

	log.WithFields(logrus.Fields{"file": path, "format": format}).Debug("walking")
	switch {
	case format == "yaml":
		err = jsonwalk.WalkYAMLFile(path, h, "")
	case format != "json":
		return fmt.Errorf("unknown format %q", format)
	case at != "":
		err = jsonwalk.WalkFileAt(path, at, h, at)
	default:
		err = jsonwalk.WalkFile(path, h, "")
	}
	if err != nil {
		log.WithError(err).Error("walk failed")
		return err
	}

	if cfg.GetBool(keyStrings) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "------ Complete ------")
		for _, e := range found {
			fmt.Fprintln(out, e.String())
		}
	}
	return nil
}
