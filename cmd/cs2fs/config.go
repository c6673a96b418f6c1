package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dhamidi/cs2fs/convert"
	"github.com/dhamidi/cs2fs/fsharp"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

// initConfig layers settings: flags over CS2FS_* environment variables over
// the config file. It also configures logging and color.
func initConfig(cmd *cobra.Command, cfgFile string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	viper.SetEnvPrefix("cs2fs")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindEnv("no-color", "CS2FS_NO_COLOR", "NO_COLOR"); err != nil {
		return fmt.Errorf("bind environment: %w", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := homedir.Dir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".cs2fs")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var logFile *string
	if path := viper.GetString("log-file"); path != "" {
		if expanded, err := homedir.Expand(path); err == nil {
			path = expanded
		}
		logFile = &path
	}
	commonlog.Configure(viper.GetInt("verbose"), logFile)

	if viper.GetBool("no-color") {
		color.NoColor = true
	}
	return nil
}

func convertOptions() []convert.Option {
	return []convert.Option{
		convert.WithTranslatorOptions(
			fsharp.WithIndent(viper.GetString("indent")),
			fsharp.WithTypeMapping(!viper.GetBool("no-type-mapping")),
		),
	}
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// colorFor reports whether output written to f should be colored.
func colorFor(f *os.File) bool {
	return !viper.GetBool("no-color") && isTerminal(f)
}
