package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vdparikh/shortuuid"
)

// Config holds the settings shared by every subcommand. Each key can be set with a
// flag or with a SHORTUUID_ prefixed environment variable; flags win.
type Config struct {
	Alphabet string `mapstructure:"alphabet"`
	Debug    bool   `mapstructure:"debug"`
}

type app struct {
	v      *viper.Viper
	cfg    Config
	logger *zap.SugaredLogger
}

func newApp(logger *zap.SugaredLogger) *app {
	v := viper.New()
	v.SetEnvPrefix("SHORTUUID")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &app{v: v, logger: logger}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shortuuid",
		Short:         "Shorten and expand UUIDs",
		Long:          `Render UUIDs as compact strings over an arbitrary alphabet, and parse them back.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	flags := root.PersistentFlags()
	flags.String("alphabet", "base62", "preset name (base10, hex, base36, base58, base62, base64, base90) or literal symbols")
	flags.Bool("debug", false, "enable human-readable debug logging")
	_ = a.v.BindPFlags(flags)

	root.AddCommand(
		a.shortenCmd(),
		a.expandCmd(),
		a.convertCmd(),
		a.newCmd(),
	)
	return root
}

// load resolves the configuration once flags have been parsed.
func (a *app) load() error {
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return err
	}
	if a.cfg.Debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		a.logger = logger.Sugar()
	}
	a.logger.Debugw("Loaded configuration", "alphabet", a.cfg.Alphabet)
	return nil
}

func (a *app) alphabet() (shortuuid.Alphabet, error) {
	return shortuuid.LookupAlphabet(a.cfg.Alphabet)
}
