package config

import (
	"strings"

	"github.com/g-m-twostay/go-playerbst/Trees"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "PLAYERSTATS"

type Config struct {
	Players   []Trees.ChessPlayer `mapstructure:"players"`
	Traversal string              `mapstructure:"traversal"`
	MinWins   int                 `mapstructure:"min_wins"`
	Remove    []string            `mapstructure:"remove"`
	Debug     bool                `mapstructure:"debug"`
}

// Flags returns the command's flag set. Parse it before calling Load.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("playerstats", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "roster file (yaml, json or toml)")
	fs.StringP("traversal", "t", Trees.InOrder.String(), "in_order, pre_order or post_order")
	fs.Int("min-wins", 0, "count players with at least this many wins")
	fs.StringSlice("remove", nil, "names to remove after loading the roster; can be given multiple times")
	fs.Bool("debug", false, "enable debug output")
	return fs
}

// New returns a viper instance reading PLAYERSTATS_* environment variables and
// the flags in fs.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("traversal", Trees.InOrder.String())
	v.SetDefault("min_wins", 0)
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "bind flags")
		}
		//flags are dashed, file and env keys aren't.
		if err := v.BindPFlag("min_wins", fs.Lookup("min-wins")); err != nil {
			return nil, errors.Wrap(err, "bind min-wins")
		}
	}
	return v, nil
}

// Load reads cfgPath into v when it's not empty, and decodes the result.
// Every player must be valid.
func Load(v *viper.Viper, cfgPath string) (*Config, error) {
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if _, err := Trees.ParseTraversal(cfg.Traversal); err != nil {
		return nil, err
	}
	for _, p := range cfg.Players {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}
