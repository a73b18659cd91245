package eojeol

import (
	"errors"
	"fmt"
	"os"

	"github.com/kotaroooo0/eojeol/morphology"
	"gopkg.in/yaml.v3"
)

const (
	BackendMeCab  = "mecab"
	BackendKagome = "kagome"

	DefaultDicDir = "/usr/local/lib/mecab/dic/mecab-ko-dic"
)

var (
	ErrConfigNotFound = errors.New("configuration file not found")
	ErrNoDicDir       = errors.New("invalid config: dictionary path is empty")
	ErrUnknownBackend = errors.New("invalid config: unknown analyzer backend")
	ErrInvalidWorkers = errors.New("invalid config: workers must be positive")
)

type Config struct {
	DicDir   string    `yaml:"dicdir"`
	UserDic  string    `yaml:"userdic"`
	Backend  string    `yaml:"backend"`
	MeCabBin string    `yaml:"mecab_bin"`
	Flatten  bool      `yaml:"flatten"`
	Join     bool      `yaml:"join"`
	Workers  int       `yaml:"workers"`
	DB       *DBConfig `yaml:"db"`
}

func DefaultConfig() *Config {
	return &Config{
		DicDir:   DefaultDicDir,
		Backend:  BackendMeCab,
		MeCabBin: morphology.DefaultMeCabBinary,
		Flatten:  true,
		Workers:  DefaultWorkers,
	}
}

// LoadConfigFile reads a YAML file over DefaultConfig. Keys missing from
// the file keep their defaults.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.DicDir == "" {
		return ErrNoDicDir
	}
	switch c.Backend {
	case BackendMeCab, BackendKagome:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	if c.Workers <= 0 {
		return ErrInvalidWorkers
	}
	return nil
}

func (c *Config) NewMorphology() (morphology.Morphology, error) {
	switch c.Backend {
	case BackendMeCab:
		m, err := morphology.NewMeCab(c.MeCabBin, c.DicDir)
		if err != nil {
			return nil, err
		}
		return m, nil
	case BackendKagome:
		var options []morphology.KagomeOption
		if c.UserDic != "" {
			options = append(options, morphology.WithUserDict(c.UserDic))
		}
		k, err := morphology.NewKagome(c.DicDir, options...)
		if err != nil {
			return nil, err
		}
		return k, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
}

func (c *Config) NewTagger(options ...TaggerOption) (*Tagger, error) {
	m, err := c.NewMorphology()
	if err != nil {
		return nil, err
	}
	return NewTagger(m, options...), nil
}

// PosOptions returns the output mode configured by Flatten and Join.
func (c *Config) PosOptions() []PosOption {
	return []PosOption{WithFlatten(c.Flatten), WithJoin(c.Join)}
}
