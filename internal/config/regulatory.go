package config

import (
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// RegulatoryConfig holds the FuelEU regulatory parameters. The defaults are the
// 2025 reduction-step values; a mounted regulatory.yml can override them when
// the regulation steps down the target in later periods.
type RegulatoryConfig struct {
	// TargetIntensity is the GHG intensity target in gCO2e/MJ.
	TargetIntensity float64 `mapstructure:"targetIntensity"`
	// EnergyDensity is the lower calorific value used to convert fuel mass
	// to energy in scope, in MJ per tonne.
	EnergyDensity float64 `mapstructure:"energyDensity"`
}

func DefaultRegulatoryConfig() RegulatoryConfig {
	return RegulatoryConfig{
		TargetIntensity: 89.3368,
		EnergyDensity:   41000,
	}
}

// RegulatoryHolder exposes the current regulatory parameters and follows
// file changes without restarting the service.
type RegulatoryHolder struct {
	current atomic.Value // holds RegulatoryConfig
}

func NewRegulatoryHolder(log *zap.Logger) (*RegulatoryHolder, error) {
	v := viper.New()

	v.SetConfigName("regulatory")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/fueleu")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FUELEU")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultRegulatoryConfig()
	v.SetDefault("regulatory.targetIntensity", defaults.TargetIntensity)
	v.SetDefault("regulatory.energyDensity", defaults.EnergyDensity)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	holder := &RegulatoryHolder{}
	if err := holder.load(v); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(in fsnotify.Event) {
		if err := holder.load(v); err != nil {
			log.Warn("regulatory config reload failed", zap.Error(err))
			return
		}
		log.Info("regulatory config reloaded", zap.String("file", in.Name))
	})
	v.WatchConfig()

	return holder, nil
}

func (h *RegulatoryHolder) load(v *viper.Viper) error {
	var cfg RegulatoryConfig
	if err := v.UnmarshalKey("regulatory", &cfg); err != nil {
		return err
	}
	defaults := DefaultRegulatoryConfig()
	if cfg.TargetIntensity <= 0 {
		cfg.TargetIntensity = defaults.TargetIntensity
	}
	if cfg.EnergyDensity <= 0 {
		cfg.EnergyDensity = defaults.EnergyDensity
	}
	h.current.Store(cfg)
	return nil
}

// Current returns the regulatory parameters in effect.
func (h *RegulatoryHolder) Current() RegulatoryConfig {
	if cfg, ok := h.current.Load().(RegulatoryConfig); ok {
		return cfg
	}
	return DefaultRegulatoryConfig()
}

// StaticRegulatoryHolder returns a holder pinned to the given values. Test helper.
func StaticRegulatoryHolder(cfg RegulatoryConfig) *RegulatoryHolder {
	holder := &RegulatoryHolder{}
	holder.current.Store(cfg)
	return holder
}
