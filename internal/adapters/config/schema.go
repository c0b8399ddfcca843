package config

import "go.trai.ch/fclean/internal/core/domain"

// Configfile represents the structure of the fclean config.yaml file.
// Top-level settings form the base profile; named profiles overlay it.
type Configfile struct {
	Version    string `yaml:"version"`
	ProfileDTO `yaml:",inline"`
	Profiles   map[string]ProfileDTO `yaml:"profiles"`
}

// ProfileDTO represents one set of scan and clean preferences in the configuration.
type ProfileDTO struct {
	Roots       []string `yaml:"roots"`
	Defaults    *bool    `yaml:"defaults"`
	Optional    *bool    `yaml:"optional"`
	Global      *bool    `yaml:"global"`
	MaxDepth    *int     `yaml:"max_depth"`
	Trash       *bool    `yaml:"trash"`
	Concurrency *int     `yaml:"concurrency"`
}

func (p ProfileDTO) toDomain() domain.Profile {
	return domain.Profile{
		Roots:       append([]string(nil), p.Roots...),
		Defaults:    p.Defaults,
		Optional:    p.Optional,
		Global:      p.Global,
		MaxDepth:    p.MaxDepth,
		Trash:       p.Trash,
		Concurrency: p.Concurrency,
	}
}
