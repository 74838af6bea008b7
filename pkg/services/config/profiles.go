package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// SourceType names the kind of dataset a profile points at.
type SourceType string

const (
	SourceFile SourceType = "file"
	SourceHTTP SourceType = "http"
)

// Profile is a named dataset location from the profiles file, e.g.
//
//	[orders-2024]
//	type = file
//	path = /data/pizza_sales.csv
type Profile struct {
	Name string
	Type SourceType
	Path string
}

// Registry loads named source profiles from an INI file.
type Registry interface {
	GetProfiles(ctx context.Context) ([]Profile, error)
	GetProfile(ctx context.Context, name string) (Profile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]Profile, error) {
	var profiles []Profile
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		p, err := profileFromSection(section)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (Profile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return Profile{}, fmt.Errorf("profile %s not found", name)
	}
	return profileFromSection(section)
}

func profileFromSection(section *ini.Section) (Profile, error) {
	sourceType := SourceType(section.Key("type").String())
	switch sourceType {
	case SourceFile, SourceHTTP:
	default:
		return Profile{}, fmt.Errorf("profile %s: unknown source type %q", section.Name(), sourceType)
	}

	path := section.Key("path").String()
	if path == "" {
		return Profile{}, fmt.Errorf("profile %s: path is required", section.Name())
	}

	return Profile{
		Name: section.Name(),
		Type: sourceType,
		Path: path,
	}, nil
}
