package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

const envPrefix = "FAMILYHUB_"

type Application struct {
	Listen   string   `koanf:"listen"`
	Cors     Cors     `koanf:"cors"`
	Family   Family   `koanf:"family"`
	Calendar Calendar `koanf:"calendar"`
	Locale   Locale   `koanf:"locale"`
	Board    Board    `koanf:"board"`
}

type Cors struct {
	AllowedOrigins []string `koanf:"allowedorigins"`
}

type Family struct {
	// Members are the labels offered for "added by" on shopping items.
	Members []string `koanf:"members"`
	// Palette are the colours offered for calendar events.
	Palette []string `koanf:"palette"`
}

type Calendar struct {
	Name          string        `koanf:"name"`
	Timezone      string        `koanf:"timezone"`
	EventDuration time.Duration `koanf:"eventduration"`
}

type Locale struct {
	Language string `koanf:"language"`
}

type Board struct {
	IdleTimeout   time.Duration `koanf:"idletimeout"`
	SweepInterval time.Duration `koanf:"sweepinterval"`
}

// listKeys are split on commas when given through the environment.
var listKeys = map[string]bool{
	"family.members":      true,
	"family.palette":      true,
	"cors.allowedorigins": true,
}

func defaults() Application {
	return Application{
		Listen: ":8181",
		Cors: Cors{
			AllowedOrigins: []string{"*"},
		},
		Family: Family{
			Members: []string{"Mama", "Papa", "Emma", "Max"},
			Palette: []string{"blue", "green", "red", "orange", "purple"},
		},
		Calendar: Calendar{
			Name:          "Familienkalender",
			Timezone:      "Europe/Berlin",
			EventDuration: time.Hour,
		},
		Locale: Locale{
			Language: "de",
		},
		Board: Board{
			IdleTimeout:   24 * time.Hour,
			SweepInterval: 10 * time.Minute,
		},
	}
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, envPrefix)), "_", ".")
			if listKeys[k] {
				return k, splitList(v)
			}
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}
	if err := app.validate(); err != nil {
		return Application{}, err
	}
	return app, nil
}

// Location resolves the calendar timezone.
func (c Calendar) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// DefaultMember is used when a shopping item arrives without "added by".
func (f Family) DefaultMember() string {
	if len(f.Members) == 0 {
		return ""
	}
	return f.Members[0]
}

// DefaultColor is used when an event arrives without a colour.
func (f Family) DefaultColor() string {
	if len(f.Palette) == 0 {
		return ""
	}
	return f.Palette[0]
}

func (a Application) validate() error {
	if len(a.Family.Members) == 0 {
		return fmt.Errorf("family.members must not be empty")
	}
	if len(a.Family.Palette) == 0 {
		return fmt.Errorf("family.palette must not be empty")
	}
	if _, err := a.Calendar.Location(); err != nil {
		return err
	}
	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}
