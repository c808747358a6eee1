package bridge

import (
	"errors"
	"strings"
	"time"

	"encore.dev/config"
)

type DispatchMode string

const (
	// DispatchInline resolves in the request goroutine and answers with the outcome.
	DispatchInline DispatchMode = "inline"
	// DispatchWorkflow hands resolution to a Temporal workflow and answers right away.
	DispatchWorkflow DispatchMode = "workflow"
)

type Config struct {
	ReadarrURL        config.String
	RootFolderPath    config.String
	QualityProfileID  config.Int
	MetadataProfileID config.Int
	SearchOnAdd       config.Bool

	ProbeMetadataProfiles config.Bool

	CacheTTLSeconds         config.Int
	CacheCheckPeriodSeconds config.Int
	CatalogTimeoutSeconds   config.Int

	Dispatch          config.String
	TemporalHostPort  config.String
	TemporalNamespace config.String

	IdempotencyTTLHours config.Int
}

var cfg = config.Load[*Config]()

// settings is the plain form of Config handed to the layers below the API.
type settings struct {
	ReadarrURL        string
	APIKey            string
	RootFolderPath    string
	QualityProfileID  int32
	MetadataProfileID int32
	SearchOnAdd       bool

	ProbeMetadataProfiles bool

	CacheTTL         time.Duration
	CacheCheckPeriod time.Duration
	CatalogTimeout   time.Duration

	Dispatch          DispatchMode
	TemporalHostPort  string
	TemporalNamespace string

	IdempotencyTTL time.Duration
}

func loadSettings(c *Config, apiKey string) (settings, error) {
	s := settings{
		ReadarrURL:            strings.TrimRight(strings.TrimSpace(c.ReadarrURL()), "/"),
		APIKey:                strings.TrimSpace(apiKey),
		RootFolderPath:        c.RootFolderPath(),
		QualityProfileID:      int32(c.QualityProfileID()),
		MetadataProfileID:     int32(c.MetadataProfileID()),
		SearchOnAdd:           c.SearchOnAdd(),
		ProbeMetadataProfiles: c.ProbeMetadataProfiles(),
		CacheTTL:              time.Duration(c.CacheTTLSeconds()) * time.Second,
		CacheCheckPeriod:      time.Duration(c.CacheCheckPeriodSeconds()) * time.Second,
		CatalogTimeout:        time.Duration(c.CatalogTimeoutSeconds()) * time.Second,
		Dispatch:              DispatchMode(c.Dispatch()),
		TemporalHostPort:      c.TemporalHostPort(),
		TemporalNamespace:     c.TemporalNamespace(),
		IdempotencyTTL:        time.Duration(c.IdempotencyTTLHours()) * time.Hour,
	}

	if s.APIKey == "" {
		return settings{}, errors.New("ReadarrAPIKey secret is not set")
	}
	if s.ReadarrURL == "" {
		return settings{}, errors.New("ReadarrURL must be configured")
	}
	switch s.Dispatch {
	case DispatchInline, DispatchWorkflow:
	case "":
		s.Dispatch = DispatchInline
	default:
		return settings{}, errors.New("Dispatch must be inline or workflow")
	}
	return s, nil
}
