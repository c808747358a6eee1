package bridge

import (
	"context"

	"encore.dev/rlog"
)

type HealthResponse struct {
	Status            string           `json:"status"`
	ReadarrURL        string           `json:"readarrUrl"`
	HasAPIKey         bool             `json:"hasApiKey"`
	QualityProfileID  int32            `json:"qualityProfileId"`
	MetadataProfileID int32            `json:"metadataProfileId"`
	RootFolderPath    string           `json:"rootFolderPath"`
	Dispatch          string           `json:"dispatch"`
	Requests          map[string]int64 `json:"requests,omitempty"`
}

// Health reports the catalog settings and how many requests sit in each status.
//
//encore:api public method=GET path=/health
func (s *Service) Health(ctx context.Context) (*HealthResponse, error) {
	response := &HealthResponse{
		Status:            "ok",
		ReadarrURL:        s.settings.ReadarrURL,
		HasAPIKey:         s.settings.APIKey != "",
		QualityProfileID:  s.settings.QualityProfileID,
		MetadataProfileID: s.settings.MetadataProfileID,
		RootFolderPath:    s.settings.RootFolderPath,
		Dispatch:          string(s.settings.Dispatch),
	}

	counts, err := s.ledger.CountRequestsByStatus(ctx)
	if err != nil {
		rlog.Error("failed to count requests", "error", err)
		response.Status = "degraded"
		return response, nil
	}
	response.Requests = make(map[string]int64, len(counts))
	for status, total := range counts {
		response.Requests[string(status)] = total
	}
	return response, nil
}
