package sources

import (
	"time"

	"wsd/internal/models"
)

// MockContent is the fixed record set substituted when every content backend
// fails at the transport level. It keeps the UI populated in demo/offline
// conditions and is always tagged OriginMock.
func MockContent(writerID string) []models.ContentRecord {
	base := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	return []models.ContentRecord{
		{
			ID:          "mock-1",
			Title:       "The Last Train Home",
			URL:         "https://videos.example.com/watch/mock-1",
			WriterID:    writerID,
			AccountName: "studio-main",
			Views:       1_240_000,
			Likes:       86_000,
			Comments:    4_200,
			Duration:    612,
			PostedDate:  base,
			Type:        models.ContentTypeVideo,
		},
		{
			ID:          "mock-2",
			Title:       "Sixty Seconds Underground",
			URL:         "https://videos.example.com/watch/mock-2",
			WriterID:    writerID,
			AccountName: "studio-shorts",
			Views:       458_000,
			Likes:       39_000,
			Comments:    1_100,
			Duration:    58,
			PostedDate:  base.AddDate(0, 0, -4),
			Type:        models.ContentTypeShort,
		},
		{
			ID:          "mock-3",
			Title:       "The Lighthouse Keeper's Bargain",
			URL:         "https://videos.example.com/watch/mock-3",
			WriterID:    writerID,
			AccountName: "studio-main",
			Views:       97_500,
			Likes:       6_400,
			Comments:    310,
			Duration:    71,
			PostedDate:  base.AddDate(0, 0, -9),
			Type:        models.ContentTypeFullToShort,
		},
	}
}
