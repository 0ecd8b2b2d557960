package response

import (
	"taller_xpto/internal/domain/classification"
	"taller_xpto/internal/domain/entities"
)

// ClassificationQueueResponse is one step of the manual classification queue.
// Item is null once the queue is empty.
type ClassificationQueueResponse struct {
	Item       *entities.InvoiceLineItem `json:"item"`
	Position   int                       `json:"position"`
	Total      int                       `json:"total"`
	NextCursor int                       `json:"next_cursor"`
	HasNext    bool                      `json:"has_next"`
}

func FromQueuePage(p classification.QueuePage) ClassificationQueueResponse {
	return ClassificationQueueResponse{
		Item:       p.Item,
		Position:   p.Position,
		Total:      p.Total,
		NextCursor: p.NextCursor,
		HasNext:    p.HasNext,
	}
}
