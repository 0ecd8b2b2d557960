package classification

import "taller_xpto/internal/domain/entities"

// QueuePage is one position of the manual classification queue.
type QueuePage struct {
	Item       *entities.InvoiceLineItem
	Position   int
	Total      int
	NextCursor int
	HasNext    bool
}

// PendingQueue returns the lines waiting for manual classification, in storage order.
func PendingQueue(items []entities.InvoiceLineItem) []entities.InvoiceLineItem {
	var queue []entities.InvoiceLineItem
	for _, it := range items {
		if it.Status == entities.ClassificationPending || it.Status == "" {
			queue = append(queue, it)
		}
	}
	return queue
}

// At resolves cursor against queue. Cursors outside the queue are clamped; an empty queue
// yields a page without item.
func At(queue []entities.InvoiceLineItem, cursor int) QueuePage {
	page := QueuePage{Total: len(queue)}
	if len(queue) == 0 {
		return page
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(queue) {
		cursor = len(queue) - 1
	}
	item := queue[cursor]
	page.Item = &item
	page.Position = cursor
	page.HasNext = cursor+1 < len(queue)
	if page.HasNext {
		page.NextCursor = cursor + 1
	} else {
		page.NextCursor = cursor
	}
	return page
}
