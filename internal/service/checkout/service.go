package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"kabirclub/internal/domain"
)

// Service formats an assembled cart into a WhatsApp order draft. It has no
// side effects: the cart survives the handoff so the user can keep editing
// an abandoned draft.
type Service struct {
	number string
}

func New(whatsAppNumber string) *Service {
	return &Service{number: whatsAppNumber}
}

// Handoff is the message shown to the user plus the deep link that opens
// it in the external messaging channel.
type Handoff struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

// BuildHandoff renders the per-row summary and grand total, then embeds the
// URL-encoded text into a wa.me deep link. An empty cart is rejected.
func (s *Service) BuildHandoff(rows []domain.AssembledCartRow, totals domain.OrderTotals) (*Handoff, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyCart
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lineSubtotal := row.UnitPrice * int64(row.Quantity)
		lines = append(lines, fmt.Sprintf(
			"🛍️ *%s*\nSize: %s\nQty: %d\nPrice: ₹%d\nSubtotal: ₹%d",
			row.ProductName, row.Size, row.Quantity, row.UnitPrice, lineSubtotal,
		))
	}

	message := fmt.Sprintf(
		"Hello! I'd like to finalize this order from kabirclub:\n\n%s\n\n📦 *Total*: ₹%s (Including tax and shipping)",
		strings.Join(lines, "\n\n"),
		totals.GrandTotal.StringFixed(2),
	)

	return &Handoff{
		Message: message,
		URL:     "https://wa.me/" + s.number + "?text=" + url.QueryEscape(message),
	}, nil
}
