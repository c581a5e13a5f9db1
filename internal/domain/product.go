package domain

type Product struct {
	ID            int64    `json:"id"`
	ItemID        string   `json:"itemId,omitempty"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         int64    `json:"price"`
	ImageURL      string   `json:"imageUrl"`
	CategoryID    int64    `json:"categoryId"`
	Sizes         []string `json:"sizes"`
	StockQuantity int      `json:"stockQuantity"`
	Featured      bool     `json:"featured"`
	Trending      bool     `json:"trending"`
}
