package seed

import (
	"context"

	"ecommerce-backend/internal/models"
)

// Repository is the subset of the product repository the seeder uses.
type Repository interface {
	CountAll(ctx context.Context) (int64, error)
	Create(ctx context.Context, product models.ProductIn) (string, error)
}

func ptr[T any](v T) *T { return &v }

// demoProducts is the fixed bootstrap dataset.
var demoProducts = []models.ProductIn{
	{
		Title:       "NeoCube Pro",
		Description: "Futuristic modular cube speaker with reactive LEDs.",
		Price:       ptr(199.99),
		Category:    "audio",
		Image:       "https://images.unsplash.com/photo-1518779578993-ec3579fee39f?auto=format&fit=crop&w=800&q=60",
		InStock:     ptr(true),
	},
	{
		Title:       "Iris Orbit Lamp",
		Description: "Iridescent smart lamp that orbits hues through the day.",
		Price:       ptr(129.0),
		Category:    "lighting",
		Image:       "https://images.unsplash.com/photo-1496307042754-b4aa456c4a2d?auto=format&fit=crop&w=800&q=60",
		InStock:     ptr(true),
	},
	{
		Title:       "Glyph Headphones",
		Description: "Metallic over-ears with spatial audio and ANC.",
		Price:       ptr(249.0),
		Category:    "audio",
		Image:       "https://images.unsplash.com/photo-1518443747120-6f6f2d80b7a1?auto=format&fit=crop&w=800&q=60",
		InStock:     ptr(true),
	},
	{
		Title:       "Prism Desk Mat",
		Description: "Soft-touch mat with subtle neon edge glow.",
		Price:       ptr(39.0),
		Category:    "accessories",
		Image:       "https://images.unsplash.com/photo-1473186578172-c141e6798cf4?auto=format&fit=crop&w=800&q=60",
		InStock:     ptr(true),
	},
}

// Run inserts the demo dataset when the collection is empty and returns
// how many records it wrote. The count pre-check makes repeated calls a
// no-op; it is not atomic against concurrent seeders, which is fine for
// a bootstrap action.
func Run(ctx context.Context, repo Repository) (int, error) {
	total, err := repo.CountAll(ctx)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}

	inserted := 0
	for _, product := range demoProducts {
		if _, err := repo.Create(ctx, product); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
