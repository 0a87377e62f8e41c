package repos

import (
	"context"

	"arihant/internal/domain"
)

func strp(s string) *string { return &s }

// SeedDemo inserts a small demo catalog when the product collection is
// empty. Safe to run on every startup. Returns how many products it added.
func SeedDemo(ctx context.Context, products ProductStore) (int, error) {
	existing, err := products.List(ctx, domain.ProductQuery{Limit: 1})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	demo := []domain.Product{
		{
			Title:       "Arihant GTX Alloy Wheel",
			Description: strp("17 inch five-spoke alloy wheel, gunmetal finish"),
			Price:       5000,
			Category:    "Accessories",
			Brand:       strp(domain.DefaultBrand),
			Images:      []string{"https://cdn.arihant.example/wheels/gtx-17.jpg"},
			Stock:       10,
			Specifications: map[string]string{
				"size":     "17x7J",
				"pcd":      "4x100",
				"finish":   "gunmetal",
				"warranty": "2 years",
			},
			Featured: true,
		},
		{
			Title:          "Arihant Urban Sedan",
			Description:    strp("Compact sedan with 1.2L petrol engine"),
			Price:          725000,
			Category:       "Sedan",
			Brand:          strp(domain.DefaultBrand),
			Images:         []string{},
			Stock:          3,
			Specifications: map[string]string{"engine": "1.2L petrol", "transmission": "5MT"},
			Featured:       true,
		},
		{
			Title:          "Leather Seat Cover Set",
			Description:    strp("Full set of stitched leather seat covers"),
			Price:          8500,
			Category:       "Accessories",
			Brand:          strp(domain.DefaultBrand),
			Images:         []string{},
			Stock:          25,
			Specifications: map[string]string{"material": "PU leather"},
		},
	}
	for _, p := range demo {
		if _, err := products.Create(ctx, p); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}
