package catalog

import (
	"context"
	"sort"
	"strings"
)

// seedProducts is the built-in sample catalog the storefront serves
// when no products API is configured.
var seedProducts = []Product{
	{
		ID: "saree1", Name: "Embroidered Silk Saree", Price: 15000,
		Images:   []string{"https://images.pexels.com/photos/7772528/pexels-photo-7772528.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"pink", "gold", "white"},
		Sizes:    []string{"Free Size"},
		Category: "Saree",
		Description: "Handcrafted pure silk saree with intricate embroidery work. " +
			"Perfect for weddings and special occasions.",
		IsNew: true, Date: "2023-09-15",
	},
	{
		ID: "saree2", Name: "Banarasi Silk Saree", Price: 22500,
		Images:   []string{"https://images.pexels.com/photos/5839215/pexels-photo-5839215.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"blue", "gold"},
		Sizes:    []string{"Free Size"},
		Category: "Saree",
		Description: "Exquisite Banarasi silk saree featuring traditional motifs " +
			"woven in real gold zari.",
		Date: "2023-07-20",
	},
	{
		ID: "saree3", Name: "Designer Georgette Saree", Price: 12000,
		Images:   []string{"https://images.pexels.com/photos/10889793/pexels-photo-10889793.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"pink", "white"},
		Sizes:    []string{"Free Size"},
		Category: "Saree",
		Description: "Lightweight georgette saree with contemporary embellishment, " +
			"ideal for evening parties and festive celebrations.",
		IsSale: true, Discount: 15, Date: "2023-05-10",
	},
	{
		ID: "lehenga1", Name: "Bridal Lehenga Set", Price: 45000,
		Images:   []string{"https://images.pexels.com/photos/2950650/pexels-photo-2950650.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"red", "gold"},
		Sizes:    []string{"XS", "S", "M", "L", "XL"},
		Category: "Lehenga",
		Description: "Opulent bridal lehenga set featuring heavy zardozi work, " +
			"crystal embellishments, and intricate thread embroidery.",
		IsNew: true, Date: "2023-10-05",
	},
	{
		ID: "lehenga2", Name: "Festive Lehenga Choli", Price: 28000,
		Images:   []string{"https://images.pexels.com/photos/3075797/pexels-photo-3075797.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"green", "gold"},
		Sizes:    []string{"XS", "S", "M", "L", "XL"},
		Category: "Lehenga",
		Description: "Elegant festive lehenga featuring a mix of contemporary design " +
			"and traditional craftsmanship.",
		Date: "2023-08-15",
	},
	{
		ID: "kaftan1", Name: "Embellished Silk Kaftan", Price: 18500,
		Images:   []string{"https://images.pexels.com/photos/2797086/pexels-photo-2797086.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"blue", "gold"},
		Sizes:    []string{"S", "M", "L"},
		Category: "Kaftan",
		Description: "Luxurious silk kaftan with hand-embellished details and " +
			"elegant draping.",
		Date: "2023-09-25",
	},
	{
		ID: "kaftan2", Name: "Printed Resort Kaftan", Price: 9500,
		Images:   []string{"https://images.pexels.com/photos/8386668/pexels-photo-8386668.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"white", "blue"},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "Kaftan",
		Description: "Lightweight printed kaftan perfect for resort wear, made from " +
			"breathable fabrics for warm weather.",
		IsSale: true, Discount: 20, Date: "2023-06-10",
	},
	{
		ID: "palazzo1", Name: "Embroidered Palazzo Set", Price: 12500,
		Images:   []string{"https://images.pexels.com/photos/2408666/pexels-photo-2408666.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"pink", "gold"},
		Sizes:    []string{"XS", "S", "M", "L", "XL"},
		Category: "Palazzo",
		Description: "Elegant palazzo set featuring a kurta with intricate embroidery " +
			"and matching palazzo pants.",
		Date: "2023-07-05",
	},
	{
		ID: "jacket1", Name: "Embroidered Silk Jacket", Price: 19000,
		Images:   []string{"https://images.pexels.com/photos/2058386/pexels-photo-2058386.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"blue", "gold"},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "Jacket",
		Description: "Luxurious silk jacket with intricate hand embroidery and " +
			"traditional motifs.",
		IsNew: true, Date: "2023-10-15",
	},
	{
		ID: "jacket2", Name: "Velvet Embellished Jacket", Price: 21500,
		Images:   []string{"https://images.pexels.com/photos/7389033/pexels-photo-7389033.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"maroon", "gold"},
		Sizes:    []string{"S", "M", "L", "XL"},
		Category: "Jacket",
		Description: "Opulent velvet jacket with elaborate embellishments, a statement " +
			"piece for weddings and formal events.",
		Date: "2023-08-20",
	},
	{
		ID: "sharara1", Name: "Designer Sharara Set", Price: 16500,
		Images:   []string{"https://images.pexels.com/photos/5816034/pexels-photo-5816034.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"green", "gold"},
		Sizes:    []string{"XS", "S", "M", "L", "XL"},
		Category: "Sharara",
		Description: "Contemporary sharara set featuring a stylish kurta, wide-legged " +
			"sharara pants, and a matching dupatta.",
		IsSale: true, Discount: 10, Date: "2023-06-25",
	},
	{
		ID: "cape1", Name: "Embellished Cape Gown", Price: 23500,
		Images:   []string{"https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"},
		Colors:   []string{"blue", "silver"},
		Sizes:    []string{"XS", "S", "M", "L", "XL"},
		Category: "Cape",
		Description: "Elegant gown with an attached cape, featuring intricate " +
			"embellishments and a flowing silhouette.",
		IsNew: true, Date: "2023-09-10",
	},
}

// SeedService serves the built-in catalog; it backs the storefront in
// offline mode and tests.
type SeedService struct {
	products []Product
}

func NewSeedService() *SeedService {
	return &SeedService{products: seedProducts}
}

func (s *SeedService) ListProducts(_ context.Context) ([]Product, error) {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out, nil
}

func (s *SeedService) GetProduct(_ context.Context, id string) (*Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *SeedService) FilterProducts(_ context.Context, criteria Criteria) ([]Product, error) {
	matched := []Product{}
	for _, p := range s.products {
		if criteria.MinPrice > 0 && p.Price < criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice > 0 && p.Price > criteria.MaxPrice {
			continue
		}
		if len(criteria.Colors) > 0 && !anyOverlap(p.Colors, criteria.Colors) {
			continue
		}
		if len(criteria.ProductTypes) > 0 && !containsFold(criteria.ProductTypes, p.Category) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

// GetFilterOptions derives the vocabulary from the catalog itself, the
// way the storefront extracts it when the API does not provide one.
func (s *SeedService) GetFilterOptions(_ context.Context) (*FilterOptions, error) {
	colorSet := map[string]bool{}
	typeSet := map[string]bool{}
	pr := PriceRange{}

	for i, p := range s.products {
		for _, c := range p.Colors {
			colorSet[c] = true
		}
		typeSet[p.Category] = true
		if i == 0 || p.Price < pr.Min {
			pr.Min = p.Price
		}
		if p.Price > pr.Max {
			pr.Max = p.Price
		}
	}

	return &FilterOptions{
		Colors:       sortedKeys(colorSet),
		ProductTypes: sortedKeys(typeSet),
		PriceRange:   pr,
	}, nil
}

// FeaturedProducts returns the newest and on-sale items for the home page.
func (s *SeedService) FeaturedProducts() []Product {
	featured := []Product{}
	for _, p := range s.products {
		if p.IsNew || p.IsSale {
			featured = append(featured, p)
		}
	}
	return featured
}

// ProductsByCategory returns the items of one collection.
func (s *SeedService) ProductsByCategory(category string) []Product {
	out := []Product{}
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// RelatedProducts returns up to four other items from the same category.
func (s *SeedService) RelatedProducts(id, category string) []Product {
	out := []Product{}
	for _, p := range s.products {
		if p.ID == id || !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
		if len(out) == 4 {
			break
		}
	}
	return out
}

func anyOverlap(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
