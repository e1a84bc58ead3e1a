package policy

import "strings"

// Category is one of the four product buckets every policy resolves to.
// Commission splitting and turnover reporting are both keyed by it.
type Category string

const (
	CategoryLCA    Category = "lca"
	CategoryVie    Category = "vie"
	CategoryHypo   Category = "hypo"
	CategoryNonVie Category = "non_vie"
)

var (
	lifeMarkers   = []string{"vie", "life", "pilier", "3a", "3b"}
	healthMarkers = []string{"health", "lamal", "lca", "maladie", "complémentaire"}
	hypoMarkers   = []string{"hypo", "hypothécaire"}
)

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Categorize resolves a policy to exactly one category. Rule order matters:
// life markers win over everything on the raw product type, then health
// markers, then bundled sub-products (health beats life inside a bundle),
// then hypothecary markers. Anything left is non_vie.
func Categorize(p Policy) Category {
	productType := strings.ToLower(p.ProductType)

	if containsAny(productType, lifeMarkers) {
		return CategoryVie
	}
	if containsAny(productType, healthMarkers) {
		return CategoryLCA
	}

	if productType == "multi" && len(p.ProductsData) > 0 {
		hasLife := false
		for _, sub := range p.ProductsData {
			category := strings.ToLower(sub.Category)
			if containsAny(category, healthMarkers) {
				return CategoryLCA
			}
			if containsAny(category, lifeMarkers) {
				hasLife = true
			}
		}
		if hasLife {
			return CategoryVie
		}
	}

	if containsAny(productType, hypoMarkers) {
		return CategoryHypo
	}

	return CategoryNonVie
}
