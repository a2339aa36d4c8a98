package models

// Fallback labels for dangling references.
const (
	UnspecifiedLabel    = "unspecified"
	UnknownProductLabel = "Unknown product"
	UnknownRecipeLabel  = "Unknown recipe"
	UnknownLabel        = "Unknown"
)

// Entity is implemented by every top-level collection record.
type Entity interface {
	EntityID() string
}

// FindByID returns the first record with the given id. A missing id is not
// an error; callers pick their own fallback.
func FindByID[T Entity](list []T, id string) (T, bool) {
	for _, item := range list {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// IndexByID builds an id lookup for repeated resolution.
func IndexByID[T Entity](list []T) map[string]T {
	idx := make(map[string]T, len(list))
	for _, item := range list {
		if _, seen := idx[item.EntityID()]; !seen {
			idx[item.EntityID()] = item
		}
	}
	return idx
}

func SupplierName(suppliers []Supplier, id *string) string {
	if id == nil || *id == "" {
		return UnspecifiedLabel
	}
	if s, ok := FindByID(suppliers, *id); ok {
		return s.Name
	}
	return UnspecifiedLabel
}

func ProductName(products []Product, id string) string {
	if p, ok := FindByID(products, id); ok {
		return p.Name
	}
	return UnknownProductLabel
}

func RecipeName(recipes []Recipe, id string) string {
	if r, ok := FindByID(recipes, id); ok {
		return r.Name
	}
	return UnknownRecipeLabel
}

func IngredientName(ingredients []Ingredient, id string) string {
	if i, ok := FindByID(ingredients, id); ok {
		return i.Name
	}
	return UnknownLabel
}
