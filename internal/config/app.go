package config

const defaultCurrencySymbol = "₹"

var defaultCategories = []string{
	"Food", "Transport", "Entertainment", "Utilities", "Rent",
	"Groceries", "Shopping", "Health", "Education", "Other",
}

type AppConfig struct {
	CurrencySymbol   string   `yaml:"currency-symbol"`
	CommonCategories []string `yaml:"categories"`
}

func (s *AppConfig) Currency() string {
	if s.CurrencySymbol == "" {
		return defaultCurrencySymbol
	}
	return s.CurrencySymbol
}

// Categories returns the quick-pick categories offered when logging an
// expense. Custom categories are always allowed on top of these.
func (s *AppConfig) Categories() []string {
	if len(s.CommonCategories) == 0 {
		return defaultCategories
	}
	return s.CommonCategories
}
