package event

// Category はイベントの分類ラベル
type Category string

const (
	CategoryTechnology  Category = "Technology"
	CategoryMusic       Category = "Music"
	CategoryBusiness    Category = "Business"
	CategoryArt         Category = "Art"
	CategoryEnvironment Category = "Environment"
	CategoryFood        Category = "Food"
	CategoryHealthcare  Category = "Healthcare"
	CategorySports      Category = "Sports"
)

var categories = []Category{
	CategoryTechnology,
	CategoryMusic,
	CategoryBusiness,
	CategoryArt,
	CategoryEnvironment,
	CategoryFood,
	CategoryHealthcare,
	CategorySports,
}

// Categories は定義済みカテゴリを表示順で返す
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsValid は定義済みカテゴリかどうかを返す
func (c Category) IsValid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}
