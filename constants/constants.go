package constants

// 商品カテゴリ
var Categories = []string{"书籍", "电子产品", "生活用品", "运动/户外", "服饰配件", "票务/卡券"}

// CategoryLabels maps category values to their English display labels.
var CategoryLabels = map[string]string{
	"书籍":    "Books",
	"电子产品":  "Electronics",
	"生活用品":  "Daily Essentials",
	"运动/户外": "Sports / Outdoor",
	"服饰配件":  "Clothing & Accessories",
	"票务/卡券": "Tickets / Passes",
}

// IsValidCategory reports whether c is one of the fixed category values.
func IsValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

const (
	CategoryPageSize = 50
	HotPageSize      = 10
	HomePageSize     = 6
)

// エラーメッセージ
const (
	ErrItemNotFound = "Item not found"
	ErrUnexpected   = "Unexpected error"
	ErrInvalidID    = "Invalid id"
	ErrInvalidInput = "Invalid input"
)
