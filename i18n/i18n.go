// Package i18n holds the zh/en message catalog for forms, flashes and page titles.
package i18n

const DefaultLocale = "zh"

var SupportedLocales = []string{"zh", "en"}

// Supported reports whether locale is one of the UI locales.
func Supported(locale string) bool {
	for _, l := range SupportedLocales {
		if l == locale {
			return true
		}
	}
	return false
}

// Normalize returns locale when supported, the default locale otherwise.
func Normalize(locale string) string {
	if Supported(locale) {
		return locale
	}
	return DefaultLocale
}

// T looks up key in the catalog for the given locale. Unknown locales fall
// back to the default locale; unknown keys come back verbatim.
func T(locale, key string) string {
	msgs, ok := catalog[Normalize(locale)]
	if !ok {
		msgs = catalog[DefaultLocale]
	}
	if msg, ok := msgs[key]; ok {
		return msg
	}
	return key
}

var catalog = map[string]map[string]string{
	"zh": {
		"username_required":     "用户名不能为空",
		"username_min":          "用户名至少 3 个字符",
		"username_max":          "用户名最多 32 个字符",
		"password_required":     "密码不能为空",
		"password_min":          "密码至少 6 个字符",
		"confirm_mismatch":      "两次输入的密码不一致",
		"username_taken":        "用户名已被使用",
		"login_failed":          "用户名或密码错误",
		"title_required":        "标题不能为空",
		"title_max":             "标题长度不能超过 80 个字符",
		"category_required":     "请选择分类",
		"category_invalid":      "请选择有效的分类",
		"price_required":        "请输入价格",
		"price_nonneg":          "价格必须为非负数",
		"description_max":       "描述最多 500 字",
		"flash_registered":      "注册成功，欢迎加入！",
		"flash_logged_in":       "登录成功",
		"flash_item_created":    "物品发布成功！",
		"flash_item_updated":    "物品信息已更新",
		"flash_item_deleted":    "物品已删除",
		"flash_item_not_found":  "未找到指定物品",
		"flash_edit_own_only":   "只能编辑自己发布的物品",
		"flash_delete_own_only": "只能删除自己发布的物品",
		"title_home":            "校园二手集市",
		"title_register":        "注册",
		"title_login":           "登录",
		"title_items":           "物品广场",
		"title_new_item":        "发布物品",
		"title_item_detail":     "物品详情",
		"title_edit_item":       "编辑物品",
		"title_error":           "系统错误",
		"server_error":          "服务器开小差了，请稍后重试。",
	},
	"en": {
		"username_required":     "Username is required",
		"username_min":          "Username must be at least 3 characters long",
		"username_max":          "Username cannot exceed 32 characters",
		"password_required":     "Password is required",
		"password_min":          "Password must be at least 6 characters long",
		"confirm_mismatch":      "Passwords do not match",
		"username_taken":        "Username is already taken",
		"login_failed":          "Incorrect username or password",
		"title_required":        "Title is required",
		"title_max":             "Title cannot exceed 80 characters",
		"category_required":     "Please choose a category",
		"category_invalid":      "Please choose a valid category",
		"price_required":        "Please enter a price",
		"price_nonneg":          "Price must be a non-negative number",
		"description_max":       "Description cannot exceed 500 characters",
		"flash_registered":      "Registration successful, welcome aboard!",
		"flash_logged_in":       "Signed in successfully",
		"flash_item_created":    "Item published successfully!",
		"flash_item_updated":    "Item updated successfully",
		"flash_item_deleted":    "Item deleted successfully",
		"flash_item_not_found":  "Item not found",
		"flash_edit_own_only":   "You can only edit items you published",
		"flash_delete_own_only": "You can only delete items you published",
		"title_home":            "Campus Marketplace",
		"title_register":        "Sign Up",
		"title_login":           "Sign In",
		"title_items":           "Marketplace",
		"title_new_item":        "Post Item",
		"title_item_detail":     "Item Detail",
		"title_edit_item":       "Edit Item",
		"title_error":           "Server Error",
		"server_error":          "Oops! Something went wrong. Please try again later.",
	},
}
