package i18n

// messages holds the built-in message tables keyed by locale tag.
var messages = map[string]map[string]any{
	"zh-CN": {
		"global": map[string]any{
			"appTitle":          "Sharw 的 API 市场",
			"market":            "插件市场",
			"about":             "关于我们",
			"viewRepo":          "查看仓库",
			"searchPlaceholder": "按名称、作者或描述搜索插件...",
			"loading":           "正在加载插件...",
			"error":             "加载失败：",
			"noResults":         "未找到匹配 \"{searchTerm}\" 的插件。",
			"themeLight":        "切换到黑暗模式",
			"themeDark":         "切换到明亮模式",
			"authorPrefix":      "作者：",
		},
		"about": map[string]any{
			"title": "关于 Sharw 的 API 市场",
			"p1":    "这是一个用于展示 Sharwapi 插件集合中所有索引插件的简单市场。",
			"p2":    "数据来源：",
		},
		"cli": map[string]any{
			"theme":       "主题",
			"locale":      "语言",
			"dark":        "黑暗",
			"light":       "明亮",
			"themeSet":    "已切换为{theme}模式。",
			"localeSet":   "语言已设置为 {locale}。",
			"id":          "标识",
			"name":        "名称",
			"author":      "作者",
			"description": "描述",
			"repository":  "仓库",
		},
	},
	"en-US": {
		"global": map[string]any{
			"appTitle":          "Sharw's API Market",
			"market":            "Market",
			"about":             "About",
			"viewRepo":          "View Repository",
			"searchPlaceholder": "Search plugins by name, author, or description...",
			"loading":           "Loading plugins...",
			"error":             "Loading failed: ",
			"noResults":         "No plugins found matching \"{searchTerm}\".",
			"themeLight":        "Switch to Dark Mode",
			"themeDark":         "Switch to Light Mode",
			"authorPrefix":      "By: ",
		},
		"about": map[string]any{
			"title": "About Sharw's API Market",
			"p1":    "This is a simple marketplace showcasing all indexed plugins from the Sharwapi collection.",
			"p2":    "Data Source:",
		},
		"cli": map[string]any{
			"theme":       "Theme",
			"locale":      "Language",
			"dark":        "dark",
			"light":       "light",
			"themeSet":    "Switched to {theme} mode.",
			"localeSet":   "Language set to {locale}.",
			"id":          "ID",
			"name":        "Name",
			"author":      "Author",
			"description": "Description",
			"repository":  "Repository",
		},
	},
}
