package i18n

// UIText is the full set of localized UI strings.
type UIText struct {
	AppTitle          string
	AppSubtitle       string
	SystemOnline      string
	NodesActive       string
	SearchPlaceholder string
	FilterCompany     string
	FilterCap         string
	FilterYear        string
	FilterAll         string
	ResetFilters      string
	NoData            string
	NoDataDesc        string
	DragHint          string
	Zoom              string
	SortNewest        string
	SortOldest        string

	// Detail overlay
	SystemIdle          string
	SelectNodeHint      string
	Released            string
	Source              string
	Description         string
	CoreTech            string
	Params              string
	Undisclosed         string
	Features            string
	UseCases            string
	GeminiAnalysis      string
	ImpactAnalysis      string
	ArchNote            string
	Trivia              string
	AnalysisUnavailable string
	Loading             string
	CloseHint           string
	Copied              string
	NoSource            string

	// Status messages
	DatasetReloaded string
	ReloadFailed    string
}

//nolint:gochecknoglobals // Read-only label tables.
var labels = map[Language]UIText{
	English: {
		AppTitle:          "AI CHRONOS",
		AppSubtitle:       "Timeline Visualization",
		SystemOnline:      "SYSTEM ONLINE",
		NodesActive:       "NODES ACTIVE",
		SearchPlaceholder: "Search model or company...",
		FilterCompany:     "Company",
		FilterCap:         "Cap",
		FilterYear:        "Year",
		FilterAll:         "All",
		ResetFilters:      "RESET FILTERS",
		NoData:            "NO DATA FOUND",
		NoDataDesc:        "Adjust search parameters to locate nodes.",
		DragHint:          "DRAG OR SCROLL TO NAVIGATE",
		Zoom:              "ZOOM",
		SortNewest:        "NEWEST FIRST",
		SortOldest:        "OLDEST FIRST",

		SystemIdle:          "SYSTEM IDLE",
		SelectNodeHint:      "Select a neural node to initialize dossier",
		Released:            "REL",
		Source:              "SOURCE",
		Description:         "System Description",
		CoreTech:            "Core Technology",
		Params:              "Parameter Count",
		Undisclosed:         "UNDISCLOSED",
		Features:            "Key Features",
		UseCases:            "Use Cases",
		GeminiAnalysis:      "Gemini Analysis",
		ImpactAnalysis:      "Industry Impact",
		ArchNote:            "Architecture Note",
		Trivia:              "Trivia",
		AnalysisUnavailable: "Analysis Unavailable",
		Loading:             "Processing...",
		CloseHint:           "esc close · y copy source · ↑/↓ scroll",
		Copied:              "Source copied to clipboard",
		NoSource:            "No source link for this node",

		DatasetReloaded: "Dataset reloaded",
		ReloadFailed:    "Dataset reload failed",
	},
	Chinese: {
		AppTitle:          "AI 时序",
		AppSubtitle:       "演化时间轴可视化",
		SystemOnline:      "系统在线",
		NodesActive:       "活跃节点",
		SearchPlaceholder: "搜索模型或公司...",
		FilterCompany:     "公司",
		FilterCap:         "能力",
		FilterYear:        "年份",
		FilterAll:         "全部",
		ResetFilters:      "重置筛选",
		NoData:            "未找到数据",
		NoDataDesc:        "请调整搜索参数以定位节点。",
		DragHint:          "拖动或滚动以导航",
		Zoom:              "缩放",
		SortNewest:        "最新优先",
		SortOldest:        "最早优先",

		SystemIdle:          "系统待机",
		SelectNodeHint:      "选择神经节点以初始化档案",
		Released:            "发布",
		Source:              "来源",
		Description:         "系统描述",
		CoreTech:            "核心技术",
		Params:              "参数量",
		Undisclosed:         "未公开",
		Features:            "主要特点",
		UseCases:            "应用案例",
		GeminiAnalysis:      "Gemini 分析",
		ImpactAnalysis:      "行业影响",
		ArchNote:            "架构说明",
		Trivia:              "冷知识",
		AnalysisUnavailable: "分析不可用",
		Loading:             "处理中...",
		CloseHint:           "esc 关闭 · y 复制来源 · ↑/↓ 滚动",
		Copied:              "来源已复制到剪贴板",
		NoSource:            "该节点没有来源链接",

		DatasetReloaded: "数据集已重新加载",
		ReloadFailed:    "数据集重新加载失败",
	},
}

// Labels returns the label table for lang, falling back to DefaultLanguage.
func Labels(lang Language) UIText {
	if t, ok := labels[lang]; ok {
		return t
	}
	return labels[DefaultLanguage]
}
