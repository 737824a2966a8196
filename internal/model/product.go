package model

// 商品类目，建后不可变
const (
	ProductTypeBracelet     = "bracelet"
	ProductTypeColoringPage = "coloring_page"
	ProductTypePortrait     = "portrait"
)

// 商品状态，只有发布端可以改
const (
	ProductStatusDraft     = "draft"
	ProductStatusPublished = "published"
	ProductStatusArchived  = "archived"
	ProductStatusSoldOut   = "sold_out"
)

// ValidProductTypes 合法类目列表（校验失败时原样回给调用方）
var ValidProductTypes = []string{ProductTypeBracelet, ProductTypeColoringPage, ProductTypePortrait}

// ValidProductStatuses 合法状态列表
var ValidProductStatuses = []string{ProductStatusDraft, ProductStatusPublished, ProductStatusArchived, ProductStatusSoldOut}

// IsValidProductType 类目是否合法
func IsValidProductType(t string) bool {
	for _, v := range ValidProductTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsValidProductStatus 状态是否合法
func IsValidProductStatus(s string) bool {
	for _, v := range ValidProductStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsPubliclyVisible 对外可见的状态：published / sold_out
// draft 和 archived 永远不出现在公开列表里
func IsPubliclyVisible(status string) bool {
	return status == ProductStatusPublished || status == ProductStatusSoldOut
}

// ==================== 商品 ====================

// Product 商品条目
// 不变式：type 对应的类目负载恰好存在一个，其余为 nil。
// 商品不做局部更新，发布端整体覆盖
type Product struct {
	ProductID    string   `json:"product_id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	ShortDesc    string   `json:"short_desc,omitempty"`
	Status       string   `json:"status"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
	Gallery      []string `json:"gallery,omitempty"`
	SortOrder    *int     `json:"sort_order,omitempty"`

	Bracelet     *BraceletInfo     `json:"bracelet,omitempty"`
	ColoringPage *ColoringPageInfo `json:"coloring_page,omitempty"`
	Portrait     *PortraitInfo     `json:"portrait,omitempty"`
}

// BraceletInfo 手链类目负载
type BraceletInfo struct {
	Style        string   `json:"style"` // rubber_band | beaded
	ColorOptions []string `json:"color_options"`
	MaxColors    int      `json:"max_colors,omitempty"`
	Materials    string   `json:"materials,omitempty"`
}

// ColoringPageInfo 涂色页类目负载
type ColoringPageInfo struct {
	BookName          string `json:"book_name"`
	PageName          string `json:"page_name"`
	BlankPageURL      string `json:"blank_page_url"`
	ColoredExampleURL string `json:"colored_example_url,omitempty"`
}

// PortraitInfo 肖像画类目负载
type PortraitInfo struct {
	SizeOptions    []string `json:"size_options,omitempty"`
	StyleOptions   []string `json:"style_options,omitempty"`
	Turnaround     string   `json:"turnaround,omitempty"`
	RequiresUpload bool     `json:"requires_upload"`
}

// EffectiveSortOrder 排序权重，缺省排最后
func (p *Product) EffectiveSortOrder() int {
	if p.SortOrder == nil {
		return 999
	}
	return *p.SortOrder
}
