package model

// ContactInfo 下单联系人
// email / phone 至少留一个
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// OrderDetails 订单明细，按 type 区分的标签联合
// JSON 层面三个类目的字段平铺在同一对象里，只有当前类目的字段有值
type OrderDetails struct {
	Type         string `json:"type"`
	ProductID    string `json:"product_id"`
	ProductTitle string `json:"product_title"`

	// bracelet
	Style  string   `json:"style,omitempty"`
	Colors []string `json:"colors,omitempty"`
	Notes  string   `json:"notes,omitempty"`

	// coloring_page
	BookName             string `json:"book_name,omitempty"`
	PageName             string `json:"page_name,omitempty"`
	ColoringInstructions string `json:"coloring_instructions,omitempty"`

	// portrait（Style 与 bracelet 共用字段）
	SubjectDescription string `json:"subject_description,omitempty"`
	ReferenceImageURL  string `json:"reference_image_url,omitempty"`
	Size               string `json:"size,omitempty"`
}
