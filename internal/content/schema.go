package content

// Document types read by the site.
const (
	TypeHomepage    = "homepage"
	TypeProfile     = "profile"
	TypePost        = "post"
	TypeTestimonial = "testimonial"
	TypeVenue       = "venue"
	TypePricing     = "pricing"
)

// FieldKind is the store-side type of a document field.
type FieldKind string

const (
	KindString    FieldKind = "string"
	KindText      FieldKind = "text"
	KindImage     FieldKind = "image"
	KindSlug      FieldKind = "slug"
	KindDatetime  FieldKind = "datetime"
	KindNumber    FieldKind = "number"
	KindURL       FieldKind = "url"
	KindBlocks    FieldKind = "blocks"
	KindStringSet FieldKind = "strings"
)

// Field describes one document field the queries project.
type Field struct {
	Name  string
	Kind  FieldKind
	Title string
}

// Schema describes a document type as authored in the studio.
type Schema struct {
	Type   string
	Title  string
	Fields []Field
}

// Schemas lists the document types the site depends on.
var Schemas = []Schema{
	{
		Type:  TypeHomepage,
		Title: "首頁設定 (Hero區塊)",
		Fields: []Field{
			{Name: "heroTitle", Kind: KindString, Title: "主標題"},
			{Name: "heroSubtitle", Kind: KindString, Title: "副標題"},
			{Name: "heroDescription", Kind: KindText, Title: "簡短描述"},
			{Name: "heroImage", Kind: KindImage, Title: "背景大圖"},
		},
	},
	{
		Type:  TypeProfile,
		Title: "教練個人檔案",
		Fields: []Field{
			{Name: "name", Kind: KindString, Title: "識別名稱"},
			{Name: "portrait", Kind: KindImage, Title: "形象照"},
			{Name: "bio", Kind: KindBlocks, Title: "自我介紹"},
			{Name: "certifications", Kind: KindStringSet, Title: "證照列表"},
			{Name: "experience", Kind: KindStringSet, Title: "經歷列表"},
			{Name: "achievements", Kind: KindStringSet, Title: "成績列表"},
			{Name: "specialties", Kind: KindStringSet, Title: "專長標籤"},
		},
	},
	{
		Type:  TypePost,
		Title: "部落格文章",
		Fields: []Field{
			{Name: "title", Kind: KindString, Title: "文章標題"},
			{Name: "slug", Kind: KindSlug, Title: "網址路徑"},
			{Name: "mainImage", Kind: KindImage, Title: "文章主圖"},
			{Name: "publishedAt", Kind: KindDatetime, Title: "發布日期"},
			{Name: "body", Kind: KindBlocks, Title: "文章內容"},
		},
	},
	{
		Type:  TypeTestimonial,
		Title: "學員見證",
		Fields: []Field{
			{Name: "studentName", Kind: KindString, Title: "學員名稱"},
			{Name: "program", Kind: KindString, Title: "參加的課程名稱"},
			{Name: "content", Kind: KindText, Title: "心得回饋"},
			{Name: "beforeImage", Kind: KindImage, Title: "訓練前照片"},
			{Name: "afterImage", Kind: KindImage, Title: "訓練後照片"},
		},
	},
	{
		Type:  TypeVenue,
		Title: "合作場地",
		Fields: []Field{
			{Name: "area", Kind: KindString, Title: "地區"},
			{Name: "name", Kind: KindString, Title: "場館名稱"},
			{Name: "address", Kind: KindString, Title: "地址"},
			{Name: "description", Kind: KindString, Title: "備註"},
			{Name: "url", Kind: KindURL, Title: "場館連結"},
		},
	},
	{
		Type:  TypePricing,
		Title: "課程收費",
		Fields: []Field{
			{Name: "title", Kind: KindString, Title: "方案名稱"},
			{Name: "price", Kind: KindString, Title: "價格"},
			{Name: "unit", Kind: KindString, Title: "單位/備註"},
			{Name: "order", Kind: KindNumber, Title: "排序編號"},
		},
	},
}

// SchemaFor returns the schema registered for a document type.
func SchemaFor(docType string) (Schema, bool) {
	for _, s := range Schemas {
		if s.Type == docType {
			return s, true
		}
	}
	return Schema{}, false
}
