package transform

// ColumnNames names the input columns the transformer extracts. The quantity
// column doubles as the anchor for the unit column, which sits immediately to
// its right and has no header name of its own.
type ColumnNames struct {
	ItemNo      string
	Code        string
	Name        string
	Spec        string
	Quantity    string
	Source      string
	Destination string
	Origin      string
	UnitPrice   string
	TotalPrice  string
	Currency    string
}

// Schema describes one waybill layout: the sheet to read, the exact header
// sequence that marks the header row, the named columns to extract, and the
// output shape. It is passed into the transformer as an immutable value; an
// alternate layout is supported by substituting a different Schema, not by
// editing package literals.
type Schema struct {
	SheetName     string
	InputHeaders  []string
	Columns       ColumnNames
	OutputHeaders []string
	Exemption     string
	CurrencyNames map[string]string
}

// DefaultSchema returns the customs export-declaration waybill layout.
func DefaultSchema() Schema {
	return Schema{
		SheetName: "面单",
		InputHeaders: []string{
			"项号", "商品编码", "商品名称", "用途规格型号等", "数量及单位",
			"境内货源地", "最终目的国", "原产国", "单价", "总价", "币制",
			"品牌类型", "出口享惠情况",
		},
		Columns: ColumnNames{
			ItemNo:      "项号",
			Code:        "商品编码",
			Name:        "商品名称",
			Spec:        "用途规格型号等",
			Quantity:    "数量及单位",
			Source:      "境内货源地",
			Destination: "最终目的国",
			Origin:      "原产国",
			UnitPrice:   "单价",
			TotalPrice:  "总价",
			Currency:    "币制",
		},
		OutputHeaders: []string{
			"项号", "商品编号", "商品名称及规格型号", "数量及单位",
			"单价/总价/币制", "原产国(地区)", "最终目的国(地区)", "境内货源地", "征免",
		},
		Exemption:     "照章",
		CurrencyNames: map[string]string{"USD": "美元"},
	}
}

// Price separator styles. Space is canonical; slash is a historical variant
// some declaration forms used and is kept selectable through config.
const (
	PriceSeparatorSpace = "space"
	PriceSeparatorSlash = "slash"
)

// Options carries per-run formatting choices.
type Options struct {
	PriceSeparator string
}

// DefaultOptions returns the canonical formatting choices.
func DefaultOptions() Options {
	return Options{PriceSeparator: PriceSeparatorSpace}
}

func (o Options) priceSeparator() string {
	if o.PriceSeparator == PriceSeparatorSlash {
		return " / "
	}
	return " "
}
