package dto

// CustomerResponse is the customer list/detail entry.
type CustomerResponse struct {
	No                 int64  `json:"customerNo"`
	Name               string `json:"customerName"`
	Tel                string `json:"customerTel"`
	RepresentativeName string `json:"customerRepresentativeName"`
}

// ProductResponse is the product list/detail entry with joined category
// display fields.
type ProductResponse struct {
	Code         string `json:"productCd"`
	Name         string `json:"productNm"`
	CategoryID   *int64 `json:"categoryNo,omitempty"`
	CategoryName string `json:"categoryNm,omitempty"`
	CategoryPath string `json:"categoryPath,omitempty"`
	Price        int64  `json:"productPrice"`
}

// CategoryResponse is a node of the category tree.
type CategoryResponse struct {
	ID       int64  `json:"categoryNo"`
	Name     string `json:"categoryNm"`
	ParentID *int64 `json:"parentCategoryNo,omitempty"`
	Level    int    `json:"categoryLevel"`
	Path     string `json:"categoryPath"`
}
