package model

// WebResponse is the envelope every endpoint answers with. Paging is only
// set on the contact search endpoint.
type WebResponse struct {
	Data   interface{} `json:"data,omitempty"`
	Errors string      `json:"errors,omitempty"`
	Paging *Paging     `json:"paging,omitempty"`
}

type Paging struct {
	CurrentPage int   `json:"currentPage"`
	TotalPage   int64 `json:"totalPage"`
	Size        int   `json:"size"`
}
