package v1

type URIID struct {
	ID uint64 `uri:"id" binding:"required" example:"42"` // ID of the resource
}

type URIInvoiceLine struct {
	ID     uint64 `uri:"id" binding:"required" example:"12"`     // ID of the invoice
	LineID uint64 `uri:"lineId" binding:"required" example:"31"` // ID of the invoice line
}

type URIEntity struct {
	Entity string `uri:"entity" binding:"required,oneof=tenant unit lease" example:"unit"` // Entity the form is for
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
