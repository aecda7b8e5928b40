package models

import "encoding/json"

// BeforeCreate fills the defaults of a new product.
func (p *Product) BeforeCreate() {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = Now()
	}
	if len(p.OriginalPrice) == 0 {
		p.OriginalPrice = Price("null")
	}
	if p.Features == nil {
		p.Features = []string{}
	}
}

// MarshalJSON writes an empty feature list as [] and leaves features out
// entirely once an update cleared them.
func (p Product) MarshalJSON() ([]byte, error) {
	type product Product
	var features *[]string
	if p.Features != nil {
		features = &p.Features
	}
	return json.Marshal(struct {
		product
		Features *[]string `json:"features,omitempty"`
	}{product(p), features})
}

// Apply overwrites every mutable field with the request values, including
// the ones the request left out. ID and CreatedAt are kept.
func (p *Product) Apply(req *ProductRequest) {
	p.Title = req.Title
	p.Description = req.Description
	p.ImageURL = req.ImageURL
	p.Price = req.Price
	p.OriginalPrice = req.OriginalPrice
	p.Link = req.Link
	p.Features = req.Features
}

// NewProduct builds an unsaved product from a create request.
func NewProduct(req *ProductRequest) *Product {
	p := &Product{}
	p.Apply(req)
	return p
}
