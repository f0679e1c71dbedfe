package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductIn is the request shape for creating a product. Price is a
// pointer so that an explicit 0 still satisfies the required rule.
type ProductIn struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock"`
}

// ProductOut is the response shape: the stored fields plus the id the
// store assigned.
type ProductOut struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	InStock     bool    `json:"in_stock"`
}

// Document builds the document to persist, applying the in_stock default.
func (p ProductIn) Document() bson.M {
	inStock := true
	if p.InStock != nil {
		inStock = *p.InStock
	}

	var price float64
	if p.Price != nil {
		price = *p.Price
	}

	return bson.M{
		"title":       p.Title,
		"description": p.Description,
		"price":       price,
		"category":    p.Category,
		"image":       p.Image,
		"in_stock":    inStock,
	}
}

// FromDocument maps a raw stored document to the output shape. Missing
// optional fields fall back to defaults instead of failing: description
// and image to empty, price to 0, in_stock to true.
func FromDocument(doc bson.M) ProductOut {
	out := ProductOut{
		Title:       stringField(doc, "title"),
		Description: stringField(doc, "description"),
		Price:       priceField(doc),
		Category:    stringField(doc, "category"),
		Image:       stringField(doc, "image"),
		InStock:     true,
	}

	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		out.ID = oid.Hex()
	}
	if v, ok := doc["in_stock"].(bool); ok {
		out.InStock = v
	}
	return out
}

func stringField(doc bson.M, key string) string {
	if v, ok := doc[key].(string); ok {
		return v
	}
	return ""
}

// priceField coerces whatever numeric type the driver decoded into a
// float64.
func priceField(doc bson.M) float64 {
	switch v := doc["price"].(type) {
	case float64:
		return v
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
