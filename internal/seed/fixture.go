package seed

import (
	"compress/gzip"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

//go:embed catalog.json
var defaultCatalog string

// Fixture is a complete set of rows to insert. Products reference their
// category by name and orders reference their customer by email.
type Fixture struct {
	Categories []CategoryFixture `json:"categories"`
	Products   []ProductFixture  `json:"products"`
	Customers  []CustomerFixture `json:"customers"`
	Orders     []OrderFixture    `json:"orders"`
}

// CategoryFixture is a category row, identified within the fixture by name.
type CategoryFixture struct {
	Name string `json:"name"`
}

// ProductFixture is a product row. Category names a CategoryFixture.
type ProductFixture struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	Category string          `json:"category"`
}

// CustomerFixture is a customer row, identified within the fixture by email.
type CustomerFixture struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderFixture is an order placed by the customer with CustomerEmail.
type OrderFixture struct {
	CustomerEmail string `json:"customer_email"`
}

// DefaultFixture returns the built-in sample catalogue.
func DefaultFixture() (*Fixture, error) {
	return Decode(strings.NewReader(defaultCatalog), false)
}

// Decode reads a JSON fixture, optionally gzip-compressed, and validates it.
func Decode(r io.Reader, gzipped bool) (*Fixture, error) {
	if gzipped {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		r = gz
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	if err := fx.Validate(); err != nil {
		return nil, err
	}

	return &fx, nil
}

// Validate checks that every reference in the fixture resolves within it.
func (fx *Fixture) Validate() error {
	categories := make(map[string]bool, len(fx.Categories))
	for i, c := range fx.Categories {
		if c.Name == "" {
			return fmt.Errorf("category %d: name is required", i)
		}
		if categories[c.Name] {
			return fmt.Errorf("category %q is listed twice", c.Name)
		}
		categories[c.Name] = true
	}

	for i, p := range fx.Products {
		if p.Name == "" {
			return fmt.Errorf("product %d: name is required", i)
		}
		if p.Price.IsNegative() || p.Stock < 0 {
			return fmt.Errorf("product %q: price and stock must not be negative", p.Name)
		}
		if !categories[p.Category] {
			return fmt.Errorf("product %q: unknown category %q", p.Name, p.Category)
		}
	}

	customers := make(map[string]bool, len(fx.Customers))
	for i, c := range fx.Customers {
		if c.Name == "" || c.Email == "" {
			return fmt.Errorf("customer %d: name and email are required", i)
		}
		if customers[c.Email] {
			return fmt.Errorf("customer email %q is listed twice", c.Email)
		}
		customers[c.Email] = true
	}

	for i, o := range fx.Orders {
		if !customers[o.CustomerEmail] {
			return fmt.Errorf("order %d: unknown customer %q", i, o.CustomerEmail)
		}
	}

	return nil
}
