package validate

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"arihant/internal/domain"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// FieldError reports the first offending field of a payload.
type FieldError struct {
	Field string
	Msg   string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Msg }

func fieldErr(field, msg string) *FieldError { return &FieldError{Field: field, Msg: msg} }

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Limit parses a listing limit. Empty means def; 0 means unbounded.
func Limit(s string, def int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Bool accepts the usual query-string spellings of a boolean.
func Bool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, true
	case "0", "f", "false", "n", "no", "off":
		return false, true
	}
	return false, false
}

func Status(s string) (domain.OrderStatus, bool) {
	st := domain.OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	return st, st.Valid()
}

func nonNegative(field string, v float64) *FieldError {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fieldErr(field, "must be a non-negative number")
	}
	return nil
}

func required(field string, s *string) (string, *FieldError) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "", fieldErr(field, "field required")
	}
	return *s, nil
}

// Product turns a create/update payload into a Product with defaults applied.
func Product(in domain.ProductInput) (domain.Product, error) {
	var p domain.Product
	var ferr *FieldError

	if p.Title, ferr = required("title", in.Title); ferr != nil {
		return p, ferr
	}
	if p.Category, ferr = required("category", in.Category); ferr != nil {
		return p, ferr
	}
	if in.Price == nil {
		return p, fieldErr("price", "field required")
	}
	if ferr = nonNegative("price", *in.Price); ferr != nil {
		return p, ferr
	}
	p.Price = *in.Price

	if in.Stock != nil {
		if *in.Stock < 0 {
			return p, fieldErr("stock", "must be greater than or equal to 0")
		}
		p.Stock = *in.Stock
	}
	p.Description = in.Description
	p.Brand = in.Brand
	if p.Brand == nil {
		b := domain.DefaultBrand
		p.Brand = &b
	}
	p.Images = in.Images
	if p.Images == nil {
		p.Images = []string{}
	}
	p.Specifications = in.Specifications
	if p.Specifications == nil {
		p.Specifications = map[string]string{}
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p, nil
}

// Order turns a submission payload into an Order. Totals are taken as given.
func Order(in domain.OrderInput) (domain.Order, error) {
	var o domain.Order

	if len(in.Items) == 0 {
		return o, fieldErr("items", "at least one item required")
	}
	for i, it := range in.Items {
		field := fmt.Sprintf("items[%d]", i)
		var item domain.OrderItem
		var ferr *FieldError
		if item.ProductID, ferr = required(field+".product_id", it.ProductID); ferr != nil {
			return o, ferr
		}
		if item.Title, ferr = required(field+".title", it.Title); ferr != nil {
			return o, ferr
		}
		if it.Price == nil {
			return o, fieldErr(field+".price", "field required")
		}
		if math.IsNaN(*it.Price) || math.IsInf(*it.Price, 0) {
			return o, fieldErr(field+".price", "must be a number")
		}
		item.Price = *it.Price
		if it.Quantity == nil {
			return o, fieldErr(field+".quantity", "field required")
		}
		if *it.Quantity < 1 {
			return o, fieldErr(field+".quantity", "must be greater than or equal to 1")
		}
		item.Quantity = *it.Quantity
		item.Image = it.Image
		o.Items = append(o.Items, item)
	}

	if in.Customer == nil {
		return o, fieldErr("customer", "field required")
	}
	c, err := customer(*in.Customer)
	if err != nil {
		return o, err
	}
	o.Customer = c

	if in.Subtotal == nil {
		return o, fieldErr("subtotal", "field required")
	}
	if ferr := nonNegative("subtotal", *in.Subtotal); ferr != nil {
		return o, ferr
	}
	o.Subtotal = *in.Subtotal
	if in.Shipping != nil {
		if ferr := nonNegative("shipping", *in.Shipping); ferr != nil {
			return o, ferr
		}
		o.Shipping = *in.Shipping
	}
	if in.Total == nil {
		return o, fieldErr("total", "field required")
	}
	if ferr := nonNegative("total", *in.Total); ferr != nil {
		return o, ferr
	}
	o.Total = *in.Total

	o.Status = domain.StatusPending
	if in.Status != nil {
		st, ok := Status(*in.Status)
		if !ok {
			return o, fieldErr("status", "must be one of pending, processing, shipped, delivered, cancelled")
		}
		o.Status = st
	}
	o.Notes = in.Notes
	return o, nil
}

func customer(in domain.CustomerInput) (domain.Customer, error) {
	var c domain.Customer
	var ferr *FieldError
	if c.Name, ferr = required("customer.name", in.Name); ferr != nil {
		return c, ferr
	}
	if in.Email == nil {
		return c, fieldErr("customer.email", "field required")
	}
	email, ok := Email(*in.Email)
	if !ok {
		return c, fieldErr("customer.email", "value is not a valid email address")
	}
	c.Email = email
	if c.Address, ferr = required("customer.address", in.Address); ferr != nil {
		return c, ferr
	}
	c.Phone = in.Phone
	c.City = in.City
	c.State = in.State
	c.PostalCode = in.PostalCode
	return c, nil
}
