package order

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

type object map[string]json.RawMessage

// Decode reads a single JSON order from r. Keys are matched exactly and every
// field is required; unknown fields are ignored. All failures wrap ErrMalformed.
func Decode(r io.Reader) (Order, error) {
	dec := json.NewDecoder(r)

	var top object
	if err := dec.Decode(&top); err != nil {
		return Order{}, errors.Wrap(ErrMalformed, err.Error())
	}
	var rest json.RawMessage
	if err := dec.Decode(&rest); err != io.EOF {
		return Order{}, errors.Wrap(ErrMalformed, "trailing data after order")
	}

	var items []object
	if err := top.field("items", &items); err != nil {
		return Order{}, err
	}
	var total float64
	if err := top.field("total", &total); err != nil {
		return Order{}, err
	}

	o := Order{Items: make([]OrderItem, 0, len(items)), Total: total}
	for i, it := range items {
		if it == nil {
			return Order{}, errors.Wrapf(ErrMalformed, "items[%d]: not an object", i)
		}
		var line OrderItem
		if err := it.field("product_id", &line.ProductID); err != nil {
			return Order{}, errors.WithMessagef(err, "items[%d]", i)
		}
		if err := it.field("quantity", &line.Quantity); err != nil {
			return Order{}, errors.WithMessagef(err, "items[%d]", i)
		}
		o.Items = append(o.Items, line)
	}
	return o, nil
}

// field decodes the value stored under exactly key into dst. A missing key or
// a null value is an error.
func (obj object) field(key string, dst any) error {
	raw, ok := obj[key]
	if !ok {
		return errors.Wrapf(ErrMalformed, "missing field %s", key)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errors.Wrapf(ErrMalformed, "field %s: null", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(ErrMalformed, "field %s: %v", key, err)
	}
	return nil
}
