// Package qr encodes an order id into a scannable code and turns a
// scanned payload back into an order the staff already has loaded.
package qr

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/mdp/qrterminal/v3"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/MikeMC777/cafe-orders/internal/order"
)

// prefix is accepted on decode so codes printed by other tools still scan.
const prefix = "cafe-order:"

var (
	ErrInvalidPayload = errors.New("invalid order code")
	ErrOrderNotFound  = errors.New("order not found")
)

// Code is the encoded form of one order id.
type Code struct {
	Payload string
}

// Encode is a pure function of the id.
func Encode(orderID string) Code { return Code{Payload: orderID} }

func (c Code) PNG(size int) ([]byte, error) {
	return qrcode.Encode(c.Payload, qrcode.Medium, size)
}

// DataURL is the PNG inlined for an <img src>.
func (c Code) DataURL(size int) (string, error) {
	png, err := c.PNG(size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// Terminal draws the code with half blocks, for CLI use.
func (c Code) Terminal(w io.Writer) {
	qrterminal.GenerateHalfBlock(c.Payload, qrterminal.M, w)
}

// Decode extracts the order id from a scanned payload.
func Decode(payload string) (string, error) {
	s := strings.TrimSpace(payload)
	s = strings.TrimPrefix(s, prefix)
	id, err := uuid.Parse(s)
	if err != nil {
		return "", ErrInvalidPayload
	}
	return id.String(), nil
}

// Resolve selects the scanned order from the list the caller already
// holds. There is no lookup fallback.
func Resolve(payload string, loaded []order.View) (*order.View, error) {
	id, err := Decode(payload)
	if err != nil {
		return nil, err
	}
	for i := range loaded {
		if loaded[i].ID == id {
			return &loaded[i], nil
		}
	}
	return nil, ErrOrderNotFound
}
