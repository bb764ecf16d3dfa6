package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"strings"

	"github.com/anirudhraja/prototag"
	"github.com/anirudhraja/prototag/codec"
)

// The sample app describes a small order-tracking schema by hand and
// walks through serialization, parsing and the proto3 elision rules.

type Item struct {
	Sku      string
	Quantity int32
	Price    float64
}

type payment interface{ isPayment() }

type cardPayment struct{ Last4 string }

func (cardPayment) isPayment() {}

type cashPayment struct{ Cents int64 }

func (cashPayment) isPayment() {}

type Order struct {
	ID      uint64
	Items   []Item
	Tags    map[string]string
	Note    *string
	Payment payment
}

func init() {
	prototag.Register(
		codec.NewField(1, "sku", codec.String(), func(i *Item) *string { return &i.Sku }),
		codec.NewField(2, "quantity", codec.Int32(0), func(i *Item) *int32 { return &i.Quantity }),
		codec.NewField(3, "price", codec.Double(), func(i *Item) *float64 { return &i.Price }),
	)
	prototag.Register(
		codec.NewField(1, "id", codec.Uint64(0), func(o *Order) *uint64 { return &o.ID }),
		codec.NewField(2, "items", codec.Repeated(codec.Nested[Item]()), func(o *Order) *[]Item { return &o.Items }),
		codec.NewMapField(3, "tags", codec.String(), codec.String(), func(o *Order) *map[string]string { return &o.Tags }),
		codec.NewField(4, "note", codec.Optional(codec.String()), func(o *Order) **string { return &o.Note }),
		codec.NewOneofField(5, "card", 0, codec.String(),
			func(o *Order) *payment { return &o.Payment },
			func(v string) payment { return cardPayment{Last4: v} },
			func(u payment) (string, bool) { c, ok := u.(cardPayment); return c.Last4, ok }),
		codec.NewOneofField(6, "cash", 1, codec.Int64(0),
			func(o *Order) *payment { return &o.Payment },
			func(v int64) payment { return cashPayment{Cents: v} },
			func(u payment) (int64, bool) { c, ok := u.(cashPayment); return c.Cents, ok }),
	)
}

func main() {
	fmt.Println("prototag sample app")
	fmt.Println(strings.Repeat("=", 60))

	note := "leave at the door"
	order := Order{
		ID: 20240731,
		Items: []Item{
			{Sku: "tea-earl-grey", Quantity: 2, Price: 4.95},
			{Sku: "mug-large", Quantity: 1, Price: 11.50},
		},
		Tags:    map[string]string{"priority": "high", "carrier": "dhl"},
		Note:    &note,
		Payment: cardPayment{Last4: "4242"},
	}

	data, err := prototag.Marshal(&order)
	if err != nil {
		log.Fatalf("marshal failed: %v", err)
	}

	fmt.Printf("\nencoded %d bytes:\n%s\n", len(data), hex.Dump(data))

	var decoded Order
	if err := prototag.Unmarshal(data, &decoded); err != nil {
		log.Fatalf("unmarshal failed: %v", err)
	}

	fmt.Printf("order %d with %d items\n", decoded.ID, len(decoded.Items))
	for _, item := range decoded.Items {
		fmt.Printf("  %dx %s @ %.2f\n", item.Quantity, item.Sku, item.Price)
	}
	fmt.Printf("tags: %v\n", decoded.Tags)
	if decoded.Note != nil {
		fmt.Printf("note: %q\n", *decoded.Note)
	}
	if card, ok := decoded.Payment.(cardPayment); ok {
		fmt.Printf("paid by card ending %s\n", card.Last4)
	}

	// Proto3 elision: a default-valued message costs nothing on the wire.
	var empty Order
	size, err := prototag.Size(&empty)
	if err != nil {
		log.Fatalf("size failed: %v", err)
	}
	fmt.Printf("\nan all-default order encodes to %d bytes\n", size)
}
