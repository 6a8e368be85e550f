package goshape_test

import (
	"errors"
	"fmt"
	"regexp"

	goshape "github.com/reoring/goshape"
)

func ExampleValidate() {
	user := goshape.Fields(
		goshape.F("name", goshape.String{Required: true, Min: goshape.Ptr(3)}),
		goshape.F("email", goshape.String{Match: regexp.MustCompile(`^[^@]+@[^@]+$`)}),
		goshape.F("roles", goshape.Array{Min: goshape.Ptr(1), Element: goshape.String{}}),
	)

	err := goshape.Validate(user, map[string]any{
		"name":  "ada",
		"roles": []any{"admin", 7},
	}, "User")
	fmt.Println(err)

	var v *goshape.Violation
	if errors.As(err, &v) {
		fmt.Println(v.Code, v.Pointer)
	}
	// Output:
	// User.roles[1] needs to be type of string.
	// invalid_type /roles/1
}

func ExampleValidate_nested() {
	order := goshape.Fields(
		goshape.F("items", goshape.Array{Element: goshape.Object{Records: goshape.Fields(
			goshape.F("sku", goshape.String{Required: true}),
			goshape.F("quantity", goshape.Int{Min: goshape.Ptr(1.0)}),
		)}}),
	)
	err := goshape.Validate(order, map[string]any{
		"items": []any{
			map[string]any{"sku": "A", "quantity": 2},
			map[string]any{"sku": "B", "quantity": 0},
		},
	})
	fmt.Println(err)
	// Output: Obj.items[1][quantity] cannot be smaller than 1.
}
