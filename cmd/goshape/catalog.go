package main

import (
	"regexp"

	goshape "github.com/reoring/goshape"
	"github.com/reoring/goshape/pattern"
	"github.com/reoring/goshape/predicate"
	"github.com/reoring/goshape/value"
)

var (
	dnsLabel = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?$`)
	email    = pattern.MustECMAScript(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func userSchema() goshape.Schema {
	return goshape.Fields(
		goshape.F("id", goshape.String{Required: true, Filter: predicate.UUID()}),
		goshape.F("name", goshape.String{Required: true, Min: goshape.Ptr(1), Max: goshape.Ptr(64)}),
		goshape.F("email", goshape.String{Required: true, Match: email}),
		goshape.F("age", goshape.Int{Min: goshape.Ptr(0.0), Max: goshape.Ptr(150.0)}),
		goshape.F("admin", goshape.Bool{}),
		goshape.F("tags", goshape.Array{Max: goshape.Ptr(16), Element: goshape.String{Min: goshape.Ptr(1)}}),
	)
}

func orderSchema() goshape.Schema {
	item := goshape.Object{Records: goshape.Fields(
		goshape.F("sku", goshape.String{Required: true, Min: goshape.Ptr(1)}),
		goshape.F("quantity", goshape.Int{Required: true, Min: goshape.Ptr(1.0)}),
		goshape.F("price", goshape.Float{Required: true, Min: goshape.Ptr(0.0), Finite: true}),
	)}
	return goshape.Fields(
		goshape.F("id", goshape.String{Required: true}),
		goshape.F("currency", goshape.String{Required: true, Filter: predicate.OneOf("USD", "EUR", "JPY")}),
		goshape.F("items", goshape.Array{Required: true, Min: goshape.Ptr(1), Element: item}),
		goshape.F("metadata", goshape.Unknown{}),
	)
}

func deploymentSchema() goshape.Schema {
	container := goshape.Object{Records: goshape.Fields(
		goshape.F("name", goshape.String{Required: true, Match: dnsLabel}),
		goshape.F("image", goshape.String{Required: true, Min: goshape.Ptr(1)}),
		goshape.F("ports", goshape.Array{Element: goshape.Object{Records: goshape.Fields(
			goshape.F("containerPort", goshape.Int{Required: true, Min: goshape.Ptr(1.0), Max: goshape.Ptr(65535.0)}),
		)}}),
	)}
	return goshape.Fields(
		goshape.F("apiVersion", goshape.String{Required: true, Filter: predicate.OneOf("apps/v1")}),
		goshape.F("kind", goshape.String{Required: true, Filter: predicate.OneOf("Deployment")}),
		goshape.F("metadata", goshape.Object{Required: true, Records: goshape.Fields(
			goshape.F("name", goshape.String{Required: true, Max: goshape.Ptr(63), Match: dnsLabel}),
			goshape.F("labels", goshape.Unknown{Filter: predicate.MustCEL[value.Value](`type(self) == map`)}),
		)}),
		goshape.F("spec", goshape.Object{Required: true, Records: goshape.Fields(
			goshape.F("replicas", goshape.Int{Min: goshape.Ptr(0.0)}),
			goshape.F("template", goshape.Object{Required: true, Records: goshape.Fields(
				goshape.F("spec", goshape.Object{Required: true, Records: goshape.Fields(
					goshape.F("containers", goshape.Array{Required: true, Min: goshape.Ptr(1), Element: container}),
				)}),
			)}),
		)}),
	)
}

func registerCatalog(reg *goshape.Registry) {
	reg.MustRegister("user", userSchema())
	reg.MustRegister("order", orderSchema())
	reg.MustRegister("deployment", deploymentSchema())
}
