// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package design

import (
	. "goa.design/goa/v3/dsl" //nolint:staticcheck // ST1001: the recommended way of using the goa DSL package is with the . import
)

// ClientNameAttribute is the name of a client.
func ClientNameAttribute() {
	Attribute("name", String, "The name of the client", func() {
		Example("Fjordvik AS")
		MaxLength(200)
	})
}

// OrgNumberAttribute is the Norwegian organization number of a client.
func OrgNumberAttribute() {
	Attribute("org_number", String, "The Norwegian organization number of the client", func() {
		Example("987654321")
		Pattern(`^\d{9}$`)
	})
}

// ContactNameAttribute is the contact person of a client.
func ContactNameAttribute() {
	Attribute("contact_name", String, "The contact person of the client", func() {
		Example("Ola Nordmann")
	})
}

// ContactEmailAttribute is the contact email of a client.
func ContactEmailAttribute() {
	Attribute("contact_email", String, "The contact email of the client", func() {
		Example("post@fjordvik.no")
		Format(FormatEmail)
	})
}

// CreateClientPayload represents the payload for creating a client.
var CreateClientPayload = Type("CreateClientPayload", func() {
	Description("Payload for creating a new client")
	ClientNameAttribute()
	OrgNumberAttribute()
	ContactNameAttribute()
	ContactEmailAttribute()
	Required("name")
})

// Client is the DSL type for an accounting-firm client.
var Client = Type("Client", func() {
	Description("An accounting-firm client.")
	Attribute("uid", String, "The unique identifier of the client", func() {
		Example("a33899b0-0b48-4d0c-a915-6a0b4b2a8b59")
		Format(FormatUUID)
	})
	ClientNameAttribute()
	OrgNumberAttribute()
	ContactNameAttribute()
	ContactEmailAttribute()
	CreatedAtAttribute()
	UpdatedAtAttribute()
})
