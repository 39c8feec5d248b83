// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package design

import (
	. "goa.design/goa/v3/dsl" //nolint:staticcheck // ST1001: the recommended way of using the goa DSL package is with the . import
)

// JWTAuth is the DSL JWT security type for authentication.
var JWTAuth = JWTSecurity("jwt", func() {
	Description("RegnskapSky license authorization")
})

var _ = Service("Task Service", func() {
	Description("The RegnskapSky Task Service manages recurring back-office tasks for accounting-firm clients.")

	Method("readyz", func() {
		Description("Check if the service is able to take inbound requests.")
		Meta("swagger:generate", "false")
		Result(Bytes, func() {
			Example("OK")
		})
		Error("ServiceUnavailable", ServiceUnavailableError, "Service is unavailable")
		HTTP(func() {
			GET("/readyz")
			Response(StatusOK, func() {
				ContentType("text/plain")
			})
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("livez", func() {
		Description("Check if the service is alive.")
		Meta("swagger:generate", "false")
		Result(Bytes, func() {
			Example("OK")
		})
		HTTP(func() {
			GET("/livez")
			Response(StatusOK, func() {
				ContentType("text/plain")
			})
		})
	})

	Method("create-task", func() {
		Description("Create a recurring task for a client. The frequency label is normalized to a canonical frequency and the next due date is computed from the start date.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Extend(CreateTaskPayload)
			Required("client_uid", "title", "start_date")
		})

		Result(Task)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Client not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			POST("/tasks")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusCreated)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("get-task", func() {
		Description("Get a single task. The response carries an ETag header for use with updates and deletes.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("uid", String, "The unique identifier of the task", func() {
				Example("7cad5a8d-19d0-41a4-81a6-043453daf9ee")
				Format(FormatUUID)
			})
			Required("uid")
		})

		Result(func() {
			Attribute("task", Task, "The task")
			EtagAttribute()
		})

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Task not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/tasks/{uid}")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusOK, func() {
				Header("etag:ETag")
				Body("task")
			})
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("update-task", func() {
		Description("Update a task. The client and creation timestamp are immutable; the schedule is re-resolved from the frequency label and start date.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			EtagAttribute()
			Attribute("uid", String, "The unique identifier of the task", func() {
				Example("7cad5a8d-19d0-41a4-81a6-043453daf9ee")
				Format(FormatUUID)
			})
			Extend(CreateTaskPayload)
			Required("uid", "client_uid", "title", "start_date")
		})

		Result(Task)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Task not found")
		Error("Conflict", ConflictError, "ETag mismatch")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			PUT("/tasks/{uid}")
			Param("version:v")
			Header("bearer_token:Authorization")
			Header("etag:If-Match")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("delete-task", func() {
		Description("Delete a task.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			EtagAttribute()
			Attribute("uid", String, "The unique identifier of the task", func() {
				Example("7cad5a8d-19d0-41a4-81a6-043453daf9ee")
				Format(FormatUUID)
			})
			Required("uid")
		})

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Task not found")
		Error("Conflict", ConflictError, "ETag mismatch")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			DELETE("/tasks/{uid}")
			Param("version:v")
			Header("bearer_token:Authorization")
			Header("etag:If-Match")
			Response(StatusNoContent)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("list-tasks", func() {
		Description("List the tasks of the caller's license, optionally filtered to a single client.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("client_uid", String, "Only return tasks for this client", func() {
				Example("a33899b0-0b48-4d0c-a915-6a0b4b2a8b59")
				Format(FormatUUID)
			})
		})

		Result(ArrayOf(Task))

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/tasks")
			Param("version:v")
			Param("client_uid")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("get-task-schedule", func() {
		Description("Get the upcoming due dates of a task from a reference date.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("uid", String, "The unique identifier of the task", func() {
				Example("7cad5a8d-19d0-41a4-81a6-043453daf9ee")
				Format(FormatUUID)
			})
			Attribute("from_date", String, "The reference date to compute occurrences from, defaults to now", func() {
				Example("2024-01-01T00:00:00Z")
				Format(FormatDateTime)
			})
			Attribute("limit", Int, "The maximum number of occurrences to return", func() {
				Minimum(1)
				Maximum(100)
				Example(12)
			})
			Required("uid")
		})

		Result(ArrayOf(TaskOccurrence))

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Task not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/tasks/{uid}/schedule")
			Param("version:v")
			Param("from_date")
			Param("limit")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("create-client", func() {
		Description("Create a client in the caller's license.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Extend(CreateClientPayload)
			Required("name")
		})

		Result(Client)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			POST("/clients")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusCreated)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("get-client", func() {
		Description("Get a single client. The response carries an ETag header for use with updates and deletes.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			Attribute("uid", String, "The unique identifier of the client", func() {
				Example("a33899b0-0b48-4d0c-a915-6a0b4b2a8b59")
				Format(FormatUUID)
			})
			Required("uid")
		})

		Result(func() {
			Attribute("client", Client, "The client")
			EtagAttribute()
		})

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Client not found")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/clients/{uid}")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusOK, func() {
				Header("etag:ETag")
				Body("client")
			})
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("update-client", func() {
		Description("Update a client.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			EtagAttribute()
			Attribute("uid", String, "The unique identifier of the client", func() {
				Example("a33899b0-0b48-4d0c-a915-6a0b4b2a8b59")
				Format(FormatUUID)
			})
			Extend(CreateClientPayload)
			Required("uid", "name")
		})

		Result(Client)

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Client not found")
		Error("Conflict", ConflictError, "ETag mismatch")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			PUT("/clients/{uid}")
			Param("version:v")
			Header("bearer_token:Authorization")
			Header("etag:If-Match")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("delete-client", func() {
		Description("Delete a client. All tasks of the client are deleted as part of the cascade.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
			EtagAttribute()
			Attribute("uid", String, "The unique identifier of the client", func() {
				Example("a33899b0-0b48-4d0c-a915-6a0b4b2a8b59")
				Format(FormatUUID)
			})
			Required("uid")
		})

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("NotFound", NotFoundError, "Client not found")
		Error("Conflict", ConflictError, "ETag mismatch")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			DELETE("/clients/{uid}")
			Param("version:v")
			Header("bearer_token:Authorization")
			Header("etag:If-Match")
			Response(StatusNoContent)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("NotFound", StatusNotFound)
			Response("Conflict", StatusConflict)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})

	Method("list-clients", func() {
		Description("List the clients of the caller's license.")

		Security(JWTAuth)

		Payload(func() {
			BearerTokenAttribute()
			VersionAttribute()
		})

		Result(ArrayOf(Client))

		Error("BadRequest", BadRequestError, "Bad request")
		Error("Unauthorized", UnauthorizedError, "Unauthorized")
		Error("InternalServerError", InternalServerError, "Internal server error")
		Error("ServiceUnavailable", ServiceUnavailableError, "Service unavailable")

		HTTP(func() {
			GET("/clients")
			Param("version:v")
			Header("bearer_token:Authorization")
			Response(StatusOK)
			Response("BadRequest", StatusBadRequest)
			Response("Unauthorized", StatusUnauthorized)
			Response("InternalServerError", StatusInternalServerError)
			Response("ServiceUnavailable", StatusServiceUnavailable)
		})
	})
})
