// Code generated by goa v3.23.1, DO NOT EDIT.
//
// HTTP request path constructors for the Task Service service.
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package server

import (
	"fmt"
)

// ReadyzTaskServicePath returns the URL path to the Task Service service readyz HTTP endpoint.
func ReadyzTaskServicePath() string {
	return "/readyz"
}

// LivezTaskServicePath returns the URL path to the Task Service service livez HTTP endpoint.
func LivezTaskServicePath() string {
	return "/livez"
}

// CreateTaskTaskServicePath returns the URL path to the Task Service service create-task HTTP endpoint.
func CreateTaskTaskServicePath() string {
	return "/tasks"
}

// GetTaskTaskServicePath returns the URL path to the Task Service service get-task HTTP endpoint.
func GetTaskTaskServicePath(uid string) string {
	return fmt.Sprintf("/tasks/%v", uid)
}

// UpdateTaskTaskServicePath returns the URL path to the Task Service service update-task HTTP endpoint.
func UpdateTaskTaskServicePath(uid string) string {
	return fmt.Sprintf("/tasks/%v", uid)
}

// DeleteTaskTaskServicePath returns the URL path to the Task Service service delete-task HTTP endpoint.
func DeleteTaskTaskServicePath(uid string) string {
	return fmt.Sprintf("/tasks/%v", uid)
}

// ListTasksTaskServicePath returns the URL path to the Task Service service list-tasks HTTP endpoint.
func ListTasksTaskServicePath() string {
	return "/tasks"
}

// GetTaskScheduleTaskServicePath returns the URL path to the Task Service service get-task-schedule HTTP endpoint.
func GetTaskScheduleTaskServicePath(uid string) string {
	return fmt.Sprintf("/tasks/%v/schedule", uid)
}

// CreateClientTaskServicePath returns the URL path to the Task Service service create-client HTTP endpoint.
func CreateClientTaskServicePath() string {
	return "/clients"
}

// GetClientTaskServicePath returns the URL path to the Task Service service get-client HTTP endpoint.
func GetClientTaskServicePath(uid string) string {
	return fmt.Sprintf("/clients/%v", uid)
}

// UpdateClientTaskServicePath returns the URL path to the Task Service service update-client HTTP endpoint.
func UpdateClientTaskServicePath(uid string) string {
	return fmt.Sprintf("/clients/%v", uid)
}

// DeleteClientTaskServicePath returns the URL path to the Task Service service delete-client HTTP endpoint.
func DeleteClientTaskServicePath(uid string) string {
	return fmt.Sprintf("/clients/%v", uid)
}

// ListClientsTaskServicePath returns the URL path to the Task Service service list-clients HTTP endpoint.
func ListClientsTaskServicePath() string {
	return "/clients"
}
