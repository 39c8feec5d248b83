// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service HTTP client CLI support package
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package client

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"

	taskservice "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	goa "goa.design/goa/v3/pkg"
)

// BuildCreateTaskPayload builds the payload for the Task Service create-task
// endpoint from CLI flags.
func BuildCreateTaskPayload(taskServiceCreateTaskBody string, taskServiceCreateTaskVersion string, taskServiceCreateTaskBearerToken string) (*taskservice.CreateTaskPayload, error) {
	var err error
	var body CreateTaskRequestBody
	{
		err = json.Unmarshal([]byte(taskServiceCreateTaskBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"assignee_email\": \"kari@fjordvik.no\",\n      \"client_uid\": \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\",\n      \"description\": \"Levere MVA-melding for termin\",\n      \"frequency_label\": \"annenhver måned\",\n      \"start_date\": \"2024-01-15T00:00:00Z\",\n      \"status\": \"open\",\n      \"title\": \"MVA-melding\"\n   }'")
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.client_uid", body.ClientUID, goa.FormatUUID))
		if utf8.RuneCountInString(body.Title) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.title", body.Title, utf8.RuneCountInString(body.Title), 200, false))
		}
		if body.Description != nil {
			if utf8.RuneCountInString(*body.Description) > 2000 {
				err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", *body.Description, utf8.RuneCountInString(*body.Description), 2000, false))
			}
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", body.StartDate, goa.FormatDateTime))
		if body.AssigneeEmail != nil {
			err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
		}
		if !(body.Status == "open" || body.Status == "paused" || body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", body.Status, []any{"open", "paused", "done"}))
		}
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceCreateTaskVersion != "" {
			version = &taskServiceCreateTaskVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceCreateTaskBearerToken != "" {
			bearerToken = &taskServiceCreateTaskBearerToken
		}
	}
	v := &taskservice.CreateTaskPayload{
		ClientUID:      body.ClientUID,
		Title:          body.Title,
		Description:    body.Description,
		FrequencyLabel: body.FrequencyLabel,
		StartDate:      body.StartDate,
		AssigneeEmail:  body.AssigneeEmail,
		Status:         body.Status,
	}
	{
		var zero string
		if v.Status == zero {
			v.Status = "open"
		}
	}
	v.Version = version
	v.BearerToken = bearerToken

	return v, nil
}

// BuildGetTaskPayload builds the payload for the Task Service get-task
// endpoint from CLI flags.
func BuildGetTaskPayload(taskServiceGetTaskUID string, taskServiceGetTaskVersion string, taskServiceGetTaskBearerToken string) (*taskservice.GetTaskPayload, error) {
	var err error
	var uid string
	{
		uid = taskServiceGetTaskUID
		err = goa.MergeErrors(err, goa.ValidateFormat("uid", uid, goa.FormatUUID))
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceGetTaskVersion != "" {
			version = &taskServiceGetTaskVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceGetTaskBearerToken != "" {
			bearerToken = &taskServiceGetTaskBearerToken
		}
	}
	v := &taskservice.GetTaskPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken

	return v, nil
}

// BuildUpdateTaskPayload builds the payload for the Task Service update-task
// endpoint from CLI flags.
func BuildUpdateTaskPayload(taskServiceUpdateTaskBody string, taskServiceUpdateTaskUID string, taskServiceUpdateTaskVersion string, taskServiceUpdateTaskBearerToken string, taskServiceUpdateTaskEtag string) (*taskservice.UpdateTaskPayload, error) {
	var err error
	var body UpdateTaskRequestBody
	{
		err = json.Unmarshal([]byte(taskServiceUpdateTaskBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"assignee_email\": \"kari@fjordvik.no\",\n      \"client_uid\": \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\",\n      \"description\": \"Levere MVA-melding for termin\",\n      \"frequency_label\": \"annenhver måned\",\n      \"start_date\": \"2024-01-15T00:00:00Z\",\n      \"status\": \"open\",\n      \"title\": \"MVA-melding\"\n   }'")
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.client_uid", body.ClientUID, goa.FormatUUID))
		if utf8.RuneCountInString(body.Title) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.title", body.Title, utf8.RuneCountInString(body.Title), 200, false))
		}
		if body.Description != nil {
			if utf8.RuneCountInString(*body.Description) > 2000 {
				err = goa.MergeErrors(err, goa.InvalidLengthError("body.description", *body.Description, utf8.RuneCountInString(*body.Description), 2000, false))
			}
		}
		err = goa.MergeErrors(err, goa.ValidateFormat("body.start_date", body.StartDate, goa.FormatDateTime))
		if body.AssigneeEmail != nil {
			err = goa.MergeErrors(err, goa.ValidateFormat("body.assignee_email", *body.AssigneeEmail, goa.FormatEmail))
		}
		if !(body.Status == "open" || body.Status == "paused" || body.Status == "done") {
			err = goa.MergeErrors(err, goa.InvalidEnumValueError("body.status", body.Status, []any{"open", "paused", "done"}))
		}
		if err != nil {
			return nil, err
		}
	}
	var uid string
	{
		uid = taskServiceUpdateTaskUID
		err = goa.MergeErrors(err, goa.ValidateFormat("uid", uid, goa.FormatUUID))
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceUpdateTaskVersion != "" {
			version = &taskServiceUpdateTaskVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceUpdateTaskBearerToken != "" {
			bearerToken = &taskServiceUpdateTaskBearerToken
		}
	}
	var etag *string
	{
		if taskServiceUpdateTaskEtag != "" {
			etag = &taskServiceUpdateTaskEtag
		}
	}
	v := &taskservice.UpdateTaskPayload{
		ClientUID:      body.ClientUID,
		Title:          body.Title,
		Description:    body.Description,
		FrequencyLabel: body.FrequencyLabel,
		StartDate:      body.StartDate,
		AssigneeEmail:  body.AssigneeEmail,
		Status:         body.Status,
	}
	{
		var zero string
		if v.Status == zero {
			v.Status = "open"
		}
	}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v, nil
}

// BuildDeleteTaskPayload builds the payload for the Task Service delete-task
// endpoint from CLI flags.
func BuildDeleteTaskPayload(taskServiceDeleteTaskUID string, taskServiceDeleteTaskVersion string, taskServiceDeleteTaskBearerToken string, taskServiceDeleteTaskEtag string) (*taskservice.DeleteTaskPayload, error) {
	var err error
	var uid string
	{
		uid = taskServiceDeleteTaskUID
		err = goa.MergeErrors(err, goa.ValidateFormat("uid", uid, goa.FormatUUID))
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceDeleteTaskVersion != "" {
			version = &taskServiceDeleteTaskVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceDeleteTaskBearerToken != "" {
			bearerToken = &taskServiceDeleteTaskBearerToken
		}
	}
	var etag *string
	{
		if taskServiceDeleteTaskEtag != "" {
			etag = &taskServiceDeleteTaskEtag
		}
	}
	v := &taskservice.DeleteTaskPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v, nil
}

// BuildListTasksPayload builds the payload for the Task Service list-tasks
// endpoint from CLI flags.
func BuildListTasksPayload(taskServiceListTasksVersion string, taskServiceListTasksClientUID string, taskServiceListTasksBearerToken string) (*taskservice.ListTasksPayload, error) {
	var err error
	var version *string
	{
		if taskServiceListTasksVersion != "" {
			version = &taskServiceListTasksVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var clientUID *string
	{
		if taskServiceListTasksClientUID != "" {
			clientUID = &taskServiceListTasksClientUID
			err = goa.MergeErrors(err, goa.ValidateFormat("client_uid", *clientUID, goa.FormatUUID))
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceListTasksBearerToken != "" {
			bearerToken = &taskServiceListTasksBearerToken
		}
	}
	v := &taskservice.ListTasksPayload{}
	v.Version = version
	v.ClientUID = clientUID
	v.BearerToken = bearerToken

	return v, nil
}

// BuildGetTaskSchedulePayload builds the payload for the Task Service
// get-task-schedule endpoint from CLI flags.
func BuildGetTaskSchedulePayload(taskServiceGetTaskScheduleUID string, taskServiceGetTaskScheduleVersion string, taskServiceGetTaskScheduleFromDate string, taskServiceGetTaskScheduleLimit string, taskServiceGetTaskScheduleBearerToken string) (*taskservice.GetTaskSchedulePayload, error) {
	var err error
	var uid string
	{
		uid = taskServiceGetTaskScheduleUID
		err = goa.MergeErrors(err, goa.ValidateFormat("uid", uid, goa.FormatUUID))
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceGetTaskScheduleVersion != "" {
			version = &taskServiceGetTaskScheduleVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var fromDate *string
	{
		if taskServiceGetTaskScheduleFromDate != "" {
			fromDate = &taskServiceGetTaskScheduleFromDate
			err = goa.MergeErrors(err, goa.ValidateFormat("from_date", *fromDate, goa.FormatDateTime))
			if err != nil {
				return nil, err
			}
		}
	}
	var limit *int
	{
		if taskServiceGetTaskScheduleLimit != "" {
			var v int64
			v, err = strconv.ParseInt(taskServiceGetTaskScheduleLimit, 10, strconv.IntSize)
			val := int(v)
			limit = &val
			if err != nil {
				return nil, fmt.Errorf("invalid value for limit, must be INT")
			}
			if *limit < 1 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("limit", *limit, 1, true))
			}
			if *limit > 100 {
				err = goa.MergeErrors(err, goa.InvalidRangeError("limit", *limit, 100, false))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceGetTaskScheduleBearerToken != "" {
			bearerToken = &taskServiceGetTaskScheduleBearerToken
		}
	}
	v := &taskservice.GetTaskSchedulePayload{}
	v.UID = uid
	v.Version = version
	v.FromDate = fromDate
	v.Limit = limit
	v.BearerToken = bearerToken

	return v, nil
}

// BuildCreateClientPayload builds the payload for the Task Service
// create-client endpoint from CLI flags.
func BuildCreateClientPayload(taskServiceCreateClientBody string, taskServiceCreateClientVersion string, taskServiceCreateClientBearerToken string) (*taskservice.CreateClientPayload, error) {
	var err error
	var body CreateClientRequestBody
	{
		err = json.Unmarshal([]byte(taskServiceCreateClientBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"contact_email\": \"post@fjordvik.no\",\n      \"contact_name\": \"Ola Nordmann\",\n      \"name\": \"Fjordvik AS\",\n      \"org_number\": \"987654321\"\n   }'")
		}
		if utf8.RuneCountInString(body.Name) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 200, false))
		}
		if body.OrgNumber != nil {
			err = goa.MergeErrors(err, goa.ValidatePattern("body.org_number", *body.OrgNumber, "^\\d{9}$"))
		}
		if body.ContactEmail != nil {
			err = goa.MergeErrors(err, goa.ValidateFormat("body.contact_email", *body.ContactEmail, goa.FormatEmail))
		}
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceCreateClientVersion != "" {
			version = &taskServiceCreateClientVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceCreateClientBearerToken != "" {
			bearerToken = &taskServiceCreateClientBearerToken
		}
	}
	v := &taskservice.CreateClientPayload{
		Name:         body.Name,
		OrgNumber:    body.OrgNumber,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
	}
	v.Version = version
	v.BearerToken = bearerToken

	return v, nil
}

// BuildGetClientPayload builds the payload for the Task Service get-client
// endpoint from CLI flags.
func BuildGetClientPayload(taskServiceGetClientUID string, taskServiceGetClientVersion string, taskServiceGetClientBearerToken string) (*taskservice.GetClientPayload, error) {
	var err error
	var uid string
	{
		uid = taskServiceGetClientUID
		err = goa.MergeErrors(err, goa.ValidateFormat("uid", uid, goa.FormatUUID))
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceGetClientVersion != "" {
			version = &taskServiceGetClientVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceGetClientBearerToken != "" {
			bearerToken = &taskServiceGetClientBearerToken
		}
	}
	v := &taskservice.GetClientPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken

	return v, nil
}

// BuildUpdateClientPayload builds the payload for the Task Service
// update-client endpoint from CLI flags.
func BuildUpdateClientPayload(taskServiceUpdateClientBody string, taskServiceUpdateClientUID string, taskServiceUpdateClientVersion string, taskServiceUpdateClientBearerToken string, taskServiceUpdateClientEtag string) (*taskservice.UpdateClientPayload, error) {
	var err error
	var body UpdateClientRequestBody
	{
		err = json.Unmarshal([]byte(taskServiceUpdateClientBody), &body)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON for body, \nerror: %s, \nexample of valid JSON:\n%s", err, "'{\n      \"contact_email\": \"post@fjordvik.no\",\n      \"contact_name\": \"Ola Nordmann\",\n      \"name\": \"Fjordvik AS\",\n      \"org_number\": \"987654321\"\n   }'")
		}
		if utf8.RuneCountInString(body.Name) > 200 {
			err = goa.MergeErrors(err, goa.InvalidLengthError("body.name", body.Name, utf8.RuneCountInString(body.Name), 200, false))
		}
		if body.OrgNumber != nil {
			err = goa.MergeErrors(err, goa.ValidatePattern("body.org_number", *body.OrgNumber, "^\\d{9}$"))
		}
		if body.ContactEmail != nil {
			err = goa.MergeErrors(err, goa.ValidateFormat("body.contact_email", *body.ContactEmail, goa.FormatEmail))
		}
		if err != nil {
			return nil, err
		}
	}
	var uid string
	{
		uid = taskServiceUpdateClientUID
		err = goa.MergeErrors(err, goa.ValidateFormat("uid", uid, goa.FormatUUID))
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceUpdateClientVersion != "" {
			version = &taskServiceUpdateClientVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceUpdateClientBearerToken != "" {
			bearerToken = &taskServiceUpdateClientBearerToken
		}
	}
	var etag *string
	{
		if taskServiceUpdateClientEtag != "" {
			etag = &taskServiceUpdateClientEtag
		}
	}
	v := &taskservice.UpdateClientPayload{
		Name:         body.Name,
		OrgNumber:    body.OrgNumber,
		ContactName:  body.ContactName,
		ContactEmail: body.ContactEmail,
	}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v, nil
}

// BuildDeleteClientPayload builds the payload for the Task Service
// delete-client endpoint from CLI flags.
func BuildDeleteClientPayload(taskServiceDeleteClientUID string, taskServiceDeleteClientVersion string, taskServiceDeleteClientBearerToken string, taskServiceDeleteClientEtag string) (*taskservice.DeleteClientPayload, error) {
	var err error
	var uid string
	{
		uid = taskServiceDeleteClientUID
		err = goa.MergeErrors(err, goa.ValidateFormat("uid", uid, goa.FormatUUID))
		if err != nil {
			return nil, err
		}
	}
	var version *string
	{
		if taskServiceDeleteClientVersion != "" {
			version = &taskServiceDeleteClientVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceDeleteClientBearerToken != "" {
			bearerToken = &taskServiceDeleteClientBearerToken
		}
	}
	var etag *string
	{
		if taskServiceDeleteClientEtag != "" {
			etag = &taskServiceDeleteClientEtag
		}
	}
	v := &taskservice.DeleteClientPayload{}
	v.UID = uid
	v.Version = version
	v.BearerToken = bearerToken
	v.Etag = etag

	return v, nil
}

// BuildListClientsPayload builds the payload for the Task Service list-clients
// endpoint from CLI flags.
func BuildListClientsPayload(taskServiceListClientsVersion string, taskServiceListClientsBearerToken string) (*taskservice.ListClientsPayload, error) {
	var err error
	var version *string
	{
		if taskServiceListClientsVersion != "" {
			version = &taskServiceListClientsVersion
			if !(*version == "1") {
				err = goa.MergeErrors(err, goa.InvalidEnumValueError("version", *version, []any{"1"}))
			}
			if err != nil {
				return nil, err
			}
		}
	}
	var bearerToken *string
	{
		if taskServiceListClientsBearerToken != "" {
			bearerToken = &taskServiceListClientsBearerToken
		}
	}
	v := &taskservice.ListClientsPayload{}
	v.Version = version
	v.BearerToken = bearerToken

	return v, nil
}
