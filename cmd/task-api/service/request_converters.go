// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"time"

	tasksvc "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
)

// parseDateTime parses an RFC3339 timestamp from a payload attribute.
func parseDateTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError("invalid date format, expected RFC3339", err)
	}
	return parsed, nil
}

// ConvertCreateTaskPayloadToDomain converts a create-task payload to a domain task.
func ConvertCreateTaskPayloadToDomain(payload *tasksvc.CreateTaskPayload, licenseUID string) (*models.Task, error) {
	if payload == nil {
		return nil, domain.NewValidationError("payload is empty")
	}

	startDate, err := parseDateTime(payload.StartDate)
	if err != nil {
		return nil, err
	}

	return &models.Task{
		LicenseUID:     licenseUID,
		ClientUID:      payload.ClientUID,
		Title:          payload.Title,
		Description:    utils.StringValue(payload.Description),
		FrequencyLabel: utils.StringValue(payload.FrequencyLabel),
		StartDate:      startDate,
		AssigneeEmail:  utils.StringValue(payload.AssigneeEmail),
		Status:         payload.Status,
	}, nil
}

// ConvertUpdateTaskPayloadToDomain converts an update-task payload to a domain task.
func ConvertUpdateTaskPayloadToDomain(payload *tasksvc.UpdateTaskPayload, licenseUID string) (*models.Task, error) {
	if payload == nil {
		return nil, domain.NewValidationError("payload is empty")
	}

	startDate, err := parseDateTime(payload.StartDate)
	if err != nil {
		return nil, err
	}

	return &models.Task{
		UID:            payload.UID,
		LicenseUID:     licenseUID,
		ClientUID:      payload.ClientUID,
		Title:          payload.Title,
		Description:    utils.StringValue(payload.Description),
		FrequencyLabel: utils.StringValue(payload.FrequencyLabel),
		StartDate:      startDate,
		AssigneeEmail:  utils.StringValue(payload.AssigneeEmail),
		Status:         payload.Status,
	}, nil
}

// ConvertCreateClientPayloadToDomain converts a create-client payload to a domain client.
func ConvertCreateClientPayloadToDomain(payload *tasksvc.CreateClientPayload, licenseUID string) (*models.Client, error) {
	if payload == nil {
		return nil, domain.NewValidationError("payload is empty")
	}

	return &models.Client{
		LicenseUID:   licenseUID,
		Name:         payload.Name,
		OrgNumber:    utils.StringValue(payload.OrgNumber),
		ContactName:  utils.StringValue(payload.ContactName),
		ContactEmail: utils.StringValue(payload.ContactEmail),
	}, nil
}

// ConvertUpdateClientPayloadToDomain converts an update-client payload to a domain client.
func ConvertUpdateClientPayloadToDomain(payload *tasksvc.UpdateClientPayload, licenseUID string) (*models.Client, error) {
	if payload == nil {
		return nil, domain.NewValidationError("payload is empty")
	}

	return &models.Client{
		UID:          payload.UID,
		LicenseUID:   licenseUID,
		Name:         payload.Name,
		OrgNumber:    utils.StringValue(payload.OrgNumber),
		ContactName:  utils.StringValue(payload.ContactName),
		ContactEmail: utils.StringValue(payload.ContactEmail),
	}, nil
}
