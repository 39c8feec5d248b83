// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package service

import (
	"time"

	tasksvc "github.com/StianAK82/RegnskapSky-sub001/gen/task_service"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/pkg/utils"
)

// ConvertTaskToResponse converts a domain task to a service model
func ConvertTaskToResponse(task *models.Task) *tasksvc.Task {
	if task == nil {
		return nil
	}

	resp := &tasksvc.Task{
		UID:       utils.StringPtr(task.UID),
		ClientUID: utils.StringPtr(task.ClientUID),
		Title:     utils.StringPtr(task.Title),
		Frequency: utils.StringPtr(string(task.Frequency)),
		StartDate: utils.StringPtr(task.StartDate.Format(time.RFC3339)),
		Status:    task.Status,
	}

	// Only set string fields if they're not empty
	if task.Description != "" {
		resp.Description = utils.StringPtr(task.Description)
	}
	if task.FrequencyLabel != "" {
		resp.FrequencyLabel = utils.StringPtr(task.FrequencyLabel)
	}
	if task.AssigneeEmail != "" {
		resp.AssigneeEmail = utils.StringPtr(task.AssigneeEmail)
	}
	if task.NextDue != nil {
		resp.NextDue = utils.StringPtr(task.NextDue.Format(time.RFC3339))
	}
	if task.CreatedAt != nil {
		resp.CreatedAt = utils.StringPtr(task.CreatedAt.Format(time.RFC3339))
	}
	if task.UpdatedAt != nil {
		resp.UpdatedAt = utils.StringPtr(task.UpdatedAt.Format(time.RFC3339))
	}

	return resp
}

// ConvertTasksToResponse converts a list of domain tasks to service models
func ConvertTasksToResponse(tasks []*models.Task) []*tasksvc.Task {
	resp := make([]*tasksvc.Task, 0, len(tasks))
	for _, task := range tasks {
		resp = append(resp, ConvertTaskToResponse(task))
	}
	return resp
}

// ConvertOccurrencesToResponse converts computed due dates to service models
func ConvertOccurrencesToResponse(occurrences []models.TaskOccurrence) []*tasksvc.TaskOccurrence {
	resp := make([]*tasksvc.TaskOccurrence, 0, len(occurrences))
	for _, occurrence := range occurrences {
		resp = append(resp, &tasksvc.TaskOccurrence{
			TaskUID: occurrence.TaskUID,
			DueDate: occurrence.DueDate.Format(time.RFC3339),
		})
	}
	return resp
}

// ConvertClientToResponse converts a domain client to a service model
func ConvertClientToResponse(client *models.Client) *tasksvc.Client {
	if client == nil {
		return nil
	}

	resp := &tasksvc.Client{
		UID:  utils.StringPtr(client.UID),
		Name: utils.StringPtr(client.Name),
	}

	if client.OrgNumber != "" {
		resp.OrgNumber = utils.StringPtr(client.OrgNumber)
	}
	if client.ContactName != "" {
		resp.ContactName = utils.StringPtr(client.ContactName)
	}
	if client.ContactEmail != "" {
		resp.ContactEmail = utils.StringPtr(client.ContactEmail)
	}
	if client.CreatedAt != nil {
		resp.CreatedAt = utils.StringPtr(client.CreatedAt.Format(time.RFC3339))
	}
	if client.UpdatedAt != nil {
		resp.UpdatedAt = utils.StringPtr(client.UpdatedAt.Format(time.RFC3339))
	}

	return resp
}

// ConvertClientsToResponse converts a list of domain clients to service models
func ConvertClientsToResponse(clients []*models.Client) []*tasksvc.Client {
	resp := make([]*tasksvc.Client, 0, len(clients))
	for _, client := range clients {
		resp = append(resp, ConvertClientToResponse(client))
	}
	return resp
}
