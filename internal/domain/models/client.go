// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package models

import (
	"time"
)

// Client is the key-value store representation of an accounting-firm client.
type Client struct {
	UID          string     `json:"uid"`
	LicenseUID   string     `json:"license_uid"`
	Name         string     `json:"name"`
	OrgNumber    string     `json:"org_number,omitempty"`
	ContactName  string     `json:"contact_name,omitempty"`
	ContactEmail string     `json:"contact_email,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// Tags generates a list of tags for the client used by the search indexer.
func (c *Client) Tags() []string {
	var tags []string

	if c == nil {
		return nil
	}

	if c.UID != "" {
		tags = append(tags, c.UID)
	}
	if c.LicenseUID != "" {
		tags = append(tags, c.LicenseUID)
	}
	if c.Name != "" {
		tags = append(tags, c.Name)
	}
	if c.OrgNumber != "" {
		tags = append(tags, c.OrgNumber)
	}

	return tags
}
