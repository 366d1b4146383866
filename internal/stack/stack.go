/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package stack

import (
	"encoding/json"
	"fmt"
	"time"
)

// Link is a hypermedia reference attached to a stack record by the service
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel,omitempty"`
}

// Stack represents a deployed instance of a template on the orchestration
// service. Field tags match the service's wire format.
type Stack struct {
	ID                  string            `json:"id"`
	Name                string            `json:"stack_name"`
	Status              string            `json:"stack_status"`
	StatusReason        string            `json:"stack_status_reason,omitempty"`
	CreationTime        time.Time         `json:"creation_time"`
	UpdatedTime         *time.Time        `json:"updated_time,omitempty"`
	Description         string            `json:"description,omitempty"`
	TemplateDescription string            `json:"template_description,omitempty"`
	TimeoutMins         int               `json:"timeout_mins,omitempty"`
	Parameters          map[string]string `json:"parameters,omitempty"`
	Outputs             json.RawMessage   `json:"outputs,omitempty"`
	Links               []Link            `json:"links,omitempty"`
}

// NameID returns the combined "<stack_name>/<id>" identifier used in listings
func (s *Stack) NameID() string {
	return fmt.Sprintf("%s/%s", s.Name, s.ID)
}
