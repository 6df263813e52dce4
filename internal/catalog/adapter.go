// Package catalog fetches and normalizes the scoping-data service catalog.
// The rest of the system only ever sees model.Service; the JSON:API shape
// stops here.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"

	"scopeworks/internal/model"
)

type document struct {
	Data     []resource `json:"data"`
	Included []resource `json:"included"`
}

type resource struct {
	ID            string                     `json:"id"`
	Type          string                     `json:"type"`
	Attributes    json.RawMessage            `json:"attributes"`
	Relationships map[string]json.RawMessage `json:"relationships"`
}

type resourceIdent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type serviceAttributes struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	Keywords       []string `json:"keywords"`
	EstimatedHours float64  `json:"estimated-hours"`
	Complexity     string   `json:"complexity"`
	SKU            string   `json:"sku"`
	ServiceType    string   `json:"service-type"`
	Tags           []string `json:"tags"`
	PhaseName      string   `json:"phase-name"`
}

type subserviceAttributes struct {
	Name                   string  `json:"name"`
	Description            string  `json:"description"`
	EstimatedHours         float64 `json:"estimated-hours"`
	ResourceType           string  `json:"resource-type"`
	Quantity               int     `json:"quantity"`
	MinimumQuantity        int     `json:"minimum-quantity"`
	Position               int     `json:"position"`
	State                  string  `json:"state"`
	Active                 bool    `json:"active"`
	OutOfScope             string  `json:"out-of-scope"`
	CustomerResponsibility string  `json:"customer-responsibility"`
}

// Decode parses a JSON:API catalog document into normalized services.
// Entries without an id or name are dropped; absent optional fields get
// the documented defaults (hours 40, complexity Medium, empty keywords).
func Decode(raw []byte) ([]model.Service, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog document: %w", err)
	}
	return normalize(doc), nil
}

func normalize(doc document) []model.Service {
	included := make(map[resourceIdent]resource, len(doc.Included))
	for _, res := range doc.Included {
		included[resourceIdent{ID: res.ID, Type: res.Type}] = res
	}

	services := make([]model.Service, 0, len(doc.Data))
	for _, res := range doc.Data {
		if res.Type != "services" || res.ID == "" {
			continue
		}

		var attrs serviceAttributes
		if err := json.Unmarshal(res.Attributes, &attrs); err != nil {
			continue
		}
		if attrs.Name == "" {
			continue
		}

		svc := model.Service{
			ID:             res.ID,
			Name:           attrs.Name,
			Category:       attrs.Category,
			Description:    attrs.Description,
			Keywords:       attrs.Keywords,
			EstimatedHours: int(attrs.EstimatedHours),
			Complexity:     attrs.Complexity,
			Source:         model.SourceCatalog,
			SKU:            attrs.SKU,
			ServiceType:    attrs.ServiceType,
			Tags:           attrs.Tags,
			PhaseName:      attrs.PhaseName,
		}
		if svc.Keywords == nil {
			svc.Keywords = []string{}
		}
		if svc.EstimatedHours == 0 {
			svc.EstimatedHours = model.DefaultEstimatedHours
		}
		if svc.Complexity == "" {
			svc.Complexity = model.ComplexityMedium
		}

		svc.Subservices = resolveSubservices(res, included)
		services = append(services, svc)
	}
	return services
}

// resolveSubservices follows the subservices relationship into included[].
// Idents that resolve to nothing are skipped rather than failing the entry.
func resolveSubservices(res resource, included map[resourceIdent]resource) []model.SubService {
	rel, ok := res.Relationships["subservices"]
	if !ok {
		return nil
	}

	var wrapper struct {
		Data []resourceIdent `json:"data"`
	}
	if err := json.Unmarshal(rel, &wrapper); err != nil {
		return nil
	}

	subs := make([]model.SubService, 0, len(wrapper.Data))
	for _, ident := range wrapper.Data {
		child, ok := included[ident]
		if !ok {
			continue
		}

		var attrs subserviceAttributes
		if err := json.Unmarshal(child.Attributes, &attrs); err != nil {
			continue
		}
		if attrs.Name == "" {
			continue
		}

		subs = append(subs, model.SubService{
			ID:                     child.ID,
			Name:                   attrs.Name,
			Description:            attrs.Description,
			EstimatedHours:         attrs.EstimatedHours,
			ResourceType:           attrs.ResourceType,
			Quantity:               attrs.Quantity,
			MinimumQuantity:        attrs.MinimumQuantity,
			Position:               attrs.Position,
			State:                  attrs.State,
			Active:                 attrs.Active,
			OutOfScope:             attrs.OutOfScope,
			CustomerResponsibility: attrs.CustomerResponsibility,
		})
	}
	if len(subs) == 0 {
		return nil
	}

	sort.SliceStable(subs, func(i, j int) bool { return subs[i].Position < subs[j].Position })
	return subs
}
