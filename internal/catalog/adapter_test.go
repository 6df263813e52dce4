package catalog

import (
	"testing"

	"scopeworks/internal/model"
)

const sampleDocument = `{
  "data": [
    {
      "id": "svc-100",
      "type": "services",
      "attributes": {
        "name": "Managed Firewall",
        "category": "Security",
        "description": "Ongoing firewall management and tuning",
        "keywords": ["firewall", "security"],
        "estimated-hours": 32,
        "complexity": "High",
        "sku": "SEC-MFW-01",
        "service-type": "managed",
        "phase-name": "Phase 1: Security"
      },
      "relationships": {
        "subservices": {
          "data": [
            {"id": "sub-2", "type": "subservices"},
            {"id": "sub-1", "type": "subservices"},
            {"id": "sub-missing", "type": "subservices"}
          ]
        }
      }
    },
    {
      "id": "svc-101",
      "type": "services",
      "attributes": {
        "name": "Bare Minimum"
      }
    },
    {
      "id": "",
      "type": "services",
      "attributes": {"name": "No ID"}
    },
    {
      "id": "svc-102",
      "type": "services",
      "attributes": {"name": ""}
    },
    {
      "id": "other-1",
      "type": "vendors",
      "attributes": {"name": "Not A Service"}
    }
  ],
  "included": [
    {
      "id": "sub-1",
      "type": "subservices",
      "attributes": {
        "name": "Policy Design",
        "estimated-hours": 8,
        "resource-type": "Specialist",
        "position": 1,
        "active": true
      }
    },
    {
      "id": "sub-2",
      "type": "subservices",
      "attributes": {
        "name": "Rule Tuning",
        "estimated-hours": 24,
        "position": 2,
        "active": true
      }
    }
  ]
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	services, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	// svc-100, svc-101 survive; missing id, missing name, and the
	// non-service type are dropped.
	if len(services) != 2 {
		t.Fatalf("got %d services, want 2: %+v", len(services), services)
	}

	svc := services[0]
	if svc.ID != "svc-100" || svc.Name != "Managed Firewall" {
		t.Errorf("service = %s/%s", svc.ID, svc.Name)
	}
	if svc.Source != model.SourceCatalog {
		t.Errorf("Source = %s, want catalog", svc.Source)
	}
	if svc.EstimatedHours != 32 || svc.Complexity != model.ComplexityHigh {
		t.Errorf("hours/complexity = %d/%s", svc.EstimatedHours, svc.Complexity)
	}
	if svc.SKU != "SEC-MFW-01" || svc.ServiceType != "managed" || svc.PhaseName != "Phase 1: Security" {
		t.Errorf("attrs not mapped: %+v", svc)
	}

	// Relationship idents resolved through included[], unresolvable ones
	// skipped, result ordered by position.
	if len(svc.Subservices) != 2 {
		t.Fatalf("got %d subservices, want 2", len(svc.Subservices))
	}
	if svc.Subservices[0].Name != "Policy Design" || svc.Subservices[1].Name != "Rule Tuning" {
		t.Errorf("subservices out of position order: %+v", svc.Subservices)
	}
	if svc.Subservices[0].ResourceType != "Specialist" {
		t.Errorf("subservice resource-type = %s", svc.Subservices[0].ResourceType)
	}
}

func TestDecodeDefaults(t *testing.T) {
	t.Parallel()

	services, err := Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	bare := services[1]
	if bare.EstimatedHours != model.DefaultEstimatedHours {
		t.Errorf("EstimatedHours = %d, want default %d", bare.EstimatedHours, model.DefaultEstimatedHours)
	}
	if bare.Complexity != model.ComplexityMedium {
		t.Errorf("Complexity = %s, want Medium", bare.Complexity)
	}
	if bare.Keywords == nil || len(bare.Keywords) != 0 {
		t.Errorf("Keywords = %v, want empty non-nil", bare.Keywords)
	}
	if bare.Subservices != nil {
		t.Errorf("Subservices = %v, want nil", bare.Subservices)
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("expected error for malformed document")
	}
}
