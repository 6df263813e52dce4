package catalog

import "scopeworks/internal/model"

// FallbackServices is the compiled-in catalog used when the live catalog
// is unreachable. Matching and WBS generation proceed deterministically
// against it; provenance is tagged "local" so callers can tell.
func FallbackServices() []model.Service {
	return []model.Service{
		{
			ID:             "network-assessment",
			Name:           "Network Assessment",
			Category:       "Networking",
			Description:    "Full discovery and performance assessment of the existing network environment",
			Keywords:       []string{"network", "assessment", "discovery", "audit", "topology"},
			EstimatedHours: 40,
			Complexity:     model.ComplexityMedium,
			Source:         model.SourceLocal,
			SKU:            "NET-ASSESS-01",
			ServiceType:    "assessment",
			PhaseName:      "Phase 1: Discovery & Assessment",
		},
		{
			ID:             "firewall-installation",
			Name:           "Firewall Installation",
			Category:       "Security",
			Description:    "Design and deployment of a high-availability perimeter firewall pair",
			Keywords:       []string{"firewall", "security", "perimeter", "vpn"},
			EstimatedHours: 32,
			Complexity:     model.ComplexityHigh,
			Source:         model.SourceLocal,
			SKU:            "SEC-FW-01",
			ServiceType:    "implementation",
			PhaseName:      "Phase 2: Security Implementation",
		},
		{
			ID:             "active-directory",
			Name:           "Active Directory Implementation",
			Category:       "Server",
			Description:    "Directory services design, domain controller deployment, and account migration",
			Keywords:       []string{"active directory", "domain", "identity", "migration"},
			EstimatedHours: 48,
			Complexity:     model.ComplexityHigh,
			Source:         model.SourceLocal,
			SKU:            "SRV-AD-01",
			ServiceType:    "implementation",
			PhaseName:      "Phase 3: Directory Services",
		},
		{
			ID:             "email-migration",
			Name:           "Email Migration",
			Category:       "Email",
			Description:    "Mailbox migration to a hosted email platform with coexistence and cutover",
			Keywords:       []string{"email", "migration", "exchange", "office 365", "mailbox"},
			EstimatedHours: 60,
			Complexity:     model.ComplexityHigh,
			Source:         model.SourceLocal,
			SKU:            "EML-MIG-01",
			ServiceType:    "migration",
		},
		{
			ID:             "server-virtualization",
			Name:           "Server Virtualization",
			Category:       "Server",
			Description:    "Consolidation of physical servers onto a virtualization cluster",
			Keywords:       []string{"server", "virtualization", "vmware", "hyper-v", "consolidation"},
			EstimatedHours: 56,
			Complexity:     model.ComplexityMedium,
			Source:         model.SourceLocal,
			SKU:            "SRV-VIRT-01",
			ServiceType:    "implementation",
		},
		{
			ID:             "cloud-migration",
			Name:           "Cloud Migration",
			Category:       "Cloud",
			Description:    "Workload assessment and migration to a public cloud platform",
			Keywords:       []string{"cloud", "migration", "aws", "azure", "saas"},
			EstimatedHours: 80,
			Complexity:     model.ComplexityHigh,
			Source:         model.SourceLocal,
			SKU:            "CLD-MIG-01",
			ServiceType:    "migration",
		},
		{
			ID:             "backup-implementation",
			Name:           "Backup & Recovery Implementation",
			Category:       "Backup",
			Description:    "Backup platform deployment with retention policy design and restore testing",
			Keywords:       []string{"backup", "recovery", "disaster recovery", "retention"},
			EstimatedHours: 24,
			Complexity:     model.ComplexityLow,
			Source:         model.SourceLocal,
			SKU:            "BKP-IMP-01",
			ServiceType:    "implementation",
		},
		{
			ID:             "wireless-upgrade",
			Name:           "Wireless Network Upgrade",
			Category:       "Networking",
			Description:    "Site survey and replacement of wireless access points and controllers",
			Keywords:       []string{"wireless", "wifi", "access point", "network"},
			EstimatedHours: 32,
			Complexity:     model.ComplexityMedium,
			Source:         model.SourceLocal,
			SKU:            "NET-WIFI-01",
			ServiceType:    "upgrade",
		},
		{
			ID:             "security-audit",
			Name:           "Security Audit",
			Category:       "Security",
			Description:    "Vulnerability assessment and compliance gap analysis across the environment",
			Keywords:       []string{"security", "audit", "vulnerability", "compliance", "hipaa"},
			EstimatedHours: 40,
			Complexity:     model.ComplexityMedium,
			Source:         model.SourceLocal,
			SKU:            "SEC-AUD-01",
			ServiceType:    "assessment",
		},
		{
			ID:             "database-upgrade",
			Name:           "Database Platform Upgrade",
			Category:       "Database",
			Description:    "In-place or side-by-side upgrade of the production database platform",
			Keywords:       []string{"database", "sql", "upgrade", "migration"},
			EstimatedHours: 48,
			Complexity:     model.ComplexityHigh,
			Source:         model.SourceLocal,
			SKU:            "DB-UPG-01",
			ServiceType:    "upgrade",
		},
	}
}
