package textkit

import "strings"

// Technology areas recognized by the classifier.
const (
	AreaNetworking = "networking"
	AreaSecurity   = "security"
	AreaCloud      = "cloud"
	AreaServer     = "server"
	AreaDatabase   = "database"
	AreaEmail      = "email"
	AreaBackup     = "backup"
)

// areaKeywords maps each technology area to the substrings that tag it.
var areaKeywords = map[string][]string{
	AreaNetworking: {"network", "switch", "router", "wifi", "wireless", "lan", "wan", "vpn"},
	AreaSecurity:   {"security", "firewall", "antivirus", "threat", "vulnerability", "compliance", "audit"},
	AreaCloud:      {"cloud", "azure", "aws", "office 365", "o365", "microsoft 365", "saas"},
	AreaServer:     {"server", "virtualization", "vmware", "hyper-v", "active directory", "domain controller"},
	AreaDatabase:   {"database", "sql", "oracle", "mysql", "postgres"},
	AreaEmail:      {"email", "exchange", "outlook", "mailbox", "spam"},
	AreaBackup:     {"backup", "recovery", "disaster", "restore", "replication"},
}

// areaOrder fixes the iteration order so classification output is stable.
var areaOrder = []string{
	AreaNetworking, AreaSecurity, AreaCloud, AreaServer, AreaDatabase, AreaEmail, AreaBackup,
}

// Classify tags the text with every technology area whose keyword list has
// a case-insensitive substring hit.
func Classify(text string) []string {
	lower := strings.ToLower(text)

	var areas []string
	for _, area := range areaOrder {
		for _, kw := range areaKeywords[area] {
			if strings.Contains(lower, kw) {
				areas = append(areas, area)
				break
			}
		}
	}
	return areas
}
