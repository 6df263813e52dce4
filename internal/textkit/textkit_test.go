package textkit

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"drops short tokens", "we do it up", []string{}},
		{"drops stop words", "the network and the firewall", []string{"network", "firewall"}},
		{"splits on punctuation", "migrate e-mail, then servers.", []string{"migrate", "mail", "servers"}},
		{"keeps numbers", "upgrade network for 500 users", []string{"upgrade", "network", "500", "users"}},
		{"lowercases", "Firewall SETUP", []string{"firewall", "setup"}},
		{"empty input", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"networking", "upgrade network for 50 users across 3 offices", []string{AreaNetworking}},
		{"security and networking", "firewall and VPN rollout", []string{AreaNetworking, AreaSecurity}},
		{"cloud", "move everything to Azure", []string{AreaCloud}},
		{"server via active directory", "rebuild Active Directory", []string{AreaServer}},
		{"multi-area", "migrate email to the cloud with new backup", []string{AreaCloud, AreaEmail, AreaBackup}},
		{"no match", "help", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	t.Parallel()

	if got := WordCount("help"); got != 1 {
		t.Errorf("WordCount = %d, want 1", got)
	}
	if got := WordCount("  upgrade   the  network "); got != 3 {
		t.Errorf("WordCount = %d, want 3", got)
	}
}
