package guest_test

import (
	"cowork/internal/domains/guest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		notes string
		want  guest.Info
	}{
		{
			name:  "no tag",
			notes: "team standup",
			want:  guest.Info{},
		},
		{
			name:  "empty notes",
			notes: "",
			want:  guest.Info{},
		},
		{
			name:  "full tag",
			notes: "[EXTERNAL] Name: Rina Wijaya | Email: rina@example.com | Phone: +62 811 000",
			want:  guest.Info{Name: "Rina Wijaya", Email: "rina@example.com", Phone: "+62 811 000"},
		},
		{
			name:  "tag after free text",
			notes: "pitch rehearsal\n[EXTERNAL] Name: Budi | Email: budi@example.com | Phone: 0812",
			want:  guest.Info{Name: "Budi", Email: "budi@example.com", Phone: "0812"},
		},
		{
			name:  "tag followed by more notes",
			notes: "[EXTERNAL] Name: Budi | Email:  | Phone: 0812\nprojector needed",
			want:  guest.Info{Name: "Budi", Phone: "0812"},
		},
		{
			name:  "marker without fields",
			notes: "[EXTERNAL] walk-in",
			want:  guest.Info{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, guest.Extract(tt.notes))
		})
	}
}

func TestResolve(t *testing.T) {
	name := "Sari"
	legacy := "[EXTERNAL] Name: Legacy | Email: legacy@example.com | Phone: "

	assert.Equal(t, guest.Info{Name: "Sari"}, guest.Resolve(&name, nil, nil, legacy))
	assert.Equal(t, guest.Info{Name: "Legacy", Email: "legacy@example.com"}, guest.Resolve(nil, nil, nil, legacy))
	assert.True(t, guest.Resolve(nil, nil, nil, "no guest").IsEmpty())
}
