package web

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"rockguard/internal/dashboard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Landing(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	data := NewLandingData()
	data.Errors = map[string]string{"email": "required"}
	data.Form.FirstName = `<b>Asha</b>`

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageLanding, data))
	html := buf.String()

	for _, want := range []string{
		`id="home"`, `id="about"`, `id="contact"`,
		"Advanced Rockfall", "AI-Powered Analytics", "Why Choose RockGuard ?",
		"99.2%", "contact@rockguard.com", "Send us a Message",
		"email: required", `href="/system"`,
	} {
		assert.Contains(t, html, want)
	}
	assert.NotContains(t, html, "<b>Asha</b>")
	assert.NotContains(t, html, "leaflet")
}

func TestTemplates_System(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	store := dashboard.NewStore(dashboard.Config{})
	defer store.Close()
	session, err := store.Create("Kolar Gold Fields")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, PageSystem, NewSystemData(session.Snapshot())))
	html := buf.String()

	for _, want := range []string{
		`id="mine-map"`, "Live Sensor Readings", "3.07 mm", "Active Alerts",
		"Evacuate personnel, deploy stabilization barriers", "Structural Monitoring",
		"Weekly Risk Overview", "Latest Drone Inspection", "leaflet-heat.js",
		`class="mine active" data-mine="Kolar Gold Fields"`, "Kolar Gold Fields: 12.9563, 78.2762",
		`<script id="dashboard-state" type="application/json">`,
	} {
		assert.Contains(t, html, want)
	}
	assert.Equal(t, 3, strings.Count(html, "<svg"))
	assert.Equal(t, 1, strings.Count(html, `class="mine active"`))
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"/dashboard.js", "/site.css", "/drone-inspection.svg"} {
		f, err := Static().Open(name)
		require.NoError(t, err, name)
		b, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.NotEmpty(t, b)
		f.Close()
	}
}
